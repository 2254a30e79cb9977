/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package ffi

import "dirpx.dev/polarerr/kind"

// Families of engine tags.
const (
	FamilyRuntime     = "runtime"
	FamilyParse       = "parse"
	FamilyOperational = "operational"
	FamilyParameter   = "parameter"
	FamilyAPI         = "api"
)

// defaultRules maps engine tags to kinds. Family-only tags cover failures
// whose variant carries no name of its own.
var defaultRules = []rule{
	{"runtime", kind.Runtime},
	{"runtime.serialization", kind.Serialization},
	{"runtime.unsupported", kind.Unsupported},
	{"runtime.type_error", kind.PolarType},
	{"runtime.stack_overflow", kind.StackOverflow},

	{"parse", kind.ParseError},
	{"parse.extra_token", kind.ExtraToken},
	{"parse.integer_overflow", kind.IntegerOverflow},
	{"parse.invalid_token_character", kind.InvalidTokenCharacter},
	{"parse.invalid_token", kind.InvalidToken},
	{"parse.unrecognized_eof", kind.UnrecognizedEOF},
	{"parse.unrecognized_token", kind.UnrecognizedToken},

	{"operational", kind.Operational},
	{"operational.unknown", kind.Unknown},

	{"parameter", kind.Parameter},
	{"api", kind.API},
}

// runtimeVariants are the bare variant names FromTag accepts.
var runtimeVariants = []string{"Serialization", "Unsupported", "TypeError", "StackOverflow"}

// RuntimeVariants returns the bare runtime variant names the engine reports
// and FromTag resolves.
func RuntimeVariants() []string {
	return append([]string(nil), runtimeVariants...)
}
