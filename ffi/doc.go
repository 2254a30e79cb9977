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

// Package ffi converts failures reported by the policy engine across the
// foreign-function boundary into *polarerr.Error values.
//
// The engine reports a failure as a (tag, message, details) triple. A
// Resolver maps the tag to a kind through an immutable rule table:
//
//	runtime.type_error      -> kind.PolarType
//	parse.unrecognized_eof  -> kind.UnrecognizedEOF
//	operational.unknown     -> kind.Unknown
//
// A tag without a rule resolves to kind.FFIErrorNotFound; the tag is kept in
// the error details under "tag" so the mismatch can be diagnosed. With
// WithFamilyFallback the resolver instead falls back to the longest matching
// prefix, so an unknown variant of a known family resolves to the family
// kind.
//
// FromTag is the narrow entry point for runtime failures identified by bare
// variant name ("TypeError", "StackOverflow"); Decode reads the engine's
// JSON failure envelope.
package ffi
