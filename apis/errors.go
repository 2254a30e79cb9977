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

package apis

import (
	"dirpx.dev/polarerr/kind"
	"dirpx.dev/polarerr/tag"
)

// KindedError represents an error classified into the polar kind taxonomy.
//
// The kind answers "what went wrong" at whatever depth the detecting code
// knew: a leaf such as "unrecognized_token" or a category such as
// "parse_error". Adapters decide transport statuses from it, walking up the
// tree when the exact kind has no rule.
type KindedError interface {
	error

	// ErrorKind returns the kind of the error. It MUST be non-empty;
	// adapters treat an empty kind as the root kind.
	ErrorKind() kind.Kind
}

// TaggedError represents an error reported across the engine boundary.
//
// The tag is the engine's own identifier of the failure, e.g.
// "runtime.type_error". Locally detected errors return tag.Empty.
type TaggedError interface {
	error

	// ErrorTag returns the boundary tag. May return tag.Empty.
	ErrorTag() tag.Tag
}

// MessagedError exposes the human-readable message separately from Error(),
// which usually also renders the kind.
type MessagedError interface {
	error

	// ErrorMessage returns the message. May return "".
	ErrorMessage() string
}

// DetailedError represents an error that exposes a structured payload, such
// as the offending token and its location for parse failures.
//
// Implementations MUST return a map the caller may modify freely. Returning
// nil is allowed and simply means "no details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() map[string]any
}

// CausedError represents an error that exposes its underlying cause, in the
// shape errors.Unwrap expects.
type CausedError interface {
	error

	// Unwrap returns the cause of the error (possibly wrapped), or nil.
	Unwrap() error
}
