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

package kind

// Root and top-level categories.
//
// Every kind the binding raises sits beneath Root. Matching on Root catches
// everything the library surfaces.
const (
	// Root is the single root of the taxonomy ("Error").
	Root Kind = "error"

	// FFIErrorNotFound indicates that the engine reported a failure whose tag
	// has no mapping in this binding, or that no failure could be read from
	// the boundary at all.
	FFIErrorNotFound Kind = "ffi_error_not_found"

	// Operational indicates a failure of the engine's own machinery rather
	// than of the policy or the query (invalid internal state, etc.).
	Operational Kind = "operational_error"

	// ParseError indicates that policy source text could not be parsed.
	// The details usually carry the offending token and its location.
	ParseError Kind = "parse_error"

	// API indicates a misuse of the library API by the caller.
	API Kind = "api_error"

	// Runtime is the generic category for failures raised while loading
	// policies or evaluating queries.
	Runtime Kind = "polar_runtime_error"
)

// Operational leaves.
const (
	// Unknown indicates an operational failure the engine could not classify.
	Unknown Kind = "unknown_error"
)

// Parse leaves.
//
// Each of these corresponds to a tokenizer or grammar failure reported by the
// engine's parser.
const (
	// ExtraToken indicates a token after the end of a complete term.
	ExtraToken Kind = "extra_token"

	// IntegerOverflow indicates an integer literal that does not fit the
	// engine's integer type.
	IntegerOverflow Kind = "integer_overflow"

	// InvalidTokenCharacter indicates a character that cannot appear inside
	// the token being read.
	InvalidTokenCharacter Kind = "invalid_token_character"

	// InvalidToken indicates input that does not form any token.
	InvalidToken Kind = "invalid_token"

	// UnrecognizedEOF indicates that the input ended in the middle of a term.
	UnrecognizedEOF Kind = "unrecognized_eof"

	// UnrecognizedToken indicates a valid token in a position where the
	// grammar does not allow it.
	UnrecognizedToken Kind = "unrecognized_token"
)

// API leaves.
const (
	// Parameter indicates an invalid argument passed to a library call.
	Parameter Kind = "parameter_error"
)

// Runtime leaves reported across the foreign-function boundary.
const (
	// Serialization indicates that a value could not be converted between
	// the engine's term representation and the host representation.
	Serialization Kind = "serialization_error"

	// Unsupported indicates an operation the engine does not support.
	Unsupported Kind = "unsupported_error"

	// PolarType indicates a type error raised during evaluation.
	PolarType Kind = "polar_type_error"

	// StackOverflow indicates that evaluation exceeded the engine's stack limit.
	StackOverflow Kind = "stack_overflow_error"
)

// Runtime leaves raised locally by the binding.
const (
	// UnregisteredClass indicates a reference to a class that was never
	// registered with the binding.
	UnregisteredClass Kind = "unregistered_class_error"

	// MissingConstructor indicates a registered class without a usable
	// constructor.
	MissingConstructor Kind = "missing_constructor_error"

	// UnregisteredInstance indicates a reference to an instance id the
	// binding does not hold.
	UnregisteredInstance Kind = "unregistered_instance_error"

	// DuplicateInstanceRegistration indicates an attempt to register an
	// instance id twice.
	DuplicateInstanceRegistration Kind = "duplicate_instance_registration_error"

	// InvalidCall indicates a call on a host value that cannot be performed
	// (missing attribute, non-callable, wrong arity).
	InvalidCall Kind = "invalid_call_error"

	// InlineQueryFailed indicates that an inline query in a policy file
	// produced no results.
	InlineQueryFailed Kind = "inline_query_failed_error"

	// NullByteInPolarFile indicates policy source containing a NUL byte.
	NullByteInPolarFile Kind = "null_byte_in_polar_file_error"

	// UnexpectedPolarType indicates a term of a type the binding cannot
	// convert to a host value.
	UnexpectedPolarType Kind = "unexpected_polar_type_error"

	// PolarFileExtension indicates a policy file without the rule-file
	// extension. Its message is fixed, see FixedMessage.
	PolarFileExtension Kind = "polar_file_extension_error"

	// PolarFileNotFound indicates a policy file that does not exist. Its
	// message is derived from the file path.
	PolarFileNotFound Kind = "polar_file_not_found_error"
)

// PolarFileExtensionMessage is the fixed message of PolarFileExtension.
const PolarFileExtensionMessage = "Policy files must have the recognized rule-file extension."

// PolarFileNotFoundFormat is the message template of PolarFileNotFound.
const PolarFileNotFoundFormat = "Could not find file: %s"
