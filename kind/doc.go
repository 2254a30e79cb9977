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

// Package kind declares the error kinds of the policy binding and the tree
// they form.
//
// A kind answers "what failed?" (a parse error, an unregistered class, a
// type error inside the engine, ...). Kinds are short, stable, lowercase,
// underscore-separated identifiers:
//
//	error
//	├── ffi_error_not_found
//	├── operational_error
//	│   └── unknown_error
//	├── parse_error
//	│   ├── extra_token, integer_overflow, invalid_token_character,
//	│   └── invalid_token, unrecognized_eof, unrecognized_token
//	├── api_error
//	│   └── parameter_error
//	└── polar_runtime_error
//	    ├── serialization_error, unsupported_error, polar_type_error, stack_overflow_error
//	    ├── unregistered_class_error, missing_constructor_error, ...
//	    └── polar_file_extension_error, polar_file_not_found_error
//
// The tree is a static parent table. Category matching is a walk up that
// table (IsA), so callers may match at any level: a leaf, a category such as
// ParseError, or Root to catch everything.
package kind
