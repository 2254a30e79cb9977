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

// Package tag defines the identifiers the policy engine uses to report a
// failure across the foreign-function boundary.
//
// A tag names the engine-side variant of a failure as a dot-separated path,
// family first:
//
//   - "runtime.type_error"
//   - "parse.unrecognized_eof"
//   - "operational.unknown"
//
// The engine itself reports CamelCase variant names ("Runtime", "TypeError");
// Normalize turns those into the canonical form, so "Runtime::TypeError" and
// "runtime.type_error" are the same tag.
//
// Tag is optional on an error: the zero value ("") means the failure was
// detected locally, not reported by the engine.
package tag
