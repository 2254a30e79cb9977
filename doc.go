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

// Package polarerr is the error surface of the policy-engine binding.
//
// Every failure the binding raises, whether reported by the engine across
// the foreign-function boundary or detected by the binding's own
// validation, is an *Error with a kind from package kind:
//
//	err := polarerr.E(kind.UnregisteredClass, "Unregistered class: User")
//
//	if errors.Is(err, kind.Runtime) {
//	    // any runtime failure, whatever the leaf
//	}
//
//	var pe *polarerr.Error
//	if errors.As(err, &pe) {
//	    fmt.Println(pe.Kind, pe.Message, pe.Details)
//	}
//
// Kinds form a single-rooted tree; errors.Is with a kind matches that kind
// and everything beneath it, so callers catch at whatever level they need.
//
// Two kinds derive their message at construction: PolarFileExtension always
// carries a fixed message, and PolarFileNotFound builds its message from the
// file path. See E.
//
// Failures reported by the engine are converted by package ffi; transport
// projections live in mapper, grpcx and httpx.
package polarerr
