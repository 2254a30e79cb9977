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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/polarerr/kind"
)

// defaultHTTP defines the library's built-in HTTP mappings.
//
// Only kinds whose status differs from their parent's are listed; the rest
// inherit through the ancestor tier. The root has no entry and resolves to
// the fallback.
var defaultHTTP = map[kind.Kind]int{
	// Boundary and engine machinery.
	kind.FFIErrorNotFound: http.StatusBadGateway,          // Engine reported something this binding cannot classify.
	kind.Operational:      http.StatusInternalServerError, // Engine internal state is broken.

	// Policy source.
	kind.ParseError: http.StatusBadRequest, // Policy text is malformed; all parse leaves inherit this.

	// Library misuse.
	kind.API: http.StatusBadRequest,

	// Evaluation.
	kind.Runtime:                       http.StatusInternalServerError,
	kind.Serialization:                 http.StatusUnprocessableEntity, // Value cannot cross the boundary.
	kind.Unsupported:                   http.StatusNotImplemented,
	kind.PolarType:                     http.StatusUnprocessableEntity,
	kind.StackOverflow:                 http.StatusInternalServerError,
	kind.DuplicateInstanceRegistration: http.StatusConflict,
	kind.InvalidCall:                   http.StatusUnprocessableEntity,
	kind.InlineQueryFailed:             http.StatusPreconditionFailed, // Policy assertion did not hold at load time.
	kind.NullByteInPolarFile:           http.StatusBadRequest,
	kind.PolarFileExtension:            http.StatusBadRequest,
	kind.PolarFileNotFound:             http.StatusNotFound,
}

// defaultGRPC defines the library's built-in gRPC mappings, aligned with
// the canonical status codes. Same inheritance rules as defaultHTTP.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.FFIErrorNotFound: codes.Unknown,
	kind.Operational:      codes.Internal,
	kind.Unknown:          codes.Unknown,

	kind.ParseError:      codes.InvalidArgument,
	kind.IntegerOverflow: codes.OutOfRange,

	kind.API: codes.InvalidArgument,

	kind.Runtime:                       codes.Internal,
	kind.Serialization:                 codes.InvalidArgument,
	kind.Unsupported:                   codes.Unimplemented,
	kind.PolarType:                     codes.InvalidArgument,
	kind.StackOverflow:                 codes.ResourceExhausted,
	kind.DuplicateInstanceRegistration: codes.AlreadyExists,
	kind.InvalidCall:                   codes.InvalidArgument,
	kind.InlineQueryFailed:             codes.FailedPrecondition,
	kind.NullByteInPolarFile:           codes.InvalidArgument,
	kind.PolarFileExtension:            codes.InvalidArgument,
	kind.PolarFileNotFound:             codes.NotFound,
}
