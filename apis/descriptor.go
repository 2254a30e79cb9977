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

// ErrorDescriptor is a flat, transport-friendly description of one error
// kind as it is exposed to clients.
//
// It uses plain strings rather than kind.Kind and tag.Tag so that it can be
// marshaled as-is and consumed by code that does not import the taxonomy.
type ErrorDescriptor struct {
	// Kind is the canonical kind, e.g. "unrecognized_token".
	Kind string `json:"kind"`

	// Parent is the kind's parent in the taxonomy, e.g. "parse_error".
	// Empty for the root kind.
	Parent string `json:"parent,omitempty"`

	// Origin is where this kind of failure is detected: "boundary",
	// "local", "parse", "operational", "api" or "root".
	Origin string `json:"origin,omitempty"`

	// Tag is the boundary tag of the error instance, if any.
	Tag string `json:"tag,omitempty"`

	// HTTPStatus is the HTTP status used when this error is exposed over
	// HTTP. A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) used when this error is
	// exposed over gRPC. A value of 0 means "not specified".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the message of the error instance, or the kind's fixed
	// message when the instance has none.
	Message string `json:"message,omitempty"`
}
