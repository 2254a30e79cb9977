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

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
//
// The returned view MUST be safe to marshal (to JSON/proto) and SHOULD contain
// all information that is safe to disclose to the client.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of an error.
//
// This is not the concrete error type used internally; it is the shape that
// is exposed over the wire or logged. Both HTTP and gRPC adapters share it.
type ErrorView struct {
	// Kind is the canonical error kind, e.g. "polar_type_error".
	Kind string `json:"kind"`
	// Tag is the boundary tag, e.g. "runtime.type_error". Empty for errors
	// raised by the binding itself.
	Tag string `json:"tag,omitempty"`
	// Origin is the origin group of the kind.
	Origin string `json:"origin,omitempty"`
	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty"`
	// Details is the structured payload of the error. Values should survive
	// a JSON round trip.
	Details map[string]any `json:"details,omitempty"`
}
