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

package polarerr

import (
	"errors"
	"fmt"

	"dirpx.dev/polarerr/kind"
)

// FileDetail is the Details key under which PolarFileNotFound records the
// missing path.
const FileDetail = "file"

// E constructs an Error of kind k and applies opts in order.
//
// Usage:
//
//	return polarerr.E(kind.UnregisteredClass, "Unregistered class: User",
//	    polarerr.WithDetailOption("class", "User"),
//	)
//
// Two kinds do not take their message from msg:
//   - kind.PolarFileExtension always carries kind.PolarFileExtensionMessage;
//   - kind.PolarFileNotFound treats msg as the file path and derives
//     "Could not find file: <path>" from it (see PolarFileNotFound).
//
// An empty k is recorded as kind.Root. E always returns a new value.
func E(k kind.Kind, msg string, opts ...Option) *Error {
	if k == kind.Empty {
		k = kind.Root
	}
	e := &Error{Kind: k, Message: msg}
	switch k {
	case kind.PolarFileExtension:
		e.Message = kind.PolarFileExtensionMessage
	case kind.PolarFileNotFound:
		e.Message = fmt.Sprintf(kind.PolarFileNotFoundFormat, msg)
		e.Details = map[string]any{FileDetail: msg}
	}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// New constructs an Error from a kind, an optional message and an optional
// details payload. The payload is copied.
func New(k kind.Kind, msg string, details map[string]any) *Error {
	return E(k, msg, WithDetailsOption(details))
}

// Newf is New with a formatted message and no details.
func Newf(k kind.Kind, format string, args ...any) *Error {
	return E(k, fmt.Sprintf(format, args...))
}

// Wrap constructs an Error of kind k around err. A nil err yields nil.
func Wrap(err error, k kind.Kind, msg string) *Error {
	if err == nil {
		return nil
	}
	return E(k, msg, WithCauseOption(err))
}

// PolarFileExtension returns the error raised for a policy file without the
// rule-file extension. Its message never varies.
func PolarFileExtension() *Error {
	return E(kind.PolarFileExtension, "")
}

// PolarFileNotFound returns the error raised for a missing policy file.
//
//	PolarFileNotFound("rules.pol").Message == "Could not find file: rules.pol"
func PolarFileNotFound(file string) *Error {
	return E(kind.PolarFileNotFound, file)
}

// Ensure converts any error into *Error.
//
//   - nil yields nil;
//   - an *Error anywhere in the chain is returned as-is;
//   - anything else is wrapped as kind.Unknown with the original as cause.
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, kind.Unknown, err.Error())
}

// derivedMessage reports whether the message of k is computed by the
// constructor rather than supplied by the caller.
func derivedMessage(k kind.Kind) bool {
	return k == kind.PolarFileExtension || k == kind.PolarFileNotFound
}
