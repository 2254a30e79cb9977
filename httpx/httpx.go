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

package httpx

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/polarerr"
	"dirpx.dev/polarerr/adapter"
	"dirpx.dev/polarerr/apis"
	"dirpx.dev/polarerr/metrics"
)

// Writer is a thin adapter that knows how to turn a polar error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
	// Recorder, if set, counts every written error.
	Recorder *metrics.Recorder
}

// Write serializes the error's view and writes it to the response writer.
// The HTTP status is resolved via the Mapper.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err *polarerr.Error) {
	if err == nil {
		return
	}
	st := w.Mapper.Status(err.Kind, err.Tag)
	w.Recorder.Record(err, metrics.TransportHTTP)

	body := marshalView(adapter.ToView(err))

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(body)
}

// WriteError is Write for any error; see polarerr.Ensure for how foreign
// errors are classified.
func (w Writer) WriteError(rw http.ResponseWriter, err error) {
	w.Write(rw, polarerr.Ensure(err))
}

// marshalView renders v through protojson so that details nested in the
// view keep the same JSON shape as on the gRPC side. Details that cannot
// be represented are dropped rather than failing the response.
func marshalView(v apis.ErrorView) []byte {
	s, err := adapter.ViewStruct(v)
	if err != nil {
		v.Details = nil
		if s, err = adapter.ViewStruct(v); err != nil {
			return []byte(`{"kind":"error"}`)
		}
	}
	b, err := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(s)
	if err != nil {
		return []byte(`{"kind":"error"}`)
	}
	return b
}

// EchoErrorHandler returns an echo.HTTPErrorHandler that writes polar errors
// (anywhere in the chain) with w and hands every other error to echo's
// default handler.
//
//	e := echo.New()
//	e.HTTPErrorHandler = httpx.EchoErrorHandler(httpx.Writer{Mapper: m})
func EchoErrorHandler(w Writer) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var pe *polarerr.Error
		if !errors.As(err, &pe) {
			c.Echo().DefaultHTTPErrorHandler(err, c)
			return
		}
		w.Write(c.Response(), pe)
	}
}
