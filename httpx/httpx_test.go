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

package httpx_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"dirpx.dev/polarerr"
	"dirpx.dev/polarerr/httpx"
	"dirpx.dev/polarerr/kind"
	"dirpx.dev/polarerr/mapper"
	"dirpx.dev/polarerr/metrics"
	"dirpx.dev/polarerr/tag"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriter_Write(t *testing.T) {
	w := httpx.Writer{Mapper: mapper.MustNew()}
	rec := httptest.NewRecorder()

	w.Write(rec, polarerr.E(kind.PolarType, "expected list",
		polarerr.WithTagOption(tag.MustParse("runtime.type_error")),
		polarerr.WithDetailOption("term", "x"),
	))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, map[string]any{
		"kind":    "polar_type_error",
		"tag":     "runtime.type_error",
		"origin":  "boundary",
		"message": "expected list",
		"details": map[string]any{"term": "x"},
	}, decode(t, rec))
}

func TestWriter_NilIsNoop(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.Writer{Mapper: mapper.MustNew()}.Write(rec, nil)
	require.Empty(t, rec.Body.Bytes())
}

func TestWriter_WriteError_Foreign(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.Writer{Mapper: mapper.MustNew()}.WriteError(rec, errors.New("disk on fire"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	require.Equal(t, "unknown_error", body["kind"])
	require.Equal(t, "disk on fire", body["message"])
}

func TestWriter_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	w := httpx.Writer{Mapper: mapper.MustNew(), Recorder: metrics.NewRecorder(reg, "")}

	w.Write(httptest.NewRecorder(), polarerr.PolarFileExtension())

	require.Equal(t, float64(1), testutil.ToFloat64(
		w.Recorder.Collector().WithLabelValues("polar_file_extension_error", "local", "http")))
}

func TestEchoErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = httpx.EchoErrorHandler(httpx.Writer{Mapper: mapper.MustNew()})
	e.GET("/policy", func(echo.Context) error {
		return fmt.Errorf("load: %w", polarerr.PolarFileNotFound("rules.pol"))
	})
	e.GET("/teapot", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/policy", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	require.Equal(t, "polar_file_not_found_error", body["kind"])
	require.Equal(t, "Could not find file: rules.pol", body["message"])
	require.Equal(t, map[string]any{"file": "rules.pol"}, body["details"])

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "short and stout", decode(t, rec)["message"])
}
