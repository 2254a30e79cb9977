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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dirpx.dev/polarerr"
	"dirpx.dev/polarerr/kind"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "polarerr"

// Transport label values.
const (
	TransportGRPC = "grpc"
	TransportHTTP = "http"
)

// Recorder holds the error counters.
type Recorder struct {
	errorsTotal *prometheus.CounterVec
}

// NewRecorder creates the counters and registers them with reg. A nil reg
// uses prometheus.DefaultRegisterer. An empty namespace uses
// DefaultNamespace.
func NewRecorder(reg prometheus.Registerer, namespace string) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Recorder{
		errorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of polar errors surfaced to clients",
			},
			[]string{"kind", "origin", "transport"},
		),
	}
}

// Record counts e once for transport. A nil Recorder or a nil error is a
// no-op, so callers need not check whether metrics are enabled.
func (r *Recorder) Record(e *polarerr.Error, transport string) {
	if r == nil || e == nil {
		return
	}
	k := e.Kind
	if k == kind.Empty {
		k = kind.Root
	}
	r.errorsTotal.WithLabelValues(string(k), string(kind.OriginOf(k)), transport).Inc()
}

// Collector exposes the underlying counter, e.g. for tests.
func (r *Recorder) Collector() *prometheus.CounterVec { return r.errorsTotal }
