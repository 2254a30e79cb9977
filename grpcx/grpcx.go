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

package grpcx

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/polarerr"
	"dirpx.dev/polarerr/adapter"
	"dirpx.dev/polarerr/apis"
	"dirpx.dev/polarerr/kind"
	"dirpx.dev/polarerr/metrics"
	"dirpx.dev/polarerr/tag"
)

// Domain is the ErrorInfo domain of every status produced here.
const Domain = "polar"

// ErrorInfo metadata keys.
const (
	MetaTag    = "tag"
	MetaOrigin = "origin"
	MetaParent = "parent"
)

// Option configures the interceptors.
type Option func(*config)

type config struct {
	log      zerolog.Logger
	recorder *metrics.Recorder
}

// WithLogger logs every mapped failure: at warn level for client-side
// statuses, at error level for the rest. The default logger is disabled.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithRecorder counts every mapped failure.
func WithRecorder(r *metrics.Recorder) Option {
	return func(c *config) { c.recorder = r }
}

func newConfig(opts []Option) *config {
	c := &config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Status converts a polar error into a gRPC status.
//
// The status code comes from m. The status carries an errdetails.ErrorInfo
// (Reason: kind, Domain: "polar", Metadata: tag, origin and parent) and,
// when the error has details, a structpb.Struct with them. If a detail
// cannot be attached the bare status is returned.
func Status(m apis.Mapper, e *polarerr.Error) *gstatus.Status {
	st := m.Status(e.Kind, e.Tag)
	base := gstatus.New(gcodes.Code(st.GRPC), e.Message)

	info := &errdetails.ErrorInfo{
		Reason:   string(e.Kind),
		Domain:   Domain,
		Metadata: map[string]string{MetaOrigin: string(e.Origin())},
	}
	if e.Tag != tag.Empty {
		info.Metadata[MetaTag] = string(e.Tag)
	}
	if p := kind.Parent(e.Kind); p != kind.Empty {
		info.Metadata[MetaParent] = string(p)
	}

	if ds, err := adapter.DetailsStruct(e.Details); err == nil && ds != nil {
		if with, err := base.WithDetails(info, ds); err == nil {
			return with
		}
	}
	if with, err := base.WithDetails(info); err == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *polarerr.Error (anywhere in the returned error's chain) into a gRPC
// status built by Status. Other errors pass through untouched.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	c := newConfig(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, c.convert(m, info.FullMethod, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, opts ...Option) grpc.StreamServerInterceptor {
	c := newConfig(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return c.convert(m, info.FullMethod, err)
	}
}

func (c *config) convert(m apis.Mapper, method string, err error) error {
	var pe *polarerr.Error
	if !errors.As(err, &pe) {
		// Not ours; return as-is.
		return err
	}
	st := Status(m, pe)
	c.recorder.Record(pe, metrics.TransportGRPC)

	ev := c.log.Error()
	if isClientCode(st.Code()) {
		ev = c.log.Warn()
	}
	ev.Str("method", method).
		Str("grpc_code", st.Code().String()).
		Object("error", pe).
		Msg("polar error")

	return st.Err()
}

func isClientCode(c gcodes.Code) bool {
	switch c {
	case gcodes.InvalidArgument, gcodes.NotFound, gcodes.AlreadyExists,
		gcodes.FailedPrecondition, gcodes.OutOfRange, gcodes.Unimplemented:
		return true
	}
	return false
}

// ExtractErrorInfo pulls the polar errdetails.ErrorInfo out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}

// FromError rebuilds a polar error on the client side from a status
// produced by Status. A nil err yields nil. A status without polar
// ErrorInfo becomes kind.Unknown wrapping err.
func FromError(err error) *polarerr.Error {
	if err == nil {
		return nil
	}
	info, ok := ExtractErrorInfo(err)
	if !ok {
		return polarerr.Ensure(err)
	}
	st, _ := gstatus.FromError(err)

	view := apis.ErrorView{
		Kind:    info.GetReason(),
		Tag:     info.GetMetadata()[MetaTag],
		Message: st.Message(),
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			view.Details = s.AsMap()
			break
		}
	}
	return adapter.FromView(view)
}
