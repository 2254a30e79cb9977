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

package adapter

import (
	"errors"

	"dirpx.dev/polarerr"
	"dirpx.dev/polarerr/apis"
	"dirpx.dev/polarerr/kind"
	"dirpx.dev/polarerr/tag"
)

// ToDescriptor converts a polar error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the kind, its place in the tree and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(e *polarerr.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	msg := e.Message
	if msg == "" {
		msg, _ = kind.FixedMessage(e.Kind)
	}
	return apis.ErrorDescriptor{
		Kind:       string(e.Kind),
		Parent:     string(kind.Parent(e.Kind)),
		Origin:     string(e.Origin()),
		Tag:        string(e.Tag),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    msg,
	}
}

// ToView converts a polar error into a public ErrorView. This function
// performs no automatic redaction or filtering; it exposes exactly what the
// error instance contains. Details are copied.
func ToView(e *polarerr.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Kind:    string(e.Kind),
		Tag:     string(e.Tag),
		Origin:  string(e.Origin()),
		Message: e.Message,
		Details: e.ErrorDetails(),
	}
}

// ViewOf builds an ErrorView from any error.
//
// A *polarerr.Error anywhere in the chain is used directly. Otherwise the
// view is assembled from whatever apis interfaces err implements; an error
// that implements none of them is reported as kind.Unknown with err's text
// as the message. nil yields the zero view.
func ViewOf(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var pe *polarerr.Error
	if errors.As(err, &pe) {
		return ToView(pe)
	}
	if vp, ok := err.(apis.ViewProvider); ok {
		return vp.ErrorView()
	}
	ke, ok := err.(apis.KindedError)
	if !ok {
		return ToView(polarerr.Ensure(err))
	}
	k := ke.ErrorKind()
	if k == kind.Empty {
		k = kind.Root
	}
	v := apis.ErrorView{
		Kind:    string(k),
		Origin:  string(kind.OriginOf(k)),
		Message: err.Error(),
	}
	if te, ok := err.(apis.TaggedError); ok {
		v.Tag = string(te.ErrorTag())
	}
	if me, ok := err.(apis.MessagedError); ok {
		v.Message = me.ErrorMessage()
	}
	if de, ok := err.(apis.DetailedError); ok {
		v.Details = de.ErrorDetails()
	}
	return v
}

// FromView rebuilds a polar error from a view received over the wire.
//
// A kind that does not parse becomes kind.Unknown and a tag that does not
// parse is dropped; in both cases the received value is kept in Details
// under "kind" or "tag".
func FromView(v apis.ErrorView) *polarerr.Error {
	k, err := kind.Parse(v.Kind)
	var extra map[string]any
	if err != nil {
		k = kind.Unknown
		extra = map[string]any{"kind": v.Kind}
	}
	t, err := tag.Parse(v.Tag)
	if err != nil {
		t = tag.Empty
		if extra == nil {
			extra = map[string]any{}
		}
		extra["tag"] = v.Tag
	}
	e := &polarerr.Error{Kind: k, Tag: t, Message: v.Message}
	return e.WithDetails(v.Details).WithDetails(extra)
}
