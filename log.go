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
	"log/slog"

	"github.com/rs/zerolog"

	"dirpx.dev/polarerr/kind"
	"dirpx.dev/polarerr/tag"
)

var (
	_ slog.LogValuer             = (*Error)(nil)
	_ zerolog.LogObjectMarshaler = (*Error)(nil)
)

// LogValue implements slog.LogValuer, rendering the error as a group.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{
		slog.String("kind", string(e.Kind)),
		slog.String("origin", string(kind.OriginOf(e.Kind))),
	}
	if e.Tag != tag.Empty {
		attrs = append(attrs, slog.String("tag", string(e.Tag)))
	}
	if e.Message != "" {
		attrs = append(attrs, slog.String("message", e.Message))
	}
	if len(e.Details) > 0 {
		attrs = append(attrs, slog.Any("details", e.Details))
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler:
//
//	log.Error().Object("error", err).Msg("query failed")
func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	if e == nil {
		return
	}
	ev.Str("kind", string(e.Kind)).
		Str("origin", string(kind.OriginOf(e.Kind)))
	if e.Tag != tag.Empty {
		ev.Str("tag", string(e.Tag))
	}
	if e.Message != "" {
		ev.Str("message", e.Message)
	}
	if len(e.Details) > 0 {
		ev.Interface("details", e.Details)
	}
	if e.Cause != nil {
		ev.AnErr("cause", e.Cause)
	}
}
