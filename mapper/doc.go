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

// Package mapper provides deterministic, immutable mappings from error
// kinds (dirpx.dev/polarerr/kind) and optional boundary tags
// (dirpx.dev/polarerr/tag) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A polar error is classified in two parts:
//
//  1. a Kind from the taxonomy tree (e.g. kind.UnrecognizedEOF, whose
//     ancestors are kind.ParseError and kind.Root);
//  2. an optional Tag the engine reported it under (e.g. "parse.unrecognized_eof").
//
// Transport layers need to turn this pair into concrete status codes.
// Package mapper does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - tree-aware: a kind without a rule inherits its nearest ancestor's;
//   - prefix-aware: callers can add fine-grained rules for specific tags;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Kind;
//  2. per-Kind longest-prefix-match (LPM) on the Tag;
//  3. per-Kind default (library or user-adjusted);
//  4. the nearest ancestor's override or default;
//  5. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: tags are treated as "."-separated segments,
// and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix(kind.FFIErrorNotFound, "runtime", http.StatusInternalServerError)
//	WithHTTPPrefix(kind.FFIErrorNotFound, "runtime.*.timeout", http.StatusGatewayTimeout)
//
// The more specific prefix wins.
//
// # Library defaults
//
// Categories carry defaults that their leaves inherit (kind.ParseError -> 400 /
// InvalidArgument, kind.Runtime -> 500 / Internal); leaves are listed only
// where they differ (kind.PolarFileNotFound -> 404 / NotFound,
// kind.Unsupported -> 501 / Unimplemented). The root has no default and
// resolves to the fallback.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(kind.InlineQueryFailed, 500),
//	    mapper.WithHTTPPrefix(kind.FFIErrorNotFound, "runtime", 500),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status(kind.UnrecognizedEOF, tag.MustParse("parse.unrecognized_eof"))
//	// st.HTTP == 400, st.GRPC == codes.InvalidArgument
//
// The same options can be loaded from YAML with LoadConfig or NewFromConfig.
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of how
// a particular (kind, tag) was resolved, including which tier matched, the
// pattern used for prefixes and the ancestor used for inherited rules.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the Mapper
// does not observe further changes to the caller's maps or slices. This makes it
// safe to share a single instance across handlers, goroutines, and requests.
package mapper
