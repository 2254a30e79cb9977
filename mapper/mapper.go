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

package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/polarerr/apis"
	"dirpx.dev/polarerr/internal/segmenttrie"
	"dirpx.dev/polarerr/kind"
	"dirpx.dev/polarerr/tag"
)

// Explain sources, in precedence order.
const (
	SourceOverride = "override"
	SourcePrefix   = "prefix"
	SourceDefault  = "default"
	SourceAncestor = "ancestor"
	SourceFallback = "fallback"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance; no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all tag prefixes (via tag.Normalize).
//  4. Build per-kind segment tries (HTTP & gRPC) supporting longest-prefix-match
//     with '*' as a single-segment wildcard.
//  5. Freeze all maps and tries into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid kinds, invalid
// prefixes or trie construction failures.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults, copied into builder-owned maps.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	if err := b.validateKinds(); err != nil {
		return nil, err
	}

	// (3)+(4) Per-kind tries.
	httpTrie, err := buildTries(b.httpPrefixes, "HTTP", identity)
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries(b.grpcPrefixes, "gRPC", codesOf)
	if err != nil {
		return nil, err
	}

	// (5) Freeze everything into a read-only snapshot.
	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper combines per-kind exact overrides, per-kind segment-aware prefix
// tries on the boundary tag, per-kind defaults and the kind tree. Lookups
// are O(depth) and safe for concurrent use once constructed.
type mapper struct {
	httpDefault  map[kind.Kind]int
	grpcDefault  map[kind.Kind]codes.Code
	httpOverride map[kind.Kind]int
	grpcOverride map[kind.Kind]codes.Code
	httpTrie     map[kind.Kind]*segmenttrie.Trie[int]
	grpcTrie     map[kind.Kind]*segmenttrie.Trie[codes.Code]

	// fallbackHTTP and fallbackGRPC apply when nothing on the path from the
	// kind to the root has a rule.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// table is one transport's view of the mapper.
type table[V any] struct {
	override map[kind.Kind]V
	trie     map[kind.Kind]*segmenttrie.Trie[V]
	def      map[kind.Kind]V
	fallback V
}

// resolution records how a status was chosen.
type resolution[V any] struct {
	val     V
	source  string
	pattern string    // set for SourcePrefix
	from    kind.Kind // set for SourceAncestor
}

// resolve walks the precedence tiers:
//
//  1. exact per-kind override;
//  2. per-kind longest-prefix-match on the tag;
//  3. per-kind default;
//  4. the nearest ancestor's override or default;
//  5. fallback.
//
// An empty kind is resolved as the root.
func (tb table[V]) resolve(k kind.Kind, t tag.Tag) resolution[V] {
	if k == kind.Empty {
		k = kind.Root
	}
	if v, ok := tb.override[k]; ok {
		return resolution[V]{val: v, source: SourceOverride}
	}
	if idx := tb.trie[k]; idx != nil && t != tag.Empty {
		if v, ok, pat := idx.MatchWithPattern(string(t)); ok {
			return resolution[V]{val: v, source: SourcePrefix, pattern: pat}
		}
	}
	if v, ok := tb.def[k]; ok {
		return resolution[V]{val: v, source: SourceDefault}
	}
	for _, a := range kind.Ancestors(k) {
		if v, ok := tb.override[a]; ok {
			return resolution[V]{val: v, source: SourceAncestor, from: a}
		}
		if v, ok := tb.def[a]; ok {
			return resolution[V]{val: v, source: SourceAncestor, from: a}
		}
	}
	return resolution[V]{val: tb.fallback, source: SourceFallback}
}

func (m *mapper) http() table[int] {
	return table[int]{m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP}
}

func (m *mapper) grpc() table[codes.Code] {
	return table[codes.Code]{m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC}
}

// HTTPStatus resolves an HTTP status for the given kind and tag.
func (m *mapper) HTTPStatus(k kind.Kind, t tag.Tag) int {
	return m.http().resolve(k, t).val
}

// GRPCStatus resolves a gRPC status for the given kind and tag.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(k kind.Kind, t tag.Tag) codes.Code {
	return m.grpc().resolve(k, t).val
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(k kind.Kind, t tag.Tag) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, t),
		GRPC: m.GRPCStatus(k, t),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (kind, tag) pair.
//
// Example output:
//
//	kind="unrecognized_eof" tag="parse.unrecognized_eof"
//	http: source=ancestor kind="parse_error" -> 400
//	grpc: source=ancestor kind="parse_error" -> INVALID_ARGUMENT(3)
//
// Notes:
//   - source is one of override, prefix, default, ancestor, fallback;
//   - pattern is the rule as it was stored in the trie (may contain "*").
func (m *mapper) Explain(k kind.Kind, t tag.Tag) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q tag=%q\n", k, t)

	h := m.http().resolve(k, t)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", h.describe(), h.val)

	g := m.grpc().resolve(k, t)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s", g.describe(), grpcName(g.val))

	return b.String()
}

func (r resolution[V]) describe() string {
	switch r.source {
	case SourcePrefix:
		return fmt.Sprintf("source=%s pattern=%q", r.source, r.pattern)
	case SourceAncestor:
		return fmt.Sprintf("source=%s kind=%q", r.source, r.from)
	default:
		return "source=" + r.source
	}
}

// grpcName renders c as "NOT_FOUND(5)".
func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(snakeCode(c)), uint32(c))
}

func (b *builder) validateKinds() error {
	check := func(what string, k kind.Kind) error {
		if err := kind.Validate(k); err != nil {
			return fmt.Errorf("mapper: invalid kind %q in %s: %w", k, what, err)
		}
		return nil
	}
	for k := range b.httpDefaults {
		if err := check("HTTP defaults", k); err != nil {
			return err
		}
	}
	for k := range b.grpcDefaults {
		if err := check("gRPC defaults", k); err != nil {
			return err
		}
	}
	for k := range b.httpOverride {
		if err := check("HTTP overrides", k); err != nil {
			return err
		}
	}
	for k := range b.grpcOverride {
		if err := check("gRPC overrides", k); err != nil {
			return err
		}
	}
	for k := range b.httpPrefixes {
		if err := check("HTTP prefixes", k); err != nil {
			return err
		}
	}
	for k := range b.grpcPrefixes {
		if err := check("gRPC prefixes", k); err != nil {
			return err
		}
	}
	return nil
}

// normalizeAndValidatePrefix ensures a tag prefix is canonical and valid.
// Segments follow the tag grammar, and "*" stands for any one segment.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := tag.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	allWild := true
	for _, seg := range strings.Split(p, ".") {
		if !segmenttrie.ValidSegment(seg, true) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}
