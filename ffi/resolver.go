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

package ffi

import (
	"fmt"

	"dirpx.dev/polarerr"
	"dirpx.dev/polarerr/internal/segmenttrie"
	"dirpx.dev/polarerr/kind"
	"dirpx.dev/polarerr/tag"
)

// TagDetail is the Details key under which an unresolved tag is recorded.
const TagDetail = "tag"

// Failure is a failure as the engine reports it across the boundary.
type Failure struct {
	// Tag is the engine's identifier of the failure, in engine spelling
	// ("Runtime::TypeError") or canonical form ("runtime.type_error").
	Tag string
	// Message is the engine's formatted, human-readable message.
	Message string
	// Details is the variant's payload (token, location, stack, ...).
	Details map[string]any
}

type rule struct {
	tag  string
	kind kind.Kind
}

// Option configures a Resolver at build time.
type Option func(*builder)

type builder struct {
	rules          []rule
	familyFallback bool
}

// WithRule maps tag t to kind k, replacing any rule for the same tag.
func WithRule(t string, k kind.Kind) Option {
	return func(b *builder) { b.rules = append(b.rules, rule{t, k}) }
}

// WithFamilyFallback makes unresolved tags fall back to their longest
// matching prefix rule instead of kind.FFIErrorNotFound.
func WithFamilyFallback(on bool) Option {
	return func(b *builder) { b.familyFallback = on }
}

// WithoutDefaults drops the built-in rules. Rules added by later options
// are kept.
func WithoutDefaults() Option {
	return func(b *builder) { b.rules = b.rules[:0] }
}

// Resolver is an immutable tag -> kind table, safe for concurrent use.
type Resolver struct {
	rules          *segmenttrie.Trie[kind.Kind]
	familyFallback bool
}

// NewResolver builds a Resolver seeded with the default engine rules and
// adjusted by opts. It fails on a malformed tag or kind.
func NewResolver(opts ...Option) (*Resolver, error) {
	b := &builder{rules: append([]rule(nil), defaultRules...)}
	for _, opt := range opts {
		opt(b)
	}

	t := segmenttrie.New[kind.Kind]()
	for _, r := range b.rules {
		tg, err := tag.Parse(r.tag)
		if err != nil {
			return nil, fmt.Errorf("ffi: invalid tag %q: %w", r.tag, err)
		}
		if tg == tag.Empty {
			return nil, fmt.Errorf("ffi: empty tag for kind %q", r.kind)
		}
		if err := kind.Validate(r.kind); err != nil {
			return nil, fmt.Errorf("ffi: invalid kind %q for tag %q: %w", r.kind, tg, err)
		}
		if err := t.Insert(string(tg), r.kind); err != nil {
			return nil, fmt.Errorf("ffi: cannot insert tag %q: %w", tg, err)
		}
	}
	return &Resolver{rules: t, familyFallback: b.familyFallback}, nil
}

// MustNewResolver is the panic-on-error variant of NewResolver.
func MustNewResolver(opts ...Option) *Resolver {
	r, err := NewResolver(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultResolver = MustNewResolver()

// Default returns the resolver built from the default rules only.
func Default() *Resolver { return defaultResolver }

// Resolve returns the kind mapped to t.
func (r *Resolver) Resolve(t tag.Tag) (kind.Kind, bool) {
	if t == tag.Empty {
		return kind.Empty, false
	}
	if r.familyFallback {
		return r.rules.Match(string(t))
	}
	return r.rules.Lookup(string(t))
}

// Error converts a reported failure into an *Error. It never returns nil:
// a tag that is malformed or has no rule yields kind.FFIErrorNotFound.
func (r *Resolver) Error(f Failure) *polarerr.Error {
	t, err := tag.Parse(f.Tag)
	if err != nil {
		return notFound(f, fmt.Sprintf("malformed boundary tag %q", f.Tag), err)
	}
	k, ok := r.Resolve(t)
	if !ok {
		return notFound(f, fmt.Sprintf("no error kind for boundary tag %q", f.Tag), nil).WithTag(t)
	}
	return polarerr.E(k, f.Message,
		polarerr.WithTagOption(t),
		polarerr.WithDetailsOption(f.Details),
	)
}

// FromTag converts a runtime failure identified by its bare variant name
// ("Serialization", "Unsupported", "TypeError", "StackOverflow"). A name
// without a family is qualified with the runtime family; a dotted tag is
// used as given, as is the bare family "runtime" itself.
func (r *Resolver) FromTag(name, msg string, details map[string]any) *polarerr.Error {
	t, err := tag.Parse(name)
	if err == nil && t != tag.Empty && t.Variant() == "" && string(t) != FamilyRuntime {
		name = FamilyRuntime + "." + string(t)
	}
	return r.Error(Failure{Tag: name, Message: msg, Details: details})
}

// FromTag converts a runtime failure using the default rules.
func FromTag(name, msg string, details map[string]any) *polarerr.Error {
	return defaultResolver.FromTag(name, msg, details)
}

func notFound(f Failure, fallback string, cause error) *polarerr.Error {
	msg := f.Message
	if msg == "" {
		msg = fallback
	}
	return polarerr.E(kind.FFIErrorNotFound, msg,
		polarerr.WithDetailsOption(f.Details),
		polarerr.WithDetailOption(TagDetail, f.Tag),
		polarerr.WithCauseOption(cause),
	)
}
