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

// Package segmenttrie is a segment-aware prefix index for dot-separated
// keys such as boundary tags ("runtime.type_error").
//
// Each node represents one segment; the wildcard "*" matches exactly one
// segment. Lookups either require the whole key (Lookup) or return the
// deepest stored prefix (Match), so a more specific rule wins over a shorter
// one. A trie is not safe for concurrent Insert; once built it may be read
// from any number of goroutines.
package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index with values of type T.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the dotted prefix as inserted, set only when hasVal=true.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments, contains invalid characters, or consists only of
// wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix. Inserting the same
// prefix twice replaces the value.
//
//	"runtime"
//	"parse.unrecognized_eof"
//	"runtime.*.detail"
//
// A prefix made only of "*" segments is rejected.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := split(prefix, true)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}
	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Lookup returns the value stored for exactly key. Wildcard nodes are not
// consulted: only a rule inserted with the same segments matches.
func (t *Trie[T]) Lookup(key string) (T, bool) {
	var zero T
	if t == nil {
		return zero, false
	}
	segs, ok := split(key, false)
	if !ok || len(segs) == 0 {
		return zero, false
	}
	cur := t
	for _, s := range segs {
		next, ok := cur.children[s]
		if !ok {
			return zero, false
		}
		cur = next
	}
	if !cur.hasVal {
		return zero, false
	}
	return cur.val, true
}

// Match returns the value of the deepest stored prefix of key.
// Both exact segment matches and "*" branches are explored; at equal depth
// the exact branch wins.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the matched rule as it was
// inserted (possibly containing "*"), for diagnostics.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best := -1
	var bestNode *Trie[T]

	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > best {
			best = depth
			bestNode = n
		}
		if off >= len(key) {
			return
		}
		end, ok := scanSegment(key, off)
		if !ok {
			return
		}
		seg := key[off:end]
		next := end
		if next < len(key) {
			next++ // skip '.'
		}
		// exact first, so it claims the depth before the wildcard can.
		if c, ok := n.children[seg]; ok {
			dfs(c, next, depth+1)
		}
		if c, ok := n.children["*"]; ok {
			dfs(c, next, depth+1)
		}
	}
	dfs(t, 0, 0)

	if bestNode == nil {
		return zero, false, ""
	}
	return bestNode.val, true, bestNode.pattern
}

// scanSegment validates the segment starting at off and returns its end.
func scanSegment(key string, off int) (int, bool) {
	c := key[off]
	if c < 'a' || c > 'z' {
		return off, false
	}
	i := off + 1
	for i < len(key) {
		c = key[i]
		if c == '.' {
			break
		}
		if !isSegmentByte(c) {
			return i, false
		}
		i++
	}
	return i, true
}

func split(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return nil, true
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if !ValidSegment(seg, allowWildcard) {
			return nil, false
		}
	}
	return segs, true
}

// ValidSegment reports whether seg is a valid trie segment:
// [a-z][a-z0-9_]*, or "*" when allowWildcard is set.
func ValidSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		if !isSegmentByte(seg[i]) {
			return false
		}
	}
	return true
}

func isSegmentByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
