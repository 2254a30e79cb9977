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

package segmenttrie

import (
	"fmt"
	"testing"
)

func TestInsertAndMatch_Simple(t *testing.T) {
	tr := New[string]()
	must(t, tr.Insert("runtime", "polar_runtime_error"))
	must(t, tr.Insert("runtime.type_error", "polar_type_error"))
	must(t, tr.Insert("parse.unrecognized_eof", "unrecognized_eof"))

	if v, ok, p := tr.MatchWithPattern("runtime.type_error"); !ok || v != "polar_type_error" || p != "runtime.type_error" {
		t.Fatalf("match runtime.type_error => ok=%v v=%q p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("runtime.application"); !ok || v != "polar_runtime_error" || p != "runtime" {
		t.Fatalf("match runtime.application => ok=%v v=%q p=%q; want family rule", ok, v, p)
	}
	if _, ok := tr.Match("parse.extra_token"); ok {
		t.Fatalf("parse has no family rule, extra_token must not match")
	}
}

func TestLookup_ExactOnly(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("runtime", 1))
	must(t, tr.Insert("runtime.*.detail", 2))
	must(t, tr.Insert("runtime.stack_overflow", 3))

	if v, ok := tr.Lookup("runtime.stack_overflow"); !ok || v != 3 {
		t.Fatalf("Lookup exact => %v %v", v, ok)
	}
	if _, ok := tr.Lookup("runtime.unsupported"); ok {
		t.Fatalf("Lookup must not fall back to the family")
	}
	if _, ok := tr.Lookup("runtime.x.detail"); ok {
		t.Fatalf("Lookup must not follow wildcards")
	}
	if _, ok := tr.Lookup(""); ok {
		t.Fatalf("Lookup of empty key must fail")
	}
	if _, ok := tr.Lookup("Runtime"); ok {
		t.Fatalf("Lookup of non-canonical key must fail")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("runtime.*.detail", 498))
	must(t, tr.Insert("runtime.type_error.detail", 401))

	if v, ok, p := tr.MatchWithPattern("runtime.type_error.detail"); !ok || v != 401 || p != "runtime.type_error.detail" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("runtime.unsupported.detail.more"); !ok || v != 498 || p != "runtime.*.detail" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	if _, ok, _ := tr.MatchWithPattern("runtime.detail"); ok {
		t.Fatalf("wildcard should not match zero segments")
	}
}

func TestLPM_PrefersDeeperEvenIfExactBranchExists(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("a.*.c", 7))
	must(t, tr.Insert("a.b", 1))

	if v, ok, p := tr.MatchWithPattern("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("LPM must choose wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestInsert_Replaces(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("parse", 1))
	must(t, tr.Insert("parse", 2))
	if v, _ := tr.Lookup("parse"); v != 2 {
		t.Fatalf("second insert must replace, got %d", v)
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "UPPER.case", "a..b", "*", "*.*"} {
		if err := tr.Insert(p, 1); err != ErrInvalidPrefix {
			t.Fatalf("Insert(%q) err = %v, want ErrInvalidPrefix", p, err)
		}
	}
	if _, ok, _ := tr.MatchWithPattern("UPPER.case"); ok {
		t.Fatalf("match should be false for invalid key")
	}
	var nilTrie *Trie[int]
	if err := nilTrie.Insert("a.b", 1); err != ErrInvalidPrefix {
		t.Fatalf("nil trie insert must fail")
	}
	if _, ok := nilTrie.Match("a.b"); ok {
		t.Fatalf("nil trie never matches")
	}
}

func BenchmarkMatch_Deep(b *testing.B) {
	tr := New[int]()
	for i := 0; i < 64; i++ {
		_ = tr.Insert(fmt.Sprintf("family%d.variant%d", i%8, i), i)
	}
	_ = tr.Insert("family3.*.detail", -1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Match("family3.variant11.detail.extra")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
