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

package kind

import "fmt"

// Origin groups kinds by where the failure is detected.
type Origin string

const (
	// OriginRoot is the origin of the root kind only.
	OriginRoot Origin = "root"
	// OriginBoundary marks failures reported by the engine across the
	// foreign-function boundary.
	OriginBoundary Origin = "boundary"
	// OriginLocal marks failures detected by the binding's own validation.
	OriginLocal Origin = "local"
	// OriginParse marks parse-time failures.
	OriginParse Origin = "parse"
	// OriginOperational marks engine machinery failures.
	OriginOperational Origin = "operational"
	// OriginAPI marks library misuse.
	OriginAPI Origin = "api"
)

// entry is one node of the taxonomy tree.
type entry struct {
	kind   Kind
	parent Kind
	origin Origin
}

// catalog declares the tree, parents before children. Its order is the order
// returned by All.
var catalog = []entry{
	{Root, Empty, OriginRoot},
	{FFIErrorNotFound, Root, OriginBoundary},

	{Operational, Root, OriginOperational},
	{Unknown, Operational, OriginOperational},

	{ParseError, Root, OriginParse},
	{ExtraToken, ParseError, OriginParse},
	{IntegerOverflow, ParseError, OriginParse},
	{InvalidTokenCharacter, ParseError, OriginParse},
	{InvalidToken, ParseError, OriginParse},
	{UnrecognizedEOF, ParseError, OriginParse},
	{UnrecognizedToken, ParseError, OriginParse},

	{API, Root, OriginAPI},
	{Parameter, API, OriginAPI},

	{Runtime, Root, OriginLocal},
	{Serialization, Runtime, OriginBoundary},
	{Unsupported, Runtime, OriginBoundary},
	{PolarType, Runtime, OriginBoundary},
	{StackOverflow, Runtime, OriginBoundary},
	{UnregisteredClass, Runtime, OriginLocal},
	{MissingConstructor, Runtime, OriginLocal},
	{UnregisteredInstance, Runtime, OriginLocal},
	{DuplicateInstanceRegistration, Runtime, OriginLocal},
	{InvalidCall, Runtime, OriginLocal},
	{InlineQueryFailed, Runtime, OriginLocal},
	{NullByteInPolarFile, Runtime, OriginLocal},
	{UnexpectedPolarType, Runtime, OriginLocal},
	{PolarFileExtension, Runtime, OriginLocal},
	{PolarFileNotFound, Runtime, OriginLocal},
}

var (
	parents  = make(map[Kind]Kind, len(catalog))
	origins  = make(map[Kind]Origin, len(catalog))
	children = make(map[Kind][]Kind, len(catalog))
)

func init() {
	for _, e := range catalog {
		if _, dup := parents[e.kind]; dup {
			panic(fmt.Sprintf("kind: duplicate catalog entry %q", e.kind))
		}
		if e.parent != Empty {
			if _, ok := parents[e.parent]; !ok {
				panic(fmt.Sprintf("kind: %q declared before its parent %q", e.kind, e.parent))
			}
			children[e.parent] = append(children[e.parent], e.kind)
		}
		parents[e.kind] = e.parent
		origins[e.kind] = e.origin
	}
}

// Known reports whether k is declared in the catalog.
func Known(k Kind) bool {
	_, ok := parents[k]
	return ok
}

// All returns every declared kind, parents before children.
func All() []Kind {
	out := make([]Kind, len(catalog))
	for i, e := range catalog {
		out[i] = e.kind
	}
	return out
}

// Parent returns the direct parent of k.
//
// Root has no parent and yields Empty. A kind that is not in the catalog is
// attached to Root, so that matching at the root still catches it.
func Parent(k Kind) Kind {
	if p, ok := parents[k]; ok {
		return p
	}
	if k == Empty {
		return Empty
	}
	return Root
}

// Ancestors returns the chain of ancestors of k, nearest first, ending at
// Root. Root itself has no ancestors.
func Ancestors(k Kind) []Kind {
	var out []Kind
	for p := Parent(k); p != Empty; p = Parent(p) {
		out = append(out, p)
	}
	return out
}

// IsA reports whether k is ancestor or lies beneath it.
func IsA(k, ancestor Kind) bool {
	if k == Empty || ancestor == Empty {
		return false
	}
	for cur := k; cur != Empty; cur = Parent(cur) {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Children returns the direct children of k in declaration order.
func Children(k Kind) []Kind {
	return append([]Kind(nil), children[k]...)
}

// Descendants returns every kind beneath k, depth-first in declaration order.
func Descendants(k Kind) []Kind {
	var out []Kind
	var walk func(Kind)
	walk = func(n Kind) {
		for _, c := range children[n] {
			out = append(out, c)
			walk(c)
		}
	}
	walk(k)
	return out
}

// IsLeaf reports whether k is known and has no children.
func IsLeaf(k Kind) bool {
	return Known(k) && len(children[k]) == 0
}

// Leaves returns every declared kind without children.
func Leaves() []Kind {
	var out []Kind
	for _, e := range catalog {
		if len(children[e.kind]) == 0 {
			out = append(out, e.kind)
		}
	}
	return out
}

// OriginOf returns where failures of kind k are detected. Unknown kinds are
// reported as OriginBoundary: they can only come from an engine tag this
// binding does not declare.
func OriginOf(k Kind) Origin {
	if o, ok := origins[k]; ok {
		return o
	}
	return OriginBoundary
}

// FixedMessage returns the message that kind k always carries, if any.
func FixedMessage(k Kind) (string, bool) {
	if k == PolarFileExtension {
		return PolarFileExtensionMessage, true
	}
	return "", false
}
