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
	"errors"

	"dirpx.dev/polarerr/kind"
)

// KindOf returns the kind of the first *Error in err's chain, or kind.Empty
// when there is none.
func KindOf(err error) kind.Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return kind.Empty
}

// IsKind reports whether the first *Error in err's chain has kind k or a
// kind beneath k. Causes wrapped by that *Error are not consulted, matching
// errors.Is(err, k).
func IsKind(err error, k kind.Kind) bool {
	return kind.IsA(KindOf(err), k)
}

// MatchAny returns the first category in ks that KindOf(err) belongs to.
// Callers order ks from most to least specific.
func MatchAny(err error, ks ...kind.Kind) (kind.Kind, bool) {
	got := KindOf(err)
	for _, k := range ks {
		if kind.IsA(got, k) {
			return k, true
		}
	}
	return kind.Empty, false
}
