// Copyright 2026 The go-stardict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dictcmp implements the dictionary collation relation used
// throughout go-stardict to order and merge index words.
//
// The relation is an ASCII-case-folded byte comparison with a secondary
// tie-break on original case, matching the reference StarDict ordering.
// Bytes outside the ASCII range are compared as-is; this package makes no
// attempt at Unicode-aware collation.
package dictcmp

// Ordering is the result of a Compare call.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare compares a and b under dictionary collation. If ignoreCase is
// true, two words that differ only in case compare Equal; otherwise the
// first position at which they differ in case breaks the tie.
func Compare(a, b []byte, ignoreCase bool) Ordering {
	if len(a) == 0 || len(b) == 0 {
		switch {
		case len(a) > 0:
			return Greater
		case len(b) > 0:
			return Less
		default:
			return Equal
		}
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var caseDelta int
	for i := 0; i < n; i++ {
		l1, l2 := lower(a[i]), lower(b[i])
		if l1 > l2 {
			return Greater
		}
		if l1 < l2 {
			return Less
		}
		if caseDelta == 0 {
			caseDelta = int(a[i]) - int(b[i])
		}
	}

	switch {
	case len(a) > len(b):
		return Greater
	case len(a) < len(b):
		return Less
	case ignoreCase:
		return Equal
	case caseDelta > 0:
		return Greater
	case caseDelta < 0:
		return Less
	default:
		return Equal
	}
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
