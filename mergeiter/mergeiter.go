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

// Package mergeiter implements a k-way ordered merge of word streams with
// per-step duplicate suppression.
package mergeiter

import "github.com/tomgrean/go-stardict/dictcmp"

// Iterator is anything that yields ascending word bytes; wordseq.Iterator
// and wordseq.SearchIterator both satisfy it structurally.
type Iterator interface {
	Next() ([]byte, bool)
}

// Merge is a k-way merge over a fixed set of ascending Iterators. Ties
// between iterators are broken by declaration order: earlier iterators
// win, later duplicates are suppressed.
type Merge struct {
	iters []Iterator
	cur   [][]byte
	ok    []bool
}

// New returns a Merge over iters, performing the initial pull from each.
func New(iters []Iterator) *Merge {
	m := &Merge{
		iters: iters,
		cur:   make([][]byte, len(iters)),
		ok:    make([]bool, len(iters)),
	}
	for i, it := range iters {
		m.cur[i], m.ok[i] = it.Next()
	}
	return m
}

// Next returns the next word in dictionary-collated order across all
// streams, or ok=false once every stream is exhausted. Case-sensitive
// duplicates across streams are collapsed to a single emission.
func (m *Merge) Next() ([]byte, bool) {
	x := -1
	for j := range m.iters {
		if !m.ok[j] {
			continue
		}
		if x < 0 {
			x = j
			continue
		}
		switch dictcmp.Compare(m.cur[x], m.cur[j], false) {
		case dictcmp.Greater:
			x = j
		case dictcmp.Equal:
			m.cur[j], m.ok[j] = m.iters[j].Next()
		case dictcmp.Less:
			// keep x
		}
	}
	if x < 0 {
		return nil, false
	}

	word := m.cur[x]
	m.cur[x], m.ok[x] = m.iters[x].Next()
	return word, true
}
