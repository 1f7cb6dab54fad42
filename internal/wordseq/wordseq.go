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

// Package wordseq generalizes over Idx and Syn so that neighbor and search
// iterators need not be duplicated per backing type.
//
// This resolves the "two-level enum for iterator source" design note: rather
// than a tagged union distinguishing an Idx-backed iterator from a
// Syn-backed one, both expose the same minimal capability and the iterator
// is written once, generically, against it.
package wordseq

// Seq is a word-indexed sequence: something with a length and positional
// word access. Idx and Syn both implement Seq.
type Seq interface {
	Len() int
	GetWord(i int) ([]byte, error)
}

// Iterator walks a Seq from a starting position in ascending order.
type Iterator struct {
	seq Seq
	pos int
}

// NewIterator returns an Iterator over seq starting at position start. If
// start is negative it is clamped to 0.
func NewIterator(seq Seq, start int) *Iterator {
	if start < 0 {
		start = 0
	}
	return &Iterator{seq: seq, pos: start}
}

// Next returns the next word in the sequence, or ok=false once the sequence
// is exhausted.
func (it *Iterator) Next() ([]byte, bool) {
	if it.seq == nil || it.pos >= it.seq.Len() {
		return nil, false
	}
	w, err := it.seq.GetWord(it.pos)
	if err != nil {
		return nil, false
	}
	it.pos++
	return w, true
}

// MatchFunc reports whether word matches a search predicate.
type MatchFunc func(word []byte) bool

// SearchIterator linearly scans a Seq from position 0, yielding only words
// for which match returns true.
type SearchIterator struct {
	seq   Seq
	match MatchFunc
	pos   int
}

// NewSearchIterator returns a SearchIterator over seq using match as the
// predicate.
func NewSearchIterator(seq Seq, match MatchFunc) *SearchIterator {
	return &SearchIterator{seq: seq, match: match}
}

// Next returns the next matching word, or ok=false once the sequence is
// exhausted.
func (it *SearchIterator) Next() ([]byte, bool) {
	if it.seq == nil {
		return nil, false
	}
	for it.pos < it.seq.Len() {
		w, err := it.seq.GetWord(it.pos)
		it.pos++
		if err != nil {
			continue
		}
		if it.match(w) {
			return w, true
		}
	}
	return nil, false
}
