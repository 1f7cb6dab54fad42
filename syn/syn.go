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

// Package syn implements reading and searching the StarDict .syn synonym
// index.
package syn

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tomgrean/go-stardict/dictcmp"
)

// trailerBytes is the fixed .syn entry trailer width: a 32-bit
// original_word_index, regardless of the dictionary's idxoffsetbits.
const trailerBytes = 4

// NotFoundError indicates that a synonym was not found in the index. Hint
// is the insertion point at which the synonym would sort under
// case-insensitive order.
type NotFoundError struct {
	Hint int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("synonym not found, hint=%d", e.Hint)
}

// Syn is an in-memory representation of a .syn file.
type Syn struct {
	content []byte
	// index[i] is the position of the NUL terminator of the i-th synonym.
	index []uint32
}

// Open parses a .syn file from r. wordCount is the synwordcount declared
// by the dictionary's .ifo file.
func Open(r io.Reader, wordCount int) (*Syn, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading syn: %w", err)
	}

	var index []uint32
	pos := 0
	for pos < len(content) {
		nul := bytes.IndexByte(content[pos:], 0)
		if nul < 0 {
			break
		}
		wordEnd := pos + nul
		index = append(index, uint32(wordEnd))
		pos = wordEnd + 1 + trailerBytes
	}

	if len(index) != wordCount {
		return nil, fmt.Errorf("syn word count mismatch: got %d, want %d", len(index), wordCount)
	}

	return &Syn{content: content, index: index}, nil
}

// Len returns the number of synonyms in the index.
func (sy *Syn) Len() int {
	return len(sy.index)
}

// GetWord returns the synonym bytes at position i. The returned slice is a
// view into the Syn's immutable backing buffer and must not be modified.
func (sy *Syn) GetWord(i int) ([]byte, error) {
	if i < 0 || i >= len(sy.index) {
		return nil, &NotFoundError{Hint: i}
	}
	start := 0
	if i > 0 {
		start = int(sy.index[i-1]) + trailerBytes + 1
	}
	end := int(sy.index[i])
	return sy.content[start:end], nil
}

// GetOriginalWordIndex returns the position in the dictionary's .idx index
// that the synonym at position i refers to.
func (sy *Syn) GetOriginalWordIndex(i int) (uint32, error) {
	if i < 0 || i >= len(sy.index) {
		return 0, &NotFoundError{Hint: i}
	}
	start := int(sy.index[i]) + 1
	return binary.BigEndian.Uint32(sy.content[start : start+trailerBytes]), nil
}

// Get locates synonym using case-insensitive binary search. If synonym is
// not present, it returns a *NotFoundError whose Hint is a valid insertion
// point.
func (sy *Syn) Get(synonym []byte) (int, error) {
	n := sy.Len()
	if n == 0 {
		return 0, &NotFoundError{Hint: 0}
	}

	first, _ := sy.GetWord(0)
	if dictcmp.Compare(first, synonym, true) == dictcmp.Greater {
		return 0, &NotFoundError{Hint: 0}
	}
	last, _ := sy.GetWord(n - 1)
	if dictcmp.Compare(last, synonym, true) == dictcmp.Less {
		return 0, &NotFoundError{Hint: n}
	}

	i, ok := sy.binarySearch(synonym)
	if ok {
		return i, nil
	}
	return 0, &NotFoundError{Hint: i}
}

// binarySearch implements the always-terminating base/size variant over
// case-insensitive comparison; .syn entries carry no case-sensitive tier.
func (sy *Syn) binarySearch(synonym []byte) (int, bool) {
	size := sy.Len()
	base := 0
	for size > 1 {
		half := size / 2
		mid := base + half
		w, _ := sy.GetWord(mid)
		cmp := dictcmp.Compare(w, synonym, true)
		if cmp != dictcmp.Greater {
			base = mid
		}
		size -= half
	}
	w, _ := sy.GetWord(base)
	cmp := dictcmp.Compare(w, synonym, true)
	if cmp == dictcmp.Equal {
		return base, true
	}
	if cmp == dictcmp.Less {
		return base + 1, false
	}
	return base, false
}
