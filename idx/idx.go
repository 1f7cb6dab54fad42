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

// Package idx implements reading and searching the StarDict .idx primary
// word index.
package idx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tomgrean/go-stardict/dictcmp"
)

// NotFoundError indicates that a word was not found in the index. Hint is
// the insertion point at which the word would sort under case-insensitive
// order: a valid neighborhood hint for browsing.
type NotFoundError struct {
	Hint int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("word not found, hint=%d", e.Hint)
}

// Idx is an in-memory representation of a .idx file: the raw file bytes
// plus a parsed index of word-boundary positions.
type Idx struct {
	content []byte
	// index[i] is the position of the NUL terminator of the i-th word.
	index []uint32
	// offLenBytes is the per-entry trailer width: idxoffsetbits/8 + 4.
	offLenBytes int
	offsetBits  int
}

// Open parses a .idx file from r. wordCount is the word count declared by
// the dictionary's .ifo file; offsetBits is the .ifo idxoffsetbits value
// (32 or 64).
func Open(r io.Reader, wordCount int, offsetBits int) (*Idx, error) {
	if offsetBits != 32 && offsetBits != 64 {
		return nil, fmt.Errorf("invalid idxoffsetbits: %d", offsetBits)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading idx: %w", err)
	}

	offLenBytes := offsetBits/8 + 4

	var index []uint32
	pos := 0
	for pos < len(content) {
		nul := bytes.IndexByte(content[pos:], 0)
		if nul < 0 {
			break
		}
		wordEnd := pos + nul
		index = append(index, uint32(wordEnd))
		pos = wordEnd + 1 + offLenBytes
	}

	if len(index) != wordCount {
		return nil, fmt.Errorf("idx word count mismatch: got %d, want %d", len(index), wordCount)
	}

	return &Idx{
		content:     content,
		index:       index,
		offLenBytes: offLenBytes,
		offsetBits:  offsetBits,
	}, nil
}

// Len returns the number of words in the index.
func (ix *Idx) Len() int {
	return len(ix.index)
}

// GetWord returns the word bytes at position i. The returned slice is a
// view into the Idx's immutable backing buffer and must not be modified.
func (ix *Idx) GetWord(i int) ([]byte, error) {
	if i < 0 || i >= len(ix.index) {
		return nil, &NotFoundError{Hint: i}
	}
	start := 0
	if i > 0 {
		start = int(ix.index[i-1]) + ix.offLenBytes + 1
	}
	end := int(ix.index[i])
	return ix.content[start:end], nil
}

// GetOffsetLength returns the (offset, length) pair into the .dict payload
// file for the word at position i.
func (ix *Idx) GetOffsetLength(i int) (uint64, uint32, error) {
	if i < 0 || i >= len(ix.index) {
		return 0, 0, &NotFoundError{Hint: i}
	}
	start := int(ix.index[i]) + 1

	var offset uint64
	if ix.offsetBits == 64 {
		offset = binary.BigEndian.Uint64(ix.content[start : start+8])
		start += 8
	} else {
		offset = uint64(binary.BigEndian.Uint32(ix.content[start : start+4]))
		start += 4
	}
	length := binary.BigEndian.Uint32(ix.content[start : start+4])
	return offset, length, nil
}

// Get locates word using a two-pass binary search: first case-sensitive,
// then case-insensitive. If word is not present, it returns a
// *NotFoundError whose Hint is a valid case-insensitive insertion point.
func (ix *Idx) Get(word []byte) (int, error) {
	n := ix.Len()
	if n == 0 {
		return 0, &NotFoundError{Hint: 0}
	}

	first, _ := ix.GetWord(0)
	if dictcmp.Compare(first, word, true) == dictcmp.Greater {
		return 0, &NotFoundError{Hint: 0}
	}
	last, _ := ix.GetWord(n - 1)
	if dictcmp.Compare(last, word, true) == dictcmp.Less {
		return 0, &NotFoundError{Hint: n}
	}

	if i, ok := ix.binarySearch(word, false); ok {
		return i, nil
	}
	i, ok := ix.binarySearch(word, true)
	if ok {
		return i, nil
	}
	return 0, &NotFoundError{Hint: i}
}

// binarySearch implements the always-terminating base/size variant: base
// ends up in [0, size) and is the closest match found.
func (ix *Idx) binarySearch(word []byte, ignoreCase bool) (int, bool) {
	size := ix.Len()
	base := 0
	for size > 1 {
		half := size / 2
		mid := base + half
		w, _ := ix.GetWord(mid)
		cmp := dictcmp.Compare(w, word, ignoreCase)
		if cmp != dictcmp.Greater {
			base = mid
		}
		size -= half
	}
	w, _ := ix.GetWord(base)
	cmp := dictcmp.Compare(w, word, ignoreCase)
	if cmp == dictcmp.Equal {
		return base, true
	}
	if cmp == dictcmp.Less {
		return base + 1, false
	}
	return base, false
}
