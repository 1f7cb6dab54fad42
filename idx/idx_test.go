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

package idx_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tomgrean/go-stardict/idx"
	"github.com/tomgrean/go-stardict/internal/testutil"
)

func TestOpen_wordCountMismatch(t *testing.T) {
	t.Parallel()

	b := testutil.MakeIdx([]testutil.IdxWord{
		{Word: "apple", Offset: 0, Size: 10},
	}, 32)

	_, err := idx.Open(bytes.NewReader(b), 2, 32)
	if err == nil {
		t.Fatal("Open() = nil, want error")
	}
}

func TestOpen_invalidOffsetBits(t *testing.T) {
	t.Parallel()

	_, err := idx.Open(bytes.NewReader(nil), 0, 16)
	if err == nil {
		t.Fatal("Open() = nil, want error")
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	words := []testutil.IdxWord{
		{Word: "apple", Offset: 0, Size: 10},
		{Word: "banana", Offset: 10, Size: 12},
		{Word: "cherry", Offset: 22, Size: 8},
	}

	for _, bits := range []int{32, 64} {
		bits := bits
		t.Run(bitsName(bits), func(t *testing.T) {
			t.Parallel()

			b := testutil.MakeIdx(words, bits)
			ix, err := idx.Open(bytes.NewReader(b), len(words), bits)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}

			if got := ix.Len(); got != 3 {
				t.Fatalf("Len() = %d, want 3", got)
			}

			for i, w := range words {
				gotI, err := ix.Get([]byte(w.Word))
				if err != nil {
					t.Fatalf("Get(%q) error = %v", w.Word, err)
				}
				if gotI != i {
					t.Errorf("Get(%q) = %d, want %d", w.Word, gotI, i)
				}

				gotWord, err := ix.GetWord(i)
				if err != nil {
					t.Fatalf("GetWord(%d) error = %v", i, err)
				}
				if string(gotWord) != w.Word {
					t.Errorf("GetWord(%d) = %q, want %q", i, gotWord, w.Word)
				}

				gotOffset, gotLength, err := ix.GetOffsetLength(i)
				if err != nil {
					t.Fatalf("GetOffsetLength(%d) error = %v", i, err)
				}
				if gotOffset != w.Offset || gotLength != w.Size {
					t.Errorf("GetOffsetLength(%d) = (%d, %d), want (%d, %d)", i, gotOffset, gotLength, w.Offset, w.Size)
				}
			}
		})
	}
}

func TestGet_caseInsensitiveFallback(t *testing.T) {
	t.Parallel()

	words := []testutil.IdxWord{
		{Word: "Apple", Offset: 0, Size: 1},
		{Word: "banana", Offset: 1, Size: 1},
	}
	b := testutil.MakeIdx(words, 32)
	ix, err := idx.Open(bytes.NewReader(b), len(words), 32)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	got, err := ix.Get([]byte("apple"))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Get() = %d, want 0", got)
	}
}

func TestGet_notFoundHint(t *testing.T) {
	t.Parallel()

	words := []testutil.IdxWord{
		{Word: "apple", Offset: 0, Size: 1},
		{Word: "cherry", Offset: 1, Size: 1},
		{Word: "date", Offset: 2, Size: 1},
	}
	b := testutil.MakeIdx(words, 32)
	ix, err := idx.Open(bytes.NewReader(b), len(words), 32)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	tests := []struct {
		word     string
		wantHint int
	}{
		{"aardvark", 0},
		{"banana", 1},
		{"egg", 3},
	}
	for _, tt := range tests {
		_, err := ix.Get([]byte(tt.word))
		var nf *idx.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("Get(%q) error = %v, want *NotFoundError", tt.word, err)
		}
		if nf.Hint != tt.wantHint {
			t.Errorf("Get(%q) hint = %d, want %d", tt.word, nf.Hint, tt.wantHint)
		}
	}
}

func TestGet_emptyIndex(t *testing.T) {
	t.Parallel()

	ix, err := idx.Open(bytes.NewReader(nil), 0, 32)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	_, err = ix.Get([]byte("anything"))
	var nf *idx.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Get() error = %v, want *NotFoundError", err)
	}
	if nf.Hint != 0 {
		t.Errorf("Get() hint = %d, want 0", nf.Hint)
	}
}

func TestGetWord_outOfBounds(t *testing.T) {
	t.Parallel()

	words := []testutil.IdxWord{{Word: "apple", Offset: 0, Size: 1}}
	b := testutil.MakeIdx(words, 32)
	ix, err := idx.Open(bytes.NewReader(b), len(words), 32)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if _, err := ix.GetWord(-1); err == nil {
		t.Error("GetWord(-1) = nil, want error")
	}
	if _, err := ix.GetWord(1); err == nil {
		t.Error("GetWord(1) = nil, want error")
	}
}

func bitsName(bits int) string {
	if bits == 32 {
		return "32bit"
	}
	return "64bit"
}
