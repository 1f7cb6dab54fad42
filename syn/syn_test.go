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

package syn_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tomgrean/go-stardict/internal/testutil"
	"github.com/tomgrean/go-stardict/syn"
)

func TestOpen_wordCountMismatch(t *testing.T) {
	t.Parallel()

	b := testutil.MakeSyn([]testutil.SynWord{{Word: "apple", OriginalWordIndex: 0}})
	if _, err := syn.Open(bytes.NewReader(b), 2); err == nil {
		t.Fatal("Open() = nil, want error")
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	words := []testutil.SynWord{
		{Word: "apple", OriginalWordIndex: 3},
		{Word: "banana", OriginalWordIndex: 1},
		{Word: "cherry", OriginalWordIndex: 0},
	}
	b := testutil.MakeSyn(words)
	sy, err := syn.Open(bytes.NewReader(b), len(words))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got := sy.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	for i, w := range words {
		gotI, err := sy.Get([]byte(w.Word))
		if err != nil {
			t.Fatalf("Get(%q) error = %v", w.Word, err)
		}
		if gotI != i {
			t.Errorf("Get(%q) = %d, want %d", w.Word, gotI, i)
		}

		gotOrig, err := sy.GetOriginalWordIndex(i)
		if err != nil {
			t.Fatalf("GetOriginalWordIndex(%d) error = %v", i, err)
		}
		if gotOrig != w.OriginalWordIndex {
			t.Errorf("GetOriginalWordIndex(%d) = %d, want %d", i, gotOrig, w.OriginalWordIndex)
		}
	}
}

func TestGet_caseInsensitive(t *testing.T) {
	t.Parallel()

	words := []testutil.SynWord{{Word: "Apple", OriginalWordIndex: 0}}
	b := testutil.MakeSyn(words)
	sy, err := syn.Open(bytes.NewReader(b), len(words))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if _, err := sy.Get([]byte("apple")); err != nil {
		t.Errorf("Get(%q) error = %v", "apple", err)
	}
}

func TestGet_notFoundHint(t *testing.T) {
	t.Parallel()

	words := []testutil.SynWord{
		{Word: "apple", OriginalWordIndex: 0},
		{Word: "cherry", OriginalWordIndex: 1},
	}
	b := testutil.MakeSyn(words)
	sy, err := syn.Open(bytes.NewReader(b), len(words))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	_, err = sy.Get([]byte("banana"))
	var nf *syn.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Get() error = %v, want *NotFoundError", err)
	}
	if nf.Hint != 1 {
		t.Errorf("Get() hint = %d, want 1", nf.Hint)
	}
}

func TestGet_emptyIndex(t *testing.T) {
	t.Parallel()

	sy, err := syn.Open(bytes.NewReader(nil), 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := sy.Get([]byte("x")); err == nil {
		t.Error("Get() = nil, want error")
	}
}
