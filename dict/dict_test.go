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

package dict_test

import (
	"bytes"
	"testing"

	"github.com/tomgrean/go-stardict/dict"
	"github.com/tomgrean/go-stardict/internal/testutil"
)

type closerReader struct {
	*bytes.Reader
	closed bool
}

func (c *closerReader) Close() error {
	c.closed = true
	return nil
}

func TestRead(t *testing.T) {
	t.Parallel()

	content, offsets, lengths := testutil.MakeDict([][]byte{
		[]byte("apple"),
		[]byte("banana"),
		[]byte("cherry"),
	})

	r := &closerReader{Reader: bytes.NewReader(content)}
	d := dict.New(r)

	want := []string{"apple", "banana", "cherry"}
	for i, w := range want {
		got, err := d.Read(offsets[i], lengths[i])
		if err != nil {
			t.Fatalf("Read(%d, %d) error = %v", offsets[i], lengths[i], err)
		}
		if string(got) != w {
			t.Errorf("Read(%d, %d) = %q, want %q", offsets[i], lengths[i], got, w)
		}
	}

	if err := d.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !r.closed {
		t.Error("Close() did not close underlying reader")
	}
}
