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

// Package testutil provides helpers for constructing StarDict file-format
// fixtures in tests.
package testutil

import (
	"encoding/binary"
	"fmt"
	"math"
)

// IdxWord is a single fixture entry for MakeIdx.
type IdxWord struct {
	Word   string
	Offset uint64
	Size   uint32
}

// MakeIdx serializes a list of words into .idx file bytes.
func MakeIdx(words []IdxWord, idxoffsetbits int) []byte {
	b := []byte{}
	for _, w := range words {
		b = append(b, []byte(w.Word)...)
		b = append(b, 0) // Add the zero byte terminator.

		switch idxoffsetbits {
		case 32:
			if w.Offset > math.MaxUint32 {
				panic(fmt.Sprintf("word offset too large %d > %d bits", w.Offset, idxoffsetbits))
			}
			buf := make([]byte, 8)
			//nolint:gosec // test code, offset size determined by idxoffsetbits
			binary.BigEndian.PutUint32(buf[:4], uint32(w.Offset))
			binary.BigEndian.PutUint32(buf[4:8], w.Size)
			b = append(b, buf...)
		case 64:
			buf := make([]byte, 12)
			binary.BigEndian.PutUint64(buf[:8], w.Offset)
			binary.BigEndian.PutUint32(buf[8:12], w.Size)
			b = append(b, buf...)
		default:
			panic(fmt.Sprintf("unsupported idxoffsetbits: %d", idxoffsetbits))
		}
	}
	return b
}
