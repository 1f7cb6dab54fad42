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

package testutil

// MakeDict concatenates a list of opaque payload entries into a single
// .dict file buffer, returning the buffer along with the (offset, length)
// of each entry in declaration order.
func MakeDict(entries [][]byte) (content []byte, offsets []uint64, lengths []uint32) {
	for _, e := range entries {
		offsets = append(offsets, uint64(len(content)))
		lengths = append(lengths, uint32(len(e)))
		content = append(content, e...)
	}
	return content, offsets, lengths
}
