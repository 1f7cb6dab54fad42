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

// Package dict implements random-access reading of .dict payload files.
//
// A .dict file is an opaque blob: this package exposes only positional
// byte-range reads. Splitting a word's payload into typed segments is the
// concern of the root stardict package (Entry.Segments), which knows about
// sametypesequence and the NUL-delimited segment grammar.
package dict

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

var errOffsetTooLarge = errors.New("dict: offset too large")

// ReaderAtCloser is an interface that wraps the io.ReaderAt and io.Closer
// interfaces.
type ReaderAtCloser interface {
	io.ReaderAt
	io.Closer
}

// Dict is a random-access reader over a StarDict .dict payload file.
type Dict struct {
	r ReaderAtCloser
}

// New returns a new Dict from the given reader. Dict takes ownership of
// the reader; it is closed via the Dict's Close method.
func New(r ReaderAtCloser) *Dict {
	return &Dict{r: r}
}

// Open opens the .dict file given the path to its .ifo file.
func Open(ifoPath string) (*Dict, error) {
	baseName := strings.TrimSuffix(ifoPath, filepath.Ext(ifoPath))

	dictExts := []string{".dict", ".DICT"}
	var f *os.File
	var err error
	for _, ext := range dictExts {
		f, err = os.Open(baseName + ext)
		if err == nil {
			break
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("opening .dict file: %w", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("opening .dict file: %w", err)
	}

	return New(f), nil
}

// Read returns the length bytes at offset in the payload file.
func (d *Dict) Read(offset uint64, length uint32) ([]byte, error) {
	if offset > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", errOffsetTooLarge, offset)
	}

	b := make([]byte, length)
	//nolint:gosec // offset is bounds checked above.
	_, err := d.r.ReadAt(b, int64(offset))
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return b, nil
}

// Close closes the underlying reader for the .dict file.
func (d *Dict) Close() error {
	//nolint:wrapcheck // error wrapping is unnecessary.
	return d.r.Close()
}
