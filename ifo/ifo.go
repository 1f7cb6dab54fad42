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

// Package ifo implements reading .ifo dictionary metadata files.
package ifo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Ifo holds metadata read from a .ifo file.
type Ifo struct {
	Author      string
	Bookname    string
	Description string
	Date        string
	Email       string
	Website     string
	Version     string

	// SameTypeSequence is the raw sametypesequence string; one byte per
	// .dict payload segment describing its data type.
	SameTypeSequence []byte

	// DictPath is the .ifo file's parent directory expressed relative to
	// the StarDict root. It is ";" if the path could not be made
	// relative to root.
	DictPath string

	IdxFileSize   int64
	WordCount     int64
	SynWordCount  int64
	IdxOffsetBits int
}

// Open reads and parses the .ifo file at path. root is the StarDict root
// directory, used to compute DictPath.
func Open(path string, root string) (*Ifo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	ifo, err := New(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil {
		rel = ";"
	}
	ifo.DictPath = rel

	return ifo, nil
}

// New parses .ifo metadata from r. DictPath is left empty; callers that
// need it should use Open or set it themselves.
func New(r io.Reader) (*Ifo, error) {
	it := &Ifo{
		IdxOffsetBits: 32,
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		id := strings.IndexByte(line, '=')
		if id < 0 {
			continue
		}
		key := line[:id]
		val := line[id+1:]

		var err error
		switch key {
		case "author":
			it.Author = val
		case "bookname":
			it.Bookname = val
		case "description":
			it.Description = val
		case "date":
			it.Date = val
		case "email":
			it.Email = val
		case "website":
			it.Website = val
		case "version":
			it.Version = val
		case "sametypesequence":
			it.SameTypeSequence = []byte(val)
		case "idxfilesize":
			it.IdxFileSize, err = strconv.ParseInt(val, 10, 64)
		case "wordcount":
			it.WordCount, err = strconv.ParseInt(val, 10, 64)
		case "synwordcount":
			it.SynWordCount, err = strconv.ParseInt(val, 10, 64)
		case "idxoffsetbits":
			var bits int64
			bits, err = strconv.ParseInt(val, 10, 64)
			it.IdxOffsetBits = int(bits)
		default:
			// Unknown keys are silently ignored.
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", key, err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning ifo: %w", err)
	}

	return it, nil
}
