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

package stardict

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/tomgrean/go-stardict/dictionary"
	"github.com/tomgrean/go-stardict/mergeiter"
)

// NotFoundError indicates that a lookup matched no dictionary.
type NotFoundError struct {
	Word []byte
}

func (e *NotFoundError) Error() string {
	return "word not found: " + string(e.Word)
}

// StarDict is an ordered, immutable collection of Dictionaries, fanning
// lookup/neighbor/search queries out across all of them.
type StarDict struct {
	dicts []*dictionary.Dictionary
}

// Open scans root for dictionary sub-directories, sorted by name for
// deterministic iteration order, and opens each as a dictionary.Dictionary.
// Sub-directories that fail to open are logged and skipped; Open only
// fails outright if root itself cannot be scanned.
func Open(root string) (*StarDict, []error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, []error{err}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var dicts []*dictionary.Dictionary
	var errs []error
	for _, name := range names {
		d, err := dictionary.Open(filepath.Join(root, name), root)
		if err != nil {
			log.Printf("stardict: skipping %q: %v", name, err)
			errs = append(errs, err)
			continue
		}
		dicts = append(dicts, d)
	}

	return &StarDict{dicts: dicts}, errs
}

// Dictionaries returns the loaded dictionaries in sorted sub-directory
// order.
func (s *StarDict) Dictionaries() []*dictionary.Dictionary {
	return s.dicts
}

// Close closes every loaded Dictionary.
func (s *StarDict) Close() error {
	var firstErr error
	for _, d := range s.dicts {
		if err := d.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Lookup concatenates per-Dictionary lookup results, in sorted
// sub-directory order, dropping per-Dictionary NotFound errors. It returns
// a NotFoundError only when every Dictionary misses.
func (s *StarDict) Lookup(word []byte) ([]Entry, error) {
	var entries []Entry
	for _, d := range s.dicts {
		results, err := d.Lookup(word)
		if err != nil {
			var nf *dictionary.NotFoundError
			if errors.As(err, &nf) {
				continue
			}
			return nil, err
		}
		for _, r := range results {
			entries = append(entries, Entry{
				DictPath:         d.Ifo.DictPath,
				SameTypeSequence: d.Ifo.SameTypeSequence,
				Word:             r.Word,
				Payload:          r.Payload,
			})
		}
	}

	if len(entries) == 0 {
		return nil, &NotFoundError{Word: word}
	}
	return entries, nil
}

// Neighbors returns a merged, deduplicated iterator over every
// Dictionary's idx and syn neighbor streams around word.
func (s *StarDict) Neighbors(word []byte, off int) *mergeiter.Merge {
	streams := make([]mergeiter.Iterator, 0, len(s.dicts)*2)
	for _, d := range s.dicts {
		streams = append(streams, d.Neighbors(word, off), d.NeighborsSyn(word, off))
	}
	return mergeiter.New(streams)
}

// Search returns a merged, deduplicated iterator over every Dictionary's
// idx and syn words matching re.
func (s *StarDict) Search(re *regexp.Regexp) *mergeiter.Merge {
	streams := make([]mergeiter.Iterator, 0, len(s.dicts)*2)
	for _, d := range s.dicts {
		streams = append(streams, d.SearchRegex(re), d.SearchSyn(re))
	}
	return mergeiter.New(streams)
}
