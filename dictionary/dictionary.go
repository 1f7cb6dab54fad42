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

// Package dictionary binds one {Ifo,Idx,Syn?,Dict} quadruple and exposes
// lookup, neighborhood, and search operations over it.
package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/tomgrean/go-stardict/dict"
	"github.com/tomgrean/go-stardict/dictcmp"
	"github.com/tomgrean/go-stardict/idx"
	"github.com/tomgrean/go-stardict/ifo"
	"github.com/tomgrean/go-stardict/internal/wordseq"
	"github.com/tomgrean/go-stardict/syn"
)

var errNoIfo = errors.New("dictionary: no .ifo file found")

// Result is a single lookup match: the matched word and its raw payload
// bytes as read from the .dict file.
type Result struct {
	Word    []byte
	Payload []byte
}

// NotFoundError indicates that a lookup produced no candidates.
type NotFoundError struct {
	Word []byte
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("word not found: %q", e.Word)
}

// Dictionary owns one Ifo, one Idx, one Dict, and optionally one Syn.
type Dictionary struct {
	Ifo  *ifo.Ifo
	idx  *idx.Idx
	syn  *syn.Syn
	dict *dict.Dict
}

// Open scans dirPath for a file with extension .ifo (or .IFO) and opens the
// quadruple of sibling files that share its base name. root is the
// StarDict root directory, passed through to ifo.Open for dict_path
// computation.
func Open(dirPath, root string) (*Dictionary, error) {
	ifoPath, err := findIfo(dirPath)
	if err != nil {
		return nil, err
	}

	it, err := ifo.Open(ifoPath, root)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %q: %w", dirPath, err)
	}

	baseName := strings.TrimSuffix(ifoPath, filepath.Ext(ifoPath))

	idxFile, err := openSibling(baseName, []string{".idx", ".IDX"})
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %q: %w", dirPath, err)
	}
	defer idxFile.Close()

	ix, err := idx.Open(idxFile, int(it.WordCount), it.IdxOffsetBits)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %q: %w", dirPath, err)
	}

	d, err := dict.Open(ifoPath)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %q: %w", dirPath, err)
	}

	var sy *syn.Syn
	if synFile, serr := openSibling(baseName, []string{".syn", ".SYN"}); serr == nil {
		defer synFile.Close()
		sy, err = syn.Open(synFile, int(it.SynWordCount))
		if err != nil {
			return nil, fmt.Errorf("opening dictionary %q: %w", dirPath, err)
		}
	}

	return &Dictionary{Ifo: it, idx: ix, syn: sy, dict: d}, nil
}

func findIfo(dirPath string) (string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return "", fmt.Errorf("scanning %q: %w", dirPath, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".ifo" || ext == ".IFO" {
			return filepath.Join(dirPath, e.Name()), nil
		}
	}
	return "", fmt.Errorf("%w in %q", errNoIfo, dirPath)
}

func openSibling(baseName string, exts []string) (*os.File, error) {
	var f *os.File
	var err error
	for _, ext := range exts {
		f, err = os.Open(baseName + ext)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("opening %q: %w", baseName+ext, err)
		}
	}
	return nil, fmt.Errorf("opening %q: %w", baseName+exts[0], err)
}

// Close releases the underlying .dict file handle.
func (d *Dictionary) Close() error {
	if d.dict == nil {
		return nil
	}
	//nolint:wrapcheck // error wrapping is unnecessary.
	return d.dict.Close()
}

// Lookup collects candidate Idx positions for word: the direct Idx match
// (if any) plus, when a Syn index is present, every synonym that
// case-insensitively equals word, walked outward from the first match.
// Candidates are visited in ascending Idx order, each position once, and
// each candidate's payload is read via Dict. A NotFoundError is returned
// only when no candidates are found at all.
func (d *Dictionary) Lookup(word []byte) ([]Result, error) {
	var candidates []int

	if i, err := d.idx.Get(word); err == nil {
		candidates = append(candidates, i)
	}

	if d.syn != nil {
		if i, err := d.syn.Get(word); err == nil {
			if orig, oerr := d.syn.GetOriginalWordIndex(i); oerr == nil {
				candidates = append(candidates, int(orig))
			}
			for j := i - 1; j >= 0; j-- {
				w, werr := d.syn.GetWord(j)
				if werr != nil || dictcmp.Compare(w, word, true) != dictcmp.Equal {
					break
				}
				if orig, oerr := d.syn.GetOriginalWordIndex(j); oerr == nil {
					candidates = append(candidates, int(orig))
				}
			}
			for j := i + 1; j < d.syn.Len(); j++ {
				w, werr := d.syn.GetWord(j)
				if werr != nil || dictcmp.Compare(w, word, true) != dictcmp.Equal {
					break
				}
				if orig, oerr := d.syn.GetOriginalWordIndex(j); oerr == nil {
					candidates = append(candidates, int(orig))
				}
			}
		}
	}

	sort.Ints(candidates)
	var results []Result
	for k, c := range candidates {
		if k > 0 && c == candidates[k-1] {
			continue
		}
		w, err := d.idx.GetWord(c)
		if err != nil {
			continue
		}
		offset, length, err := d.idx.GetOffsetLength(c)
		if err != nil {
			continue
		}
		payload, err := d.dict.Read(offset, length)
		if err != nil {
			return nil, fmt.Errorf("reading payload for %q: %w", w, err)
		}
		results = append(results, Result{Word: w, Payload: payload})
	}

	if len(results) == 0 {
		return nil, &NotFoundError{Word: word}
	}
	return results, nil
}

// Neighbors returns an iterator over Idx positions, starting at
// max(0, hint+off), where hint is idx.Get(word)'s found-or-insertion-point
// result.
func (d *Dictionary) Neighbors(word []byte, off int) *wordseq.Iterator {
	return wordseq.NewIterator(d.idx, neighborStart(d.idx, word, off))
}

// NeighborsSyn is Neighbors over the synonym index. When no Syn index is
// present the returned iterator is immediately exhausted.
func (d *Dictionary) NeighborsSyn(word []byte, off int) *wordseq.Iterator {
	var seq wordseq.Seq
	start := 0
	if d.syn != nil {
		seq = d.syn
		start = neighborStart(d.syn, word, off)
	}
	return wordseq.NewIterator(seq, start)
}

func neighborStart(seq wordseq.Seq, word []byte, off int) int {
	hint := 0
	switch s := seq.(type) {
	case *idx.Idx:
		if i, err := s.Get(word); err == nil {
			hint = i
		} else {
			var nf *idx.NotFoundError
			if errors.As(err, &nf) {
				hint = nf.Hint
			}
		}
	case *syn.Syn:
		if i, err := s.Get(word); err == nil {
			hint = i
		} else {
			var nf *syn.NotFoundError
			if errors.As(err, &nf) {
				hint = nf.Hint
			}
		}
	}
	return hint + off
}

// SearchRegex returns an iterator over Idx words matching re.
func (d *Dictionary) SearchRegex(re *regexp.Regexp) *wordseq.SearchIterator {
	return wordseq.NewSearchIterator(d.idx, func(w []byte) bool { return re.Match(w) })
}

// SearchSyn returns an iterator over Syn words matching re. When no Syn
// index is present the returned iterator is immediately exhausted.
func (d *Dictionary) SearchSyn(re *regexp.Regexp) *wordseq.SearchIterator {
	var seq wordseq.Seq
	if d.syn != nil {
		seq = d.syn
	}
	return wordseq.NewSearchIterator(seq, func(w []byte) bool { return re.Match(w) })
}
