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
	"bytes"
	"encoding/binary"

	"github.com/k3a/html2text"

	"github.com/tomgrean/go-stardict/reformat"
)

// DataType is the type of a single NUL-delimited segment in a .dict
// payload entry, taken from the dictionary's sametypesequence (or, when
// sametypesequence is empty, from each segment's own leading type byte).
// Lower-case types are string-like (NUL-terminated); upper-case types are
// file-like (4-byte size prefix).
type DataType byte

const (
	// UTFTextType is utf-8 text.
	UTFTextType = DataType('m')
	// LocaleTextType is text in a locale encoding.
	LocaleTextType = DataType('l')
	// PangoTextType is utf-8 text in the Pango text format.
	PangoTextType = DataType('g')
	// PhoneticType is utf-8 text representing an English phonetic string.
	PhoneticType = DataType('t')
	// XDXFType is utf-8 encoded xml in XDXF format.
	XDXFType = DataType('x')
	// YinBiaoOrKataType is utf-8 encoded Yin Biao or Kana phonetic string.
	YinBiaoOrKataType = DataType('y')
	// PowerWordType is a utf-8 encoded KingSoft PowerWord XML format.
	PowerWordType = DataType('p')
	// MediaWikiType is utf-8 encoded text in MediaWiki format.
	MediaWikiType = DataType('w')
	// HTMLType is utf-8 encoded HTML text.
	HTMLType = DataType('h')
	// WordNetType is WordNet data.
	WordNetType = DataType('n')
	// ResourceFileListType is a list of files in resource storage.
	ResourceFileListType = DataType('r')
	// WavType is .wav sound file data.
	WavType = DataType('W')
	// PictureType is image file data.
	PictureType = DataType('P')
	// ExperimentalType is reserved for experimental features.
	ExperimentalType = DataType('X')
)

// Segment is one typed, reformatted piece of a dictionary entry's payload.
type Segment struct {
	Type DataType
	Data []byte
}

// String renders the segment as plain text. HTML segments are stripped of
// markup; 'm', 'l', 't', 'y' and 'w' segments are returned as-is; every
// other type (including 'g', 'x', 'p', 'n', 'r' and the binary types)
// renders as empty string.
func (s Segment) String() string {
	switch s.Type {
	case PhoneticType, UTFTextType, YinBiaoOrKataType, MediaWikiType, LocaleTextType:
		return string(s.Data)
	case HTMLType:
		return html2text.HTML2Text(string(s.Data))
	default:
		return ""
	}
}

// Entry is a single lookup or search result: the matched word and its raw
// .dict payload, plus enough dictionary context (sametypesequence,
// dict_path) to split and reformat it.
type Entry struct {
	DictPath         string
	SameTypeSequence []byte
	Word             []byte
	Payload          []byte
}

// Segments splits the entry's payload into typed segments, applying cfg's
// rewrite rules to each segment as it is produced. A nil cfg leaves
// segments unmodified.
func (e *Entry) Segments(cfg *reformat.Config) []Segment {
	b := e.Payload

	var segs []Segment
	if len(e.SameTypeSequence) > 0 {
		for _, t := range e.SameTypeSequence {
			data, rest, ok := splitSegment(DataType(t), b)
			if !ok {
				break
			}
			b = rest
			segs = append(segs, Segment{Type: DataType(t), Data: applyReformat(cfg, t, e.DictPath, data)})
		}
		return segs
	}

	for len(b) > 0 {
		t := b[0]
		b = b[1:]
		data, rest, ok := splitSegment(DataType(t), b)
		if !ok {
			break
		}
		b = rest
		segs = append(segs, Segment{Type: DataType(t), Data: applyReformat(cfg, t, e.DictPath, data)})
	}
	return segs
}

// String renders the entry as plain text: each segment's String() output,
// concatenated.
func (e *Entry) String(cfg *reformat.Config) string {
	var out string
	for _, s := range e.Segments(cfg) {
		out += s.String()
	}
	return out
}

func applyReformat(cfg *reformat.Config, dictType byte, dictPath string, data []byte) []byte {
	if cfg == nil {
		return data
	}
	return cfg.ReplaceAll(dictType, dictPath, data)
}

// splitSegment consumes one segment of type t from the front of b,
// returning the segment's data and the remaining bytes.
func splitSegment(t DataType, b []byte) (data, rest []byte, ok bool) {
	if 'a' <= t && t <= 'z' {
		i := bytes.IndexByte(b, 0)
		if i < 0 {
			return b, nil, true
		}
		return b[:i], b[i+1:], true
	}

	if len(b) < 4 {
		return nil, nil, false
	}
	size := binary.BigEndian.Uint32(b)
	b = b[4:]
	if uint64(size) > uint64(len(b)) {
		size = uint32(len(b))
	}
	return b[:size], b[size:], true
}
