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

// Package httpapi serves a StarDict lookup engine over HTTP: word lookup,
// neighbor browsing, regex search, and static assets from the dictionary
// root, plus an embedded home page.
package httpapi

import (
	"embed"
	"fmt"
	"html"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	stardict "github.com/tomgrean/go-stardict"
	"github.com/tomgrean/go-stardict/reformat"
)

//go:embed home.html
var homeHTML embed.FS

// maxRequestURI bounds the length of a request's path+query, mirroring
// the 4096-byte request buffer of the original single-threaded server.
const maxRequestURI = 4096

// defaultLimit is used for l= when the query omits it or gives zero.
const defaultLimit = 10

// Server adapts a *stardict.StarDict to net/http.
type Server struct {
	sd   *stardict.StarDict
	cfg  *reformat.Config
	root string
	mux  *http.ServeMux
}

// New builds a Server backed by sd. cfg may be nil (no reformatting).
// root is the dictionary root directory, used to resolve /r/<path>
// static assets.
func New(sd *stardict.StarDict, cfg *reformat.Config, root string) *Server {
	s := &Server{sd: sd, cfg: cfg, root: root, mux: http.NewServeMux()}

	s.mux.HandleFunc("/w/", s.handleWord)
	s.mux.HandleFunc("/w", s.handleHome)
	s.mux.HandleFunc("/n/", s.handleNeighbors)
	s.mux.HandleFunc("/s/", s.handleSearch)
	s.mux.HandleFunc("/r/", s.handleAsset)
	s.mux.HandleFunc("/", s.handleHome)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if len(r.URL.RequestURI()) > maxRequestURI {
		http.Error(w, "request URI too long", http.StatusRequestURITooLong)
		return
	}
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/w" && r.URL.Path != "/w/" {
		http.NotFound(w, r)
		return
	}
	b, err := homeHTML.ReadFile("home.html")
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(b) //nolint:errcheck // best-effort response write.
}

func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	word := decodePathWord(strings.TrimPrefix(r.URL.EscapedPath(), "/w/"))
	if word == "" {
		s.handleHome(w, r)
		return
	}

	entries, err := s.sd.Lookup([]byte(word))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var sb strings.Builder
	sb.WriteString("<ol>")
	for i := range entries {
		sb.WriteString("<li><b>")
		sb.WriteString(html.EscapeString(entries[i].DictPath))
		sb.WriteString("</b> ")
		sb.WriteString(html.EscapeString(string(entries[i].Word)))
		sb.WriteString(": ")
		sb.WriteString(html.EscapeString(entries[i].String(s.cfg)))
		sb.WriteString("</li>")
	}
	sb.WriteString("</ol>")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, sb.String()) //nolint:errcheck // best-effort response write.
}

func (s *Server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	word := decodePathWord(strings.TrimPrefix(r.URL.EscapedPath(), "/n/"))
	off := parseOffset(r.URL.Query().Get("o"))
	limit := parseLimit(r.URL.Query().Get("l"))

	it := s.sd.Neighbors([]byte(word), off)

	var sb strings.Builder
	for n := 0; n < limit; n++ {
		word, ok := it.Next()
		if !ok {
			break
		}
		sb.Write(word)
		sb.WriteByte('\n')
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, sb.String()) //nolint:errcheck // best-effort response write.
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	pattern := decodePathWord(strings.TrimPrefix(r.URL.EscapedPath(), "/s/"))
	limit := parseLimit(r.URL.Query().Get("l"))

	re, err := regexp.Compile(pattern)
	if err != nil {
		http.Error(w, "invalid regex", http.StatusBadRequest)
		return
	}

	it := s.sd.Search(re)

	var sb strings.Builder
	sb.WriteString("<ol>")
	for n := 0; n < limit; n++ {
		word, ok := it.Next()
		if !ok {
			break
		}
		sb.WriteString("<li>")
		sb.WriteString(html.EscapeString(string(word)))
		sb.WriteString("</li>")
	}
	sb.WriteString("</ol>")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, sb.String()) //nolint:errcheck // best-effort response write.
}

var assetContentTypes = map[string]string{
	".js":  "application/javascript",
	".css": "text/css",
	".jpg": "image/jpeg",
	".png": "image/png",
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	rel := decodePathWord(strings.TrimPrefix(r.URL.EscapedPath(), "/r/"))
	clean := filepath.Clean("/" + rel)
	path := filepath.Join(s.root, clean)

	b, err := os.ReadFile(path) //nolint:gosec // path is cleaned relative to root above.
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ct, ok := assetContentTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		ct = "text/html"
	}
	w.Header().Set("Content-Type", ct)
	w.Write(b) //nolint:errcheck // best-effort response write.
}

// parseOffset implements the o= grammar: accumulate decimal digits, with a
// leading '-' flipping the sign.
func parseOffset(s string) int {
	if s == "" {
		return 0
	}
	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
	}
	n := 0
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n
}

// parseLimit implements the l= grammar: accumulate decimal digits; zero or
// absent defaults to defaultLimit.
func parseLimit(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	if n == 0 {
		return defaultLimit
	}
	return n
}

// decodePathWord percent-decodes a %HH-escaped path segment taken from
// r.URL.EscapedPath(), the pre-decoded raw path. Malformed escapes are
// passed through byte-for-byte rather than rejected.
//
// Callers must not pass r.URL.Path here: net/http already percent-decodes
// it once while parsing the request, so decoding it again would treat an
// already-literal "%41" in a word as a second escape and wrongly turn it
// into "A".
func decodePathWord(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, ok1 := hexDigit(s[i+1])
			lo, ok2 := hexDigit(s[i+2])
			if ok1 && ok2 {
				sb.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
