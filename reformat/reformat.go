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

// Package reformat loads dictionary-entry rewrite rules and applies them
// to lookup results.
//
// A config file is line-oriented:
//   - lines starting with '#' are comments,
//   - empty lines are ignored,
//   - a line of the form ":X" sets the current dictionary type to byte X;
//     all following rules apply to that type until the next ":X",
//   - any other line is a rule "PATTERN OP REPL" where OP is the first
//     unescaped occurrence of "=" or "~" in the line, or of an "@" that
//     stands between spaces (or line boundaries); an "@" touching other
//     characters is part of PATTERN or REPL. A line with no such
//     operator, or one appearing before any ":X" header, is discarded.
package reformat

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/tomgrean/go-stardict/internal/ahocorasick"
)

// Operator is a rewrite rule's operation.
type Operator byte

const (
	// OpPlain replaces every occurrence of Pattern with Replacement.
	OpPlain Operator = '='
	// OpTemplate is OpPlain, but Replacement is rendered through the
	// "@p@"-style dict_path template before being used as a plain
	// replacement.
	OpTemplate Operator = '@'
	// OpRegex replaces every regex match of Pattern with the literal
	// bytes of Replacement (no backreference expansion).
	OpRegex Operator = '~'
)

// Rule is one parsed reformat rule.
type Rule struct {
	Op          Operator
	Pattern     []byte
	Replacement []byte

	// Regex is non-nil only for OpRegex rules, compiled once at load
	// time.
	Regex *regexp.Regexp
}

// Config is a loaded set of rules, grouped by dictionary type character.
type Config struct {
	rules map[byte][]*Rule
}

// Load parses a reformat config from r.
func Load(r io.Reader) (*Config, error) {
	cfg := &Config{rules: make(map[byte][]*Rule)}

	var dictType byte
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Bytes()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if len(line) > 1 && line[0] == ':' {
			dictType = line[1]
			continue
		}
		if dictType == 0 {
			continue
		}

		rule, err := parseRule(line)
		if err != nil {
			return nil, err
		}
		if rule == nil {
			continue
		}
		cfg.rules[dictType] = append(cfg.rules[dictType], rule)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning reformat config: %w", err)
	}
	return cfg, nil
}

// findOperator locates the first unescaped occurrence of '=', '~', or '@'
// in line, mirroring reformat.rs's raw byte scan (escaped via a preceding
// unescaped backslash). '=' and '~' always qualify at their raw position,
// matching the grounding source exactly. '@' only qualifies when it
// stands as its own whitespace-bounded token: spec.md's own worked
// example uses a rule whose PATTERN is itself "@p@", which a plain raw
// scan would misparse as having an empty pattern (the first '@' at
// offset 0 taken as OP); requiring '@' to be surrounded by whitespace (or
// line boundaries) when acting as an operator resolves that ambiguity
// without weakening the raw-scan contract for '=' and '~'.
func findOperator(line []byte) int {
	esc := false
	for i, c := range line {
		if esc {
			esc = false
			continue
		}
		if c == '\\' {
			esc = true
			continue
		}
		switch c {
		case '=', '~':
			return i
		case '@':
			before := i == 0 || line[i-1] == ' '
			after := i+1 >= len(line) || line[i+1] == ' '
			if before && after {
				return i
			}
		}
	}
	return -1
}

func parseRule(line []byte) (*Rule, error) {
	opIdx := findOperator(line)
	if opIdx <= 0 {
		return nil, nil
	}

	op := Operator(line[opIdx])
	pattern := unescape(bytes.TrimRight(line[:opIdx], " "))

	replStart := opIdx + 1
	if replStart < len(line) && line[replStart] == ' ' {
		replStart++
	}
	replacement := unescape(line[replStart:])

	rule := &Rule{Op: op, Pattern: pattern, Replacement: replacement}
	if op == OpRegex {
		re, err := regexp.Compile(string(pattern))
		if err != nil {
			return nil, fmt.Errorf("compiling reformat regex %q: %w", pattern, err)
		}
		rule.Regex = re
	}
	return rule, nil
}

func unescape(b []byte) []byte {
	out := make([]byte, 0, len(b))
	esc := false
	for _, c := range b {
		if esc {
			out = append(out, fromEscape(c))
			esc = false
			continue
		}
		if c == '\\' {
			esc = true
			continue
		}
		out = append(out, c)
	}
	return out
}

func fromEscape(c byte) byte {
	switch c {
	case 't':
		return '\t'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	default:
		return c
	}
}

// ReplaceAll rewrites haystack using the rules registered for dictType.
// Rules run in declaration order: '=' and '@' rules accumulate into a
// pattern/replacement list applied in a single trailing Aho-Corasick pass;
// '~' rules apply immediately, in place, as they are encountered. dictPath
// binds the "p" template variable for '@' rules.
func (cfg *Config) ReplaceAll(dictType byte, dictPath string, haystack []byte) []byte {
	rules := cfg.rules[dictType]
	if len(rules) == 0 {
		return haystack
	}

	hay := haystack
	var froms, tos [][]byte
	for _, r := range rules {
		switch r.Op {
		case OpPlain:
			froms = append(froms, r.Pattern)
			tos = append(tos, r.Replacement)
		case OpTemplate:
			froms = append(froms, r.Pattern)
			tos = append(tos, renderTemplate(r.Replacement, dictPath))
		case OpRegex:
			hay = r.Regex.ReplaceAllLiteral(hay, r.Replacement)
		}
	}

	if len(froms) == 0 {
		return hay
	}
	return ahocorasick.ReplaceAll(hay, froms, tos)
}

// renderTemplate expands "@p@"-style variable references in repl. A
// variable reference is a single byte bracketed by a pair of '@'
// characters; 'p' expands to dictPath, any other variable is dropped
// along with its bracketing.
func renderTemplate(repl []byte, dictPath string) []byte {
	parts := bytes.Split(repl, []byte{'@'})
	out := append([]byte{}, parts[0]...)

	for i := 1; i < len(parts); i += 2 {
		varSeg := parts[i]
		if len(varSeg) > 0 && varSeg[0] == 'p' {
			out = append(out, dictPath...)
		}
		if i+1 < len(parts) {
			out = append(out, parts[i+1]...)
		}
	}
	return out
}
