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

// Package ahocorasick implements a byte-level Aho-Corasick automaton with
// position-tracking multi-pattern replacement.
//
// The trie/fail-link/suffix-link construction technique is adapted from
// the rune-keyed itgcl/ahocorasick automaton, reworked over byte-keyed
// trie nodes so that match end-positions (and therefore match starts) are
// recoverable during a replace pass; the upstream package only ever
// reports pattern indices via MatchString, never offsets.
package ahocorasick

// node is a single trie node keyed on the next input byte.
type node struct {
	root     bool
	output   bool
	patternIdx int
	depth    int

	children map[byte]*node
	fail     *node
	suffix   *node
}

// matcher is a built automaton over a fixed pattern set.
type matcher struct {
	root *node
}

func build(patterns [][]byte) *matcher {
	root := &node{root: true, children: make(map[byte]*node)}

	for i, p := range patterns {
		n := root
		for _, b := range p {
			c, ok := n.children[b]
			if !ok {
				c = &node{children: make(map[byte]*node)}
				n.children[b] = c
			}
			n = c
		}
		if !n.output {
			n.output = true
			n.patternIdx = i
			n.depth = len(p)
		}
	}

	queue := make([]*node, 0, len(root.children))
	for _, c := range root.children {
		c.fail = root
		queue = append(queue, c)
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		for b, child := range n.children {
			queue = append(queue, child)

			f := n.fail
			for {
				if failChild, ok := f.children[b]; ok {
					child.fail = failChild
					break
				}
				if f.root {
					child.fail = root
					break
				}
				f = f.fail
			}

			if child.fail.output {
				child.suffix = child.fail
			} else {
				child.suffix = child.fail.suffix
			}
		}
	}

	return &matcher{root: root}
}

// ReplaceAll applies a single left-to-right, non-overlapping match pass
// over haystack, replacing each match of patterns[i] with replacements[i].
// A match is replaced as soon as its end is reached, so the match that
// ends first wins even if a longer one starts earlier. Among patterns
// ending at the same position, the longest match wins.
func ReplaceAll(haystack []byte, patterns, replacements [][]byte) []byte {
	if len(patterns) == 0 {
		return haystack
	}

	m := build(patterns)

	var out []byte
	flushed := 0
	cur := m.root

	i := 0
	for i < len(haystack) {
		b := haystack[i]

		for {
			if next, ok := cur.children[b]; ok {
				cur = next
				break
			}
			if cur.root {
				break
			}
			cur = cur.fail
		}
		i++

		match := cur
		for match != nil && !match.root && !match.output {
			match = match.suffix
		}

		if match != nil && match.output {
			start := i - match.depth
			if start >= flushed {
				out = append(out, haystack[flushed:start]...)
				out = append(out, replacements[match.patternIdx]...)
				flushed = i
				cur = m.root
			}
		}
	}

	out = append(out, haystack[flushed:]...)
	return out
}
