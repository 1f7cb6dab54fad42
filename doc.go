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

// Package stardict implements a read-only lookup engine over StarDict
// dictionaries: a directory of dictionary sub-directories, each a
// quadruple of .ifo/.idx/.dict/optional .syn files.
//
// Open loads every sub-directory as a dictionary.Dictionary, logging and
// skipping the ones that fail to open. Lookup, Neighbors, and Search fan
// queries out across the full set: Lookup concatenates per-dictionary
// results in sorted sub-directory order, while Neighbors and Search merge
// their word streams in dictionary collation order.
//
// More info on the format can be found at:
// https://github.com/huzheng001/stardict-3/blob/master/dict/doc/StarDictFileFormat
package stardict
