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

package main

import (
	"os"
	"path/filepath"
	"testing"

	stardict "github.com/tomgrean/go-stardict"
	"github.com/tomgrean/go-stardict/internal/testutil"
)

func TestNewApp_flags(t *testing.T) {
	app := newApp()
	names := map[string]bool{}
	for _, f := range app.Flags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}
	for _, want := range []string{"host", "h", "root", "r", "daemonize", "d"} {
		if !names[want] {
			t.Errorf("flag %q not registered", want)
		}
	}
}

func TestNewApp_hasListCommand(t *testing.T) {
	app := newApp()
	var found bool
	for _, c := range app.Commands {
		if c.Name == "list" {
			found = true
		}
	}
	if !found {
		t.Error(`"list" subcommand not registered`)
	}
}

func TestPrintDictTable(t *testing.T) {
	root := t.TempDir()
	dictDir := filepath.Join(root, "eng")
	if err := os.Mkdir(dictDir, 0o700); err != nil {
		t.Fatal(err)
	}
	ifoContent := "version=3.0.0\nbookname=English\nauthor=tester\nwordcount=1\nidxfilesize=0\nidxoffsetbits=32\n"
	if err := os.WriteFile(filepath.Join(dictDir, "eng.ifo"), []byte(ifoContent), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dictDir, "eng.idx"), testutil.MakeIdx([]testutil.IdxWord{
		{Word: "apple", Offset: 0, Size: 5},
	}, 32), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dictDir, "eng.dict"), []byte("apple"), 0o600); err != nil {
		t.Fatal(err)
	}

	sd, errs := stardict.Open(root)
	if len(errs) != 0 {
		t.Fatalf("Open() errs = %v", errs)
	}
	defer sd.Close()

	if err := printDictTable(sd); err != nil {
		t.Errorf("printDictTable() error = %v", err)
	}
}
