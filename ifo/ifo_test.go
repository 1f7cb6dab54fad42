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

package ifo_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomgrean/go-stardict/ifo"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    *ifo.Ifo
		wantErr bool
	}{
		{
			name: "basic",
			content: strings.Join([]string{
				"version=2.4.2",
				"bookname=Test Dictionary",
				"wordcount=3",
				"idxfilesize=30",
				"author=Someone",
			}, "\n"),
			want: &ifo.Ifo{
				Version:       "2.4.2",
				Bookname:      "Test Dictionary",
				WordCount:     3,
				IdxFileSize:   30,
				Author:        "Someone",
				IdxOffsetBits: 32,
			},
		},
		{
			name: "unknown keys ignored",
			content: strings.Join([]string{
				"wordcount=1",
				"idxfilesize=1",
				"bogus=whatever",
			}, "\n"),
			want: &ifo.Ifo{
				WordCount:     1,
				IdxFileSize:   1,
				IdxOffsetBits: 32,
			},
		},
		{
			name: "blank lines ignored",
			content: strings.Join([]string{
				"",
				"wordcount=1",
				"",
				"idxfilesize=1",
				"",
			}, "\n"),
			want: &ifo.Ifo{
				WordCount:     1,
				IdxFileSize:   1,
				IdxOffsetBits: 32,
			},
		},
		{
			name: "idxoffsetbits override",
			content: strings.Join([]string{
				"wordcount=1",
				"idxfilesize=1",
				"idxoffsetbits=64",
			}, "\n"),
			want: &ifo.Ifo{
				WordCount:     1,
				IdxFileSize:   1,
				IdxOffsetBits: 64,
			},
		},
		{
			name: "bad integer",
			content: strings.Join([]string{
				"wordcount=notanumber",
			}, "\n"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ifo.New(strings.NewReader(tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr = %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("New() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
