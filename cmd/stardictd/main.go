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

// Command stardictd serves StarDict dictionaries over HTTP.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	stardict "github.com/tomgrean/go-stardict"
	"github.com/tomgrean/go-stardict/internal/httpapi"
	"github.com/tomgrean/go-stardict/reformat"
)

const (
	defaultHost = "0.0.0.0:8888"
	defaultRoot = "/usr/share/stardict/dic"
)

func init() {
	// The default help flag also claims -h, which -h/--host needs; keep
	// only --help.
	cli.HelpFlag = &cli.BoolFlag{Name: "help", Usage: "show help"}
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Serve StarDict dictionaries over HTTP.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Aliases: []string{"h"},
				Usage:   "bind address `HOST:PORT`",
				Value:   defaultHost,
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "dictionary root `DIR`",
				Value:   defaultRoot,
			},
			&cli.BoolFlag{
				Name:    "daemonize",
				Aliases: []string{"d"},
				Usage:   "daemonize (recognized, no further behavior)",
			},
		},
		Action: func(c *cli.Context) error {
			return serve(c.String("root"), c.String("host"))
		},
		Commands: []*cli.Command{
			listCommand,
		},
	}
}

func serve(root, host string) error {
	sd, errs := stardict.Open(root)
	for _, err := range errs {
		log.Printf("stardictd: %v", err)
	}
	defer sd.Close()

	var cfg *reformat.Config
	if f, err := os.Open(filepath.Join(root, "rformat.conf")); err == nil {
		defer f.Close()
		cfg, err = reformat.Load(f)
		if err != nil {
			return fmt.Errorf("loading reformat config: %w", err)
		}
	}

	srv := httpapi.New(sd, cfg, root)
	log.Printf("stardictd: listening on %s, root %s", host, root)
	//nolint:gosec // no deadline requirements for a dictionary-serving daemon.
	return http.ListenAndServe(host, srv)
}

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "list loaded dictionaries",
	Action: func(c *cli.Context) error {
		root := c.String("root")
		sd, errs := stardict.Open(root)
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		defer sd.Close()

		return printDictTable(sd)
	},
}

func printDictTable(sd *stardict.StarDict) error {
	tbl := table.New("Name", "Author", "Email", "Words")
	for _, d := range sd.Dictionaries() {
		tbl.AddRow(d.Ifo.Bookname, d.Ifo.Author, d.Ifo.Email, d.Ifo.WordCount)
	}
	tbl.Print()
	return nil
}
