// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals in a tree file.
package terms

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/hlambda/newick"
	"github.com/js-arias/timetree"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms [--tsv] [<tree-file>]",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads one or more phylogenetic trees and prints the names of
the terminals in the standard output. Any of these names can be used as a
hybrid parent.

The argument of the command is the name of the tree file. If no file is given,
the trees will be read from the standard input. By default, trees are read in
Newick format; use the flag --tsv to read trees from a time-calibrated tree
file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var tsvFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&tsvFlag, "tsv", false, "")
}

func run(c *command.Command, args []string) error {
	name := ""
	if len(args) > 0 && args[0] != "-" {
		name = args[0]
	}

	ls, err := makeTermList(c.Stdin(), name)
	if err != nil {
		return err
	}
	for _, term := range ls {
		fmt.Fprintf(c.Stdout(), "%s\n", term)
	}
	return nil
}

func makeTermList(r io.Reader, name string) ([]string, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	terms := make(map[string]bool)
	if tsvFlag {
		c, err := timetree.ReadTSV(r)
		if err != nil {
			return nil, fmt.Errorf("while reading file %q: %v", name, err)
		}
		for _, tn := range c.Names() {
			for _, tax := range c.Tree(tn).Terms() {
				terms[tax] = true
			}
		}
	} else {
		trees, err := newick.Read(r)
		if err != nil {
			return nil, fmt.Errorf("while reading file %q: %v", name, err)
		}
		for _, t := range trees {
			for _, tax := range t.Terms() {
				terms[tax] = true
			}
		}
	}

	termList := make([]string, 0, len(terms))
	for tax := range terms {
		termList = append(termList, tax)
	}
	slices.Sort(termList)

	return termList, nil
}
