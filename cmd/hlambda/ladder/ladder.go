// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package ladder implements a command to print
// left-ladderized trees.
package ladder

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/hlambda/hybrid"
	"github.com/js-arias/hlambda/newick"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: "ladder [--tsv] [<tree-file>]",
	Short: "print left-ladderized trees",
	Long: `
Command ladder reads one or more phylogenetic trees and prints them in the
standard output, left-ladderized (i.e., at each node, the descendant with more
terminals is the first one) and without labels for internal nodes. This is
the tree as used by the command convert, before adding the hybrid parents.

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

	trees, err := readTrees(c.Stdin(), name)
	if err != nil {
		return err
	}
	for _, t := range trees {
		fmt.Fprintf(c.Stdout(), "%s\n", hybrid.Normalize(t))
	}
	return nil
}

func readTrees(r io.Reader, name string) ([]*newick.Tree, error) {
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

	if !tsvFlag {
		trees, err := newick.Read(r)
		if err != nil {
			return nil, fmt.Errorf("while reading file %q: %v", name, err)
		}
		return trees, nil
	}

	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	var trees []*newick.Tree
	for _, tn := range c.Names() {
		trees = append(trees, newick.FromTimeTree(c.Tree(tn)))
	}
	return trees, nil
}
