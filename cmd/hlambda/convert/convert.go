// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package convert implements a command to convert
// phylogenetic trees into Hybrid-Lambda input trees.
package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/hlambda/config"
	"github.com/js-arias/hlambda/hybrid"
	"github.com/js-arias/hlambda/internal/console"
	"github.com/js-arias/hlambda/internal/job"
)

var Command = &command.Command{
	Usage: `convert [-p|--parents <taxon:prob>[,<taxon:prob>]]
	[--parents-file <file>] [--tsv]
	[-o|--output <file>] [--quiet] [--verbose]
	<tree-file>`,
	Short: "convert trees into Hybrid-Lambda input",
	Long: `
Command convert reads one or more phylogenetic trees and writes them in the
format used as input by Hybrid-Lambda (Zhu et al. 2013, arXiv:1303.0673).

The argument of the command is the name of the tree file. By default, trees
are read in Newick format, with a tree per line. Use the flag --tsv to read
trees from a time-calibrated tree file. See "hlambda help tree-files".

The hybrid parents are defined with the flag --parents, or -p, with a list of
one or two parents, each one with the name of a terminal and the inheritance
probability from that parent, for example "Homo:0.3,Gorilla:0.7". The
parents can also be read from a file with the flag --parents-file. See
"hlambda help parent-files".

Each tree is left-ladderized, the branch of each hybrid parent is split in
half to add the hybrid edge, and all internal nodes are numbered. If any tree
fails, the error is printed and no output is written.

By default, the output file is named after the tree file, with the extension
".wHybrid.tre" if two parents are defined, or ".wSister.tre" if a single
parent is defined. Use the flag --output, or -o, to define a different
output file.

By default, a message is printed when the output is written. Use the flag
--quiet to suppress the message, or --verbose to print a record for each
converted tree.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var parents string
var parentsFile string
var output string
var tsvFlag bool
var quiet bool
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&tsvFlag, "tsv", false, "")
	c.Flags().BoolVar(&quiet, "quiet", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&parents, "parents", "", "")
	c.Flags().StringVar(&parents, "p", "", "")
	c.Flags().StringVar(&parentsFile, "parents-file", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}
	if parents == "" && parentsFile == "" {
		return c.UsageError("expecting hybrid parents, use flag --parents or --parents-file")
	}
	if parents != "" && parentsFile != "" {
		return c.UsageError("flags --parents and --parents-file are exclusive")
	}

	out := console.New(c.Stdout(), c.Stderr(), quiet)
	logger := console.Logger(c.Stderr(), verbose)
	if err := convert(out, logger, args[0]); err != nil {
		out.Error(err)
		return errNoOutput
	}
	return nil
}

var errNoOutput = errors.New("no output written")

func convert(out *console.Console, logger *slog.Logger, name string) error {
	s, err := readSpec()
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	j := job.Job{
		Trees:  name,
		Format: config.Newick,
		Spec:   s,
		Output: output,
	}
	if tsvFlag {
		j.Format = config.TSV
	}
	if j.Output == "" {
		j.Output = hybrid.OutputName(j.Trees, s)
	}

	n, err := job.Run(j, logger)
	if err != nil {
		return err
	}
	out.Infof("Done: %d trees written to %q", n, j.Output)
	return nil
}

func readSpec() (hybrid.Spec, error) {
	if parents != "" {
		return hybrid.ParseSpec(parents)
	}

	f, err := os.Open(parentsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := hybrid.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %w", parentsFile, err)
	}
	return s, nil
}
