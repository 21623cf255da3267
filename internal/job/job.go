// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package job runs a conversion job:
// it reads the trees from a file,
// converts them,
// and writes the output file.
package job

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/js-arias/hlambda/config"
	"github.com/js-arias/hlambda/hybrid"
	"github.com/js-arias/timetree"
)

// A Job is a conversion job.
type Job struct {
	// Input tree file
	Trees string

	// Format of the input file,
	// either config.Newick or config.TSV.
	Format string

	Spec hybrid.Spec

	// Output file
	Output string
}

// Run runs a job,
// and returns the number of converted trees.
// The output file is only written
// if all trees were converted.
// The logger can be nil.
func Run(j Job, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := j.Spec.Validate(); err != nil {
		return 0, err
	}

	var trees []string
	var err error
	switch j.Format {
	case config.TSV:
		trees, err = readTSV(j.Trees, j.Spec, logger)
	case config.Newick, "":
		trees, err = readNewick(j.Trees, j.Spec, logger)
	default:
		return 0, fmt.Errorf("unknown tree format %q", j.Format)
	}
	if err != nil {
		return 0, err
	}
	if len(trees) == 0 {
		return 0, fmt.Errorf("file %q: no trees found", j.Trees)
	}

	if err := write(j.Output, trees); err != nil {
		return 0, err
	}
	logger.Info("trees written", "input", j.Trees, "output", j.Output, "trees", len(trees))
	return len(trees), nil
}

func readNewick(name string, s hybrid.Spec, logger *slog.Logger) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	trees, err := hybrid.ConvertAll(f, s, logger)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %w", name, err)
	}
	return trees, nil
}

func readTSV(name string, s hybrid.Spec, logger *slog.Logger) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}

	trees, err := hybrid.ConvertCollection(c, s, logger)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %w", name, err)
	}
	return trees, nil
}

var create = os.Create

// write writes the trees to a file.
// On error,
// the partial file is removed.
func write(name string, trees []string) (err error) {
	f, err := create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err := bw.WriteString(strings.Join(trees, "\n")); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
