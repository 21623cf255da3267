// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package config implements reading of batch files,
// YAML files that define one or more conversion jobs.
//
// Here is an example file:
//
//	# apes and dinosaurs
//	jobs:
//	  - trees: apes.tre
//	    parents: "Homo:0.3,Gorilla:0.7"
//	  - trees: dinosaurs.tab
//	    format: tsv
//	    parents-file: parents.tab
//	    output: dinosaurs.hl.tre
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/hlambda/hybrid"
	"gopkg.in/yaml.v3"
)

// Tree file formats.
const (
	Newick = "newick"
	TSV    = "tsv"
)

// A Job is a single conversion job.
type Job struct {
	// Trees is the input tree file.
	Trees string `yaml:"trees"`

	// Format is the format of the tree file,
	// either "newick" (the default)
	// or "tsv".
	Format string `yaml:"format,omitempty"`

	// Parents is a hybrid specification
	// of the form "<taxon>:<prob>[,<taxon>:<prob>]".
	Parents string `yaml:"parents,omitempty"`

	// ParentsFile is a TSV file
	// with the hybrid specification.
	ParentsFile string `yaml:"parents-file,omitempty"`

	// Output is the output file.
	// If empty,
	// the name is derived from the tree file.
	Output string `yaml:"output,omitempty"`
}

// A Batch is a list of conversion jobs.
type Batch struct {
	Jobs []Job `yaml:"jobs"`

	dir string
}

// Read reads a batch from a YAML stream.
func Read(r io.Reader) (*Batch, error) {
	var b Batch
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty batch")
		}
		return nil, err
	}

	if len(b.Jobs) == 0 {
		return nil, fmt.Errorf("no jobs defined")
	}
	for i := range b.Jobs {
		if err := b.Jobs[i].check(); err != nil {
			return nil, fmt.Errorf("job %d: %v", i+1, err)
		}
	}
	return &b, nil
}

// ReadFile reads a batch file.
// Relative paths in the jobs
// are resolved against the directory of the file.
func ReadFile(name string) (*Batch, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	b.dir = filepath.Dir(name)
	return b, nil
}

func (j *Job) check() error {
	if j.Trees == "" {
		return fmt.Errorf("undefined tree file")
	}

	j.Format = strings.ToLower(strings.TrimSpace(j.Format))
	switch j.Format {
	case "":
		j.Format = Newick
	case Newick, TSV:
	default:
		return fmt.Errorf("unknown tree format %q", j.Format)
	}

	if j.Parents == "" && j.ParentsFile == "" {
		return fmt.Errorf("undefined hybrid parents")
	}
	if j.Parents != "" && j.ParentsFile != "" {
		return fmt.Errorf("both parents and parents-file defined")
	}
	return nil
}

// Path returns a path of a job file,
// resolved against the batch directory.
func (b *Batch) Path(name string) string {
	if name == "" || filepath.IsAbs(name) || b.dir == "" {
		return name
	}
	return filepath.Join(b.dir, name)
}

// Spec returns the hybrid specification of a job.
func (b *Batch) Spec(j Job) (hybrid.Spec, error) {
	if j.Parents != "" {
		return hybrid.ParseSpec(j.Parents)
	}

	name := b.Path(j.ParentsFile)
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := hybrid.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %w", name, err)
	}
	return s, nil
}

// Output returns the output file of a job.
func (b *Batch) Output(j Job, s hybrid.Spec) string {
	if j.Output != "" {
		return b.Path(j.Output)
	}
	return hybrid.OutputName(b.Path(j.Trees), s)
}
