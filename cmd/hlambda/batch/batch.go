// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package batch implements a command to run
// the conversion jobs defined in a batch file.
package batch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/js-arias/command"
	"github.com/js-arias/hlambda/config"
	"github.com/js-arias/hlambda/internal/console"
	"github.com/js-arias/hlambda/internal/job"
)

var Command = &command.Command{
	Usage: "batch [--keep-going] [--quiet] [--verbose] <batch-file>",
	Short: "run the conversion jobs of a batch file",
	Long: `
Command batch reads a batch file, a YAML file with a list of conversion jobs,
and runs each job in order. See "hlambda help batch-files".

The argument of the command is the name of the batch file.

By default, the command stops at the first failing job. Use the flag
--keep-going to report the error and continue with the next job; in that
case, the command fails after all jobs are done.

By default, a message is printed for each completed job. Use the flag --quiet
to suppress the messages, or --verbose to print a record for each converted
tree.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var keepGoing bool
var quiet bool
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&keepGoing, "keep-going", false, "")
	c.Flags().BoolVar(&quiet, "quiet", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting batch file")
	}

	out := console.New(c.Stdout(), c.Stderr(), quiet)
	logger := console.Logger(c.Stderr(), verbose)

	b, err := config.ReadFile(args[0])
	if err != nil {
		out.Error(err)
		return errors.New("no job run")
	}

	failed := 0
	for i, j := range b.Jobs {
		n, name, err := runJob(b, j, logger)
		if err != nil {
			err = fmt.Errorf("job %d: %w", i+1, err)
			out.Error(err)
			if !keepGoing {
				return fmt.Errorf("stopped at job %d of %d", i+1, len(b.Jobs))
			}
			failed++
			continue
		}
		out.Infof("job %d: %d trees written to %q", i+1, n, name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(b.Jobs))
	}
	return nil
}

func runJob(b *config.Batch, j config.Job, logger *slog.Logger) (int, string, error) {
	s, err := b.Spec(j)
	if err != nil {
		return 0, "", err
	}

	name := b.Output(j, s)
	n, err := job.Run(job.Job{
		Trees:  b.Path(j.Trees),
		Format: j.Format,
		Spec:   s,
		Output: name,
	}, logger)
	if err != nil {
		return 0, "", err
	}
	return n, name, nil
}
