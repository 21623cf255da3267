// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package console_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/js-arias/hlambda/internal/console"
)

func TestConsole(t *testing.T) {
	var out, errOut bytes.Buffer
	c := console.New(&out, &errOut, false)

	c.Infof("Done: %d trees", 2)
	c.Error(errors.New("hybrid parent not found"))

	if got := out.String(); got != "  Done: 2 trees\n" {
		t.Errorf("info: got %q, want %q", got, "  Done: 2 trees\n")
	}
	if got := errOut.String(); got != "  ERROR: hybrid parent not found\n" {
		t.Errorf("error: got %q, want %q", got, "  ERROR: hybrid parent not found\n")
	}
}

func TestQuiet(t *testing.T) {
	var out, errOut bytes.Buffer
	c := console.New(&out, &errOut, true)

	c.Infof("Done")
	c.Error(errors.New("failure"))
	if out.Len() != 0 {
		t.Errorf("quiet: got output %q, want no output", out.String())
	}
	if !strings.Contains(errOut.String(), "failure") {
		t.Errorf("quiet: got error %q, want error message", errOut.String())
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := console.Logger(&buf, false)
	l.Debug("tree converted", "tree", "tree-1")
	if buf.Len() != 0 {
		t.Errorf("quiet logger: got %q, want no output", buf.String())
	}

	l = console.Logger(&buf, true)
	l.Debug("tree converted", "tree", "tree-1", "error", "none")
	got := buf.String()
	if !strings.Contains(got, "tree=tree-1") || !strings.Contains(got, "err=none") {
		t.Errorf("verbose logger: got %q", got)
	}
}
