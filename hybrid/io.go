// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hybrid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var header = []string{"taxon", "prob"}

// ReadTSV reads a hybrid specification
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - taxon, the name of the parent taxon
//   - prob, the inheritance probability from that parent
//
// Here is an example file:
//
//	# hybrid parents
//	taxon	prob
//	B	0.6
//	C	0.4
//
// Parents are returned in the order of the file.
func ReadTSV(r io.Reader) (Spec, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	var s Spec
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("on row %d: %v", pe.Line, pe.Err)
			}
			return nil, err
		}
		ln, _ := tab.FieldPos(0)

		f := "taxon"
		tax := strings.TrimSpace(row[fields[f]])
		if tax == "" {
			continue
		}

		f = "prob"
		p, err := newParent(tax, row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %w", ln, f, err)
		}
		s = append(s, p)
	}
	if len(s) == 0 {
		return nil, ErrNoParents
	}
	return s, nil
}

// TSV writes a hybrid specification as a TSV file.
func (s Spec) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, p := range s {
		row := []string{
			p.Taxon,
			p.Prob,
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
