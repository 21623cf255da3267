// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Hlambda is a tool to convert phylogenetic trees
// into input trees for Hybrid-Lambda.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/hlambda/cmd/hlambda/batch"
	"github.com/js-arias/hlambda/cmd/hlambda/convert"
	"github.com/js-arias/hlambda/cmd/hlambda/ladder"
	"github.com/js-arias/hlambda/cmd/hlambda/terms"
)

var app = &command.Command{
	Usage: "hlambda <command> [<argument>...]",
	Short: "a tool to prepare trees for Hybrid-Lambda",
}

func init() {
	app.Add(batch.Command)
	app.Add(convert.Command)
	app.Add(ladder.Command)
	app.Add(terms.Command)
}

func main() {
	app.Main()
}
