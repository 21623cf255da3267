// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(batchFilesGuide)
	app.Add(parentFilesGuide)
	app.Add(treeFilesGuide)
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
Hlambda reads rooted phylogenetic trees in Newick (parenthetical) format. Each
non-blank line of the file is a tree, and lines starting with '#' are ignored.
Bracketed comments, such as the rooting tokens "[&U]" or "[&R]", are ignored.
Hybrid parents must be terminals with a defined branch length.

Here is an example file:

	# great apes, branch lengths in million years
	[&R] ((Homo:6.5,Pan:6.5):2,Gorilla:8.5);
	(Pongo:16,(Gorilla:8.5,(Homo:6.5,Pan:6.5):2):7.5);

Trees can also be read from a time-calibrated tree file (the tab-delimited
format used by PhyGeo and TimeTree) using the flag --tsv. In that case, the
branch lengths are the age differences between the nodes, in million years.

The output file is a text file with a tree per line, in the format required
by Hybrid-Lambda (Zhu et al. 2013, arXiv:1303.0673). Trees are
left-ladderized, each hybrid parent is replaced by a clade with a hybrid edge
terminal, "h#<prob>", and all internal nodes are numbered with the
"s<number>" labels. For example, the first tree above, with parents
"Homo:0.3,Gorilla:0.7", is written as:

	(((h#0.3:3.25,Homo:3.25)s8:3.25,Pan:6.5)s7:2,(h#0.7:4.25,Gorilla:4.25)s6:4.25)s5;
	`,
}

var parentFilesGuide = &command.Command{
	Usage: "parent-files",
	Short: "about hybrid parent files",
	Long: `
Hybrid parents are the taxa from which a hybrid inherits, each one with the
probability of inheritance. With a single parent, the hybrid is added as a
sister of the parent. With two parents, the probabilities must be different.

Hybrid parents can be given as a single argument, for example
"Homo:0.3,Gorilla:0.7", or in a tab-delimited file with the following
columns:

	- taxon  the name of the parent taxon
	- prob   the inheritance probability from the parent

Here is an example file:

	# hybrid parents
	taxon	prob
	Homo	0.3
	Gorilla	0.7

Parents are added to the tree in the order in which they are defined.
	`,
}

var batchFilesGuide = &command.Command{
	Usage: "batch-files",
	Short: "about batch files",
	Long: `
A batch file is a YAML file that defines one or more conversion jobs. Each job
has the following fields:

	- trees         the input tree file (required)
	- format        the tree file format, "newick" (default) or "tsv"
	- parents       the hybrid parents, for example "Homo:0.3,Gorilla:0.7"
	- parents-file  a hybrid parents file
	- output        the output file

Either parents or parents-file must be defined. If no output is defined, the
output file name will be the name of the tree file with the extension
".wHybrid.tre" if there are two parents, or ".wSister.tre" if there is a
single parent. Relative paths are read from the directory of the batch file.

Here is an example file:

	# apes and dinosaurs
	jobs:
	  - trees: apes.tre
	    parents: "Homo:0.3,Gorilla:0.7"
	  - trees: dinosaurs.tab
	    format: tsv
	    parents-file: parents.tab
	    output: dinosaurs.hl.tre
	`,
}
