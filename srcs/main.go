// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package main

import (
	"github.com/ojroques/sdep/srcs/classifytool"
	u "github.com/ojroques/sdep/srcs/common"
	"github.com/ojroques/sdep/srcs/comparetool"
	"github.com/ojroques/sdep/srcs/graphtool"
	"github.com/ojroques/sdep/srcs/veriftool"
)

func main() {

	// Init global arguments
	args := new(u.Arguments)
	parser, err := args.InitArguments("Staticdep",
		"Toolkit to analyse the dependencies between the object files of a "+
			"static library")
	if err != nil {
		u.PrintErr(err)
	}

	// Parse arguments
	if err := args.ParseMainArguments(parser, args); err != nil {
		u.PrintErr(err)
	}

	if *args.BoolArg[u.VERIF] {
		u.PrintHeader1("(*) RUN OBJECT FILES LIST VERIFIER")
		veriftool.RunVerificationTool()
		return
	}

	if *args.BoolArg[u.GRAPH] {
		u.PrintHeader1("(*) RUN DEPENDENCY GRAPH GENERATOR")
		graphtool.RunGraphTool()
		return
	}

	if *args.BoolArg[u.COMPARE] {
		u.PrintHeader1("(*) RUN ANALYSES COMPARER")
		comparetool.RunComparerTool()
		return
	}

	// Classification is the default behavior
	u.PrintHeader1("(*) RUN OBJECT FILES CLASSIFIER")
	classifytool.RunClassifierTool()
}
