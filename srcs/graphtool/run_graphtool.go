// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package graphtool

import (
	u "github.com/ojroques/sdep/srcs/common"
	"github.com/ojroques/sdep/srcs/slibcore"
	"path/filepath"
)

// RunGraphTool allows to run the dependency graph generation tool.
func RunGraphTool() {

	// Init and parse local arguments
	args := new(u.Arguments)
	p, err := args.InitArguments("--graph",
		"The Graph tool renders the dependencies between the object files "+
			"of a static library as a dot file")
	if err != nil {
		u.PrintErr(err)
	}
	if err := parseLocalArguments(p, args); err != nil {
		u.PrintErr(err)
	}

	// Load the static library analysis
	report, err := slibcore.OpenReport(*args.StringArg[jsonFileArg])
	if err != nil {
		u.PrintErr(err)
	}

	// Create the output folder if it does not exist
	outFolder := *args.StringArg[outFolderArg]
	if _, err := u.CreateFolder(outFolder); err != nil {
		u.PrintErr(err)
	}

	u.GenerateGraph(report.Name, filepath.Join(outFolder, report.Name),
		dependencyMap(report), nil)
}

// dependencyMap builds the dependency map of the non-empty object files of
// the report, the input format of the graph generator.
func dependencyMap(report *slibcore.SlibReport) map[string][]string {

	dependencies := make(map[string][]string)
	for _, objectName := range report.SortedObjects() {
		entry := report.Objects[objectName]
		if entry.Empty {
			continue
		}
		dependencies[objectName] = entry.Dependencies
	}

	return dependencies
}
