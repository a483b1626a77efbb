// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package comparetool

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	u "github.com/ojroques/sdep/srcs/common"
	"github.com/ojroques/sdep/srcs/slibcore"
)

// RunComparerTool allows to run the analyses comparison tool.
func RunComparerTool() {

	// Init and parse local arguments
	args := new(u.Arguments)
	p, err := args.InitArguments("--compare",
		"The Comparer tool displays the differences between two static "+
			"library analyses")
	if err != nil {
		u.PrintErr(err)
	}
	if err := parseLocalArguments(p, args); err != nil {
		u.PrintErr(err)
	}

	// Load both static library analyses
	report, err := slibcore.OpenReport(*args.StringArg[jsonFileArg])
	if err != nil {
		u.PrintErr(err)
	}
	otherReport, err := slibcore.OpenReport(*args.StringArg[compareFileArg])
	if err != nil {
		u.PrintErr(err)
	}

	u.PrintInfo("Comparison output:")
	fmt.Println(compareReports(report, otherReport))
}

// compareReports renders a colored diff between the canonical listings of
// two reports.
func compareReports(report, otherReport *slibcore.SlibReport) string {
	dmp := diffmatchpatch.New()

	diffs := dmp.DiffMain(reportListing(report), reportListing(otherReport),
		false)

	return dmp.DiffPrettyText(diffs)
}

// reportListing canonicalizes a report into a sorted textual listing so that
// two reports can be compared line by line.
func reportListing(report *slibcore.SlibReport) string {

	var builder strings.Builder
	builder.WriteString(report.Name + "\n")

	for _, objectName := range report.SortedObjects() {
		entry := report.Objects[objectName]
		if entry.Empty {
			builder.WriteString("- " + objectName + " (empty)\n")
		} else if len(entry.Dependencies) == 0 {
			builder.WriteString("- " + objectName + " <- No dependencies\n")
		} else {
			builder.WriteString("- " + objectName + " <- " +
				strings.Join(entry.Dependencies, ", ") + "\n")
		}
	}

	return builder.String()
}
