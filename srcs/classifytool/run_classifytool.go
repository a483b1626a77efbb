// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package classifytool

import (
	"fmt"
	u "github.com/ojroques/sdep/srcs/common"
	"github.com/ojroques/sdep/srcs/slibcore"
	"path/filepath"
	"strings"
)

// RunClassifierTool allows to run the object files classifier tool.
func RunClassifierTool() {

	// Init and parse local arguments
	args := new(u.Arguments)
	p, err := args.InitArguments("--classify",
		"The Classifier tool lists the independent or empty object files of "+
			"a static library")
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

	var lines []string
	if *args.BoolArg[emptyArg] {
		lines = emptyListing(report)
	} else {
		lines, err = leavesListing(report)
		if err != nil {
			u.PrintErr(err)
		}
	}

	fmt.Println(strings.Join(lines, "\n"))

	// Save the listing into a text file if the save output option is set
	if *args.BoolArg[saveOutputArg] {
		saveListing(report.Name, *args.StringArg[outFolderArg], lines)
	}
}

// leavesListing renders the independent object files of the report along
// with their share of the static library.
//
// It returns the lines of the listing and an error if the report holds no
// non-empty object file.
func leavesListing(report *slibcore.SlibReport) ([]string, error) {

	leaves, nonEmptyCount, err := slibcore.FindLeaves(report)
	if err != nil {
		return nil, err
	}
	_, emptyCount, _ := slibcore.FindEmpty(report)

	lines := []string{fmt.Sprintf("Non-empty object files in '%s' that do "+
		"not depend on any others are:", report.Name)}
	for _, objectName := range leaves {
		lines = append(lines, "- "+objectName)
	}

	nonEmptyRatio, err := slibcore.Ratio(len(leaves), nonEmptyCount)
	if err != nil {
		return nil, err
	}
	totalRatio, err := slibcore.Ratio(len(leaves), nonEmptyCount+emptyCount)
	if err != nil {
		return nil, err
	}

	lines = append(lines, "", "This represents:")
	lines = append(lines, fmt.Sprintf("- %d/%d of all non-empty object "+
		"files or about %d%%.", len(leaves), nonEmptyCount, nonEmptyRatio))
	lines = append(lines, fmt.Sprintf("- %d/%d of all object files or "+
		"about %d%%.", len(leaves), nonEmptyCount+emptyCount, totalRatio))

	return lines, nil
}

// emptyListing renders the empty object files of the report, or a notice
// when there are none.
//
// It returns the lines of the listing.
func emptyListing(report *slibcore.SlibReport) []string {

	empty, emptyCount, nonEmptyCount := slibcore.FindEmpty(report)
	if emptyCount == 0 {
		return []string{fmt.Sprintf("There is no empty object file in %s",
			report.Name)}
	}

	lines := []string{fmt.Sprintf("Empty object files in '%s' are:",
		report.Name)}
	for _, objectName := range empty {
		lines = append(lines, "- "+objectName)
	}

	// The total cannot be zero here since emptyCount is not
	ratio, _ := slibcore.Ratio(emptyCount, emptyCount+nonEmptyCount)
	lines = append(lines, "", fmt.Sprintf("This represents %d/%d of all "+
		"object files or about %d%%.", emptyCount, emptyCount+nonEmptyCount,
		ratio))

	return lines
}

// saveListing writes the listing into a text file of the output folder.
func saveListing(libraryName, outFolder string, lines []string) {

	if _, err := u.CreateFolder(outFolder); err != nil {
		u.PrintErr(err)
	}

	outFile := filepath.Join(outFolder, libraryName+".txt")
	if err := u.WriteToFile(outFile, []byte(strings.Join(lines, "\n")+"\n")); err != nil {
		u.PrintWarning(err)
	} else {
		u.PrintOk("Listing saved into " + outFile)
	}
}
