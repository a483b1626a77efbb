// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package veriftool

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	u "github.com/ojroques/sdep/srcs/common"
	"github.com/ojroques/sdep/srcs/slibcore"
)

// Header of the dependencies table
const objHeader = "OBJ_FILE"

// RunVerificationTool allows to run the object files list verification tool.
func RunVerificationTool() {

	// Init and parse local arguments
	args := new(u.Arguments)
	p, err := args.InitArguments("--verif",
		"The Verification tool checks that a list of object files of a "+
			"static library has no missing dependency")
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

	// Gather the list of object files to verify
	var objectFiles []string
	listName := *args.StringArg[objectListArg]
	if *args.BoolArg[interactiveArg] {
		listName = "interactive selection"
		objectFiles, err = selectObjectFiles(report)
		if err != nil {
			u.PrintErr(err)
		}
	} else if len(listName) > 0 {
		objectFiles, err = readObjectList(listName)
		if err != nil {
			u.PrintErr(err)
		}
	} else {
		u.PrintErr(errors.New("an object files list or the interactive " +
			"mode is required"))
	}

	verification := slibcore.Verify(report, objectFiles)

	for _, line := range verificationListing(report, verification, listName) {
		fmt.Println(line)
	}

	if verification.Complete() {
		u.PrintOk("This list of object files is COMPLETE")
	} else {
		u.PrintWarning("This list of object files is INCOMPLETE")
		for _, line := range missingListing(report, verification) {
			fmt.Println(line)
		}
	}
}

// readObjectList reads the object file names to verify, one per line.
// Surrounding whitespace is trimmed but blank lines are kept: they end up
// reported as not found rather than silently dropped.
//
// It returns a slice which contains the object file names and an error if
// any, otherwise it returns nil.
func readObjectList(path string) ([]string, error) {
	lines, err := u.ReadLinesFile(path)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return lines, nil
}

// selectObjectFiles asks the user to pick the object files to verify among
// the ones of the report.
//
// It returns a slice which contains the selected names and an error if any,
// otherwise it returns nil.
func selectObjectFiles(report *slibcore.SlibReport) ([]string, error) {
	var objectFiles []string
	prompt := &survey.MultiSelect{
		Message: "Select the object files to verify:",
		Options: report.SortedObjects(),
	}
	if err := survey.AskOne(prompt, &objectFiles); err != nil {
		return nil, err
	}

	return objectFiles, nil
}

// maxNameLength returns the longest object file name length of the report to
// adjust the spacing of the tables, with the header length as lower bound.
func maxNameLength(report *slibcore.SlibReport) int {
	maxLength := len(objHeader)
	for objectName := range report.Objects {
		if len(objectName) > maxLength {
			maxLength = len(objectName)
		}
	}

	return maxLength
}

// pad right-pads a name with spaces up to the given length.
func pad(name string, length int) string {
	return name + strings.Repeat(" ", length-len(name))
}

// verificationListing renders each object file of the verified list with its
// dependencies, in the order the list was given.
//
// It returns the lines of the listing.
func verificationListing(report *slibcore.SlibReport,
	verification *slibcore.Verification, listName string) []string {

	maxLength := maxNameLength(report)

	lines := []string{fmt.Sprintf("Dependencies in '%s' of the %d object "+
		"files from '%s':", report.Name, len(verification.Entries), listName)}
	lines = append(lines, "  "+pad(objHeader, maxLength)+" <- DEPENDENCIES")

	for _, entry := range verification.Entries {
		if !entry.Found {
			lines = append(lines, fmt.Sprintf("- No object file '%s' found",
				entry.Name))
			continue
		}

		line := "- " + pad(entry.Name, maxLength) + " <- "
		if len(entry.Dependencies) == 0 {
			line += "No dependencies"
		} else {
			line += strings.Join(entry.Dependencies, ", ")
		}
		lines = append(lines, line)
	}

	return lines
}

// missingListing renders the object files of the verified list with their
// missing dependencies.
//
// It returns the lines of the listing.
func missingListing(report *slibcore.SlibReport,
	verification *slibcore.Verification) []string {

	maxLength := maxNameLength(report)

	lines := []string{"  " + pad(objHeader, maxLength) +
		" <- MISSING_DEPENDENCIES"}
	for _, objectName := range verification.IncompleteObjects() {
		lines = append(lines, "- "+pad(objectName, maxLength)+" <- "+
			strings.Join(verification.Missing[objectName], ", "))
	}

	return lines
}
