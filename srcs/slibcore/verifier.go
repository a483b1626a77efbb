// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package slibcore

import (
	"sort"
)

// Exported struct that represents the verification of a list of object files
// against a report: one entry per given name, in the given order, and the
// missing dependencies of each incomplete object file.
type Verification struct {
	Entries []VerifEntry
	Missing map[string][]string
}

// Exported struct that represents one object file of a verified list. Found
// is false when the name does not appear in the report, in which case there
// is no dependency list.
type VerifEntry struct {
	Name         string
	Found        bool
	Dependencies []string
}

// Verify checks that a list of object file names is self-contained: every
// dependency of every listed object file must itself be part of the list.
// Names absent from the report are recorded as not found and take no part in
// the completeness check. Duplicated and blank names are kept as given.
//
// It returns a pointer to a Verification.
func Verify(report *SlibReport, objectFiles []string) *Verification {

	verification := &Verification{
		Entries: make([]VerifEntry, 0, len(objectFiles)),
		Missing: make(map[string][]string),
	}

	// Set of the given names for the membership test, the slice order is
	// kept for the entries listing
	given := make(map[string]bool, len(objectFiles))
	for _, objectName := range objectFiles {
		given[objectName] = true
	}

	for _, objectName := range objectFiles {

		// Check that the given object file is indeed listed in the report
		entry, ok := report.Objects[objectName]
		if !ok {
			verification.Entries = append(verification.Entries,
				VerifEntry{Name: objectName})
			continue
		}

		verification.Entries = append(verification.Entries, VerifEntry{
			Name:         objectName,
			Found:        true,
			Dependencies: entry.Dependencies,
		})

		// Dependencies of the object file that are not in the given list
		missingSet := make(map[string]bool)
		for _, dependency := range entry.Dependencies {
			if !given[dependency] {
				missingSet[dependency] = true
			}
		}
		if len(missingSet) > 0 {
			missing := make([]string, 0, len(missingSet))
			for dependency := range missingSet {
				missing = append(missing, dependency)
			}
			sort.Strings(missing)
			verification.Missing[objectName] = missing
		}
	}

	return verification
}

// Complete reports whether the verified list of object files has no missing
// dependency.
func (verification *Verification) Complete() bool {
	return len(verification.Missing) == 0
}

// IncompleteObjects returns the names of the object files with missing
// dependencies in lexicographic order.
func (verification *Verification) IncompleteObjects() []string {
	names := make([]string, 0, len(verification.Missing))
	for objectName := range verification.Missing {
		names = append(names, objectName)
	}
	sort.Strings(names)

	return names
}
