// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package slibcore

import (
	"errors"
	"math"
)

// ErrNoObjects is reported when statistics are requested over zero object
// files, which would otherwise divide by zero.
var ErrNoObjects = errors.New("no object files to compute statistics on")

// FindLeaves collects the non-empty object files of the report that do not
// depend on any other object file, in lexicographic order.
//
// It returns the list of independent object files along with the number of
// non-empty object files, and an error if the report holds no non-empty
// object file.
func FindLeaves(report *SlibReport) ([]string, int, error) {

	leaves := make([]string, 0)
	nonEmptyCount := 0

	for _, objectName := range report.SortedObjects() {
		entry := report.Objects[objectName]
		if entry.Empty {
			continue
		}
		nonEmptyCount++
		if len(entry.Dependencies) == 0 {
			leaves = append(leaves, objectName)
		}
	}

	if nonEmptyCount == 0 {
		return nil, 0, ErrNoObjects
	}

	return leaves, nonEmptyCount, nil
}

// FindEmpty collects the empty object files of the report in lexicographic
// order.
//
// It returns the list of empty object files along with the number of empty
// and non-empty object files.
func FindEmpty(report *SlibReport) ([]string, int, int) {

	empty := make([]string, 0)
	nonEmptyCount := 0

	for _, objectName := range report.SortedObjects() {
		if report.Objects[objectName].Empty {
			empty = append(empty, objectName)
		} else {
			nonEmptyCount++
		}
	}

	return empty, len(empty), nonEmptyCount
}

// Ratio computes the percentage of part over total, rounded to the nearest
// integer with halves rounded up.
//
// It returns the percentage and an error when total is zero since the ratio
// is undefined in that case.
func Ratio(part, total int) (int, error) {
	if total == 0 {
		return 0, ErrNoObjects
	}

	return int(math.Round(float64(part) / float64(total) * 100)), nil
}
