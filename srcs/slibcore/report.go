// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package slibcore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// Value marking an object file without code in the analysis document
const emptySentinel = "EMPTY"

// ErrFormat is reported when the input document is not a static library
// analysis result.
var ErrFormat = errors.New("not a static library analysis result")

// Exported struct that represents the analysis of a static library: its name
// and one entry per object file it contains.
type SlibReport struct {
	Name    string
	Objects map[string]ObjectEntry
}

// Exported struct that represents a single object file of a static library.
// An empty object file contributes no symbol and carries no dependency list;
// Dependencies is only meaningful when Empty is false.
type ObjectEntry struct {
	Empty        bool
	Dependencies []string
}

// rawReport mirrors the JSON layout of an analysis document.
type rawReport struct {
	Marker  *json.RawMessage           `json:"slib_analysis"`
	Name    string                     `json:"Static library"`
	Content map[string]json.RawMessage `json:"Content"`
}

// ParseReport parses the JSON document of a static library analysis. The
// "EMPTY" sentinel values of the document are resolved here once, so that
// the classifier and the verifier only deal with tagged object entries.
//
// It returns a pointer to a SlibReport and an error if any, otherwise it
// returns nil.
func ParseReport(data []byte) (*SlibReport, error) {

	var raw rawReport
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("not a valid JSON document: %w", err)
	}

	// Documents without the marker are not analysis results
	if raw.Marker == nil {
		return nil, ErrFormat
	}

	report := &SlibReport{
		Name:    raw.Name,
		Objects: make(map[string]ObjectEntry, len(raw.Content)),
	}

	for objectName, value := range raw.Content {

		// Empty object files are marked by a sentinel string
		var sentinel string
		if err := json.Unmarshal(value, &sentinel); err == nil {
			if sentinel != emptySentinel {
				return nil, fmt.Errorf("%w: unknown marker '%s' for object "+
					"file '%s'", ErrFormat, sentinel, objectName)
			}
			report.Objects[objectName] = ObjectEntry{Empty: true}
			continue
		}

		var entry struct {
			Dependencies []string `json:"Dependencies"`
		}
		if err := json.Unmarshal(value, &entry); err != nil {
			return nil, fmt.Errorf("%w: invalid entry for object file '%s'",
				ErrFormat, objectName)
		}
		if entry.Dependencies == nil {
			entry.Dependencies = make([]string, 0)
		}
		report.Objects[objectName] = ObjectEntry{Dependencies: entry.Dependencies}
	}

	return report, nil
}

// OpenReport reads and parses a static library analysis file.
//
// It returns a pointer to a SlibReport and an error if any, otherwise it
// returns nil.
func OpenReport(path string) (*SlibReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseReport(data)
}

// SortedObjects returns the names of all object files of the report in
// lexicographic order. Go maps have no stable iteration order so objects are
// always walked in sorted order to keep results reproducible.
func (report *SlibReport) SortedObjects() []string {
	names := make([]string, 0, len(report.Objects))
	for objectName := range report.Objects {
		names = append(names, objectName)
	}
	sort.Strings(names)

	return names
}
