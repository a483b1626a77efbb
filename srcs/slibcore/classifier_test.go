// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package slibcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport(objects map[string]ObjectEntry) *SlibReport {
	return &SlibReport{Name: "libfoo.a", Objects: objects}
}

func TestFindLeaves(t *testing.T) {
	report := testReport(map[string]ObjectEntry{
		"a.o": {Dependencies: []string{}},
		"b.o": {Dependencies: []string{"a.o"}},
	})

	leaves, nonEmptyCount, err := FindLeaves(report)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.o"}, leaves)
	assert.Equal(t, 2, nonEmptyCount)

	ratio, err := Ratio(len(leaves), nonEmptyCount)
	require.NoError(t, err)
	assert.Equal(t, 50, ratio)
}

func TestFindLeavesSkipsEmptyObjects(t *testing.T) {
	report := testReport(map[string]ObjectEntry{
		"a.o": {Empty: true},
		"b.o": {Dependencies: []string{}},
		"c.o": {Dependencies: []string{"b.o"}},
	})

	leaves, nonEmptyCount, err := FindLeaves(report)
	require.NoError(t, err)

	// Empty object files are never leaves
	assert.Equal(t, []string{"b.o"}, leaves)
	assert.Equal(t, 2, nonEmptyCount)
}

func TestFindLeavesWithoutNonEmptyObjects(t *testing.T) {
	tests := []struct {
		name    string
		objects map[string]ObjectEntry
	}{
		{name: "no objects", objects: map[string]ObjectEntry{}},
		{name: "only empty objects", objects: map[string]ObjectEntry{
			"a.o": {Empty: true},
			"b.o": {Empty: true},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := FindLeaves(testReport(test.objects))
			assert.ErrorIs(t, err, ErrNoObjects)
		})
	}
}

func TestFindEmpty(t *testing.T) {
	report := testReport(map[string]ObjectEntry{
		"a.o": {Empty: true},
		"b.o": {Dependencies: []string{}},
	})

	empty, emptyCount, nonEmptyCount := FindEmpty(report)

	assert.Equal(t, []string{"a.o"}, empty)
	assert.Equal(t, 1, emptyCount)
	assert.Equal(t, 1, nonEmptyCount)

	ratio, err := Ratio(emptyCount, emptyCount+nonEmptyCount)
	require.NoError(t, err)
	assert.Equal(t, 50, ratio)
}

func TestFindEmptyWithoutEmptyObjects(t *testing.T) {
	report := testReport(map[string]ObjectEntry{
		"a.o": {Dependencies: []string{}},
	})

	empty, emptyCount, nonEmptyCount := FindEmpty(report)

	assert.Empty(t, empty)
	assert.Equal(t, 0, emptyCount)
	assert.Equal(t, 1, nonEmptyCount)
}

func TestClassificationPartition(t *testing.T) {
	report := testReport(map[string]ObjectEntry{
		"a.o": {Empty: true},
		"b.o": {Dependencies: []string{}},
		"c.o": {Dependencies: []string{"b.o"}},
		"d.o": {Empty: true},
		"e.o": {Dependencies: []string{"b.o", "c.o"}},
	})

	leaves, nonEmptyCount, err := FindLeaves(report)
	require.NoError(t, err)
	_, emptyCount, nonEmptyCount2 := FindEmpty(report)

	// Both operations agree on the partition of the report
	assert.Equal(t, nonEmptyCount, nonEmptyCount2)
	assert.Equal(t, len(report.Objects), emptyCount+nonEmptyCount)
	assert.LessOrEqual(t, len(leaves), nonEmptyCount)
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		total int
		want  int
	}{
		{name: "zero part", part: 0, total: 5, want: 0},
		{name: "half", part: 1, total: 2, want: 50},
		{name: "third rounds down", part: 1, total: 3, want: 33},
		{name: "two thirds rounds up", part: 2, total: 3, want: 67},
		{name: "exact half percent rounds up", part: 1, total: 8, want: 13},
		{name: "whole", part: 4, total: 4, want: 100},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ratio, err := Ratio(test.part, test.total)
			require.NoError(t, err)
			assert.Equal(t, test.want, ratio)
		})
	}
}

func TestRatioUndefined(t *testing.T) {
	_, err := Ratio(1, 0)
	assert.ErrorIs(t, err, ErrNoObjects)
}
