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

func TestParseReport(t *testing.T) {
	data := []byte(`{
		"slib_analysis": true,
		"Static library": "libfoo.a",
		"Content": {
			"a.o": {"Dependencies": []},
			"b.o": {"Dependencies": ["a.o", "c.o"]},
			"c.o": "EMPTY"
		}
	}`)

	report, err := ParseReport(data)
	require.NoError(t, err)

	assert.Equal(t, "libfoo.a", report.Name)
	require.Len(t, report.Objects, 3)

	assert.False(t, report.Objects["a.o"].Empty)
	assert.Empty(t, report.Objects["a.o"].Dependencies)

	assert.False(t, report.Objects["b.o"].Empty)
	assert.Equal(t, []string{"a.o", "c.o"}, report.Objects["b.o"].Dependencies)

	assert.True(t, report.Objects["c.o"].Empty)
	assert.Nil(t, report.Objects["c.o"].Dependencies)
}

func TestParseReportRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing marker",
			data: `{"Static library": "libfoo.a", "Content": {}}`,
		},
		{
			name: "unknown sentinel",
			data: `{"slib_analysis": true, "Static library": "libfoo.a",
				"Content": {"a.o": "FULL"}}`,
		},
		{
			name: "invalid entry shape",
			data: `{"slib_analysis": true, "Static library": "libfoo.a",
				"Content": {"a.o": 42}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			report, err := ParseReport([]byte(test.data))
			assert.Nil(t, report)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestParseReportRejectsInvalidJson(t *testing.T) {
	report, err := ParseReport([]byte(`{"slib_analysis":`))
	assert.Nil(t, report)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrFormat)
}

func TestSortedObjects(t *testing.T) {
	report := &SlibReport{
		Name: "libfoo.a",
		Objects: map[string]ObjectEntry{
			"c.o": {Empty: true},
			"a.o": {Dependencies: []string{}},
			"b.o": {Dependencies: []string{"a.o"}},
		},
	}

	assert.Equal(t, []string{"a.o", "b.o", "c.o"}, report.SortedObjects())
}
