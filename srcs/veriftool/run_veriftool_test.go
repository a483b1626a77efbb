// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package veriftool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ojroques/sdep/srcs/slibcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *slibcore.SlibReport {
	return &slibcore.SlibReport{
		Name: "libfoo.a",
		Objects: map[string]slibcore.ObjectEntry{
			"a.o":        {Dependencies: []string{}},
			"foobar.o":   {Dependencies: []string{"a.o"}},
			"m_empty.o":  {Empty: true},
			"deepdive.o": {Dependencies: []string{"foobar.o", "z.o"}},
		},
	}
}

func TestVerificationListing(t *testing.T) {
	report := testReport()
	verification := slibcore.Verify(report,
		[]string{"deepdive.o", "a.o", "x.o"})

	lines := verificationListing(report, verification, "objects.txt")

	// Names are padded to the longest one of the report, "deepdive.o"
	assert.Equal(t, []string{
		"Dependencies in 'libfoo.a' of the 3 object files from " +
			"'objects.txt':",
		"  OBJ_FILE   <- DEPENDENCIES",
		"- deepdive.o <- foobar.o, z.o",
		"- a.o        <- No dependencies",
		"- No object file 'x.o' found",
	}, lines)
}

func TestMissingListing(t *testing.T) {
	report := testReport()
	verification := slibcore.Verify(report, []string{"deepdive.o", "a.o"})

	require.False(t, verification.Complete())

	assert.Equal(t, []string{
		"  OBJ_FILE   <- MISSING_DEPENDENCIES",
		"- deepdive.o <- foobar.o, z.o",
	}, missingListing(report, verification))
}

func TestReadObjectList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objects.txt")
	require.NoError(t, os.WriteFile(path,
		[]byte("  a.o \nfoobar.o\n\nm_empty.o\n"), 0644))

	objectFiles, err := readObjectList(path)
	require.NoError(t, err)

	// Lines are trimmed but blank lines are kept
	assert.Equal(t, []string{"a.o", "foobar.o", "", "m_empty.o"}, objectFiles)
}

func TestPad(t *testing.T) {
	assert.Equal(t, "a.o   ", pad("a.o", 6))
	assert.Equal(t, "foobar", pad("foobar", 6))
}
