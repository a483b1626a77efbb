// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package common

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// PrintHeader1 prints a first level header in bold green on stdout.
func PrintHeader1(header ...interface{}) {
	printGreenBold := color.New(color.FgGreen, color.Bold)
	_, _ = printGreenBold.Println(header...)
}

// PrintHeader2 prints a second level header in bold blue on stdout.
func PrintHeader2(header ...interface{}) {
	printBlueBold := color.New(color.FgBlue, color.Bold)
	_, _ = printBlueBold.Println(header...)
}

// PrintOk prints a success message in green on stdout.
func PrintOk(ok ...interface{}) {
	printGreen := color.New(color.FgGreen)
	_, _ = printGreen.Println(ok...)
}

// PrintInfo prints an information message in cyan on stdout.
func PrintInfo(info ...interface{}) {
	printCyan := color.New(color.FgCyan)
	_, _ = printCyan.Println(info...)
}

// PrintWarning prints a warning message in yellow on stderr.
func PrintWarning(warning ...interface{}) {
	_, _ = fmt.Fprint(os.Stderr, color.YellowString("WARNING: "))
	_, _ = fmt.Fprintln(os.Stderr, warning...)
}

// PrintErr prints an error message in red on stderr and exits the program.
func PrintErr(err ...interface{}) {
	_, _ = fmt.Fprint(os.Stderr, color.RedString("ERROR: "))
	_, _ = fmt.Fprintln(os.Stderr, err...)
	os.Exit(1)
}
