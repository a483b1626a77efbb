// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package common

import (
	"errors"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
)

// Exported constants to determine the type of an argument
const (
	INT = iota
	BOOL
	STRING
)

// Exported constants to determine the tool to run
const (
	CLASSIFY = "classify"
	VERIF    = "verif"
	GRAPH    = "graph"
	COMPARE  = "compare"
)

// Exported struct that represents the typed arguments of a tool.
type Arguments struct {
	IntArg    map[string]*int
	BoolArg   map[string]*bool
	StringArg map[string]*string
}

// InitArguments initializes the arguments maps and creates the parser of a
// tool.
//
// It returns a pointer to an argparse parser and an error if any, otherwise
// it returns nil.
func (args *Arguments) InitArguments(name, description string) (*argparse.Parser,
	error) {

	args.IntArg = make(map[string]*int)
	args.BoolArg = make(map[string]*bool)
	args.StringArg = make(map[string]*string)

	p := argparse.NewParser(name, description)

	return p, nil
}

// ParserWrapper parses the arguments of a parser and prints its usage message
// when they are incorrect.
//
// It returns an error if any, otherwise it returns nil.
func ParserWrapper(p *argparse.Parser, args []string) error {
	err := p.Parse(args)
	if err != nil {
		fmt.Print(p.Usage(err))
	}

	return err
}

// ParseMainArguments parses the main arguments to determine the tool to run.
//
// It returns an error if any, otherwise it returns nil.
func (*Arguments) ParseMainArguments(p *argparse.Parser, args *Arguments) error {

	if args == nil {
		return errors.New("args structure should be initialized")
	}

	InitToolFlags(p, args)

	// The tool flag, when given, must be the first argument. Only this
	// argument is parsed here: each tool parses the whole command line again
	// with its own parser.
	toolFlags := []string{"--" + CLASSIFY, "--" + VERIF, "--" + GRAPH,
		"--" + COMPARE}
	if len(os.Args) > 1 && Contains(toolFlags, os.Args[1]) {
		return ParserWrapper(p, os.Args[:2])
	}

	return nil
}

// InitToolFlags initializes the boolean arguments that select the tool to
// run. Tool parsers register them as well since they re-parse the whole
// command line.
func InitToolFlags(p *argparse.Parser, args *Arguments) {

	args.InitArgParse(p, args, BOOL, "", CLASSIFY,
		&argparse.Options{Required: false, Default: false,
			Help: "List independent or empty object files of a static " +
				"library (default)"})
	args.InitArgParse(p, args, BOOL, "", VERIF,
		&argparse.Options{Required: false, Default: false,
			Help: "Verify that a list of object files has no missing " +
				"dependency"})
	args.InitArgParse(p, args, BOOL, "", GRAPH,
		&argparse.Options{Required: false, Default: false,
			Help: "Generate the dependency graph of a static library"})
	args.InitArgParse(p, args, BOOL, "", COMPARE,
		&argparse.Options{Required: false, Default: false,
			Help: "Compare two static library analyses"})
}

// InitArgParse registers a typed argument to the parser of a tool.
func (*Arguments) InitArgParse(p *argparse.Parser, args *Arguments, typeVar int,
	short, long string, options *argparse.Options) {

	switch typeVar {
	case INT:
		args.IntArg[long] = p.Int(short, long, options)
	case BOOL:
		args.BoolArg[long] = p.Flag(short, long, options)
	case STRING:
		args.StringArg[long] = p.String(short, long, options)
	}
}
