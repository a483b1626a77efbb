// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package comparetool

import (
	"github.com/akamensky/argparse"
	u "github.com/ojroques/sdep/srcs/common"
	"os"
)

const (
	jsonFileArg    = "jsonFile"
	compareFileArg = "compareFile"
)

// parseLocalArguments parses arguments of the application.
func parseLocalArguments(p *argparse.Parser, args *u.Arguments) error {

	u.InitToolFlags(p, args)

	args.InitArgParse(p, args, u.STRING, "j", jsonFileArg,
		&argparse.Options{Required: true, Help: "Path of the JSON analysis " +
			"file"})
	args.InitArgParse(p, args, u.STRING, "c", compareFileArg,
		&argparse.Options{Required: true, Help: "Path of the JSON analysis " +
			"file to compare with"})

	return u.ParserWrapper(p, os.Args)
}
