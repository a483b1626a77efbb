// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package veriftool

import (
	"github.com/akamensky/argparse"
	u "github.com/ojroques/sdep/srcs/common"
	"os"
)

const (
	jsonFileArg    = "jsonFile"
	objectListArg  = "objectList"
	interactiveArg = "interactive"
)

// parseLocalArguments parses arguments of the application.
func parseLocalArguments(p *argparse.Parser, args *u.Arguments) error {

	u.InitToolFlags(p, args)

	args.InitArgParse(p, args, u.STRING, "j", jsonFileArg,
		&argparse.Options{Required: true, Help: "Path of the JSON analysis " +
			"file"})
	args.InitArgParse(p, args, u.STRING, "l", objectListArg,
		&argparse.Options{Required: false, Help: "Path of the object files " +
			"list to verify (one name per line)"})
	args.InitArgParse(p, args, u.BOOL, "i", interactiveArg,
		&argparse.Options{Required: false, Default: false,
			Help: "Select the object files to verify interactively"})

	return u.ParserWrapper(p, os.Args)
}
