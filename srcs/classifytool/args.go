// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package classifytool

import (
	"github.com/akamensky/argparse"
	u "github.com/ojroques/sdep/srcs/common"
	"os"
)

const (
	jsonFileArg   = "jsonFile"
	emptyArg      = "empty"
	saveOutputArg = "saveOutput"
	outFolderArg  = "outFolder"
)

// parseLocalArguments parses arguments of the application.
func parseLocalArguments(p *argparse.Parser, args *u.Arguments) error {

	u.InitToolFlags(p, args)

	args.InitArgParse(p, args, u.STRING, "j", jsonFileArg,
		&argparse.Options{Required: true, Help: "Path of the JSON analysis " +
			"file"})
	args.InitArgParse(p, args, u.BOOL, "e", emptyArg,
		&argparse.Options{Required: false, Default: false,
			Help: "List empty object files instead of independent ones"})
	args.InitArgParse(p, args, u.BOOL, "", saveOutputArg,
		&argparse.Options{Required: false, Default: false,
			Help: "Save the listing as a TXT file"})
	args.InitArgParse(p, args, u.STRING, "o", outFolderArg,
		&argparse.Options{Required: false, Default: "output/",
			Help: "Folder where the listing is saved"})

	return u.ParserWrapper(p, os.Args)
}
