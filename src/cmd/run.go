// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/certtool/src/cli"
	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
	"github.com/H0llyW00dzZ/certtool/src/logger"
	"github.com/H0llyW00dzZ/certtool/src/version"
)

func main() {
	log := logger.NewCLILogger()

	if err := cli.Execute(version.Version, log); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(certerr.ExitCode(err))
	}
}
