// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ava-labs/flowcontrol/config"
	"github.com/ava-labs/flowcontrol/utils/logging"
)

// main drives the flow control trackers of a single simulated peer.
func main() {
	fs := config.BuildFlagSet()
	v, err := config.BuildViper(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Printf("couldn't configure flags: %s\n", err)
		os.Exit(1)
	}

	c, err := config.GetConfig(v)
	if err != nil {
		fmt.Printf("couldn't load config: %s\n", err)
		os.Exit(1)
	}

	logFactory := logging.NewFactory(c.LoggingConfig)
	log, err := logFactory.Make("flowcontrol")
	if err != nil {
		logFactory.Close()
		fmt.Printf("couldn't initialize log: %s\n", err)
		os.Exit(1)
	}

	exitCode := run(log, c)
	logFactory.Close()
	os.Exit(exitCode)
}
