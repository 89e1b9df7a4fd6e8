// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
// This file runs a local mock AIS gateway.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/NVIDIA/aisclient/cmn/nlog"
	"github.com/NVIDIA/aisclient/tools/mockais"
	"github.com/urfave/cli"
)

const mockLogTitle = "aismock"

var mockCmd = cli.Command{
	Name:   commandMock,
	Usage:  "run local mock AIS gateway (in-memory or buntdb-backed); stop with Ctrl-C",
	Flags:  []cli.Flag{mockConfigFlag, listenFlag, dbPathFlag, secretFlag, pageSizeFlag},
	Action: mockHandler,
}

func mockConfig(c *cli.Context) (config *mockais.Config, err error) {
	if fqn := parseStrFlag(c, mockConfigFlag); fqn != "" {
		if config, err = mockais.LoadConfig(fqn); err != nil {
			return nil, err
		}
	} else {
		config = mockais.DefaultConfig()
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	// command line takes precedence
	if flagIsSet(c, listenFlag) {
		config.Listen = parseStrFlag(c, listenFlag)
	}
	if flagIsSet(c, dbPathFlag) {
		config.DBPath = parseStrFlag(c, dbPathFlag)
	}
	if flagIsSet(c, secretFlag) {
		config.AuthSecret = parseStrFlag(c, secretFlag)
	}
	if flagIsSet(c, pageSizeFlag) {
		config.DefaultPageSize = int64(parseIntFlag(c, pageSizeFlag))
	}
	config.Verbose = config.Verbose || flagIsSet(c, verboseFlag)
	return config, config.Validate()
}

func mockHandler(c *cli.Context) error {
	config, err := mockConfig(c)
	if err != nil {
		return err
	}
	if config.LogDir != "" {
		if err := os.MkdirAll(config.LogDir, 0o755); err != nil {
			return err
		}
		nlog.SetLogDir(config.LogDir, mockLogTitle)
	}
	nlog.SetVerbose(config.Verbose)

	srv, err := mockais.New(config)
	if err != nil {
		return err
	}
	if err := srv.Start(); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Mock AIS gateway is listening on %s (default page size %d, max %d)\n",
		fcyan(srv.URL()), config.DefaultPageSize, config.MaxPageSize)
	fmt.Fprintf(c.App.Writer, "Hint: export AIS_ENDPOINT=%s\n", srv.URL())

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)
	sig := <-stopCh
	signal.Stop(stopCh)

	nlog.Infof("%s: received %v, stopping", mockLogTitle, sig)
	err = srv.Stop()
	nlog.Flush()
	return err
}
