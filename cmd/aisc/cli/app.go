// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/cmd/aisc/config"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/nlog"
	"github.com/fatih/color"
	"github.com/urfave/cli"
)

const (
	cliName = "aisc"
	ua      = "aisc/cli"
)

type acli struct {
	app       *cli.App
	outWriter io.Writer
	errWriter io.Writer
}

var (
	cfg        *config.Config
	buildTime  string
	clusterURL string
	apiBP      api.BaseParams
)

// color
var (
	fred, fcyan, fgreen func(a ...any) string
)

// Init loads CLI config and prepares the (global) API base params
func Init() (err error) {
	if cfg, err = config.Load(); err != nil {
		return err
	}
	clusterURL = cfg.Cluster.URL
	token, err := cfg.AuthToken()
	if err != nil {
		return err
	}
	apiBP = newBaseParams(clusterURL, token)
	return nil
}

func newBaseParams(url, token string) api.BaseParams {
	var (
		tcpTimeout  = cmn.DfltDialupTimeout
		httpTimeout time.Duration
		skipVerify  bool
	)
	if cfg != nil {
		tcpTimeout, httpTimeout = cfg.Timeout.TCPTimeout, cfg.Timeout.HTTPTimeout
		skipVerify = cfg.Cluster.SkipVerifyCrt
	}
	client := cmn.NewClient(cmn.TransportArgs{
		DialTimeout: tcpTimeout,
		Timeout:     httpTimeout,
		SkipVerify:  skipVerify,
	})
	return api.BaseParams{Client: client, URL: url, Method: http.MethodGet, Token: token, UA: ua}
}

// main method
func Run(version, buildtime string, args []string) error {
	a := acli{app: cli.NewApp(), outWriter: os.Stdout, errWriter: os.Stderr}
	buildTime = buildtime
	a.init(version)
	err := a.app.Run(args)
	nlog.Flush()
	return a.formatErr(err)
}

func onBeforeCommand(c *cli.Context) error {
	// the library disables coloring when TERM="dumb" or stdout is redirected;
	// here we can only disable it manually
	if flagIsSet(c, noColorFlag) || (cfg != nil && cfg.NoColor) {
		color.NoColor = true
	}
	nlog.SetVerbose(flagIsSet(c, verboseFlag) || (cfg != nil && cfg.Verbose))
	return nil
}

func (a *acli) init(version string) {
	app := a.app

	fcyan = color.New(color.FgHiCyan).SprintFunc()
	fred = color.New(color.FgHiRed).SprintFunc()
	fgreen = color.New(color.FgHiGreen).SprintFunc()

	app.Name = cliName
	app.Usage = "command-line client for AIS gateways"
	app.Version = version
	app.HideHelp = true
	app.Flags = []cli.Flag{cli.HelpFlag, noColorFlag, verboseFlag}
	app.CommandNotFound = commandNotFoundHandler
	app.OnUsageError = incorrectUsageHandler
	app.Writer = a.outWriter
	app.ErrWriter = a.errWriter
	app.Before = onBeforeCommand
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version, V",
		Usage: "print only the version",
	}
	a.setupCommands()
}

func (a *acli) setupCommands() {
	app := a.app
	app.Commands = []cli.Command{
		bucketCmd,
		objectCmd,
		listCmd,
		jobCmd,
		mockCmd,
		authCmd,
	}
	setupCommandHelp(app.Commands)
}

func setupCommandHelp(commands []cli.Command) {
	helpName := fl1n(cli.HelpFlag.GetName())
	for i := range commands {
		command := &commands[i]
		// (urfave/cli adds a help flag to every command unless told otherwise)
		command.HideHelp = true
		if !hasHelpFlag(command.Flags, helpName) {
			command.Flags = append(command.Flags, cli.HelpFlag)
		}
		setupCommandHelp(command.Subcommands)
	}
}

func hasHelpFlag(commandFlags []cli.Flag, helpName string) bool {
	for _, flag := range commandFlags {
		if fl1n(flag.GetName()) == helpName {
			return true
		}
	}
	return false
}
