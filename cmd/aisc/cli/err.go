// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
// This file contains error types and error formatting.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NVIDIA/aisclient/api/env"
	"github.com/NVIDIA/aisclient/cmd/aisc/config"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/urfave/cli"
)

type (
	errUsage struct {
		context *cli.Context
		message string
		cmd     string
	}
	errInvalidKV struct {
		kv string
	}
)

func (e *errUsage) Error() string {
	var sb strings.Builder
	sb.WriteString("Incorrect usage of \"")
	sb.WriteString(e.cmd)
	sb.WriteString("\": ")
	sb.WriteString(e.message)
	sb.WriteString(".\nSee '")
	sb.WriteString(e.cmd)
	sb.WriteString(" --help' for details.")
	return sb.String()
}

func (e *errInvalidKV) Error() string {
	return fmt.Sprintf("invalid key=value pair %q", e.kv)
}

func _errUsage(c *cli.Context, msg string) *errUsage {
	cmd := cliName
	if c != nil {
		if name := c.Command.FullName(); name != "" {
			cmd = cliName + " " + name
		}
	}
	return &errUsage{context: c, message: msg, cmd: cmd}
}

func incorrectUsageMsg(c *cli.Context, fmtMsg string, args ...any) *errUsage {
	const dfltMsg = "too many arguments or unrecognized (misplaced?) option '%+v'"
	if fmtMsg == "" {
		fmtMsg = dfltMsg
	}
	if len(args) == 0 {
		return _errUsage(c, fmtMsg)
	}
	return _errUsage(c, fmt.Sprintf(fmtMsg, args...))
}

func missingArgumentsError(c *cli.Context, missingArgs ...string) *errUsage {
	var msg string
	if len(missingArgs) == 1 {
		msg = fmt.Sprintf("missing %q argument", missingArgs[0])
	} else {
		msg = fmt.Sprintf("missing arguments %q", strings.Join(missingArgs, ", "))
	}
	return _errUsage(c, msg)
}

func commandNotFoundHandler(c *cli.Context, cmd string) {
	err := _errUsage(c, "unknown command \""+cmd+"\"")
	fmt.Fprintln(c.App.ErrWriter, redErr(err))
}

func incorrectUsageHandler(c *cli.Context, err error, _ bool) error {
	if err == nil {
		return nil
	}
	return _errUsage(c, err.Error())
}

func redErr(err error) error {
	msg := strings.TrimRight(err.Error(), "\n")
	return errors.New(fred("Error: ") + msg)
}

// Formats error message
func (a *acli) formatErr(err error) error {
	if err == nil {
		return nil
	}
	if cmn.IsErrTransport(err) {
		errmsg := fmt.Sprintf("AIS gateway cannot be reached at %s: %v\n", clusterURL, err)
		errmsg += fmt.Sprintf("Make sure that environment variable %s points to an AIS gateway\n"+
			"For defaults, see CLI config at %s", env.AIS.Endpoint, config.Path())
		return redErr(errors.New(errmsg))
	}
	var usage *errUsage
	if errors.As(err, &usage) {
		return usage
	}
	return redErr(err)
}
