// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
// This file handles authentication tokens.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/NVIDIA/aisclient/tools/mockais"
	"github.com/urfave/cli"
)

var authCmd = cli.Command{
	Name:  commandAuth,
	Usage: "issue and validate access tokens (for gateways started with a secret)",
	Subcommands: []cli.Command{
		{
			Name:      cmdToken,
			Usage:     "issue HMAC-signed token; use it via AIS_AUTHN_TOKEN or the CLI config",
			ArgsUsage: userArgument,
			Flags:     []cli.Flag{secretFlag, expiresFlag, adminFlag},
			Action:    issueTokenHandler,
		},
	},
}

func issueTokenHandler(c *cli.Context) error {
	userID := c.Args().First()
	if userID == "" {
		return missingArgumentsError(c, userArgument)
	}
	secret := parseStrFlag(c, secretFlag)
	if secret == "" {
		return errors.New("missing " + qflprn(secretFlag) + " (must be the same as the gateway's)")
	}
	expires := parseDurationFlag(c, expiresFlag)
	if expires <= 0 {
		return incorrectUsageMsg(c, "invalid %s=%v", flprn(expiresFlag), expires)
	}
	token, err := mockais.IssueToken(secret, userID, time.Now().Add(expires), flagIsSet(c, adminFlag))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, token)
	return nil
}
