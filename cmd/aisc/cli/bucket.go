// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
// This file handles bucket commands.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/urfave/cli"
)

var bucketCmd = cli.Command{
	Name:  commandBucket,
	Usage: "create, destroy, and list buckets; show bucket properties",
	Subcommands: []cli.Command{
		{
			Name:      cmdCreate,
			Usage:     "create ais bucket(s)",
			ArgsUsage: bucketArgument + " [" + bucketArgument + "...]",
			Flags:     []cli.Flag{cksumTypeFlag, versioningFlag},
			Action:    createBucketHandler,
		},
		{
			Name:      cmdRemove,
			Usage:     "destroy bucket(s) along with all their objects",
			ArgsUsage: bucketArgument + " [" + bucketArgument + "...]",
			Action:    destroyBucketHandler,
		},
		{
			Name:      cmdList,
			Usage:     "list buckets (all providers or only the specified one)",
			ArgsUsage: optionalBucketArg,
			Flags:     []cli.Flag{noHeaderFlag, jsonFlag, yamlFlag},
			Action: func(c *cli.Context) error {
				return listBuckets(c, c.Args().First())
			},
		},
		{
			Name:      cmdHead,
			Usage:     "show bucket properties",
			ArgsUsage: bucketArgument,
			Flags:     []cli.Flag{noHeaderFlag, jsonFlag, yamlFlag},
			Action:    headBucketHandler,
		},
	},
}

func parseBckURIs(c *cli.Context) (bcks []cmn.Bck, err error) {
	if c.NArg() == 0 {
		return nil, missingArgumentsError(c, bucketArgument)
	}
	for _, uri := range c.Args() {
		bck, objName, err := cmn.ParseBckObjectURI(uri)
		if err != nil {
			return nil, err
		}
		if objName != "" {
			return nil, incorrectUsageMsg(c, "%q: expecting bucket name, got object name %q", uri, objName)
		}
		bcks = append(bcks, bck)
	}
	return bcks, nil
}

func createBucketHandler(c *cli.Context) error {
	bcks, err := parseBckURIs(c)
	if err != nil {
		return err
	}
	var props *cmn.Bprops
	if flagIsSet(c, cksumTypeFlag) || flagIsSet(c, versioningFlag) {
		props = &cmn.Bprops{Versioning: flagIsSet(c, versioningFlag)}
		if ty := parseStrFlag(c, cksumTypeFlag); ty != "" {
			if err := cos.ValidateCksumType(ty); err != nil {
				return err
			}
			props.CksumType = ty
		}
	}
	for _, bck := range bcks {
		if err := api.CreateBucket(apiBP, bck, props); err != nil {
			if cmn.IsErrBckAlreadyExists(err) {
				return fmt.Errorf("bucket %s already exists", bck.Cname(""))
			}
			return err
		}
		fmt.Fprintf(c.App.Writer, "%q created\n", bck.Cname(""))
	}
	return nil
}

func destroyBucketHandler(c *cli.Context) error {
	bcks, err := parseBckURIs(c)
	if err != nil {
		return err
	}
	for _, bck := range bcks {
		if err := api.DestroyBucket(apiBP, bck); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%q destroyed\n", bck.Cname(""))
	}
	return nil
}

func listBuckets(c *cli.Context, provider string) error {
	if provider != "" {
		p, err := cmn.NormalizeProvider(provider)
		if err != nil {
			return err
		}
		provider = p
	}
	bcks, err := api.ListBuckets(apiBP, provider)
	if err != nil {
		return err
	}
	sort.Sort(bcks)
	if ok, err := printStructured(c, c.App.Writer, bcks); ok {
		return err
	}
	if len(bcks) == 0 {
		fmt.Fprintln(c.App.Writer, "No buckets.")
		return nil
	}
	tbl := newTable(c.App.Writer, flagIsSet(c, noHeaderFlag), "name", "provider")
	for _, bck := range bcks {
		tbl.row(bck.Cname(""), bck.Provider)
	}
	return tbl.flush()
}

func headBucketHandler(c *cli.Context) error {
	bcks, err := parseBckURIs(c)
	if err != nil {
		return err
	}
	if len(bcks) > 1 {
		return incorrectUsageMsg(c, "", c.Args()[1:])
	}
	bck := bcks[0]
	props, err := api.HeadBucket(apiBP, bck)
	if err != nil {
		return err
	}
	if ok, err := printStructured(c, c.App.Writer, props); ok {
		return err
	}
	tbl := newTable(c.App.Writer, flagIsSet(c, noHeaderFlag), "property", "value")
	tbl.row("provider", props.Provider)
	tbl.row("checksum", orUnknown(props.CksumType))
	tbl.row("versioning", strconv.FormatBool(props.Versioning))
	tbl.row("created", fmtTime(props.Created))
	tbl.row("bid", strconv.FormatUint(props.BID, 10))
	return tbl.flush()
}
