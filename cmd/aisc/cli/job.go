// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
// This file handles jobs (xactions): start, wait, show status, and stop.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/xact"
	"github.com/urfave/cli"
)

var jobCmd = cli.Command{
	Name:  commandJob,
	Usage: "start, wait for, stop, and show status of batch jobs",
	Subcommands: []cli.Command{
		{
			Name:      cmdStart,
			Usage:     "start job (one of: " + strings.Join(xact.ListDisplayNames(true /*startable*/), ", ") + ")",
			ArgsUsage: jobStartArgument,
			Flags:     []cli.Flag{waitFlag, timeoutFlag, forceFlag},
			Action:    startJobHandler,
		},
		{
			Name:      cmdWait,
			Usage:     "wait for the specified job to finish",
			ArgsUsage: jobIDArgument,
			Flags:     []cli.Flag{timeoutFlag},
			Action:    waitJobHandler,
		},
		{
			Name:      cmdStatus,
			Usage:     "show job status",
			ArgsUsage: jobIDArgument,
			Flags:     []cli.Flag{noHeaderFlag, jsonFlag, yamlFlag},
			Action:    jobStatusHandler,
		},
		{
			Name:      cmdStop,
			Usage:     "stop (abort) job",
			ArgsUsage: jobIDArgument,
			Flags:     []cli.Flag{waitFlag, timeoutFlag},
			Action:    stopJobHandler,
		},
	},
}

// JOB_ID | KIND [BUCKET]
func parseJobArgs(c *cli.Context) (*xact.ArgsMsg, error) {
	if c.NArg() == 0 {
		return nil, missingArgumentsError(c, jobIDArgument)
	}
	var (
		args  = &xact.ArgsMsg{}
		first = c.Args().First()
	)
	if kind, _ := xact.GetKindName(first); kind != "" {
		args.Kind = kind
	} else {
		if err := xact.CheckValidUUID(first); err != nil {
			return nil, err
		}
		args.ID = first
	}
	if c.NArg() > 1 {
		bck, objName, err := cmn.ParseBckObjectURI(c.Args().Get(1))
		if err != nil {
			return nil, err
		}
		if objName != "" {
			return nil, incorrectUsageMsg(c, "%q: expecting bucket name", c.Args().Get(1))
		}
		args.Bck = bck
	}
	if c.NArg() > 2 {
		return nil, incorrectUsageMsg(c, "", c.Args()[2:])
	}
	return args, nil
}

func startJobHandler(c *cli.Context) error {
	if c.NArg() == 0 {
		return missingArgumentsError(c, "KIND")
	}
	kind, err := xact.CheckStartable(c.Args().First())
	if err != nil {
		return err
	}
	args, err := parseJobArgs(c)
	if err != nil {
		return err
	}
	args.Kind, args.ID = kind, ""
	args.Force = flagIsSet(c, forceFlag)
	xid, err := api.StartXaction(apiBP, args)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Started %s[%s]\n", kind, fcyan(xid))
	if !flagIsSet(c, waitFlag) {
		return nil
	}
	return waitJob(c, xid, kind, args.Bck)
}

func waitJobHandler(c *cli.Context) error {
	args, err := parseJobArgs(c)
	if err != nil {
		return err
	}
	return waitJob(c, args.ID, args.Kind, args.Bck)
}

func waitJob(c *cli.Context, xid, kind string, bck cmn.Bck) error {
	args := &xact.ArgsMsg{ID: xid, Kind: kind, Bck: bck, Timeout: parseDurationFlag(c, timeoutFlag)}
	if xid != "" {
		status, err := api.WaitForXaction(apiBP, args)
		if err != nil {
			return err
		}
		return reportDone(c, status)
	}
	// by kind: wait for all running
	elapsed, err := api.WaitForSnaps(apiBP, args, args.Finished())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s: done (%v)\n", kind, elapsed.Round(time.Millisecond))
	return nil
}

func reportDone(c *cli.Context, status *xact.Status) error {
	switch {
	case status.IsAborted():
		return fmt.Errorf("%s[%s] aborted: %s", status.Kind, status.UUID, status.Err())
	case status.Err() != "":
		return fmt.Errorf("%s[%s] failed: %s", status.Kind, status.UUID, status.Err())
	}
	fmt.Fprintf(c.App.Writer, "%s[%s]: %s\n", status.Kind, fcyan(status.UUID), fgreen("done"))
	return nil
}

func jobStatusHandler(c *cli.Context) error {
	args, err := parseJobArgs(c)
	if err != nil {
		return err
	}
	snaps, err := api.QueryXactionSnaps(apiBP, args)
	if err != nil {
		return err
	}
	if ok, err := printStructured(c, c.App.Writer, snaps); ok {
		return err
	}
	tids := make([]string, 0, len(snaps))
	for tid := range snaps {
		tids = append(tids, tid)
	}
	sort.Strings(tids)
	tbl := newTable(c.App.Writer, flagIsSet(c, noHeaderFlag), "node", "id", "kind", "bucket", "objects", "bytes", "start", "end", "state")
	for _, tid := range tids {
		for _, snap := range snaps[tid] {
			bname := unknownVal
			if !snap.Bck.IsEmpty() {
				bname = snap.Bck.Cname("")
			}
			tbl.row(tid, snap.ID, snap.Kind, bname,
				fmt.Sprintf("%d", snap.Stats.Objs), cos.ToSizeIEC(snap.Stats.Bytes, 2),
				fmtStdTime(snap.StartTime), fmtStdTime(snap.EndTime), snapState(snap))
		}
	}
	return tbl.flush()
}

func snapState(snap *xact.Snap) string {
	switch {
	case snap.IsAborted():
		return fred("aborted")
	case snap.IsRunning():
		return fcyan("running")
	case snap.IsFinished():
		return fgreen("finished")
	default:
		return "idle"
	}
}

func fmtStdTime(t time.Time) string {
	if t.IsZero() {
		return unknownVal
	}
	return t.Format(time.RFC3339)
}

func stopJobHandler(c *cli.Context) error {
	args, err := parseJobArgs(c)
	if err != nil {
		return err
	}
	if err = api.AbortXaction(apiBP, args); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Stopped %s\n", args.String())
	if !flagIsSet(c, waitFlag) {
		return nil
	}
	args.Timeout = parseDurationFlag(c, timeoutFlag)
	_, err = api.WaitForSnaps(apiBP, args, args.NotRunning())
	return err
}
