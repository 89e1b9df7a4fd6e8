// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
// This file handles list-objects: eager (all pages), paged, and lazy (iterator).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/nlog"
	"github.com/urfave/cli"
)

var (
	lsFlags = []cli.Flag{
		prefixFlag,
		pageSizeFlag,
		pagedFlag,
		lazyFlag,
		limitFlag,
		startAfterFlag,
		propsFlag,
		nameOnlyFlag,
		progressFlag,
		noHeaderFlag,
		jsonFlag,
		yamlFlag,
	}
	listCmd = cli.Command{
		Name:      commandList,
		Usage:     "list buckets or objects in a given bucket",
		ArgsUsage: "[" + bucketArgument + "[/PREFIX]]",
		Flags:     lsFlags,
		Action:    listAnyHandler,
	}
)

func listAnyHandler(c *cli.Context) error {
	if c.NArg() == 0 {
		return listBuckets(c, "")
	}
	if c.NArg() > 1 {
		return incorrectUsageMsg(c, "", c.Args()[1:])
	}
	uri := c.Args().First()
	if !strings.Contains(uri, apc.BckProviderSeparator) && strings.HasSuffix(uri, ":") {
		// e.g. `aisc ls s3:`
		return listBuckets(c, strings.TrimSuffix(uri, ":"))
	}
	bck, prefix, err := cmn.ParseBckObjectURI(uri)
	if err != nil {
		return err
	}
	if prefix != "" && flagIsSet(c, prefixFlag) {
		return incorrectUsageMsg(c, "prefix specified twice: %q and %s=%q", prefix, flprn(prefixFlag), parseStrFlag(c, prefixFlag))
	}
	if prefix == "" {
		prefix = parseStrFlag(c, prefixFlag)
	}
	lsmsg, err := newLsoMsg(c, prefix)
	if err != nil {
		return err
	}
	limit := int64(parseIntFlag(c, limitFlag))
	if limit < 0 {
		return incorrectUsageMsg(c, "invalid %s=%d", flprn(limitFlag), limit)
	}
	switch {
	case flagIsSet(c, pagedFlag) && flagIsSet(c, lazyFlag):
		return incorrectUsageMsg(c, "%s and %s are mutually exclusive", qflprn(pagedFlag), qflprn(lazyFlag))
	case flagIsSet(c, pagedFlag):
		return listPaged(c, bck, lsmsg, limit)
	case flagIsSet(c, lazyFlag):
		return listLazy(c, bck, lsmsg, limit)
	default:
		return listAll(c, bck, lsmsg, limit)
	}
}

func newLsoMsg(c *cli.Context, prefix string) (*apc.LsoMsg, error) {
	lsmsg := &apc.LsoMsg{Prefix: prefix, StartAfter: parseStrFlag(c, startAfterFlag)}

	pageSize := int64(parseIntFlag(c, pageSizeFlag))
	if !flagIsSet(c, pageSizeFlag) && cfg != nil {
		pageSize = cfg.PageSize
	}
	if pageSize < 0 {
		return nil, incorrectUsageMsg(c, "invalid %s=%d", flprn(pageSizeFlag), pageSize)
	}
	lsmsg.PageSize = pageSize

	if flagIsSet(c, nameOnlyFlag) {
		lsmsg.Flags |= apc.LsNameOnly
		lsmsg.AddProps(apc.GetPropsName)
		return lsmsg, nil
	}
	props := parseStrFlag(c, propsFlag)
	if props == "" {
		props = propsFlag.Value
	}
	if props == "all" {
		lsmsg.AddProps(apc.GetPropsAll...)
		return lsmsg, nil
	}
	for p := range strings.SplitSeq(props, ",") {
		p = strings.TrimSpace(p)
		if !isValidProp(p) {
			return nil, incorrectUsageMsg(c, "invalid object property %q (expecting one of: %s)", p, strings.Join(apc.GetPropsAll, ", "))
		}
		lsmsg.AddProps(p)
	}
	return lsmsg, nil
}

func isValidProp(p string) bool {
	for _, prop := range apc.GetPropsAll {
		if p == prop {
			return true
		}
	}
	return false
}

// eager: all pages (up to the limit) in one call, with an optional progress bar
func listAll(c *cli.Context, bck cmn.Bck, lsmsg *apc.LsoMsg, limit int64) error {
	var (
		args = api.ListArgs{Limit: limit}
		pb   *pbar
	)
	if wantProgress(flagIsSet(c, progressFlag)) {
		pb = newCountBar(barTextList, limit)
		cb := func(pctx *api.ProgressContext) {
			info := pctx.Info()
			pb.set(int64(info.Count), info.Total < 0 && !info.Done)
		}
		args.Progress = api.NewProgressContext(cb, dfltProgressInterval)
	}
	lst, err := api.ListObjects(apiBP, bck, lsmsg, args)
	pb.done(err)
	if err != nil {
		return err
	}
	if args.Progress != nil {
		info := args.Progress.Info()
		nlog.Infof("%s: listed %d names in %d page(s), %v", bck.String(), info.Count, info.Pages, args.Progress.Elapsed())
	}
	if ok, err := printStructured(c, c.App.Writer, lst); ok {
		return err
	}
	return printEntries(c, lsmsg, lst.Entries, !flagIsSet(c, noHeaderFlag))
}

// paged: one page at a time, printed as it arrives
func listPaged(c *cli.Context, bck cmn.Bck, lsmsg *apc.LsoMsg, limit int64) error {
	var (
		cnt  int64
		page int
	)
	cur := api.NewLsoCursor(bck, lsmsg)
	for !cur.Done() {
		lst, next, err := cur.Fetch(apiBP)
		if err != nil {
			return err
		}
		cur = next
		page++
		entries := lst.Entries
		if limit > 0 && cnt+int64(len(entries)) > limit {
			entries = entries[:limit-cnt]
		}
		cnt += int64(len(entries))
		lst.Entries = entries
		if ok, err := printStructured(c, c.App.Writer, lst); ok {
			if err != nil {
				return err
			}
		} else if err := printEntries(c, lsmsg, entries, page == 1 && !flagIsSet(c, noHeaderFlag)); err != nil {
			return err
		}
		if limit > 0 && cnt >= limit {
			break
		}
	}
	nlog.Infof("%s: listed %d names in %d page(s)", bck.String(), cnt, page)
	return nil
}

// lazy: pages are fetched only when the previous one is consumed
func listLazy(c *cli.Context, bck cmn.Bck, lsmsg *apc.LsoMsg, limit int64) error {
	var (
		cnt  int64
		tbl  *table
		cols = lsoColumns(lsmsg)
		it   = api.NewObjIter(apiBP, bck, lsmsg)
		ofmt = outputFormat(c)
	)
	if ofmt == fmtTable && len(cols) > 1 {
		tbl = newTable(c.App.Writer, flagIsSet(c, noHeaderFlag), cols...)
	}
	for en, err := range it.All() {
		if err != nil {
			if tbl != nil {
				tbl.flush()
			}
			return err
		}
		switch {
		case tbl != nil:
			tbl.row(lsoRow(en, cols)...)
		case ofmt == fmtTable:
			fmt.Fprintln(c.App.Writer, en.Name)
		default:
			if _, err := printStructured(c, c.App.Writer, en); err != nil {
				return err
			}
		}
		cnt++
		if limit > 0 && cnt >= limit {
			break
		}
	}
	nlog.Infof("%s: listed %d names in %d page(s)", bck.String(), cnt, it.Pages())
	if tbl != nil {
		return tbl.flush()
	}
	return nil
}

func printEntries(c *cli.Context, lsmsg *apc.LsoMsg, entries cmn.LsoEntries, withHeader bool) error {
	cols := lsoColumns(lsmsg)
	if len(cols) == 1 {
		for _, en := range entries {
			fmt.Fprintln(c.App.Writer, en.Name)
		}
		return nil
	}
	tbl := newTable(c.App.Writer, !withHeader, cols...)
	for _, en := range entries {
		tbl.row(lsoRow(en, cols)...)
	}
	return tbl.flush()
}
