// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
// This file handles object commands.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/cmn/nlog"
	"github.com/karrick/godirwalk"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

var objectCmd = cli.Command{
	Name:  commandObject,
	Usage: "put, get, remove, and promote objects; show object properties",
	Subcommands: []cli.Command{
		{
			Name:      cmdPut,
			Usage:     "upload a file or a directory (all files, optionally recursively) to a bucket",
			ArgsUsage: putObjectArgument,
			Flags:     []cli.Flag{recursiveFlag, computeCksumFlag, concurrencyFlag, customMDFlag, progressFlag},
			Action:    putHandler,
		},
		{
			Name:      cmdGet,
			Usage:     "read object and write it to a file or standard output ('-')",
			ArgsUsage: getObjectArgument,
			Flags:     []cli.Flag{offsetFlag, lengthFlag, validateFlag},
			Action:    getHandler,
		},
		{
			Name:      cmdHead,
			Usage:     "show object properties",
			ArgsUsage: objectArgument,
			Flags:     []cli.Flag{noHeaderFlag, jsonFlag, yamlFlag},
			Action:    headHandler,
		},
		{
			Name:      cmdRemove,
			Usage:     "remove object(s)",
			ArgsUsage: objectArgument + " [" + objectArgument + "...]",
			Action:    removeHandler,
		},
		{
			Name:      cmdPromote,
			Usage:     "promote file or directory that is accessible to the gateway (must be absolute pathname)",
			ArgsUsage: promoteArgument,
			Flags:     []cli.Flag{recursiveFlag, overwriteFlag, deleteSrcFlag, waitFlag, timeoutFlag},
			Action:    promoteHandler,
		},
	},
}

func parseObjURI(c *cli.Context, uri string, emptyObjOK bool) (bck cmn.Bck, objName string, err error) {
	bck, objName, err = cmn.ParseBckObjectURI(uri)
	if err != nil {
		return
	}
	if objName == "" && !emptyObjOK {
		err = incorrectUsageMsg(c, "%q: missing object name", uri)
	}
	return
}

/////////
// PUT //
/////////

type putJob struct {
	fqn     string
	objName string
	size    int64
}

func putHandler(c *cli.Context) error {
	if c.NArg() < 2 {
		return missingArgumentsError(c, "FILE|DIRECTORY", objectArgument)
	}
	if c.NArg() > 2 {
		return incorrectUsageMsg(c, "", c.Args()[2:])
	}
	src := c.Args().Get(0)
	bck, objName, err := parseObjURI(c, c.Args().Get(1), true /*prefix or empty*/)
	if err != nil {
		return err
	}
	customMD, err := parseKVs(parseStrFlag(c, customMDFlag))
	if err != nil {
		return err
	}
	cksumType := parseStrFlag(c, computeCksumFlag)
	if err := cos.ValidateCksumType(cksumType, true /*empty OK*/); err != nil {
		return err
	}
	finfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	var jobs []putJob
	if !finfo.IsDir() {
		if objName == "" {
			objName = filepath.Base(src)
		}
		jobs = []putJob{{fqn: src, objName: objName, size: finfo.Size()}}
	} else if jobs, err = listFiles(src, objName, flagIsSet(c, recursiveFlag)); err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no files to upload in %q", src)
	}
	return putFiles(c, bck, jobs, cksumType, customMD)
}

// directory => files to upload (objName, if given, is used as a virtual directory)
func listFiles(dir, prefix string, recursive bool) (jobs []putJob, _ error) {
	dir = filepath.Clean(dir)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	callback := func(fqn string, de *godirwalk.Dirent) error {
		if de.IsDir() {
			if !recursive && fqn != dir {
				return godirwalk.SkipThis
			}
			return nil
		}
		if !de.IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, fqn)
		if err != nil {
			return err
		}
		finfo, err := os.Stat(fqn)
		if err != nil {
			return err
		}
		jobs = append(jobs, putJob{fqn: fqn, objName: prefix + filepath.ToSlash(rel), size: finfo.Size()})
		return nil
	}
	err := godirwalk.Walk(dir, &godirwalk.Options{Callback: callback, Unsorted: false})
	return jobs, err
}

func putFiles(c *cli.Context, bck cmn.Bck, jobs []putJob, cksumType string, customMD map[string]string) error {
	var (
		total int64
		pb    *pbar
		conc  = max(parseIntFlag(c, concurrencyFlag), 1)
	)
	for i := range jobs {
		total += jobs[i].size
	}
	if wantProgress(flagIsSet(c, progressFlag)) {
		pb = newSizeBar(barTextPut, total)
	}
	g := &errgroup.Group{}
	g.SetLimit(conc)
	for i := range jobs {
		job := jobs[i]
		g.Go(func() error {
			if err := putFile(bck, &job, cksumType, customMD); err != nil {
				return fmt.Errorf("failed to put %q => %s: %w", job.fqn, bck.Cname(job.objName), err)
			}
			if pb != nil {
				pb.incr(job.size)
			} else if len(jobs) > 1 {
				nlog.Infoln("PUT", job.fqn, "=>", bck.Cname(job.objName))
			}
			return nil
		})
	}
	err := g.Wait()
	pb.done(err)
	if err != nil {
		return err
	}
	if len(jobs) == 1 {
		fmt.Fprintf(c.App.Writer, "PUT %q => %s\n", jobs[0].fqn, bck.Cname(jobs[0].objName))
	} else {
		fmt.Fprintf(c.App.Writer, "PUT %d files (%s) => %s\n", len(jobs), cos.ToSizeIEC(total, 2), bck.Cname(""))
	}
	return nil
}

func putFile(bck cmn.Bck, job *putJob, cksumType string, customMD map[string]string) error {
	var (
		cksum *cos.Cksum
		err   error
	)
	if cksumType != "" && cksumType != cos.ChecksumNone {
		if cksum, err = cos.ChecksumFile(job.fqn, cksumType); err != nil {
			return err
		}
	}
	fh, err := os.Open(job.fqn)
	if err != nil {
		return err
	}
	defer cos.Close(fh)
	_, err = api.PutObject(&api.PutArgs{
		BaseParams: apiBP,
		Bck:        bck,
		ObjName:    job.objName,
		Reader:     fh,
		Size:       uint64(job.size),
		Cksum:      cksum,
		CustomMD:   customMD,
	})
	return err
}

/////////
// GET //
/////////

func getHandler(c *cli.Context) error {
	if c.NArg() == 0 {
		return missingArgumentsError(c, objectArgument)
	}
	if c.NArg() > 2 {
		return incorrectUsageMsg(c, "", c.Args()[2:])
	}
	bck, objName, err := parseObjURI(c, c.Args().Get(0), false)
	if err != nil {
		return err
	}
	outFile := c.Args().Get(1)
	if outFile == "" {
		outFile = filepath.Base(objName)
	}

	args := &api.GetArgs{}
	if flagIsSet(c, offsetFlag) || flagIsSet(c, lengthFlag) {
		offset, length := parseInt64Flag(c, offsetFlag), parseInt64Flag(c, lengthFlag)
		if offset < 0 || length < 0 {
			return incorrectUsageMsg(c, "invalid range: offset %d, length %d", offset, length)
		}
		rng := cos.HdrRangeValPrefix + strconv.FormatInt(offset, 10) + "-"
		if length > 0 {
			rng += strconv.FormatInt(offset+length-1, 10)
		}
		args.Header = http.Header{cos.HdrRange: []string{rng}}
	}

	var w io.Writer
	if outFile == "-" {
		w = c.App.Writer
	} else {
		fh, err := cos.CreateFile(outFile)
		if err != nil {
			return err
		}
		defer cos.Close(fh)
		w = fh
	}
	args.Writer = w

	var oah api.ObjAttrs
	if flagIsSet(c, validateFlag) {
		oah, err = api.GetObjectWithValidation(apiBP, bck, objName, args)
	} else {
		oah, err = api.GetObject(apiBP, bck, objName, args)
	}
	if err != nil {
		if outFile != "-" {
			os.Remove(outFile)
		}
		return err
	}
	if outFile != "-" {
		fmt.Fprintf(c.App.Writer, "GET %s => %q (%s)\n", bck.Cname(objName), outFile, cos.ToSizeIEC(oah.Size(), 2))
	}
	return nil
}

func headHandler(c *cli.Context) error {
	if c.NArg() == 0 {
		return missingArgumentsError(c, objectArgument)
	}
	bck, objName, err := parseObjURI(c, c.Args().First(), false)
	if err != nil {
		return err
	}
	attrs, err := api.HeadObject(apiBP, bck, objName)
	if err != nil {
		return err
	}
	if ok, err := printStructured(c, c.App.Writer, attrs); ok {
		return err
	}
	tbl := newTable(c.App.Writer, flagIsSet(c, noHeaderFlag), "property", "value")
	tbl.row(apc.GetPropsName, bck.Cname(objName))
	tbl.row(apc.GetPropsSize, cos.ToSizeIEC(attrs.Size, 2))
	tbl.row(apc.GetPropsChecksum, attrs.Cksum.String())
	tbl.row(apc.GetPropsAtime, fmtTime(attrs.Atime))
	tbl.row(apc.GetPropsVersion, orUnknown(attrs.Ver))
	if len(attrs.CustomMD) > 0 {
		tbl.row(apc.GetPropsCustom, attrs.CustomMDString())
	}
	return tbl.flush()
}

func removeHandler(c *cli.Context) error {
	if c.NArg() == 0 {
		return missingArgumentsError(c, objectArgument)
	}
	var errs []error
	for _, uri := range c.Args() {
		bck, objName, err := parseObjURI(c, uri, false)
		if err != nil {
			return err
		}
		if err := api.DeleteObject(apiBP, bck, objName); err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(c.App.Writer, "deleted %s\n", bck.Cname(objName))
	}
	return errors.Join(errs...)
}

/////////////
// PROMOTE //
/////////////

func promoteHandler(c *cli.Context) error {
	if c.NArg() < 2 {
		return missingArgumentsError(c, "FILE|DIRECTORY", bucketArgument)
	}
	src, err := filepath.Abs(c.Args().Get(0))
	if err != nil {
		return err
	}
	bck, objName, err := parseObjURI(c, c.Args().Get(1), true)
	if err != nil {
		return err
	}
	args := &apc.PromoteArgs{
		SrcFQN:       src,
		ObjName:      objName,
		Recursive:    flagIsSet(c, recursiveFlag),
		OverwriteDst: flagIsSet(c, overwriteFlag),
		DeleteSrc:    flagIsSet(c, deleteSrcFlag),
	}
	xid, err := api.Promote(apiBP, bck, args)
	if err != nil {
		return err
	}
	if xid == "" {
		fmt.Fprintf(c.App.Writer, "promoted %q => %s\n", src, bck.Cname(objName))
		return nil
	}
	fmt.Fprintf(c.App.Writer, "promoting %q => %s, job %s\n", src, bck.Cname(objName), fcyan(xid))
	if !flagIsSet(c, waitFlag) {
		return nil
	}
	return waitJob(c, xid, apc.ActPromote, bck)
}
