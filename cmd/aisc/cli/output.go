// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
// This file contains output formatting: tables, JSON, and YAML.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

const (
	fmtTable = iota
	fmtJSON
	fmtYAML
)

const unknownVal = "-"

func outputFormat(c *cli.Context) int {
	switch {
	case flagIsSet(c, jsonFlag):
		return fmtJSON
	case flagIsSet(c, yamlFlag):
		return fmtYAML
	default:
		return fmtTable
	}
}

// structured output (JSON or YAML); returns false for tables
func printStructured(c *cli.Context, w io.Writer, v any) (bool, error) {
	switch outputFormat(c) {
	case fmtJSON:
		enc := cos.JSON.NewEncoder(w)
		enc.SetIndent("", "    ")
		return true, enc.Encode(v)
	case fmtYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(v)
		if errc := enc.Close(); err == nil {
			err = errc
		}
		return true, err
	default:
		return false, nil
	}
}

///////////
// table //
///////////

type table struct {
	tw       *tabwriter.Writer
	hdr      []string
	noHeader bool
}

func newTable(w io.Writer, noHeader bool, hdr ...string) *table {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	t := &table{tw: tw, hdr: hdr, noHeader: noHeader}
	if !noHeader {
		fmt.Fprintln(tw, strings.ToUpper(strings.Join(hdr, "\t")))
	}
	return t
}

func (t *table) row(cols ...string) { fmt.Fprintln(t.tw, strings.Join(cols, "\t")) }
func (t *table) flush() error       { return t.tw.Flush() }

///////////////////////
// list-objects rows //
///////////////////////

// table columns that correspond to the requested properties
func lsoColumns(lsmsg *apc.LsoMsg) (cols []string) {
	cols = append(cols, apc.GetPropsName)
	for _, prop := range apc.GetPropsAll {
		if prop != apc.GetPropsName && lsmsg.WantProp(prop) {
			cols = append(cols, prop)
		}
	}
	return cols
}

func lsoRow(en *cmn.LsoEnt, cols []string) []string {
	row := make([]string, 0, len(cols))
	for _, col := range cols {
		row = append(row, lsoProp(en, col))
	}
	return row
}

func lsoProp(en *cmn.LsoEnt, prop string) string {
	switch prop {
	case apc.GetPropsName:
		return en.Name
	case apc.GetPropsSize:
		return cos.ToSizeIEC(en.Size, 2)
	case apc.GetPropsChecksum:
		return orUnknown(en.Checksum)
	case apc.GetPropsAtime:
		return orUnknown(en.Atime)
	case apc.GetPropsVersion:
		return orUnknown(en.Version)
	case apc.GetPropsCached:
		if en.IsPresent() {
			return "yes"
		}
		return "no"
	case apc.GetPropsStatus:
		if en.IsStatusOK() {
			return "ok"
		}
		return "status-" + strconv.Itoa(int(en.Status()))
	case apc.GetPropsCopies:
		return strconv.Itoa(int(en.Copies))
	case apc.GetPropsCustom:
		return orUnknown(en.Custom)
	case apc.GetPropsLocation:
		return orUnknown(en.Location)
	default:
		return unknownVal
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknownVal
	}
	return s
}

func fmtTime(unixNano int64) string {
	if unixNano == 0 {
		return unknownVal
	}
	return time.Unix(0, unixNano).Format(time.RFC3339)
}
