// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
// This file contains flag parsers and helpers.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"strings"
	"time"

	"github.com/urfave/cli"
)

// "page-size,p" => "page-size"
func fl1n(names string) string {
	first, _, _ := strings.Cut(names, ",")
	return strings.TrimSpace(first)
}

func flprn(f cli.Flag) string  { return "--" + fl1n(f.GetName()) }
func qflprn(f cli.Flag) string { return "'" + flprn(f) + "'" }

// global flags (e.g. --no-color) are visible from subcommands as well
func flagIsSet(c *cli.Context, flag cli.Flag) bool {
	name := fl1n(flag.GetName())
	if _, ok := flag.(cli.BoolFlag); ok {
		return c.Bool(name) || c.GlobalBool(name)
	}
	return c.IsSet(name) || c.GlobalIsSet(name)
}

// value from the global scope if set there, otherwise local (or default)
func flagValue[T any](c *cli.Context, flag cli.Flag, global, local func(string) T) T {
	name := fl1n(flag.GetName())
	if c.GlobalIsSet(name) {
		return global(name)
	}
	return local(name)
}

func parseStrFlag(c *cli.Context, flag cli.Flag) string {
	return flagValue(c, flag, c.GlobalString, c.String)
}

func parseIntFlag(c *cli.Context, flag cli.IntFlag) int {
	return flagValue(c, flag, c.GlobalInt, c.Int)
}

func parseInt64Flag(c *cli.Context, flag cli.Int64Flag) int64 {
	return flagValue(c, flag, c.GlobalInt64, c.Int64)
}

func parseDurationFlag(c *cli.Context, flag cli.DurationFlag) time.Duration {
	return flagValue(c, flag, c.GlobalDuration, c.Duration)
}

// "key1=value1,key2=value2" => map
func parseKVs(s string) (map[string]string, error) {
	if s == "" {
		return nil, nil
	}
	kvs := make(map[string]string, 4)
	for kv := range strings.SplitSeq(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(kv), "=")
		if !ok || k == "" {
			return nil, &errInvalidKV{kv}
		}
		kvs[k] = v
	}
	return kvs, nil
}
