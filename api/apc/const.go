// Package apc: API control messages and constants
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

import (
	"path"
)

// URL path elements
const (
	Version  = "v1"
	Buckets  = "buckets"
	Objects  = "objects"
	Cluster  = "cluster"
	Health   = "health"
	Tokens   = "tokens"
	Metrics  = "metrics"
	Daemon   = "daemon"
	Promote  = "promote"
	Xactions = "xactions"
)

type URLPath struct {
	L []string
	S string
}

var (
	URLPathBuckets = urlpath(Version, Buckets)
	URLPathObjects = urlpath(Version, Objects)
	URLPathCluster = urlpath(Version, Cluster)
	URLPathHealth  = urlpath(Version, Health)
	URLPathMetrics = urlpath(Metrics)
)

func urlpath(words ...string) URLPath {
	return URLPath{L: words, S: path.Join(append([]string{"/"}, words...)...)}
}

func (u URLPath) Join(words ...string) string {
	return path.Join(append([]string{u.S}, words...)...)
}
