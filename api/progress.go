// Package api provides native Go-based API/SDK over HTTP(S).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"time"

	"github.com/NVIDIA/aisclient/cmn/mono"
)

// listing progress: callers pass ProgressContext via ListArgs
// and get called back (at most) once per page
type (
	// negative Total means "unknown" (no limit)
	ProgressInfo struct {
		Count int   // entries listed so far
		Pages int   // pages fetched so far
		Total int64 // ListArgs.Limit, if specified
		Done  bool
	}
	ProgressContext struct {
		callback  ProgressCallback
		info      ProgressInfo
		startTime int64
		interval  int64 // min time between callbacks; zero - every page
		lastCall  int64
	}
	ProgressCallback = func(pctx *ProgressContext)
)

func NewProgressContext(cb ProgressCallback, interval time.Duration) *ProgressContext {
	now := mono.NanoTime()
	return &ProgressContext{
		info:      ProgressInfo{Total: -1},
		startTime: now,
		callback:  cb,
		interval:  interval.Nanoseconds(),
	}
}

func (pctx *ProgressContext) update(cnt int, done bool) {
	pctx.info.Count = cnt
	pctx.info.Pages++
	pctx.info.Done = done
	if !done && pctx.interval > 0 {
		now := mono.NanoTime()
		if pctx.lastCall != 0 && now-pctx.lastCall < pctx.interval {
			return
		}
		pctx.lastCall = now
	}
	if pctx.callback != nil {
		pctx.callback(pctx)
	}
}

func (pctx *ProgressContext) IsFinished() bool       { return pctx.info.Done }
func (pctx *ProgressContext) Elapsed() time.Duration { return mono.Since(pctx.startTime) }
func (pctx *ProgressContext) Info() ProgressInfo     { return pctx.info }
