// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
// This file contains progress bars.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"os"
	"sync/atomic"

	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"
	"golang.org/x/term"
)

const barWidth = 64

// pbar is a single mpb bar rendered to stderr; a nil *pbar is a no-op,
// so callers don't have to check whether progress was requested.
type pbar struct {
	p   *mpb.Progress
	bar *mpb.Bar
	cur atomic.Int64
}

// progress bars are shown only when stdout is a terminal
func isTerminal() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

func wantProgress(on bool) bool { return on && isTerminal() }

// objects, listed or processed
func newCountBar(text string, total int64) *pbar {
	return newBar(text, total, decor.CountersNoUnit("%d/%d", decor.WCSyncWidth))
}

// bytes transferred
func newSizeBar(text string, total int64) *pbar {
	return newBar(text, total, decor.CountersKibiByte("% .2f / % .2f", decor.WCSyncWidth))
}

func newBar(text string, total int64, counters decor.Decorator) *pbar {
	p := mpb.New(mpb.WithWidth(barWidth), mpb.WithOutput(os.Stderr))
	name := decor.Name(text, decor.WC{W: len(text) + 1, C: decor.DidentRight})
	bar := p.AddBar(max(total, 1),
		mpb.PrependDecorators(name, counters),
		mpb.AppendDecorators(decor.Percentage(decor.WCSyncWidth)),
	)
	return &pbar{p: p, bar: bar}
}

func (pb *pbar) incr(n int64) {
	if pb != nil {
		pb.cur.Add(n)
		pb.bar.IncrInt64(n)
	}
}

// set current count; with unknown total, keep the bar one step ahead
func (pb *pbar) set(cur int64, unknownTotal bool) {
	if pb == nil {
		return
	}
	if unknownTotal {
		pb.bar.SetTotal(cur+1, false)
	}
	pb.cur.Store(cur)
	pb.bar.SetCurrent(cur)
}

// complete the bar (or abort it on error) and wait for the final render
func (pb *pbar) done(err error) {
	if pb == nil {
		return
	}
	if err != nil {
		pb.bar.Abort(true)
	} else {
		pb.bar.SetTotal(pb.cur.Load(), true)
	}
	pb.p.Wait()
}
