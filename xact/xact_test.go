// Package xact_test tests job descriptors, snapshots, and wait conditions
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package xact_test

import (
	"slices"
	"testing"
	"time"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/tools/tassert"
	"github.com/NVIDIA/aisclient/xact"
)

func TestKindNames(t *testing.T) {
	kind, name := xact.GetKindName("lru-eviction")
	tassert.Errorf(t, kind == apc.ActLRU && name == "lru-eviction", "got %q, %q", kind, name)
	kind, name = xact.GetKindName(apc.ActRebalance)
	tassert.Errorf(t, kind == apc.ActRebalance && name == apc.ActRebalance, "got %q, %q", kind, name)
	kind, _ = xact.GetKindName("nope")
	tassert.Errorf(t, kind == "", "unexpected kind %q", kind)

	names := xact.ListDisplayNames(true)
	tassert.Errorf(t, slices.IsSorted(names), "not sorted: %v", names)
	tassert.Errorf(t, slices.Contains(names, "cleanup") && !slices.Contains(names, apc.ActPromote), "startable: %v", names)

	_, err := xact.CheckStartable(apc.ActPromote)
	tassert.Errorf(t, err != nil, "promote must not be user-startable")
	kind, err = xact.CheckStartable("cleanup")
	tassert.CheckError(t, err)
	tassert.Errorf(t, kind == apc.ActStoreCleanup, "got %q", kind)

	_, d := xact.Lookup(apc.ActRebalance)
	tassert.Errorf(t, !d.TakesBucket(), "rebalance is cluster-wide")
}

func TestArgsMsgString(t *testing.T) {
	args := &xact.ArgsMsg{ID: "abc", Kind: apc.ActLRU, Bck: cmn.Bck{Name: "b", Provider: apc.AIS}, Flags: xact.FlagZeroSize}
	s := args.String()
	tassert.Errorf(t, s == "xa-"+apc.ActLRU+"[abc]-"+args.Bck.String()+"-0x1", "got %q", s)

	qmsg := (&xact.ArgsMsg{Kind: apc.ActLRU, OnlyRunning: true}).ToQueryMsg()
	tassert.Fatalf(t, qmsg.OnlyRunning != nil && *qmsg.OnlyRunning, "expected only-running")
}

func TestWaitConditions(t *testing.T) {
	var (
		now      = time.Now()
		running  = &xact.Snap{ID: "x1", Kind: apc.ActLRU, StartTime: now}
		finished = &xact.Snap{ID: "x1", Kind: apc.ActLRU, StartTime: now, EndTime: now.Add(time.Second)}
	)

	byID := (&xact.ArgsMsg{ID: "x1"}).Finished()
	done, _, _ := byID(xact.MultiSnap{"t1": {running}})
	tassert.Errorf(t, !done, "running job reported done")
	done, _, _ = byID(xact.MultiSnap{"t1": {finished}})
	tassert.Errorf(t, done, "finished job not done")

	// kind-only: nothing seen yet is not done; after seeing, needs consecutive empty polls
	args := &xact.ArgsMsg{Kind: apc.ActLRU}
	byKind := args.Finished()
	tassert.Errorf(t, args.OnlyRunning, "kind-only wait must query running jobs")
	done, _, _ = byKind(xact.MultiSnap{})
	tassert.Errorf(t, !done, "done before the job was ever seen")
	done, _, _ = byKind(xact.MultiSnap{"t1": {running}})
	tassert.Errorf(t, !done, "done while running")
	for i := range 3 {
		done, _, _ = byKind(xact.MultiSnap{})
		tassert.Errorf(t, done == (i == 2), "poll %d: done=%t", i, done)
	}

	notRunning := (&xact.ArgsMsg{ID: "x1"}).NotRunning()
	done, _, _ = notRunning(xact.MultiSnap{"t1": {running}})
	tassert.Errorf(t, !done, "expected running")
	done, _, _ = notRunning(xact.MultiSnap{})
	tassert.Errorf(t, done, "nothing there means nothing running")
}

func TestMultiSnap(t *testing.T) {
	now := time.Now()
	snaps := xact.MultiSnap{
		"t1": {{ID: "a", StartTime: now, Stats: xact.Stats{Objs: 2, Bytes: 10}}},
		"t2": {{ID: "a", StartTime: now, Stats: xact.Stats{Objs: 3, Bytes: 5}}, {ID: "b", AbortedX: true}},
	}
	objs, size := snaps.ObjCounts("a")
	tassert.Errorf(t, objs == 5 && size == 15, "got %d, %d", objs, size)
	tassert.Errorf(t, snaps.Get("b") != nil && snaps.Get("c") == nil, "Get")

	aborted, running, notstarted := snaps.AggregateState("")
	tassert.Errorf(t, aborted && running && !notstarted, "got %t %t %t", aborted, running, notstarted)
	_, _, notstarted = snaps.AggregateState("c")
	tassert.Errorf(t, notstarted, "unknown id must be not-started")
}
