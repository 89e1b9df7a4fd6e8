// Package api_test contains tests for the api package, run against in-process mock gateway.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api_test

import (
	"testing"
	"time"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/tools/tassert"
	"github.com/NVIDIA/aisclient/tools/trand"
	"github.com/NVIDIA/aisclient/xact"
)

func TestXactionLRU(t *testing.T) {
	_, bp := startMock(t, nil)
	var (
		local  = newBck(t, bp)
		remote = cmn.Bck{Name: trand.BckName(8), Provider: apc.AWS}
	)
	tassert.CheckFatal(t, api.CreateBucket(bp, remote, nil))
	putObjs(t, bp, local, "obj-", 5)
	putObjs(t, bp, remote, "obj-", 7)

	args := &xact.ArgsMsg{Kind: apc.ActLRU, Force: true, Timeout: 10 * time.Second}
	xid, err := api.StartXaction(bp, args)
	tassert.CheckFatal(t, err)
	tassert.Fatalf(t, xid != "", "expected job ID")

	args.ID = xid
	status, err := api.WaitForXaction(bp, args)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, status.Finished() && !status.IsAborted(), "unexpected status %s", status)
	tassert.Errorf(t, status.UUID == xid, "expected %q, got %q", xid, status.UUID)

	lst, err := api.ListObjects(bp, remote, nil, api.ListArgs{})
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, len(lst.Entries) == 0, "remote bucket: expected all evicted, got %d", len(lst.Entries))
	lst, err = api.ListObjects(bp, local, nil, api.ListArgs{})
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, len(lst.Entries) == 5, "ais bucket: expected 5 (never evicted), got %d", len(lst.Entries))

	snaps, err := api.QueryXactionSnaps(bp, &xact.ArgsMsg{ID: xid})
	tassert.CheckFatal(t, err)
	objs, _ := snaps.ObjCounts(xid)
	tassert.Errorf(t, objs == 7, "expected 7 evicted objects, got %d", objs)
}

func TestXactionWaitForSnaps(t *testing.T) {
	_, bp := startMock(t, nil)
	bck := newBck(t, bp)

	args := &xact.ArgsMsg{Kind: apc.ActStoreCleanup, Bck: bck, Timeout: 10 * time.Second}
	xid, err := api.StartXaction(bp, args)
	tassert.CheckFatal(t, err)

	args.ID = xid
	_, err = api.WaitForSnaps(bp, args, args.Finished())
	tassert.CheckFatal(t, err)

	status, err := api.GetXactionStatus(bp, &xact.ArgsMsg{ID: xid})
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, status.Finished(), "expected finished, got %s", status)

	// nothing running anymore: satisfied on the first poll
	elapsed, err := api.WaitForSnaps(bp, args, args.NotRunning())
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, elapsed < time.Second, "not-running wait took %v", elapsed)
}

func TestXactionErrors(t *testing.T) {
	_, bp := startMock(t, nil)

	_, err := api.StartXaction(bp, &xact.ArgsMsg{Kind: "no-such-kind"})
	tassert.Errorf(t, err != nil, "expected error starting unknown kind")

	_, err = api.StartXaction(bp, &xact.ArgsMsg{Kind: apc.ActPromote})
	tassert.Errorf(t, err != nil, "expected error starting non-startable kind")

	_, err = api.GetXactionStatus(bp, &xact.ArgsMsg{ID: cos.GenUUID()})
	tassert.Errorf(t, cmn.IsErrXactNotFound(err), "expected ErrXactNotFound, got %v", err)

	_, err = api.StartXaction(bp, &xact.ArgsMsg{Kind: apc.ActLRU, Bck: cmn.Bck{Name: "nonexistent", Provider: apc.AIS}})
	tassert.Errorf(t, cmn.IsErrBckNotFound(err), "expected ErrBckNotFound, got %v", err)

	bck := newBck(t, bp)
	_, err = api.StartXaction(bp, &xact.ArgsMsg{Kind: apc.ActRebalance, Bck: bck})
	tassert.Errorf(t, err != nil, "expected error starting cluster-wide job on a bucket")
}
