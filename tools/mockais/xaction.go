// Package mockais provides an in-process, single-node, AIS-compatible gateway
// that implements the subset of the AIS v1 API used by `api` package and CLI.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mockais

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/cmn/nlog"
	"github.com/NVIDIA/aisclient/xact"

	"golang.org/x/sync/errgroup"
)

// max number of buckets processed concurrently by a single job
const xactBckWorkers = 4

var errAborted = errors.New("aborted")

type (
	xentry struct {
		cancel context.CancelFunc
		snap   xact.Snap // protected by xactTable.mu
	}
	xactTable struct {
		s       *Server
		entries map[string]*xentry
		order   []string // in the start order
		wg      sync.WaitGroup
		mu      sync.RWMutex
	}
	xrun func(ctx context.Context, xctn *xentry) error
)

func newXactTable(s *Server) *xactTable {
	return &xactTable{s: s, entries: make(map[string]*xentry, 8)}
}

func (t *xactTable) start(kind string, bck cmn.Bck, run xrun) string {
	ctx, cancel := context.WithCancel(context.Background())
	xctn := &xentry{cancel: cancel}
	xctn.snap = xact.Snap{ID: cos.GenUUID(), Kind: kind, Bck: bck, StartTime: time.Now()}
	xid := xctn.snap.ID

	t.mu.Lock()
	t.entries[xid] = xctn
	t.order = append(t.order, xid)
	t.mu.Unlock()

	t.wg.Add(1)
	go func() {
		err := run(ctx, xctn)
		cancel()
		t.mu.Lock()
		xctn.snap.EndTime = time.Now()
		if err != nil {
			xctn.snap.AbortedX = true
			xctn.snap.AbortErr = err.Error()
		}
		snap := xctn.snap
		t.mu.Unlock()
		if err != nil {
			nlog.Warningln(snap.String())
		} else {
			nlog.Infoln(snap.String())
		}
		t.wg.Done()
	}()
	return xid
}

func (t *xactTable) addStats(xctn *xentry, objs, size int64) {
	t.mu.Lock()
	xctn.snap.Stats.Objs += objs
	xctn.snap.Stats.Bytes += size
	t.mu.Unlock()
}

// returns the number of aborted jobs
func (t *xactTable) abort(msg *xact.QueryMsg) int {
	var n int
	for _, snap := range t.query(msg) {
		if !snap.IsRunning() {
			continue
		}
		t.mu.RLock()
		xctn := t.entries[snap.ID]
		t.mu.RUnlock()
		xctn.cancel()
		n++
	}
	return n
}

func (t *xactTable) abortAll(err error) {
	t.mu.RLock()
	for _, xctn := range t.entries {
		xctn.cancel()
	}
	t.mu.RUnlock()
	if err != nil {
		nlog.Infoln("aborting all jobs:", err)
	}
}

func (t *xactTable) wait() { t.wg.Wait() }

// snapshots (copies) that match the query, in the start order
func (t *xactTable) query(msg *xact.QueryMsg) []*xact.Snap {
	t.mu.RLock()
	defer t.mu.RUnlock()
	snaps := make([]*xact.Snap, 0, 4)
	for _, xid := range t.order {
		xctn := t.entries[xid]
		if msg.ID != "" && msg.ID != xid {
			continue
		}
		if msg.Kind != "" && msg.Kind != xctn.snap.Kind {
			continue
		}
		if !msg.Bck.IsEmpty() && !xctn.snap.Bck.Equal(&msg.Bck) {
			continue
		}
		snap := xctn.snap
		if msg.OnlyRunning != nil && *msg.OnlyRunning && !snap.IsRunning() {
			continue
		}
		snaps = append(snaps, &snap)
	}
	return snaps
}

// by ID or, when ID is not specified, the most recently started job of a given kind
func (t *xactTable) status(msg *xact.QueryMsg) (*xact.Status, error) {
	snaps := t.query(msg)
	if len(snaps) == 0 {
		if msg.ID != "" {
			return nil, cmn.NewErrXactNotFound(msg.ID)
		}
		return nil, cmn.NewErrXactNotFound(msg.Kind)
	}
	return snaps[len(snaps)-1].Status(), nil
}

//
// PUT|GET /v1/cluster
//

func (s *Server) clusterHandler(a *apiRequest) {
	s.stats.inc(OpXact)
	msg, err := a.actMsg()
	if err != nil {
		s.writeErr(a.ctx, err, http.StatusBadRequest)
		return
	}
	switch a.method {
	case http.MethodPut:
		s.httpcluput(a, msg)
	case http.MethodGet:
		s.httpcluget(a, msg)
	default:
		s.writeErr(a.ctx, fmt.Errorf("invalid method %s %s", a.method, a.path), http.StatusMethodNotAllowed)
	}
}

func (s *Server) httpcluput(a *apiRequest, msg *apc.ActMsg) {
	qmsg := &xact.QueryMsg{}
	if err := msg.MorphValue(qmsg); err != nil {
		s.writeErr(a.ctx, err, http.StatusBadRequest)
		return
	}
	switch msg.Action {
	case apc.ActXactStart:
		xid, err := s.startXact(qmsg)
		if err != nil {
			s.writeErrAuto(a.ctx, err)
			return
		}
		a.ctx.SetStatusCode(http.StatusOK)
		a.ctx.SetBodyString(xid)
	case apc.ActXactStop:
		normalizeQbck(qmsg)
		if qmsg.Kind != "" {
			qmsg.Kind, _ = xact.GetKindName(qmsg.Kind)
		}
		if qmsg.ID == "" && qmsg.Kind == "" {
			s.writeErr(a.ctx, errors.New("either job ID or kind must be specified"), http.StatusBadRequest)
			return
		}
		if n := s.xacts.abort(qmsg); n > 0 {
			nlog.Infof("%s: aborted %d job(s)", qmsg.String(), n)
		}
	default:
		s.writeErr(a.ctx, fmt.Errorf("invalid action %q", msg.Action), http.StatusBadRequest)
	}
}

func (s *Server) httpcluget(a *apiRequest, msg *apc.ActMsg) {
	qmsg := &xact.QueryMsg{}
	if msg.Action == "" {
		// (the message itself, w/o ActMsg wrapper)
		if body := a.ctx.PostBody(); len(body) > 0 {
			if err := cos.JSON.Unmarshal(body, qmsg); err != nil {
				s.writeErr(a.ctx, err, http.StatusBadRequest)
				return
			}
		}
	} else if err := msg.MorphValue(qmsg); err != nil {
		s.writeErr(a.ctx, err, http.StatusBadRequest)
		return
	}
	normalizeQbck(qmsg)
	if qmsg.Kind != "" {
		kind, _ := xact.GetKindName(qmsg.Kind)
		if kind == "" {
			s.writeErr(a.ctx, fmt.Errorf("invalid job kind %q", qmsg.Kind), http.StatusBadRequest)
			return
		}
		qmsg.Kind = kind
	}
	switch what := string(a.ctx.QueryArgs().Peek(apc.QparamWhat)); what {
	case apc.WhatXactStatus:
		status, err := s.xacts.status(qmsg)
		if err != nil {
			s.writeErrAuto(a.ctx, err)
			return
		}
		writeJSON(a.ctx, status)
	case apc.WhatXactStats:
		writeJSON(a.ctx, xact.MultiSnap{s.config.NodeID: s.xacts.query(qmsg)})
	default:
		s.writeErr(a.ctx, fmt.Errorf("invalid query %s=%q", apc.QparamWhat, what), http.StatusBadRequest)
	}
}

func normalizeQbck(qmsg *xact.QueryMsg) {
	if !qmsg.Bck.IsEmpty() {
		qmsg.Bck.Provider = apc.NormalizeProvider(qmsg.Bck.Provider)
	}
}

//
// jobs
//

func (s *Server) startXact(qmsg *xact.QueryMsg) (string, error) {
	kind, err := xact.CheckStartable(qmsg.Kind)
	if err != nil {
		return "", err
	}
	if _, d := xact.Lookup(kind); !d.TakesBucket() && (!qmsg.Bck.IsEmpty() || len(qmsg.Buckets) > 0) {
		return "", fmt.Errorf("%s is not a bucket-scoped job", kind)
	}
	buckets := qmsg.Buckets
	if !qmsg.Bck.IsEmpty() {
		if qmsg.Bck.Provider, err = cmn.NormalizeProvider(qmsg.Bck.Provider); err != nil {
			return "", err
		}
		if _, err := s.bprops(&qmsg.Bck); err != nil {
			return "", err
		}
		buckets = append(buckets, qmsg.Bck)
	}
	var run xrun
	switch kind {
	case apc.ActLRU:
		run = func(ctx context.Context, xctn *xentry) error {
			return s.forEachBck(ctx, buckets, func(ctx context.Context, bck cmn.Bck) error {
				return s.lruBck(ctx, xctn, bck, qmsg.Force)
			})
		}
	case apc.ActStoreCleanup:
		run = func(ctx context.Context, xctn *xentry) error {
			return s.forEachBck(ctx, buckets, func(ctx context.Context, bck cmn.Bck) error {
				return s.cleanupBck(ctx, xctn, bck, qmsg.Flags)
			})
		}
	default:
		// single node: nothing to rebalance or resilver
		run = func(ctx context.Context, _ *xentry) error { return ctx.Err() }
	}
	xid := s.xacts.start(kind, qmsg.Bck, run)
	nlog.Infoln("started", xact.Cname(kind, xid))
	return xid, nil
}

// runs `fn` for each of the specified buckets (all buckets when none specified)
func (s *Server) forEachBck(ctx context.Context, bcks []cmn.Bck, fn func(context.Context, cmn.Bck) error) error {
	if len(bcks) == 0 {
		all, err := s.listBcks("")
		if err != nil {
			return err
		}
		bcks = all
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(xactBckWorkers)
	for _, bck := range bcks {
		g.Go(func() error { return fn(gctx, bck) })
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return errAborted
		}
		return err
	}
	return nil
}

// evicts objects of remote buckets that were not accessed for (at least) DontEvictTime;
// in-cluster (ais://) buckets are never evicted
func (s *Server) lruBck(ctx context.Context, xctn *xentry, bck cmn.Bck, force bool) error {
	if bck.IsAIS() {
		return nil
	}
	var (
		names []string
		sizes []int64
		now   = time.Now().UnixNano()
	)
	err := s.db.Iterate(collMeta(&bck), "", "", func(name, value string) bool {
		lom := &lom{}
		if cos.JSON.UnmarshalFromString(value, lom) != nil {
			return true
		}
		if force || time.Duration(now-lom.Atime) >= s.config.DontEvictTime {
			names = append(names, name)
			sizes = append(sizes, lom.Size)
		}
		return ctx.Err() == nil
	})
	if err != nil {
		return err
	}
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.deleteObj(&bck, name); err != nil && !cmn.IsErrObjNotFound(err) {
			return err
		}
		s.xacts.addStats(xctn, 1, sizes[i])
	}
	return nil
}

// removes content that has no metadata and, optionally, zero-size objects
func (s *Server) cleanupBck(ctx context.Context, xctn *xentry, bck cmn.Bck, flags uint32) error {
	var names, orphans, empty []string
	// (collect first: no store lookups while iterating)
	err := s.db.Iterate(collData(&bck), "", "", func(name, _ string) bool {
		names = append(names, name)
		return ctx.Err() == nil
	})
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := s.getLom(&bck, name); cmn.IsErrObjNotFound(err) {
			orphans = append(orphans, name)
		}
	}
	if flags&xact.FlagZeroSize != 0 {
		err = s.db.Iterate(collMeta(&bck), "", "", func(name, value string) bool {
			lom := &lom{}
			if cos.JSON.UnmarshalFromString(value, lom) == nil && lom.Size == 0 {
				empty = append(empty, name)
			}
			return ctx.Err() == nil
		})
		if err != nil {
			return err
		}
	}
	for _, name := range orphans {
		if err := s.db.Delete(collData(&bck), name); err != nil {
			return err
		}
		s.xacts.addStats(xctn, 1, 0)
	}
	for _, name := range empty {
		if err := s.deleteObj(&bck, name); err != nil && !cmn.IsErrObjNotFound(err) {
			return err
		}
		s.xacts.addStats(xctn, 1, 0)
	}
	return ctx.Err()
}
