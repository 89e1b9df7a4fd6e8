// Package xact provides the kinds, control messages, and status snapshots
// of AIS eXtended Actions (xactions, jobs).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package xact

import (
	"time"

	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
)

type (
	Stats struct {
		Objs  int64 `json:"loc-objs,string"`  // locally processed
		Bytes int64 `json:"loc-bytes,string"` //
	}

	// point-in-time state of a given xaction on a given node
	Snap struct {
		StartTime time.Time `json:"start-time"`
		EndTime   time.Time `json:"end-time"`
		Bck       cmn.Bck   `json:"bck"`
		ID        string    `json:"id"`
		Kind      string    `json:"kind"`
		AbortErr  string    `json:"abort-err,omitempty"`
		Stats     Stats     `json:"stats"`
		AbortedX  bool      `json:"aborted"`
		IdleX     bool      `json:"is_idle"`
	}

	// as returned by `api.QueryXactionSnaps`
	MultiSnap map[string][]*Snap // by node ID
)

//////////
// Snap //
//////////

func (snp *Snap) Started() bool   { return !snp.StartTime.IsZero() }
func (snp *Snap) IsAborted() bool { return snp.AbortedX }
func (snp *Snap) IsIdle() bool    { return snp.IdleX }
func (snp *Snap) IsFinished() bool {
	return snp.Started() && !snp.EndTime.IsZero()
}
func (snp *Snap) IsRunning() bool { return snp.Started() && !snp.IsAborted() && !snp.IsFinished() }

func (snp *Snap) String() string {
	s := Cname(snp.Kind, snp.ID)
	switch {
	case snp.IsAborted():
		s += "-aborted"
		if snp.AbortErr != "" {
			s += "(" + snp.AbortErr + ")"
		}
	case snp.IsFinished():
		s += "-finished-" + snp.EndTime.Sub(snp.StartTime).String()
	case snp.IsRunning():
		s += "-running"
	}
	return s
}

///////////////
// MultiSnap //
///////////////

func (xs MultiSnap) each(cb func(tid string, snap *Snap) bool) {
	for tid, snaps := range xs {
		for _, snap := range snaps {
			if !cb(tid, snap) {
				return
			}
		}
	}
}

func (xs MultiSnap) GetUUIDs() []string {
	uuids := make(cos.StrSet, 2)
	xs.each(func(_ string, snap *Snap) bool { uuids.Add(snap.ID); return true })
	return uuids.ToSlice()
}

func (xs MultiSnap) HasUUIDs() bool {
	for _, snaps := range xs {
		if len(snaps) > 0 {
			return true
		}
	}
	return false
}

// Get returns the first snap with the given ID, any node.
func (xs MultiSnap) Get(xid string) (found *Snap) {
	xs.each(func(_ string, snap *Snap) bool {
		if snap.ID == xid {
			found = snap
		}
		return found == nil
	})
	return found
}

// AggregateState summarizes one xaction (xid) or, with empty xid, all of
// them across all nodes. An xaction that no node reports counts as
// not started.
func (xs MultiSnap) AggregateState(xid string) (aborted, running, notstarted bool) {
	uuids := []string{xid}
	if xid == "" {
		uuids = xs.GetUUIDs()
	}
	for _, id := range uuids {
		var seen bool
		xs.each(func(_ string, snap *Snap) bool {
			if snap.ID != id {
				return true
			}
			seen = true
			switch {
			case snap.IsAborted():
				aborted = true
			case !snap.Started():
				notstarted = true
			case snap.IsRunning() && !snap.IsIdle():
				running = true
			}
			return true
		})
		if !seen {
			notstarted = true
		}
	}
	return aborted, running, notstarted
}

func (xs MultiSnap) ObjCounts(xid string) (objs, bytes int64) {
	xs.each(func(_ string, snap *Snap) bool {
		if snap.ID == xid {
			objs += snap.Stats.Objs
			bytes += snap.Stats.Bytes
		}
		return true
	})
	return objs, bytes
}
