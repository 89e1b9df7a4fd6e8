// Package xact provides the kinds, control messages, and status snapshots
// of AIS eXtended Actions (xactions, jobs).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package xact

import "time"

// polling and timeouts used by the api wait helpers
const (
	DefWaitTimeShort = time.Minute        // ArgsMsg.Timeout == 0
	DefWaitTimeLong  = 7 * 24 * time.Hour // ArgsMsg.Timeout < 0
	MinPollTime      = 50 * time.Millisecond
	MaxPollTime      = 5 * time.Second

	// kind-only "finished": this many empty polls in a row after having
	// seen the job at least once
	numConsecutiveEmpty = 3
)

// SnapsCond is evaluated by api.WaitForSnaps on every poll. `reset` shortens
// the next poll interval back to MinPollTime; a non-nil error ends the wait.
type SnapsCond func(MultiSnap) (done, reset bool, err error)

// Finished waits for args.ID to show up and end (finish or abort).
// Without an ID, it waits for the kind to appear and then drain; the
// query is restricted to running xactions, so stale completed ones
// don't count.
func (args *ArgsMsg) Finished() SnapsCond {
	xid := args.ID
	if xid != "" {
		return func(snaps MultiSnap) (bool, bool, error) {
			snap := snaps.Get(xid)
			return snap != nil && (snap.IsFinished() || snap.IsAborted()), false, nil
		}
	}
	args.OnlyRunning = true
	var seen bool
	var empty int
	return func(snaps MultiSnap) (bool, bool, error) {
		if snaps.HasUUIDs() {
			seen, empty = true, 0
			return false, false, nil
		}
		if !seen {
			return false, false, nil
		}
		empty++
		return empty >= numConsecutiveEmpty, true, nil
	}
}

// NotRunning is satisfied as soon as nothing selected by args is running,
// including the case when nothing is there at all.
func (args *ArgsMsg) NotRunning() SnapsCond {
	xid := args.ID
	return func(snaps MultiSnap) (bool, bool, error) {
		_, running, _ := snaps.AggregateState(xid)
		return !running, false, nil
	}
}
