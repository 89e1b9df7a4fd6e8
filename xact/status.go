// Package xact provides the kinds, control messages, and status snapshots
// of AIS eXtended Actions (xactions, jobs).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package xact

import (
	"time"
)

// cluster-wide status of a given xaction (as returned by `api.GetXactionStatus`)
type Status struct {
	UUID     string `json:"uuid"`
	Kind     string `json:"kind"`
	ErrMsg   string `json:"err"`
	EndTimeX int64  `json:"end_time"` // unix nanoseconds; zero while running
	AbortedX bool   `json:"aborted"`
}

func (xs *Status) Finished() bool  { return xs.EndTimeX != 0 }
func (xs *Status) IsAborted() bool { return xs.AbortedX }

func (xs *Status) EndTime() time.Time {
	if xs.EndTimeX == 0 {
		return time.Time{}
	}
	return time.Unix(0, xs.EndTimeX)
}

func (xs *Status) Err() string { return xs.ErrMsg }

func (xs *Status) String() string {
	s := Cname(xs.Kind, xs.UUID)
	switch {
	case xs.IsAborted():
		s += "-aborted"
		if xs.ErrMsg != "" {
			s += "(" + xs.ErrMsg + ")"
		}
	case xs.Finished():
		s += "-finished"
	default:
		s += "-running"
	}
	return s
}

// status from a single snapshot
func (snp *Snap) Status() *Status {
	xs := &Status{UUID: snp.ID, Kind: snp.Kind, ErrMsg: snp.AbortErr, AbortedX: snp.AbortedX}
	if !snp.EndTime.IsZero() {
		xs.EndTimeX = snp.EndTime.UnixNano()
	}
	return xs
}
