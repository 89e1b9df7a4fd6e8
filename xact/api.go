// Package xact provides the kinds, control messages, and status snapshots
// of AIS eXtended Actions (xactions, jobs).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package xact

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/cmn/debug"
)

// job scope
const (
	ScopeCluster = iota + 1
	ScopeBucket
	ScopeAnyBucket // one bucket or all of them
	ScopeNode
)

// ArgsMsg.Flags bits
const (
	FlagZeroSize      = 1 << iota // cleanup: also remove zero-size objects
	FlagKeepMisplaced             // cleanup: leave misplaced objects alone
)

type (
	// ArgsMsg selects (or starts) a job: either ID or Kind is required.
	ArgsMsg struct {
		ID          string        // job UUID
		Kind        string        // kind or display name, see Table
		DaemonID    string        // restrict to a node
		Bck         cmn.Bck       //
		Buckets     []cmn.Bck     // lru-eviction and cleanup take several
		Timeout     time.Duration // wait helpers only
		Flags       uint32        `json:"flags,omitempty"`
		Force       bool          //
		OnlyRunning bool          //
	}

	// QueryMsg is what goes on the wire.
	QueryMsg struct {
		OnlyRunning *bool     `json:"show_active"`
		Bck         cmn.Bck   `json:"bck"`
		ID          string    `json:"id"`
		Kind        string    `json:"kind"`
		DaemonID    string    `json:"node,omitempty"`
		Buckets     []cmn.Bck `json:"buckets,omitempty"`
		Flags       uint32    `json:"flags,omitempty"`
		Force       bool      `json:"force,omitempty"`
	}

	Descriptor struct {
		DisplayName string
		Scope       int
		Startable   bool // via api.StartXaction; others start implicitly
	}
)

// Table maps job kind to its descriptor.
var Table = map[string]Descriptor{
	apc.ActRebalance:    {Scope: ScopeCluster, Startable: true},
	apc.ActResilver:     {Scope: ScopeNode, Startable: true},
	apc.ActLRU:          {DisplayName: "lru-eviction", Scope: ScopeAnyBucket, Startable: true},
	apc.ActStoreCleanup: {DisplayName: "cleanup", Scope: ScopeAnyBucket, Startable: true},
	apc.ActPromote:      {Scope: ScopeBucket},
	apc.ActSummaryBck:   {DisplayName: "summary", Scope: ScopeAnyBucket},
	apc.ActList:         {Scope: ScopeBucket},
}

func (d *Descriptor) name(kind string) string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return kind
}

// TakesBucket is false for cluster- and node-wide jobs.
func (d *Descriptor) TakesBucket() bool { return d.Scope == ScopeBucket || d.Scope == ScopeAnyBucket }

// Lookup resolves kind or display name.
func Lookup(kindOrName string) (string, *Descriptor) {
	if d, ok := Table[kindOrName]; ok {
		return kindOrName, &d
	}
	for kind, d := range Table {
		if d.DisplayName == kindOrName {
			return kind, &d
		}
	}
	return "", nil
}

func GetKindName(kindOrName string) (kind, name string) {
	kind, d := Lookup(kindOrName)
	if d == nil {
		return "", ""
	}
	return kind, d.name(kind)
}

func Cname(kind, uuid string) string { return kind + "[" + uuid + "]" }

func ListDisplayNames(onlyStartable bool) []string {
	names := make([]string, 0, len(Table))
	for kind, d := range Table {
		if d.Startable || !onlyStartable {
			names = append(names, d.name(kind))
		}
	}
	slices.Sort(names)
	return names
}

// CheckStartable resolves kindOrName to kind and fails unless users may start it.
func CheckStartable(kindOrName string) (string, error) {
	kind, d := Lookup(kindOrName)
	switch {
	case d == nil:
		return "", fmt.Errorf("invalid job kind %q (startable: %s)", kindOrName, strings.Join(ListDisplayNames(true), ", "))
	case !d.Startable:
		return "", fmt.Errorf("job %q cannot be started by user", kindOrName)
	}
	return kind, nil
}

func CheckValidUUID(id string) error {
	if cos.IsValidUUID(id) {
		return nil
	}
	return fmt.Errorf("invalid job UUID %q", id)
}

func (msg *QueryMsg) String() string {
	s := "x-" + msg.Kind
	if msg.ID != "" {
		s = Cname(s, msg.ID)
	}
	if !msg.Bck.IsEmpty() {
		s += "-" + msg.Bck.String()
	}
	if msg.DaemonID != "" {
		s += "-node[" + msg.DaemonID + "]"
	}
	if msg.OnlyRunning != nil && *msg.OnlyRunning {
		s += "-only-running"
	}
	return s
}

/////////////
// ArgsMsg //
/////////////

func (args *ArgsMsg) ToQueryMsg() *QueryMsg {
	debug.Assert(args.ID != "" || args.Kind != "", "job ID or kind required")
	msg := &QueryMsg{
		ID:       args.ID,
		Kind:     args.Kind,
		DaemonID: args.DaemonID,
		Bck:      args.Bck,
		Buckets:  args.Buckets,
		Flags:    args.Flags,
		Force:    args.Force,
	}
	if args.OnlyRunning {
		running := true
		msg.OnlyRunning = &running
	}
	return msg
}

func (args *ArgsMsg) String() string {
	parts := []string{"xa-" + Cname(args.Kind, args.ID)}
	if !args.Bck.IsEmpty() {
		parts = append(parts, args.Bck.String())
	}
	if args.Timeout > 0 {
		parts = append(parts, args.Timeout.String())
	}
	if args.DaemonID != "" {
		parts = append(parts, "node["+args.DaemonID+"]")
	}
	if args.Flags != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(args.Flags), 16))
	}
	return strings.Join(parts, "-")
}
