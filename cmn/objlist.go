// Package cmn provides common constants, types, and utilities for AIS clients
// and AIS-compatible gateways.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"sort"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn/cos"
)

//
// NOTE: changes in this source require updating objlist_gen.go (msgpack codec)
// NOTE: all json tags except `Flags` must belong to the (apc.GetPropsName, apc.GetPropsSize, etc.) enumeration
//

// LsoEnt corresponds to a single entry in the LsoRes and
// contains object metadata as per the LsoMsg.
// `Flags` is a bit field where bits 0-4 are reserved for object status
// (all statuses are mutually exclusive)
type (
	LsoEnt struct {
		Name     string `json:"name" msg:"n"`                            // object name
		Checksum string `json:"checksum,omitempty" msg:"cs,omitempty"`   // checksum
		Atime    string `json:"atime,omitempty" msg:"a,omitempty"`       // last access time
		Version  string `json:"version,omitempty" msg:"v,omitempty"`     // object version
		Location string `json:"location,omitempty" msg:"t,omitempty"`    // [tnode:mountpath]
		Custom   string `json:"custom-md,omitempty" msg:"m,omitempty"`   // custom metadata: ETag, MD5, CRC, user-defined ...
		Size     int64  `json:"size,string,omitempty" msg:"s,omitempty"` // size in bytes
		Copies   int16  `json:"copies,omitempty" msg:"c,omitempty"`      // ## copies (NOTE: for non-replicated object copies == 1)
		Flags    uint16 `json:"flags,omitempty" msg:"f,omitempty"`
	}

	LsoEntries []*LsoEnt

	// LsoRes carries the results of `api.ListObjectsPage`, `api.ListObjects`, and friends
	LsoRes struct {
		UUID              string     `json:"uuid"`
		ContinuationToken string     `json:"continuation_token"`
		Entries           LsoEntries `json:"entries"`
		Flags             uint32     `json:"flags"`
	}
)

////////////
// LsoEnt //
////////////

func (be *LsoEnt) IsPresent() bool  { return be.Flags&apc.EntryIsCached != 0 }
func (be *LsoEnt) SetPresent()      { be.Flags |= apc.EntryIsCached }
func (be *LsoEnt) IsStatusOK() bool { return be.Status() == 0 }
func (be *LsoEnt) Status() uint16   { return be.Flags & apc.EntryStatusMask }
func (be *LsoEnt) IsDir() bool      { return be.Flags&apc.EntryIsDir != 0 }
func (be *LsoEnt) String() string   { return "{" + be.Name + "}" }

func (be *LsoEnt) CopyWithProps(propsSet cos.StrSet) (ne *LsoEnt) {
	ne = &LsoEnt{Name: be.Name, Flags: be.Flags}
	if propsSet.Contains(apc.GetPropsSize) {
		ne.Size = be.Size
	}
	if propsSet.Contains(apc.GetPropsChecksum) {
		ne.Checksum = be.Checksum
	}
	if propsSet.Contains(apc.GetPropsAtime) {
		ne.Atime = be.Atime
	}
	if propsSet.Contains(apc.GetPropsVersion) {
		ne.Version = be.Version
	}
	if propsSet.Contains(apc.GetPropsLocation) {
		ne.Location = be.Location
	}
	if propsSet.Contains(apc.GetPropsCustom) {
		ne.Custom = be.Custom
	}
	if propsSet.Contains(apc.GetPropsCopies) {
		ne.Copies = be.Copies
	}
	return
}

////////////////
// LsoEntries //
////////////////

// interface guard
var _ sort.Interface = (*LsoEntries)(nil)

func (entries LsoEntries) Len() int           { return len(entries) }
func (entries LsoEntries) Less(i, j int) bool { return entries[i].Name < entries[j].Name }
func (entries LsoEntries) Swap(i, j int)      { entries[i], entries[j] = entries[j], entries[i] }

func (entries LsoEntries) Names() []string {
	names := make([]string, len(entries))
	for i, en := range entries {
		names[i] = en.Name
	}
	return names
}

////////////
// LsoRes //
////////////

func (lst *LsoRes) IsFinal() bool { return lst.ContinuationToken == "" }
