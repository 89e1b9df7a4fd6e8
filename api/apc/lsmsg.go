// Package apc: API control messages and constants
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

import (
	"strings"

	"github.com/NVIDIA/aisclient/cmn/cos"
)

// LsoMsg flags
const (
	// Applies to objects from the buckets with remote backends
	LsObjCached = 1 << iota

	LsMissing  // include missing main obj (with copy existing)
	LsDeleted  // include obj-s marked for deletion (TODO: not supported yet)
	LsNameOnly // return only object names and statuses (for faster listing)
	LsNameSize // same as above and size
)

// List objects default page size
const (
	DefaultPageSizeAIS = 10000
	MaxPageSizeAIS     = 10000
)

const (
	// Status
	LocOK = iota
	LocMisplacedNode
	LocMisplacedMountpath
	LocIsCopy
	LocIsCopyMissingObj

	// Flags
	EntryIsCached = 1 << (EntryStatusBits + 1)
	EntryIsDir    = 1 << (EntryStatusBits + 2)
)

// LsoEnt.Flags field
const (
	EntryStatusBits = 5                          // N bits
	EntryStatusMask = (1 << EntryStatusBits) - 1 // mask for N low bits
)

// LsoMsg and HEAD(object) enum
const (
	GetPropsName     = "name"
	GetPropsSize     = "size"
	GetPropsVersion  = "version"
	GetPropsChecksum = "checksum"
	GetPropsAtime    = "atime"
	GetPropsCached   = "cached"
	GetPropsStatus   = "status"
	GetPropsCopies   = "copies"
	GetPropsCustom   = "custom"
	GetPropsLocation = "location"
)

const PropsLocationSepa = ":"

// NOTE: update when changing any of the above
var (
	GetPropsMinimal = []string{GetPropsName, GetPropsSize}
	GetPropsDefault = []string{GetPropsName, GetPropsSize, GetPropsChecksum, GetPropsAtime}
	GetPropsAll     = append(GetPropsDefault,
		GetPropsVersion, GetPropsCached, GetPropsStatus, GetPropsCopies, GetPropsCustom, GetPropsLocation)
)

type LsoMsg struct {
	UUID              string `json:"uuid"`               // ID to identify a single multi-page request
	Props             string `json:"props"`              // e.g. "checksum,size" (see GetProps* enum above)
	Prefix            string `json:"prefix"`             // objname filter: return names starting with prefix
	StartAfter        string `json:"start_after"`        // start listing after (AIS buckets only)
	ContinuationToken string `json:"continuation_token"` // LsoRes.ContinuationToken
	Flags             uint64 `json:"flags,string"`       // enum {LsObjCached, ...} - see above
	PageSize          int64  `json:"pagesize"`           // max entries returned by list objects call
}

////////////
// LsoMsg //
////////////

func (lsmsg *LsoMsg) WantOnlyRemoteProps() bool {
	for _, name := range GetPropsAll {
		if !lsmsg.WantProp(name) {
			continue
		}
		if name != GetPropsName && name != GetPropsSize && name != GetPropsChecksum && name != GetPropsVersion {
			return false
		}
	}
	return true
}

// WantProp returns true if msg request requires to return propName property.
func (lsmsg *LsoMsg) WantProp(propName string) bool {
	if lsmsg.Props == "" {
		return false
	}
	for _, p := range strings.Split(lsmsg.Props, ",") {
		if strings.TrimSpace(p) == propName {
			return true
		}
	}
	return false
}

func (lsmsg *LsoMsg) AddProps(propNames ...string) {
	for _, propName := range propNames {
		if lsmsg.WantProp(propName) {
			continue
		}
		if lsmsg.Props != "" {
			lsmsg.Props += ","
		}
		lsmsg.Props += propName
	}
}

func (lsmsg *LsoMsg) PropsSet() (s cos.StrSet) {
	props := strings.Split(lsmsg.Props, ",")
	s = make(cos.StrSet, len(props))
	for _, p := range props {
		if p = strings.TrimSpace(p); p != "" {
			s.Add(p)
		}
	}
	return s
}

func (lsmsg *LsoMsg) SetFlag(flag uint64)         { lsmsg.Flags |= flag }
func (lsmsg *LsoMsg) IsFlagSet(flags uint64) bool { return lsmsg.Flags&flags == flags }

func (lsmsg *LsoMsg) Clone() *LsoMsg {
	c := *lsmsg
	return &c
}

func (lsmsg *LsoMsg) Str(cname string) string {
	var sb strings.Builder
	sb.WriteString(cname)
	if lsmsg.Props != "" {
		sb.WriteString(", props:")
		sb.WriteString(lsmsg.Props)
	}
	if lsmsg.Prefix != "" {
		sb.WriteString(", prefix:")
		sb.WriteString(lsmsg.Prefix)
	}
	if lsmsg.ContinuationToken != "" {
		sb.WriteString(", token:")
		sb.WriteString(lsmsg.ContinuationToken)
	}
	return sb.String()
}
