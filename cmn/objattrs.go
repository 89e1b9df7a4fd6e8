// Package cmn provides common constants, types, and utilities for AIS clients
// and AIS-compatible gateways.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn/cos"
)

const customMDSepa = ","

// ObjAttrs is the object metadata carried in the HTTP headers of GET and HEAD responses
type ObjAttrs struct {
	Cksum    *cos.Cksum        `json:"checksum,omitempty"`
	CustomMD map[string]string `json:"custom-md,omitempty"`
	Ver      string            `json:"version,omitempty"`
	Atime    int64             `json:"atime,omitempty"` // nanoseconds
	Size     int64             `json:"size,string"`
}

func (oa *ObjAttrs) AtimeUTC() time.Time { return time.Unix(0, oa.Atime).UTC() }

func (oa *ObjAttrs) String() string {
	return "[size=" + cos.ToSizeIEC(oa.Size, 2) + ", ver=" + oa.Ver + ", " + oa.Cksum.String() + "]"
}

// server side: attrs => response headers
func (oa *ObjAttrs) ToHeader(hdr http.Header) {
	if !oa.Cksum.IsEmpty() {
		ty, val := oa.Cksum.Get()
		hdr.Set(apc.HdrObjCksumType, ty)
		hdr.Set(apc.HdrObjCksumVal, val)
	}
	if oa.Atime != 0 {
		hdr.Set(apc.HdrObjAtime, strconv.FormatInt(oa.Atime, 10))
	}
	if oa.Ver != "" {
		hdr.Set(apc.HdrObjVersion, oa.Ver)
	}
	if len(oa.CustomMD) > 0 {
		hdr.Set(apc.HdrObjCustomMD, oa.customMD2S())
	}
	hdr.Set(apc.HdrObjSize, strconv.FormatInt(oa.Size, 10))
}

// client side: response headers => attrs; returns the checksum (if any)
func (oa *ObjAttrs) FromHeader(hdr http.Header) *cos.Cksum {
	if ty := hdr.Get(apc.HdrObjCksumType); ty != "" && ty != cos.ChecksumNone {
		if cos.ValidateCksumType(ty) == nil {
			oa.Cksum = cos.NewCksum(ty, hdr.Get(apc.HdrObjCksumVal))
		}
	}
	if v := hdr.Get(apc.HdrObjAtime); v != "" {
		oa.Atime, _ = strconv.ParseInt(v, 10, 64)
	}
	oa.Ver = hdr.Get(apc.HdrObjVersion)
	if v := hdr.Get(apc.HdrObjCustomMD); v != "" {
		oa.CustomMD = make(map[string]string, 2)
		for _, kv := range strings.Split(v, customMDSepa) {
			k, val, ok := strings.Cut(kv, "=")
			if ok && k != "" {
				oa.CustomMD[k] = val
			}
		}
	}
	if v := hdr.Get(apc.HdrObjSize); v != "" {
		oa.Size, _ = strconv.ParseInt(v, 10, 64)
	} else if v := hdr.Get(cos.HdrContentLength); v != "" {
		oa.Size, _ = strconv.ParseInt(v, 10, 64)
	}
	return oa.Cksum
}

func (oa *ObjAttrs) customMD2S() string {
	keys := make([]string, 0, len(oa.CustomMD))
	for k := range oa.CustomMD {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(customMDSepa)
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(oa.CustomMD[k])
	}
	return sb.String()
}

// as in LsoEnt.Custom
func (oa *ObjAttrs) CustomMDString() string { return oa.customMD2S() }
