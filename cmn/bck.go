// Package cmn provides common constants, types, and utilities for AIS clients
// and AIS-compatible gateways.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn/cos"
)

type (
	// Ns (or Namespace) adds additional layer for scoping the data under
	// the same provider.
	Ns struct {
		// UUID of other remote AIS cluster
		UUID string `json:"uuid" yaml:"uuid"`
		// Name uniquely identifies a namespace under the same UUID (which may be empty)
		Name string `json:"name" yaml:"name"`
	}

	Bck struct {
		Props    *Bprops `json:"-" yaml:"-"`
		Name     string  `json:"name" yaml:"name"`
		Provider string  `json:"provider" yaml:"provider"` // NOTE: see api/apc/provider.go for supported enum
		Ns       Ns      `json:"namespace" yaml:"namespace"`
	}

	Bcks []Bck

	// bucket properties, as returned by HEAD(bucket)
	Bprops struct {
		Provider   string `json:"provider" yaml:"provider"`
		CksumType  string `json:"checksum_type" yaml:"checksum_type"`
		Created    int64  `json:"created,string" yaml:"created"`
		BID        uint64 `json:"bid,string" yaml:"bid"`
		Versioning bool   `json:"versioning" yaml:"versioning"`
	}
)

var (
	NsGlobal = Ns{}

	NsGlobalUname = NsGlobal.Uname()
)

func NormalizeProvider(provider string) (string, error) {
	p := apc.NormalizeProvider(provider)
	if p == "" {
		return "", fmt.Errorf("invalid backend provider %q (expecting one of: %s)", provider, apc.AllProviders)
	}
	return p, nil
}

////////
// Ns //
////////

// Parses [@uuid][#namespace].
func ParseNsUname(s string) (n Ns) {
	if s == NsGlobalUname {
		return NsGlobal
	}
	if s != "" && s[0] == apc.NsUUIDPrefix {
		s = s[1:]
	}
	idx := strings.IndexByte(s, apc.NsNamePrefix)
	if idx == -1 {
		n.UUID = s
	} else {
		n.UUID = s[:idx]
		n.Name = s[idx+1:]
	}
	return
}

func (n Ns) String() (res string) {
	if n.IsGlobal() {
		return
	}
	if n.UUID != "" {
		res += string(apc.NsUUIDPrefix) + n.UUID
	}
	if n.Name != "" {
		res += string(apc.NsNamePrefix) + n.Name
	}
	return
}

func (n Ns) Uname() string {
	b := make([]byte, 0, 2+len(n.UUID)+len(n.Name))
	b = append(b, apc.NsUUIDPrefix)
	b = append(b, n.UUID...)
	b = append(b, apc.NsNamePrefix)
	b = append(b, n.Name...)
	return string(b)
}

func (n Ns) IsGlobal() bool { return n == NsGlobal }
func (n Ns) IsRemote() bool { return n.UUID != "" }

func (n Ns) validate() error {
	if n.IsGlobal() {
		return nil
	}
	if cos.IsAlphaNice(n.UUID) && cos.IsAlphaPlus(n.Name) {
		return nil
	}
	return fmt.Errorf("namespace (uuid: %q, name: %q) may only contain letters, numbers, dashes (-), underscores (_)", n.UUID, n.Name)
}

/////////////////
// Bck (value) //
/////////////////

func (b Bck) Equal(other *Bck) bool {
	return b.Name == other.Name && b.Provider == other.Provider && b.Ns == other.Ns
}

func (b Bck) String() string {
	if b.Ns.IsGlobal() {
		if b.Provider == "" {
			return b.Name
		}
		return apc.ToScheme(b.Provider) + apc.BckProviderSeparator + b.Name
	}
	p := b.Provider
	if p == "" {
		p = apc.NormalizeProvider("")
	}
	return fmt.Sprintf("%s%s%s/%s", apc.ToScheme(p), apc.BckProviderSeparator, b.Ns, b.Name)
}

///////////////
// Bck (ref) //
///////////////

func (b *Bck) Validate() (err error) {
	err = b.ValidateName()
	if err == nil {
		err = b.Ns.validate()
	}
	return
}

func (b *Bck) ValidateName() error {
	if b.Name == "" || b.Name == "." {
		return NewErrInvalidBckName(b.Name)
	}
	if !cos.IsAlphaPlus(b.Name) {
		return NewErrInvalidBckName(b.Name)
	}
	return nil
}

// canonical name, with or without object
func (b *Bck) Cname(objname string) (s string) {
	sch := apc.ToScheme(apc.NormalizeProvider(b.Provider))
	if b.Ns.IsGlobal() {
		s = sch + apc.BckProviderSeparator + b.Name
	} else {
		s = fmt.Sprintf("%s%s%s/%s", sch, apc.BckProviderSeparator, b.Ns, b.Name)
	}
	if objname == "" {
		return
	}
	return s + "/" + objname
}

func (b *Bck) IsEmpty() bool {
	return b == nil || (b.Name == "" && b.Provider == "" && b.Ns == NsGlobal)
}

func (b *Bck) IsAIS() bool       { return apc.NormalizeProvider(b.Provider) == apc.AIS && !b.Ns.IsRemote() }
func (b *Bck) IsRemote() bool    { return !b.IsAIS() }
func (b *Bck) HasProvider() bool { return b.Provider != "" }

// unique key that includes provider and namespace (e.g., for KV stores)
func (b *Bck) MakeUname(objName string) string {
	p := apc.NormalizeProvider(b.Provider)
	var sb strings.Builder
	sb.Grow(len(p) + len(b.Name) + len(objName) + 8)
	sb.WriteString(p)
	sb.WriteByte('/')
	sb.WriteString(b.Ns.Uname())
	sb.WriteByte('/')
	sb.WriteString(b.Name)
	sb.WriteByte('/')
	sb.WriteString(objName)
	return sb.String()
}

// the reverse of MakeUname
func ParseUname(uname string) (bck Bck, objName string, err error) {
	parts := strings.SplitN(uname, "/", 4)
	if len(parts) < 4 || parts[2] == "" {
		return bck, "", fmt.Errorf("invalid uname %q", uname)
	}
	bck.Provider, bck.Ns, bck.Name = parts[0], ParseNsUname(parts[1]), parts[2]
	return bck, parts[3], nil
}

func (b *Bck) AddToQuery(query url.Values) url.Values {
	if b.Provider != "" {
		if query == nil {
			query = make(url.Values)
		}
		query.Set(apc.QparamProvider, b.Provider)
	}
	if !b.Ns.IsGlobal() {
		if query == nil {
			query = make(url.Values)
		}
		query.Set(apc.QparamNamespace, b.Ns.Uname())
	}
	return query
}

// the reverse of AddToQuery
func BckFromQuery(name string, query url.Values) (bck Bck, err error) {
	bck.Name = name
	if bck.Provider, err = NormalizeProvider(query.Get(apc.QparamProvider)); err != nil {
		return
	}
	if ns := query.Get(apc.QparamNamespace); ns != "" {
		bck.Ns = ParseNsUname(ns)
	}
	return
}

// Parses [provider://][@uuid#namespace/]bucket[/object]
func ParseBckObjectURI(uri string) (bck Bck, objName string, err error) {
	var (
		rest  = uri
		provs string
	)
	if idx := strings.Index(uri, apc.BckProviderSeparator); idx >= 0 {
		provs, rest = uri[:idx], uri[idx+len(apc.BckProviderSeparator):]
	}
	if bck.Provider, err = NormalizeProvider(provs); err != nil {
		return
	}
	if rest != "" && (rest[0] == apc.NsUUIDPrefix || rest[0] == apc.NsNamePrefix) {
		idx := strings.IndexByte(rest, '/')
		if idx < 0 {
			err = fmt.Errorf("%q: missing bucket name after namespace", uri)
			return
		}
		bck.Ns = ParseNsUname(rest[:idx])
		rest = rest[idx+1:]
	}
	bck.Name, objName, _ = strings.Cut(rest, "/")
	err = bck.Validate()
	return
}

//////////
// Bcks //
//////////

// interface guard
var _ sort.Interface = (*Bcks)(nil)

func (bcks Bcks) Len() int      { return len(bcks) }
func (bcks Bcks) Swap(i, j int) { bcks[i], bcks[j] = bcks[j], bcks[i] }

func (bcks Bcks) Less(i, j int) bool {
	bi, bj := &bcks[i], &bcks[j]
	if bi.Provider != bj.Provider {
		return bi.Provider < bj.Provider
	}
	if si, sj := bi.Ns.String(), bj.Ns.String(); si != sj {
		return si < sj
	}
	return bi.Name < bj.Name
}

func (bcks Bcks) Contains(bck *Bck) bool {
	for i := range bcks {
		if bcks[i].Equal(bck) {
			return true
		}
	}
	return false
}
