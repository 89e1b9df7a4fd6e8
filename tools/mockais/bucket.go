// Package mockais provides an in-process, single-node, AIS-compatible gateway
// that implements the subset of the AIS v1 API used by `api` package and CLI.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mockais

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/cmn/nlog"
)

const lsotag = "list-objects"

func (s *Server) bucketHandler(a *apiRequest) {
	switch a.method {
	case http.MethodGet:
		s.httpbckget(a)
	case http.MethodPost:
		s.httpbckpost(a)
	case http.MethodDelete:
		s.httpbckdelete(a)
	case http.MethodHead:
		s.httpbckhead(a)
	default:
		s.writeErr(a.ctx, fmt.Errorf("invalid method %s %s", a.method, a.path), http.StatusMethodNotAllowed)
	}
}

// GET /v1/buckets/[<bucket>]
func (s *Server) httpbckget(a *apiRequest) {
	msg, err := a.actMsg()
	if err != nil {
		s.writeErr(a.ctx, err, http.StatusBadRequest)
		return
	}
	if msg.Action != apc.ActList {
		s.writeErr(a.ctx, fmt.Errorf("invalid action %q (expecting %q)", msg.Action, apc.ActList), http.StatusBadRequest)
		return
	}
	if len(a.items) == 0 || a.items[0] == "" {
		s.stats.inc(OpListBcks)
		provider := string(a.ctx.QueryArgs().Peek(apc.QparamProvider))
		if provider != "" {
			if provider, err = cmn.NormalizeProvider(provider); err != nil {
				s.writeErr(a.ctx, err, http.StatusBadRequest)
				return
			}
		}
		bcks, err := s.listBcks(provider)
		if err != nil {
			s.writeErrAuto(a.ctx, err)
			return
		}
		sort.Sort(bcks)
		writeJSON(a.ctx, bcks)
		return
	}

	s.stats.inc(OpList)
	bck, err := a.bck()
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	lsmsg := &apc.LsoMsg{}
	if err := msg.MorphValue(lsmsg); err != nil {
		s.writeErr(a.ctx, err, http.StatusBadRequest)
		return
	}
	if err := cos.ValidatePrefix(lsotag, lsmsg.Prefix); err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	lst, err := s.lsPage(&bck, lsmsg)
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	if strings.Contains(string(a.ctx.Request.Header.Peek(cos.HdrAccept)), cos.ContentMsgPack) {
		err = writeMsgPack(a.ctx, lst)
	} else {
		writeJSON(a.ctx, lst)
	}
	if err != nil {
		nlog.Errorln("failed to transmit", lsotag, "page:", err)
	}
}

// one page of the (lexicographically ordered) list of objects
// - continuation token is the name of the last returned entry;
// - the page is final (empty token) when no matching entries remain
func (s *Server) lsPage(bck *cmn.Bck, lsmsg *apc.LsoMsg) (*cmn.LsoRes, error) {
	if _, err := s.bprops(bck); err != nil {
		return nil, err
	}
	pageSize := lsmsg.PageSize
	switch {
	case pageSize < 0:
		return nil, fmt.Errorf("%s: invalid page size %d", lsotag, pageSize)
	case pageSize == 0:
		pageSize = s.config.DefaultPageSize
	case pageSize > s.config.MaxPageSize:
		pageSize = s.config.MaxPageSize
	}

	// default props
	switch {
	case lsmsg.Props == "":
		lsmsg.AddProps(apc.GetPropsMinimal...)
		lsmsg.SetFlag(apc.LsNameSize)
	case lsmsg.Props == apc.GetPropsName:
		lsmsg.SetFlag(apc.LsNameOnly)
	}
	var (
		props = lsmsg.PropsSet()
		after = lsmsg.ContinuationToken
		lst   = &cmn.LsoRes{UUID: lsmsg.UUID, Entries: make(cmn.LsoEntries, 0, min(pageSize, 1024))}
		more  bool
		errCb error
	)
	if lst.UUID == "" {
		lst.UUID = cos.GenUUID()
	}
	if lsmsg.StartAfter > after {
		after = lsmsg.StartAfter
	}
	err := s.db.Iterate(collMeta(bck), lsmsg.Prefix, after, func(name, value string) bool {
		if int64(len(lst.Entries)) == pageSize {
			more = true
			return false
		}
		lom := &lom{}
		if errCb = cos.JSON.UnmarshalFromString(value, lom); errCb != nil {
			return false
		}
		en := s.toEntry(name, lom)
		if lsmsg.IsFlagSet(apc.LsNameOnly) {
			en = &cmn.LsoEnt{Name: en.Name, Flags: en.Flags}
		} else {
			en = en.CopyWithProps(props)
		}
		lst.Entries = append(lst.Entries, en)
		return true
	})
	if err == nil {
		err = errCb
	}
	if err != nil {
		return nil, err
	}
	if more {
		lst.ContinuationToken = lst.Entries[len(lst.Entries)-1].Name
	}
	return lst, nil
}

// POST /v1/buckets/<bucket> {"action": "create-bck"}
func (s *Server) httpbckpost(a *apiRequest) {
	s.stats.inc(OpCreateBck)
	msg, err := a.actMsg()
	if err != nil {
		s.writeErr(a.ctx, err, http.StatusBadRequest)
		return
	}
	if msg.Action != apc.ActCreateBck {
		s.writeErr(a.ctx, fmt.Errorf("invalid action %q (expecting %q)", msg.Action, apc.ActCreateBck), http.StatusBadRequest)
		return
	}
	bck, err := a.bck()
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	var props *cmn.Bprops
	if msg.Value != nil {
		props = &cmn.Bprops{}
		if err := msg.MorphValue(props); err != nil {
			s.writeErr(a.ctx, err, http.StatusBadRequest)
			return
		}
	}
	if err := s.createBck(&bck, props); err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	nlog.Infoln("created bucket", bck.Cname(""))
}

// DELETE /v1/buckets/<bucket> {"action": "destroy-bck"}
func (s *Server) httpbckdelete(a *apiRequest) {
	s.stats.inc(OpDestroy)
	msg, err := a.actMsg()
	if err != nil {
		s.writeErr(a.ctx, err, http.StatusBadRequest)
		return
	}
	if msg.Action != apc.ActDestroyBck {
		s.writeErr(a.ctx, fmt.Errorf("invalid action %q (expecting %q)", msg.Action, apc.ActDestroyBck), http.StatusBadRequest)
		return
	}
	bck, err := a.bck()
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	if err := s.destroyBck(&bck); err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	nlog.Infoln("destroyed bucket", bck.Cname(""))
}

// HEAD /v1/buckets/<bucket>
func (s *Server) httpbckhead(a *apiRequest) {
	s.stats.inc(OpHeadBck)
	bck, err := a.bck()
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	props, err := s.bprops(&bck)
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	hdr := &a.ctx.Response.Header
	hdr.Set(apc.HdrBucketProps, cos.MustMarshalToString(props))
	hdr.Set(apc.HdrBackendProvider, props.Provider)
	hdr.Set(apc.HdrBucketCksumType, props.CksumType)
	hdr.Set(apc.HdrBucketVerEnabled, strconv.FormatBool(props.Versioning))
	hdr.Set(apc.HdrBucketCreated, strconv.FormatInt(props.Created, 10))
	a.ctx.SetStatusCode(http.StatusOK)
}
