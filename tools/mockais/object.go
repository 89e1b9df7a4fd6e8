// Package mockais provides an in-process, single-node, AIS-compatible gateway
// that implements the subset of the AIS v1 API used by `api` package and CLI.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mockais

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/cmn/nlog"

	"github.com/valyala/fasthttp"
)

func (s *Server) objectHandler(a *apiRequest) {
	switch a.method {
	case http.MethodGet:
		s.httpobjget(a)
	case http.MethodPut:
		s.httpobjput(a)
	case http.MethodHead:
		s.httpobjhead(a)
	case http.MethodDelete:
		s.httpobjdelete(a)
	case http.MethodPost:
		s.httpobjpost(a)
	default:
		s.writeErr(a.ctx, fmt.Errorf("invalid method %s %s", a.method, a.path), http.StatusMethodNotAllowed)
	}
}

func (a *apiRequest) bckObj() (bck cmn.Bck, objName string, err error) {
	if bck, err = a.bck(); err != nil {
		return
	}
	objName = a.objName()
	err = cos.ValidateOname(objName)
	return
}

// PUT /v1/objects/<bucket>/<object>
func (s *Server) httpobjput(a *apiRequest) {
	s.stats.inc(OpPut)
	bck, objName, err := a.bckObj()
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	var (
		req  = &a.ctx.Request
		data = req.Body()
		md   = &lom{}
	)
	// validate checksum provided by the client
	if ty := string(req.Header.Peek(apc.HdrObjCksumType)); ty != "" && ty != cos.ChecksumNone {
		if err := cos.ValidateCksumType(ty); err != nil {
			s.writeErr(a.ctx, err, http.StatusBadRequest)
			return
		}
		expected := cos.NewCksum(ty, string(req.Header.Peek(apc.HdrObjCksumVal)))
		if computed := cos.ChecksumBytes(ty, data); !computed.Equal(expected) {
			s.writeErr(a.ctx, cos.NewErrDataCksum(computed, expected, bck.Cname(objName)), http.StatusBadRequest)
			return
		}
	}
	if v := req.Header.Peek(apc.HdrObjCustomMD); len(v) > 0 {
		hdr := http.Header{}
		hdr.Set(apc.HdrObjCustomMD, string(v))
		oa := &cmn.ObjAttrs{}
		oa.FromHeader(hdr)
		md.CustomMD = oa.CustomMD
	}
	if _, err := s.putObj(&bck, objName, data, md, true /*overwrite*/); err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	s.stats.addBytes("in", len(data))
	setObjHeaders(&a.ctx.Response.Header, md)
	a.ctx.SetStatusCode(http.StatusOK)
}

// GET /v1/objects/<bucket>/<object>
func (s *Server) httpobjget(a *apiRequest) {
	s.stats.inc(OpGet)
	bck, objName, err := a.bckObj()
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	md, data, err := s.getObj(&bck, objName)
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	status := http.StatusOK
	if rng := string(a.ctx.Request.Header.Peek(cos.HdrRange)); rng != "" {
		var start, end int64
		if start, end, err = parseRange(rng, int64(len(data))); err != nil {
			s.writeErr(a.ctx, err, http.StatusRequestedRangeNotSatisfiable)
			return
		}
		data = data[start : end+1]
		status = http.StatusPartialContent
		a.ctx.Response.Header.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, md.Size))
	}
	setObjHeaders(&a.ctx.Response.Header, md)
	a.ctx.SetContentType(cos.ContentBinary)
	a.ctx.SetStatusCode(status)
	a.ctx.SetBodyString(data)
	s.stats.addBytes("out", len(data))
}

// HEAD /v1/objects/<bucket>/<object>
func (s *Server) httpobjhead(a *apiRequest) {
	s.stats.inc(OpHeadObj)
	bck, objName, err := a.bckObj()
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	if _, err := s.bprops(&bck); err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	md, err := s.getLom(&bck, objName)
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	setObjHeaders(&a.ctx.Response.Header, md)
	a.ctx.SetStatusCode(http.StatusOK)
}

// DELETE /v1/objects/<bucket>/<object>
func (s *Server) httpobjdelete(a *apiRequest) {
	s.stats.inc(OpDelete)
	bck, objName, err := a.bckObj()
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	if err := s.deleteObj(&bck, objName); err != nil {
		s.writeErrAuto(a.ctx, err)
	}
}

// POST /v1/objects/<bucket> {"action": "promote", "name": <source>, "value": apc.PromoteArgs}
func (s *Server) httpobjpost(a *apiRequest) {
	s.stats.inc(OpPromote)
	msg, err := a.actMsg()
	if err != nil {
		s.writeErr(a.ctx, err, http.StatusBadRequest)
		return
	}
	if msg.Action != apc.ActPromote {
		s.writeErr(a.ctx, fmt.Errorf("invalid action %q (expecting %q)", msg.Action, apc.ActPromote), http.StatusBadRequest)
		return
	}
	bck, err := a.bck()
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	args := &apc.PromoteArgs{}
	if err := msg.MorphValue(args); err != nil {
		s.writeErr(a.ctx, err, http.StatusBadRequest)
		return
	}
	if args.SrcFQN == "" {
		args.SrcFQN = msg.Name
	}
	if err := args.Validate(); err != nil {
		s.writeErr(a.ctx, err, http.StatusBadRequest)
		return
	}
	if _, err := s.bprops(&bck); err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	xid, err := s.promote(&bck, args)
	if err != nil {
		s.writeErrAuto(a.ctx, err)
		return
	}
	a.ctx.SetStatusCode(http.StatusOK)
	a.ctx.SetBodyString(xid)
}

func setObjHeaders(hdr *fasthttp.ResponseHeader, md *lom) {
	h := http.Header{}
	md.attrs().ToHeader(h)
	for k, vals := range h {
		for _, v := range vals {
			hdr.Set(k, v)
		}
	}
}

// single range only: "bytes=start-end", "bytes=start-", "bytes=-suffix"
func parseRange(rng string, size int64) (start, end int64, err error) {
	spec, ok := strings.CutPrefix(rng, cos.HdrRangeValPrefix)
	if !ok || strings.Contains(spec, ",") {
		return 0, 0, fmt.Errorf("unsupported range %q", rng)
	}
	from, to, ok := strings.Cut(spec, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid range %q", rng)
	}
	switch {
	case from == "":
		var n int64
		if n, err = strconv.ParseInt(to, 10, 64); err != nil || n <= 0 {
			return 0, 0, fmt.Errorf("invalid range %q", rng)
		}
		start, end = max(size-n, 0), size-1
	default:
		if start, err = strconv.ParseInt(from, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("invalid range %q", rng)
		}
		end = size - 1
		if to != "" {
			if end, err = strconv.ParseInt(to, 10, 64); err != nil {
				return 0, 0, fmt.Errorf("invalid range %q", rng)
			}
			end = min(end, size-1)
		}
	}
	if start < 0 || start > end || start >= size {
		return 0, 0, fmt.Errorf("range %q not satisfiable (size %d)", rng, size)
	}
	return start, end, nil
}

func logPromote(bck *cmn.Bck, args *apc.PromoteArgs, n int) {
	nlog.Infof("promoted %d file(s): %s => %s", n, args.SrcFQN, bck.Cname(args.ObjName))
}
