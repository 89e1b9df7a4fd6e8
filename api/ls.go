// Package api provides native Go-based API/SDK over HTTP(S).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"net/http"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
)

type ListArgs struct {
	Progress *ProgressContext // with a callback
	Limit    int64            // max number of entries to return; zero - all
}

// LsoCursor is the (bucket, list-objects message) pair that identifies the next page.
// It is a value: Fetch never modifies the receiver and returns the cursor
// for the following page instead.
type LsoCursor struct {
	bck  cmn.Bck
	msg  apc.LsoMsg
	done bool
}

// ListObjectsPage returns a single page of objects.
// The returned continuation token and listing UUID are written back into `lsmsg`,
// so that the caller can use the same message to fetch the next page.
// Empty `lsmsg.ContinuationToken` upon return indicates the last page.
func ListObjectsPage(bp BaseParams, bck cmn.Bck, lsmsg *apc.LsoMsg) (*cmn.LsoRes, error) {
	if lsmsg == nil {
		lsmsg = &apc.LsoMsg{}
	}
	if err := bck.ValidateName(); err != nil {
		return nil, err
	}
	if err := cos.ValidatePrefix("list-objects", lsmsg.Prefix); err != nil {
		return nil, err
	}
	bp.Method = http.MethodGet
	actMsg := apc.ActMsg{Action: apc.ActList, Value: lsmsg}
	q := qalloc()
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathBuckets.Join(bck.Name)
		reqParams.Header = http.Header{
			cos.HdrAccept:      []string{cos.ContentMsgPack},
			cos.HdrContentType: []string{cos.ContentJSON},
		}
		reqParams.Query = bck.AddToQuery(q)
		reqParams.Body = cos.MustMarshal(actMsg)
		reqParams.bck = &bck

		reqParams.buf = allocMbuf() // mem-pool msgpack
	}
	page := &cmn.LsoRes{}
	_, err := reqParams.DoReqAny(page)
	freeMbuf(reqParams.buf)
	FreeRp(reqParams)
	qfree(q)
	if err != nil {
		return nil, err
	}
	lsmsg.UUID = page.UUID
	lsmsg.ContinuationToken = page.ContinuationToken
	return page, nil
}

// ListObjects returns all objects (or up to `args.Limit`) that match `lsmsg`,
// fetching pages one at a time and concatenating their entries in the fetched order.
// The listing always starts from the beginning: UUID and continuation token
// in `lsmsg` are reset prior to the first page and updated upon return.
func ListObjects(bp BaseParams, bck cmn.Bck, lsmsg *apc.LsoMsg, args ListArgs) (*cmn.LsoRes, error) {
	if lsmsg == nil {
		lsmsg = &apc.LsoMsg{}
	}
	lsmsg.UUID, lsmsg.ContinuationToken = "", ""

	var (
		lst      = &cmn.LsoRes{}
		cur      = NewLsoCursor(bck, lsmsg)
		progress = args.Progress
		limit    = args.Limit
	)
	if progress != nil && limit > 0 {
		progress.info.Total = limit
	}
	for !cur.Done() {
		if limit > 0 {
			toRead := limit - int64(len(lst.Entries))
			if toRead <= 0 {
				break
			}
			if cur.msg.PageSize == 0 || cur.msg.PageSize > toRead {
				cur = cur.withPageSize(toRead)
			}
		}
		page, next, err := cur.Fetch(bp)
		if err != nil {
			return nil, err
		}
		cur = next
		if lst.UUID == "" {
			lst.UUID = page.UUID
		}
		lst.Flags |= page.Flags
		lst.Entries = append(lst.Entries, page.Entries...)
		lst.ContinuationToken = page.ContinuationToken

		if progress != nil {
			progress.update(len(lst.Entries), cur.Done())
		}
	}
	if limit > 0 && int64(len(lst.Entries)) > limit {
		lst.Entries = lst.Entries[:limit]
	}
	lsmsg.UUID = lst.UUID
	lsmsg.ContinuationToken = lst.ContinuationToken
	return lst, nil
}

///////////////
// LsoCursor //
///////////////

// NewLsoCursor copies `lsmsg`; a non-empty continuation token
// (e.g., returned by a previous ListObjectsPage) resumes the listing from there.
func NewLsoCursor(bck cmn.Bck, lsmsg *apc.LsoMsg) LsoCursor {
	cur := LsoCursor{bck: bck}
	if lsmsg != nil {
		cur.msg = *lsmsg
	}
	return cur
}

// Fetch executes one list-objects round-trip. Fetching from a cursor that is done
// returns an empty page without contacting the cluster.
func (cur LsoCursor) Fetch(bp BaseParams) (*cmn.LsoRes, LsoCursor, error) {
	if cur.done {
		return &cmn.LsoRes{}, cur, nil
	}
	msg := cur.msg
	page, err := ListObjectsPage(bp, cur.bck, &msg)
	if err != nil {
		return nil, cur, err
	}
	next := LsoCursor{bck: cur.bck, msg: msg, done: page.ContinuationToken == ""}
	return page, next, nil
}

func (cur LsoCursor) Done() bool     { return cur.done }
func (cur LsoCursor) Token() string  { return cur.msg.ContinuationToken }
func (cur LsoCursor) Bck() cmn.Bck   { return cur.bck }
func (cur LsoCursor) UUID() string   { return cur.msg.UUID }
func (cur LsoCursor) Prefix() string { return cur.msg.Prefix }

func (cur LsoCursor) withPageSize(n int64) LsoCursor {
	cur.msg.PageSize = n
	return cur
}
