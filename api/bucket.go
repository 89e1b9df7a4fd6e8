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

// CreateBucket sends request to create an AIS bucket with the given name
// and, optionally, specific non-default properties (via props).
func CreateBucket(bp BaseParams, bck cmn.Bck, props *cmn.Bprops) error {
	if err := bck.Validate(); err != nil {
		return err
	}
	bp.Method = http.MethodPost
	q := qalloc()
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathBuckets.Join(bck.Name)
		reqParams.Body = cos.MustMarshal(apc.ActMsg{Action: apc.ActCreateBck, Value: props})
		reqParams.Header = http.Header{cos.HdrContentType: []string{cos.ContentJSON}}
		reqParams.Query = bck.AddToQuery(q)
		reqParams.bck = &bck
	}
	err := reqParams.DoRequest()
	FreeRp(reqParams)
	qfree(q)
	return err
}

// DestroyBucket sends request to remove an AIS bucket with the given name.
// All objects in the bucket get removed as well.
func DestroyBucket(bp BaseParams, bck cmn.Bck) error {
	bp.Method = http.MethodDelete
	q := qalloc()
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathBuckets.Join(bck.Name)
		reqParams.Body = cos.MustMarshal(apc.ActMsg{Action: apc.ActDestroyBck})
		reqParams.Header = http.Header{cos.HdrContentType: []string{cos.ContentJSON}}
		reqParams.Query = bck.AddToQuery(q)
		reqParams.bck = &bck
	}
	err := reqParams.DoRequest()
	FreeRp(reqParams)
	qfree(q)
	return err
}

// HeadBucket returns bucket properties; the properties are carried
// in the response headers (JSON-encoded, under apc.HdrBucketProps).
// Returns cmn.ErrBckNotFound if the bucket does not exist.
func HeadBucket(bp BaseParams, bck cmn.Bck) (*cmn.Bprops, error) {
	if err := bck.ValidateName(); err != nil {
		return nil, err
	}
	bp.Method = http.MethodHead
	q := qalloc()
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathBuckets.Join(bck.Name)
		reqParams.Query = bck.AddToQuery(q)
		reqParams.bck = &bck
	}
	wresp, err := reqParams.DoReqAny(nil)
	FreeRp(reqParams)
	qfree(q)
	if err != nil {
		return nil, err
	}
	props := &cmn.Bprops{}
	hdr := wresp.Header
	if s := hdr.Get(apc.HdrBucketProps); s != "" {
		err = cos.JSON.UnmarshalFromString(s, props)
		return props, err
	}
	// older gateways: individual headers
	props.Provider = hdr.Get(apc.HdrBackendProvider)
	props.CksumType = hdr.Get(apc.HdrBucketCksumType)
	props.Versioning = cos.IsParseBool(hdr.Get(apc.HdrBucketVerEnabled))
	return props, nil
}

// ListBuckets returns buckets for the specified provider (all providers when empty).
func ListBuckets(bp BaseParams, provider string) (cmn.Bcks, error) {
	var (
		bck = cmn.Bck{Provider: provider}
		q   = qalloc()
	)
	bp.Method = http.MethodGet
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathBuckets.S
		reqParams.Body = cos.MustMarshal(apc.ActMsg{Action: apc.ActList})
		reqParams.Header = http.Header{cos.HdrContentType: []string{cos.ContentJSON}}
		reqParams.Query = bck.AddToQuery(q)
	}
	bcks := cmn.Bcks{}
	_, err := reqParams.DoReqAny(&bcks)
	FreeRp(reqParams)
	qfree(q)
	if err != nil {
		return nil, err
	}
	return bcks, nil
}

// QueryBuckets returns true if the bucket exists (with its provider and namespace, if specified).
func QueryBuckets(bp BaseParams, bck cmn.Bck) (bool, error) {
	bcks, err := ListBuckets(bp, bck.Provider)
	if err != nil {
		return false, err
	}
	if bck.Provider, err = cmn.NormalizeProvider(bck.Provider); err != nil {
		return false, err
	}
	return bcks.Contains(&bck), nil
}
