// Package api provides native Go-based API/SDK over HTTP(S).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
)

type (
	// GetArgs define a (variable) number of optional parameters for GET object
	GetArgs struct {
		// If not specified (or same: if `nil`), Writer defaults to `io.Discard`
		// (in other words, with no writer the object that is being read will be discarded)
		Writer io.Writer

		// Currently, this (optional) Query field can (optionally) carry:
		// - `apc.QparamValidateCksum`: validate checksum on the gateway side
		Query url.Values

		// The field is used to facilitate a) range read, and b) blob download
		// E.g. range:
		// * Header.Set(cos.HdrRange, fmt.Sprintf("bytes=%d-%d", fromOffset, toOffset))
		Header http.Header
	}

	// ObjAttrs is returned by GetObject* methods
	ObjAttrs struct {
		wrespHeader http.Header
		n           int64
	}

	PutArgs struct {
		Reader io.Reader

		// optional; if provided, the gateway validates the received content against it
		Cksum *cos.Cksum

		BaseParams BaseParams

		Bck     cmn.Bck
		ObjName string

		// optional custom metadata (stored alongside the object)
		CustomMD map[string]string

		// Size is optional and, when specified, sets the content length of the request
		Size uint64

		SkipVC bool
	}
)

//////////////
// ObjAttrs //
//////////////

// most often used (convenience) method
func (oah *ObjAttrs) Size() int64 {
	if oah.n == 0 { // compare w/ cmn.ObjAttrs.FromHeader
		oah.n = -1
		if s := oah.wrespHeader.Get(apc.HdrObjSize); s != "" {
			oah.n, _ = strconv.ParseInt(s, 10, 64)
		}
	}
	return oah.n
}

func (oah *ObjAttrs) Attrs() (out cmn.ObjAttrs) {
	out.FromHeader(oah.wrespHeader)
	return out
}

// GetObject reads the object (or its range, see GetArgs.Header) and writes it
// into `args.Writer`. Returns cmn.ErrObjNotFound if the object does not exist.
func GetObject(bp BaseParams, bck cmn.Bck, objName string, args *GetArgs) (oah ObjAttrs, err error) {
	return getObject(bp, bck, objName, args, false)
}

// Same as above with checksum validation: the received content is checksummed
// and compared with the checksum in the response headers.
// Returns `cos.ErrBadCksum` upon mismatch.
func GetObjectWithValidation(bp BaseParams, bck cmn.Bck, objName string, args *GetArgs) (oah ObjAttrs, err error) {
	return getObject(bp, bck, objName, args, true)
}

func getObject(bp BaseParams, bck cmn.Bck, objName string, args *GetArgs, validate bool) (oah ObjAttrs, err error) {
	if err = cos.ValidateOname(objName); err != nil {
		return oah, err
	}
	var (
		wresp *wrappedResp
		w     = io.Discard
		q     url.Values
		hdr   http.Header
	)
	if args != nil {
		if args.Writer != nil {
			w = args.Writer
		}
		q = args.Query
		hdr = args.Header
	}
	bp.Method = http.MethodGet
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathObjects.Join(bck.Name, objName)
		reqParams.Query = bck.AddToQuery(q)
		reqParams.Header = hdr
		reqParams.Validate = validate
		reqParams.bck, reqParams.objName = &bck, objName
	}
	wresp, err = reqParams.DoReqAny(w)
	FreeRp(reqParams)
	if err != nil {
		return oah, err
	}
	oah.wrespHeader, oah.n = wresp.Header, wresp.n
	if !validate {
		return oah, nil
	}
	hdrCksumValue := wresp.Header.Get(apc.HdrObjCksumVal)
	if hdrCksumValue != "" && wresp.cksumValue != hdrCksumValue {
		ty := wresp.Header.Get(apc.HdrObjCksumType)
		err = cos.NewErrDataCksum(cos.NewCksum(ty, wresp.cksumValue), cos.NewCksum(ty, hdrCksumValue), bck.Cname(objName))
	}
	return oah, err
}

// GetObjectReader returns reader of the requested object. It does not read body
// bytes, nor validates a checksum. Caller is responsible for closing the reader.
func GetObjectReader(bp BaseParams, bck cmn.Bck, objName string, args *GetArgs) (r io.ReadCloser, size int64, err error) {
	if err = cos.ValidateOname(objName); err != nil {
		return nil, 0, err
	}
	var (
		q   url.Values
		hdr http.Header
	)
	if args != nil {
		q = args.Query
		hdr = args.Header
	}
	bp.Method = http.MethodGet
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathObjects.Join(bck.Name, objName)
		reqParams.Query = bck.AddToQuery(q)
		reqParams.Header = hdr
		reqParams.bck, reqParams.objName = &bck, objName
	}
	var resp *http.Response
	r, resp, err = reqParams.doReader()
	FreeRp(reqParams)
	if err == nil {
		size = resp.ContentLength
	}
	return r, size, err
}

// PutObject creates an object from the body of the reader (`args.Reader`) and puts
// it in the specified bucket.
//
// Assumes that `args.Reader` is already opened and ready for usage.
func PutObject(args *PutArgs) (oah ObjAttrs, err error) {
	if err = cos.ValidateOname(args.ObjName); err != nil {
		return oah, err
	}
	var (
		wresp *wrappedResp
		bp    = args.BaseParams
		hdr   = make(http.Header, 4)
	)
	hdr.Set(cos.HdrContentType, cos.ContentBinary)
	if args.Cksum != nil && !args.Cksum.IsEmpty() {
		hdr.Set(apc.HdrObjCksumType, args.Cksum.Type())
		hdr.Set(apc.HdrObjCksumVal, args.Cksum.Value())
	}
	if len(args.CustomMD) > 0 {
		oa := cmn.ObjAttrs{CustomMD: args.CustomMD}
		hdr.Set(apc.HdrObjCustomMD, oa.CustomMDString())
	}
	bp.Method = http.MethodPut
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathObjects.Join(args.Bck.Name, args.ObjName)
		reqParams.Query = args.Bck.AddToQuery(nil)
		reqParams.Header = hdr
		reqParams.BodyR = args.Reader
		reqParams.Size = int64(args.Size)
		reqParams.bck, reqParams.objName = &args.Bck, args.ObjName
	}
	wresp, err = reqParams.DoReqAny(nil)
	FreeRp(reqParams)
	if err == nil {
		oah.wrespHeader = wresp.Header
	}
	return oah, err
}

// HeadObject returns object properties; can be conventionally used to establish in-cluster presence.
// Returns cmn.ErrObjNotFound (or cmn.ErrBckNotFound) if the object (or the bucket) does not exist.
func HeadObject(bp BaseParams, bck cmn.Bck, objName string) (*cmn.ObjAttrs, error) {
	if err := cos.ValidateOname(objName); err != nil {
		return nil, err
	}
	bp.Method = http.MethodHead
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathObjects.Join(bck.Name, objName)
		reqParams.Query = bck.AddToQuery(nil)
		reqParams.bck, reqParams.objName = &bck, objName
	}
	wresp, err := reqParams.DoReqAny(nil)
	FreeRp(reqParams)
	if err != nil {
		return nil, err
	}
	oa := &cmn.ObjAttrs{}
	oa.FromHeader(wresp.Header)
	return oa, nil
}

// DeleteObject deletes an object specified by bucket/object.
func DeleteObject(bp BaseParams, bck cmn.Bck, objName string) error {
	if err := cos.ValidateOname(objName); err != nil {
		return err
	}
	bp.Method = http.MethodDelete
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathObjects.Join(bck.Name, objName)
		reqParams.Query = bck.AddToQuery(nil)
		reqParams.bck, reqParams.objName = &bck, objName
	}
	err := reqParams.DoRequest()
	FreeRp(reqParams)
	return err
}

// Promote copies (or moves) local file or directory, accessible by the gateway,
// into the bucket; `args.ObjName` is the destination object name (or prefix, for directories).
// The source must be an absolute path.
// Returns ID of the (promote) job that may be asynchronously running, or empty string
// if the promotion has completed synchronously.
func Promote(bp BaseParams, bck cmn.Bck, args *apc.PromoteArgs) (xid string, err error) {
	if err = bck.ValidateName(); err != nil {
		return "", err
	}
	if err = args.Validate(); err != nil {
		return "", err
	}
	actMsg := apc.ActMsg{Action: apc.ActPromote, Name: args.SrcFQN, Value: args}
	bp.Method = http.MethodPost
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathObjects.Join(bck.Name)
		reqParams.Body = cos.MustMarshal(actMsg)
		reqParams.Header = http.Header{cos.HdrContentType: []string{cos.ContentJSON}}
		reqParams.Query = bck.AddToQuery(nil)
		reqParams.bck = &bck
	}
	_, err = reqParams.DoReqAny(&xid)
	FreeRp(reqParams)
	return xid, err
}
