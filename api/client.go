// Package api provides native Go-based API/SDK over HTTP(S).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/tinylib/msgp/msgp"
)

type (
	BaseParams struct {
		Client *http.Client
		URL    string
		Method string
		Token  string
		UA     string
	}

	// ReqParams is used in constructing client-side API requests to the AIS gateway.
	// Stores Query and Headers for providing arguments that are not used commonly in API requests
	ReqParams struct {
		Query  url.Values
		Header http.Header
		BodyR  io.Reader // streaming body (e.g., PUT object), takes precedence over Body
		Path   string
		Body   []byte

		// bucket and object this request is about (to produce typed errors)
		bck     *cmn.Bck
		objName string

		// msgpack buffer (see allocMbuf)
		buf []byte

		BaseParams BaseParams
		Size       int64 // content length of BodyR (optional)

		// Determines if the response should be validated with the checksum
		Validate bool
	}

	wrappedResp struct {
		*http.Response
		n          int64  // number bytes read from `resp.Body`
		cksumValue string // checksum value of the response
	}
)

// HTTPStatus returns HTTP status or (-1) for non-HTTP error.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if status := cmn.HTTPStatus(err); status != 0 {
		return status
	}
	return -1 // invalid
}

func SetAuthToken(r *http.Request, token string) {
	if token != "" {
		r.Header.Set(cos.HdrAuthorization, apc.AuthenticationTypeBearer+" "+token)
	}
}

///////////////
// ReqParams //
///////////////

var (
	reqParamPool sync.Pool
	reqParams0   ReqParams
)

func AllocRp() *ReqParams {
	if v := reqParamPool.Get(); v != nil {
		return v.(*ReqParams)
	}
	return &ReqParams{}
}

func FreeRp(reqParams *ReqParams) {
	*reqParams = reqParams0
	reqParamPool.Put(reqParams)
}

// uses do() to make request; if successful, checks, drains, and closes the response body
func (reqParams *ReqParams) DoRequest() error {
	resp, err := reqParams.do()
	if err != nil {
		return err
	}
	err = reqParams.checkResp(resp)
	cos.DrainReader(resp.Body)
	resp.Body.Close()
	return err
}

// makes request via do(), decodes `v` structure from the `resp.Body` (if provided),
// and returns the entire wrapped response
func (reqParams *ReqParams) DoReqAny(v any) (*wrappedResp, error) {
	resp, err := reqParams.do()
	if err != nil {
		return nil, err
	}
	wresp, err := reqParams.readResp(resp, v)
	resp.Body.Close()
	return wresp, err
}

// same as above except that it returns response body (as io.ReadCloser) for subsequent reading
func (reqParams *ReqParams) doReader() (io.ReadCloser, *http.Response, error) {
	resp, err := reqParams.do()
	if err != nil {
		return nil, nil, err
	}
	if err := reqParams.checkResp(resp); err != nil {
		cos.DrainReader(resp.Body)
		resp.Body.Close()
		return nil, nil, err
	}
	return resp.Body, resp, nil
}

// makes a single HTTP request (no retries) and returns the response
func (reqParams *ReqParams) do() (*http.Response, error) {
	var reqBody io.Reader
	switch {
	case reqParams.BodyR != nil:
		reqBody = reqParams.BodyR
	case reqParams.Body != nil:
		reqBody = bytes.NewBuffer(reqParams.Body)
	}
	urlPath := reqParams.BaseParams.URL + reqParams.Path
	req, err := http.NewRequest(reqParams.BaseParams.Method, urlPath, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	if reqParams.BodyR != nil && reqParams.Size > 0 {
		req.ContentLength = reqParams.Size
	}
	reqParams.setRequestOptParams(req)
	SetAuthToken(req, reqParams.BaseParams.Token)

	resp, err := reqParams.BaseParams.Client.Do(req) //nolint:bodyclose // closed by a caller
	if err != nil {
		return nil, cmn.NewErrTransport(err)
	}
	return resp, nil
}

// setRequestOptParams given an existing HTTP Request and optional API parameters,
// sets the optional fields of the request if provided.
func (reqParams *ReqParams) setRequestOptParams(req *http.Request) {
	if len(reqParams.Query) != 0 {
		req.URL.RawQuery = reqParams.Query.Encode()
	}
	if reqParams.Header != nil {
		req.Header = reqParams.Header
	}
	if ua := reqParams.BaseParams.UA; ua != "" {
		req.Header.Set(cos.HdrUserAgent, ua)
	}
}

func (reqParams *ReqParams) readResp(resp *http.Response, v any) (*wrappedResp, error) {
	defer cos.DrainReader(resp.Body)

	if err := reqParams.checkResp(resp); err != nil {
		return nil, err
	}
	wresp := &wrappedResp{Response: resp}
	if v == nil {
		return wresp, nil
	}
	if w, ok := v.(io.Writer); ok {
		if !reqParams.Validate {
			n, err := io.Copy(w, resp.Body)
			if err != nil {
				return nil, err
			}
			wresp.n = n
		} else {
			hdrCksumType := resp.Header.Get(apc.HdrObjCksumType)
			n, cksum, err := cos.CopyAndChecksum(w, resp.Body, nil, hdrCksumType)
			if err != nil {
				return nil, err
			}
			wresp.n = n
			if cksum != nil {
				wresp.cksumValue = cksum.Value()
			}
		}
		return wresp, nil
	}

	var err error
	switch t := v.(type) {
	case *string:
		// when the response is a string (e.g., job UUID)
		var b []byte
		b, err = io.ReadAll(resp.Body)
		*t = string(b)
	default:
		if resp.StatusCode != http.StatusOK {
			break
		}
		if dec, ok := v.(msgp.Decodable); ok && resp.Header.Get(cos.HdrContentType) == cos.ContentMsgPack {
			var r *msgp.Reader
			if reqParams.buf != nil {
				r = msgp.NewReaderBuf(resp.Body, reqParams.buf)
			} else {
				r = msgp.NewReaderSize(resp.Body, msgpBufSize)
			}
			err = dec.DecodeMsg(r)
		} else {
			err = cos.JSON.NewDecoder(resp.Body).Decode(v)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return wresp, nil
}

func (reqParams *ReqParams) checkResp(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	var (
		herr   *cmn.ErrHTTP
		method = reqParams.BaseParams.Method
	)
	if method == http.MethodHead {
		// HEAD request does not return the body
		msg := resp.Header.Get(cos.HdrError)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		herr = &cmn.ErrHTTP{
			Message:  msg,
			TypeCode: resp.Header.Get(apc.HdrErrTcode),
			Method:   method,
			URLPath:  reqParams.Path,
			Status:   resp.StatusCode,
		}
	} else {
		msg, _ := io.ReadAll(resp.Body)
		herr = &cmn.ErrHTTP{}
		if jsonErr := cos.JSON.Unmarshal(msg, herr); jsonErr != nil || herr.Message == "" {
			herr = cmn.NewErrHTTPFromBody(method, reqParams.Path, msg, resp.StatusCode)
		}
		if herr.Status == 0 {
			herr.Status = resp.StatusCode
		}
		if herr.Method == "" {
			herr.Method, herr.URLPath = method, reqParams.Path
		}
	}
	return herr.Typed(reqParams.bck, reqParams.objName)
}
