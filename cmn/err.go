// Package cmn provides common constants, types, and utilities for AIS clients
// and AIS-compatible gateways.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/NVIDIA/aisclient/cmn/cos"
)

// type codes carried by ErrHTTP.TypeCode (json "tcode")
const (
	TcodeBckNotFound     = "ErrBckNotFound"
	TcodeObjNotFound     = "ErrObjNotFound"
	TcodeInvalidBckName  = "ErrInvalidBckName"
	TcodeInvalidObjName  = "ErrInvalidObjName"
	TcodeBckAlreadyExist = "ErrBckAlreadyExists"
	TcodeXactNotFound    = "ErrXactNotFound"
	TcodeUnauthorized    = "ErrUnauthorized"
)

const fmtErrBckName = "bucket name %q is invalid: may only contain letters, numbers, dashes (-), underscores (_), and dots (.)"

type (
	// ErrHTTP is the error structure returned by the gateway with any non-2xx status
	ErrHTTP struct {
		TypeCode   string `json:"tcode,omitempty"`
		Message    string `json:"message"`
		Method     string `json:"method"`
		URLPath    string `json:"url_path"`
		RemoteAddr string `json:"remote_addr"`
		Node       string `json:"node,omitempty"`
		Status     int    `json:"status"`
	}

	ErrBckNotFound struct {
		herr *ErrHTTP
		bck  Bck
	}
	ErrObjNotFound struct {
		herr    *ErrHTTP
		bck     Bck
		objName string
	}
	ErrInvalidBckName struct {
		herr *ErrHTTP
		name string
	}
	ErrBckAlreadyExists struct {
		herr *ErrHTTP
		bck  Bck
	}
	ErrXactNotFound struct {
		herr *ErrHTTP
		id   string
	}

	// network, timeout, connection refused: the request never produced a response
	ErrTransport struct {
		err error
	}
)

/////////////
// ErrHTTP //
/////////////

// server side: err => ErrHTTP, with the type code derived from err
func NewErrHTTP(method, urlPath string, err error, status int) *ErrHTTP {
	herr := &ErrHTTP{Message: err.Error(), Method: method, URLPath: urlPath, Status: status}
	herr.TypeCode = typeCode(err)
	return herr
}

// unwraps, so that fmt.Errorf("...: %w", err) keeps the code
func typeCode(err error) string {
	var (
		errBck     *ErrBckNotFound
		errObj     *ErrObjNotFound
		errBckName *ErrInvalidBckName
		errObjName *cos.ErrInvalidObjName
		errExists  *ErrBckAlreadyExists
		errXact    *ErrXactNotFound
	)
	switch {
	case errors.As(err, &errBck):
		return TcodeBckNotFound
	case errors.As(err, &errObj):
		return TcodeObjNotFound
	case errors.As(err, &errBckName):
		return TcodeInvalidBckName
	case errors.As(err, &errObjName):
		return TcodeInvalidObjName
	case errors.As(err, &errExists):
		return TcodeBckAlreadyExist
	case errors.As(err, &errXact):
		return TcodeXactNotFound
	}
	return ""
}

func (herr *ErrHTTP) Error() string {
	s := herr.Message
	if herr.Method != "" || herr.URLPath != "" {
		s += " (" + herr.Method + " " + herr.URLPath
		if herr.Status != 0 {
			s += ", " + strconv.Itoa(herr.Status)
		}
		s += ")"
	}
	return s
}

func (herr *ErrHTTP) StatusText() string { return http.StatusText(herr.Status) }

// client side: translate ErrHTTP into one of the typed errors, if possible
// (bck and objName describe the request that failed)
func (herr *ErrHTTP) Typed(bck *Bck, objName string) error {
	var b Bck
	if bck != nil {
		b = *bck
	}
	switch herr.TypeCode {
	case TcodeBckNotFound:
		return &ErrBckNotFound{herr: herr, bck: b}
	case TcodeObjNotFound:
		return &ErrObjNotFound{herr: herr, bck: b, objName: objName}
	case TcodeInvalidBckName:
		return &ErrInvalidBckName{herr: herr, name: b.Name}
	case TcodeBckAlreadyExist:
		return &ErrBckAlreadyExists{herr: herr, bck: b}
	case TcodeXactNotFound:
		return &ErrXactNotFound{herr: herr}
	}
	// no type code (e.g. HEAD from a server that doesn't send HdrErrTcode):
	// infer from the status and the request
	if herr.Status == http.StatusNotFound && bck != nil {
		if objName != "" {
			return &ErrObjNotFound{herr: herr, bck: b, objName: objName}
		}
		return &ErrBckNotFound{herr: herr, bck: b}
	}
	return herr
}

////////////////////
// typed errors   //
////////////////////

func NewErrBckNotFound(bck *Bck) *ErrBckNotFound { return &ErrBckNotFound{bck: *bck} }

func (e *ErrBckNotFound) Error() string {
	if e.herr != nil && e.herr.Message != "" {
		return e.herr.Message
	}
	return "bucket " + e.bck.Cname("") + " does not exist"
}

func (e *ErrBckNotFound) Unwrap() error {
	if e.herr == nil {
		return nil
	}
	return e.herr
}

func NewErrObjNotFound(bck *Bck, objName string) *ErrObjNotFound {
	return &ErrObjNotFound{bck: *bck, objName: objName}
}

func (e *ErrObjNotFound) Error() string {
	if e.herr != nil && e.herr.Message != "" {
		return e.herr.Message
	}
	return e.bck.Cname(e.objName) + " does not exist"
}

func (e *ErrObjNotFound) Unwrap() error {
	if e.herr == nil {
		return nil
	}
	return e.herr
}

func NewErrInvalidBckName(name string) *ErrInvalidBckName { return &ErrInvalidBckName{name: name} }

func (e *ErrInvalidBckName) Error() string {
	if e.herr != nil && e.herr.Message != "" {
		return e.herr.Message
	}
	if e.name == "" {
		return "bucket name is missing"
	}
	return fmt.Sprintf(fmtErrBckName, e.name)
}

func (e *ErrInvalidBckName) Unwrap() error {
	if e.herr == nil {
		return nil
	}
	return e.herr
}

func NewErrBckAlreadyExists(bck *Bck) *ErrBckAlreadyExists { return &ErrBckAlreadyExists{bck: *bck} }

func (e *ErrBckAlreadyExists) Error() string {
	if e.herr != nil && e.herr.Message != "" {
		return e.herr.Message
	}
	return "bucket " + e.bck.Cname("") + " already exists"
}

func (e *ErrBckAlreadyExists) Unwrap() error {
	if e.herr == nil {
		return nil
	}
	return e.herr
}

func NewErrXactNotFound(id string) *ErrXactNotFound { return &ErrXactNotFound{id: id} }

func (e *ErrXactNotFound) Error() string {
	if e.herr != nil && e.herr.Message != "" {
		return e.herr.Message
	}
	return "job " + e.id + " not found"
}

func (e *ErrXactNotFound) Unwrap() error {
	if e.herr == nil {
		return nil
	}
	return e.herr
}

//////////////////
// ErrTransport //
//////////////////

func NewErrTransport(err error) *ErrTransport { return &ErrTransport{err: err} }

func (e *ErrTransport) Error() string {
	var uerr *url.Error
	if errors.As(e.err, &uerr) {
		// e.g. "dial tcp 127.0.0.1:8080: connect: connection refused"
		return "failed to reach " + uerr.URL + ": " + uerr.Err.Error()
	}
	return e.err.Error()
}

func (e *ErrTransport) Unwrap() error { return e.err }

func (e *ErrTransport) Timeout() bool {
	return cos.IsClientTimeout(e.err) || cos.IsErrClientURLTimeout(e.err)
}

/////////////
// helpers //
/////////////

func IsErrBckNotFound(err error) bool {
	var e *ErrBckNotFound
	return errors.As(err, &e)
}

func IsErrObjNotFound(err error) bool {
	var e *ErrObjNotFound
	return errors.As(err, &e)
}

func IsErrInvalidBckName(err error) bool {
	var e *ErrInvalidBckName
	return errors.As(err, &e)
}

func IsErrBckAlreadyExists(err error) bool {
	var e *ErrBckAlreadyExists
	return errors.As(err, &e)
}

func IsErrXactNotFound(err error) bool {
	var e *ErrXactNotFound
	return errors.As(err, &e)
}

func IsErrTransport(err error) bool {
	var e *ErrTransport
	return errors.As(err, &e)
}

// any "not found": bucket, object, job, or plain 404
func IsNotFound(err error) bool {
	return IsErrBckNotFound(err) || IsErrObjNotFound(err) || IsErrXactNotFound(err) || IsStatusNotFound(err)
}

func IsStatusNotFound(err error) bool { return HTTPStatus(err) == http.StatusNotFound }

// returns zero when err did not originate from an http response
func HTTPStatus(err error) int {
	var herr *ErrHTTP
	if errors.As(err, &herr) {
		return herr.Status
	}
	return 0
}

func isHTMLish(msg string) bool {
	msg = strings.TrimSpace(msg)
	return strings.HasPrefix(msg, "<!DOCTYPE") || strings.HasPrefix(msg, "<html")
}

// non-JSON error body (e.g., from a proxy in between)
func NewErrHTTPFromBody(method, urlPath string, body []byte, status int) *ErrHTTP {
	msg := string(body)
	if msg == "" || isHTMLish(msg) {
		msg = http.StatusText(status)
	}
	return &ErrHTTP{Message: strings.TrimSpace(msg), Method: method, URLPath: urlPath, Status: status}
}
