// Package api provides native Go-based API/SDK over HTTP(S).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/cmn/mono"
	"github.com/NVIDIA/aisclient/xact"
)

// StartXaction starts a given xaction (job); only startable kinds are accepted
// (see `xact.Table` and `xact.ListDisplayNames(true)`).
// Returns the UUID of the started job.
func StartXaction(bp BaseParams, args *xact.ArgsMsg) (xid string, err error) {
	kind, err := xact.CheckStartable(args.Kind)
	if err != nil {
		return "", err
	}
	args.Kind = kind
	msg := apc.ActMsg{Action: apc.ActXactStart, Value: args.ToQueryMsg()}
	bp.Method = http.MethodPut
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathCluster.S
		reqParams.Body = cos.MustMarshal(msg)
		reqParams.Header = http.Header{cos.HdrContentType: []string{cos.ContentJSON}}
		reqParams.Query = args.Bck.AddToQuery(nil)
		if !args.Bck.IsEmpty() {
			reqParams.bck = &args.Bck
		}
	}
	_, err = reqParams.DoReqAny(&xid)
	FreeRp(reqParams)
	return xid, err
}

// AbortXaction aborts a given xaction (job) identified by ID or kind.
func AbortXaction(bp BaseParams, args *xact.ArgsMsg) error {
	msg := apc.ActMsg{Action: apc.ActXactStop, Value: args.ToQueryMsg()}
	bp.Method = http.MethodPut
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathCluster.S
		reqParams.Body = cos.MustMarshal(msg)
		reqParams.Header = http.Header{cos.HdrContentType: []string{cos.ContentJSON}}
		reqParams.Query = args.Bck.AddToQuery(nil)
	}
	err := reqParams.DoRequest()
	FreeRp(reqParams)
	return err
}

// QueryXactionSnaps gets all xaction snaps based on the specified selection.
func QueryXactionSnaps(bp BaseParams, args *xact.ArgsMsg) (xs xact.MultiSnap, err error) {
	msg := args.ToQueryMsg()
	bp.Method = http.MethodGet
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathCluster.S
		reqParams.Body = cos.MustMarshal(msg)
		reqParams.Header = http.Header{cos.HdrContentType: []string{cos.ContentJSON}}
		reqParams.Query = url.Values{apc.QparamWhat: []string{apc.WhatXactStats}}
	}
	_, err = reqParams.DoReqAny(&xs)
	FreeRp(reqParams)
	return xs, err
}

// GetXactionStatus retrieves the status of the xaction (job).
// Returns cmn.ErrXactNotFound when no such job is known.
func GetXactionStatus(bp BaseParams, args *xact.ArgsMsg) (status *xact.Status, err error) {
	msg := args.ToQueryMsg()
	bp.Method = http.MethodGet
	status = &xact.Status{}
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathCluster.S
		reqParams.Body = cos.MustMarshal(msg)
		reqParams.Header = http.Header{cos.HdrContentType: []string{cos.ContentJSON}}
		reqParams.Query = url.Values{apc.QparamWhat: []string{apc.WhatXactStatus}}
	}
	_, err = reqParams.DoReqAny(status)
	FreeRp(reqParams)
	if err != nil {
		return nil, err
	}
	return status, nil
}

//
// wait for xaction
//

func initPollingTimes(args *xact.ArgsMsg) (total, sleep time.Duration) {
	total = args.Timeout
	switch {
	case args.Timeout == 0:
		total = xact.DefWaitTimeShort
	case args.Timeout < 0:
		total = xact.DefWaitTimeLong
	}
	return total, xact.MinPollTime
}

func backoffPoll(dur time.Duration) time.Duration {
	dur += dur / 2
	return min(xact.MaxPollTime, dur)
}

// WaitForXaction polls the job's status (with exponential backoff) until the job
// finishes or aborts, the error is not retriable, or `args.Timeout` expires.
func WaitForXaction(bp BaseParams, args *xact.ArgsMsg) (status *xact.Status, err error) {
	var (
		total, sleep = initPollingTimes(args)
		ctx, cancel  = context.WithTimeout(context.Background(), total)
	)
	defer cancel()
	for {
		status, err = GetXactionStatus(bp, args)
		if err == nil && status.Finished() {
			return status, nil
		}
		if err != nil && !canRetryWait(err) {
			return nil, err
		}
		if err = sleepCtx(ctx, sleep); err != nil {
			return nil, err
		}
		sleep = backoffPoll(sleep)
	}
}

// WaitForSnaps polls xaction snapshots until `cond` says done (e.g. `args.Finished()`).
// Returns the elapsed time.
func WaitForSnaps(bp BaseParams, args *xact.ArgsMsg, cond xact.SnapsCond) (time.Duration, error) {
	var (
		begin        = mono.NanoTime()
		total, sleep = initPollingTimes(args)
		ctx, cancel  = context.WithTimeout(context.Background(), total)
	)
	defer cancel()
	for {
		snaps, err := QueryXactionSnaps(bp, args)
		switch {
		case err == nil:
			done, reset, errCond := cond(snaps)
			if errCond != nil {
				return mono.Since(begin), errCond
			}
			if done {
				return mono.Since(begin), nil
			}
			if reset {
				sleep = xact.MinPollTime
			}
		case !canRetryWait(err):
			return mono.Since(begin), err
		}
		if err := sleepCtx(ctx, sleep); err != nil {
			return mono.Since(begin), err
		}
		sleep = backoffPoll(sleep)
	}
}

func canRetryWait(err error) bool {
	if cmn.IsErrTransport(err) {
		return cos.IsRetriableConnErr(err)
	}
	return HTTPStatus(err) == http.StatusServiceUnavailable
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	select {
	case <-ctx.Done():
		t.Stop()
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
