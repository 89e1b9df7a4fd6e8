// Package api provides native Go-based API/SDK over HTTP(S).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"net/http"
	"time"

	"github.com/NVIDIA/aisclient/api/apc"
)

// Health returns nil if the gateway is up and running.
func Health(bp BaseParams) error {
	bp.Method = http.MethodGet
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.URLPathHealth.S
	}
	err := reqParams.DoRequest()
	FreeRp(reqParams)
	return err
}

// WaitForHealthy waits (up to `tries` times, with a short sleep in between)
// for the gateway to start responding.
func WaitForHealthy(bp BaseParams, tries int) (err error) {
	for range max(tries, 1) {
		if err = Health(bp); err == nil {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return err
}
