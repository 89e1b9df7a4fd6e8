// Package cmn provides common constants, types, and utilities for AIS clients
// and AIS-compatible gateways.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/NVIDIA/aisclient/cmn/cos"
)

// client transport defaults; zero TransportArgs fields fall back to these
const (
	DfltDialupTimeout    = 10 * time.Second
	DfltKeepaliveTCP     = 30 * time.Second
	DfltIdleConnTimeout  = 6 * time.Second
	DfltIdleConnsPerHost = 32 // stdlib: 2
	DfltMaxIdleConns     = 0  // no limit
	DfltBufSize          = 64 * cos.KiB
)

type TransportArgs struct {
	DialTimeout      time.Duration
	Timeout          time.Duration // whole request, 0: none
	IdleConnTimeout  time.Duration
	IdleConnsPerHost int
	MaxIdleConns     int
	WriteBufferSize  int
	ReadBufferSize   int
	UseHTTPProxyEnv  bool
	SkipVerify       bool // https
}

func (a *TransportArgs) transport() *http.Transport {
	std := http.DefaultTransport.(*http.Transport)
	dialer := &net.Dialer{
		Timeout:   cos.NonZero(a.DialTimeout, DfltDialupTimeout),
		KeepAlive: DfltKeepaliveTCP,
	}
	tr := &http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   std.TLSHandshakeTimeout,
		ExpectContinueTimeout: std.ExpectContinueTimeout,
		IdleConnTimeout:       cos.NonZero(a.IdleConnTimeout, DfltIdleConnTimeout),
		MaxIdleConnsPerHost:   cos.NonZero(a.IdleConnsPerHost, DfltIdleConnsPerHost),
		MaxIdleConns:          cos.NonZero(a.MaxIdleConns, DfltMaxIdleConns),
		WriteBufferSize:       cos.NonZero(a.WriteBufferSize, DfltBufSize),
		ReadBufferSize:        cos.NonZero(a.ReadBufferSize, DfltBufSize),
		// objects are transferred as is
		DisableCompression: true,
	}
	if a.UseHTTPProxyEnv {
		tr.Proxy = http.ProxyFromEnvironment
	}
	if a.SkipVerify {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // self-signed dev clusters
	}
	return tr
}

// NewClient returns an http.Client for talking to an AIS gateway.
func NewClient(args TransportArgs) *http.Client {
	return &http.Client{Transport: args.transport(), Timeout: args.Timeout}
}
