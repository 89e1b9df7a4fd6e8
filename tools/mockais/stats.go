// Package mockais provides an in-process, single-node, AIS-compatible gateway
// that implements the subset of the AIS v1 API used by `api` package and CLI.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mockais

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// request kinds (label values of the "op" label)
const (
	OpList      = "list"    // list-objects page
	OpListBcks  = "lsbck"   // list buckets
	OpCreateBck = "mkbck"   // create bucket
	OpDestroy   = "rmbck"   // destroy bucket
	OpHeadBck   = "headbck" // HEAD(bucket)
	OpPut       = "put"
	OpGet       = "get"
	OpHeadObj   = "headobj"
	OpDelete    = "del"
	OpPromote   = "promote"
	OpXact      = "xact" // start, stop, status, stats
	OpErr       = "err"  // failed requests (of any kind)
)

const metricsNamespace = "ais_mock"

type stats struct {
	reg   *prometheus.Registry
	reqs  *prometheus.CounterVec
	bytes *prometheus.CounterVec
	objs  prometheus.Gauge
	hdl   fasthttp.RequestHandler
}

func newStats() *stats {
	s := &stats{reg: prometheus.NewRegistry()}
	s.reqs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "requests_total",
		Help:      "number of API requests by kind",
	}, []string{"op"})
	s.bytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "bytes_total",
		Help:      "object payload bytes by direction",
	}, []string{"dir"})
	s.objs = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "objects",
		Help:      "number of stored objects",
	})
	s.reg.MustRegister(s.reqs, s.bytes, s.objs)
	s.hdl = fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
	return s
}

func (s *stats) inc(op string)              { s.reqs.WithLabelValues(op).Inc() }
func (s *stats) addBytes(dir string, n int) { s.bytes.WithLabelValues(dir).Add(float64(n)) }
