// Package api_test contains tests for the api package, run against in-process mock gateway.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/tools/mockais"
	"github.com/NVIDIA/aisclient/tools/tassert"
	"github.com/NVIDIA/aisclient/tools/trand"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

const numObjs = 110

// starts mock gateway; modifies the default config via `cfn` (optional)
func startMock(tb testing.TB, cfn func(*mockais.Config)) (*mockais.Server, api.BaseParams) {
	config := mockais.DefaultConfig()
	if cfn != nil {
		cfn(config)
	}
	srv, err := mockais.New(config)
	tassert.CheckFatal(tb, err)
	tassert.CheckFatal(tb, srv.Start())
	tb.Cleanup(func() { srv.Stop() })

	bp := api.BaseParams{
		Client: cmn.NewClient(cmn.TransportArgs{}),
		URL:    srv.URL(),
	}
	tassert.CheckFatal(tb, api.WaitForHealthy(bp, 10))
	return srv, bp
}

func newBck(tb testing.TB, bp api.BaseParams) cmn.Bck {
	bck := cmn.Bck{Name: trand.BckName(8), Provider: apc.AIS}
	tassert.CheckFatal(tb, api.CreateBucket(bp, bck, nil))
	return bck
}

// obj-0 ... obj-(n-1)
func putObjs(tb testing.TB, bp api.BaseParams, bck cmn.Bck, prefix string, n int) {
	for i := range n {
		putObj(tb, bp, bck, fmt.Sprintf("%s%d", prefix, i), trand.Bytes(16+i))
	}
}

func putObj(tb testing.TB, bp api.BaseParams, bck cmn.Bck, objName string, data []byte) {
	_, err := api.PutObject(&api.PutArgs{
		BaseParams: bp,
		Bck:        bck,
		ObjName:    objName,
		Reader:     bytes.NewReader(data),
		Size:       uint64(len(data)),
	})
	tassert.CheckFatal(tb, err)
}

func numFetches(srv *mockais.Server) int {
	return int(testutil.ToFloat64(srv.Counter(mockais.OpList)))
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

func checkUnique(tb testing.TB, entries cmn.LsoEntries, expected int) {
	tb.Helper()
	tassert.Fatalf(tb, len(entries) == expected, "expected %d entries, got %d", expected, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, en := range entries {
		_, dup := seen[en.Name]
		tassert.Fatalf(tb, !dup, "duplicate entry %q", en.Name)
		seen[en.Name] = struct{}{}
	}
}
