// Package api_test contains tests for the api package, run against in-process mock gateway.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/tools/tassert"
)

func TestObjIterMatchesListObjects(t *testing.T) {
	_, bp := startMock(t, nil)
	bck := newBck(t, bp)
	putObjs(t, bp, bck, "obj-", numObjs)

	for _, pageSize := range []int64{0, 1, 7, 110, 111} {
		t.Run(fmt.Sprintf("page-size-%d", pageSize), func(t *testing.T) {
			lst, err := api.ListObjects(bp, bck, &apc.LsoMsg{PageSize: pageSize}, api.ListArgs{})
			tassert.CheckFatal(t, err)

			var (
				it    = api.NewObjIter(bp, bck, &apc.LsoMsg{PageSize: pageSize})
				names []string
			)
			for {
				en, err := it.Next()
				if err == io.EOF {
					break
				}
				tassert.CheckFatal(t, err)
				names = append(names, en.Name)
			}
			eager := lst.Entries.Names()
			tassert.Fatalf(t, len(names) == len(eager), "lazy %d vs eager %d", len(names), len(eager))
			for i := range names {
				tassert.Fatalf(t, names[i] == eager[i], "entry %d: lazy %q vs eager %q", i, names[i], eager[i])
			}
			tassert.CheckError(t, it.Err())
		})
	}
}

func TestObjIterLazy(t *testing.T) {
	srv, bp := startMock(t, nil)
	bck := newBck(t, bp)
	putObjs(t, bp, bck, "obj-", 25)

	before := numFetches(srv)
	it := api.NewObjIter(bp, bck, &apc.LsoMsg{PageSize: 10})
	tassert.Errorf(t, numFetches(srv) == before, "constructor must not fetch")

	for i := range 10 {
		_, err := it.Next()
		tassert.CheckFatal(t, err)
		tassert.Fatalf(t, numFetches(srv)-before == 1, "entry %d: expected 1 fetch, got %d", i, numFetches(srv)-before)
	}
	_, err := it.Next()
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, numFetches(srv)-before == 2, "expected second fetch upon 11th entry, got %d", numFetches(srv)-before)
	tassert.Errorf(t, it.Pages() == 2, "expected 2 pages, got %d", it.Pages())

	// early stop: the remaining page is never requested
	var n int
	for _, err := range it.All() {
		tassert.CheckFatal(t, err)
		if n++; n == 5 {
			break
		}
	}
	tassert.Errorf(t, numFetches(srv)-before == 2, "early stop: expected 2 fetches, got %d", numFetches(srv)-before)

	// resume and drain
	for _, err := range it.All() {
		tassert.CheckFatal(t, err)
		n++
	}
	tassert.Errorf(t, n == 14, "expected 14 entries after the first 11, got %d", n)
	tassert.Errorf(t, numFetches(srv)-before == 3, "expected 3 fetches total, got %d", numFetches(srv)-before)

	// exhausted iterator stays exhausted, no more fetches
	en, err := it.Next()
	tassert.Errorf(t, en == nil && err == io.EOF, "expected (nil, EOF), got (%v, %v)", en, err)
	tassert.Errorf(t, numFetches(srv)-before == 3, "exhausted iterator must not fetch")
}

func TestObjIterStickyError(t *testing.T) {
	srv, bp := startMock(t, nil)
	bck := newBck(t, bp)
	putObjs(t, bp, bck, "obj-", 20)

	it := api.NewObjIter(bp, bck, &apc.LsoMsg{PageSize: 10})
	for range 10 {
		_, err := it.Next()
		tassert.CheckFatal(t, err)
	}
	tassert.CheckFatal(t, api.DestroyBucket(bp, bck))

	en, err := it.Next()
	tassert.Fatalf(t, en == nil && cmn.IsErrBckNotFound(err), "expected ErrBckNotFound, got (%v, %v)", en, err)

	before := numFetches(srv)
	_, again := it.Next()
	tassert.Errorf(t, again == err, "expected the same (sticky) error, got %v", again)
	tassert.Errorf(t, numFetches(srv) == before, "failed iterator must not fetch")
	tassert.Errorf(t, cmn.IsErrBckNotFound(it.Err()), "Err(): expected ErrBckNotFound, got %v", it.Err())

	// All() yields the error exactly once
	var yielded int
	for en, err := range it.All() {
		yielded++
		tassert.Errorf(t, en == nil && err != nil, "expected error, got (%v, %v)", en, err)
	}
	tassert.Errorf(t, yielded == 1, "expected a single yield, got %d", yielded)
}

func TestObjIterRange(t *testing.T) {
	_, bp := startMock(t, nil)
	bck := newBck(t, bp)
	putObjs(t, bp, bck, "a/obj-", 12)
	putObjs(t, bp, bck, "b/obj-", 3)

	var entries cmn.LsoEntries
	for en, err := range api.NewObjIter(bp, bck, &apc.LsoMsg{Prefix: "a/", PageSize: 5}).All() {
		tassert.CheckFatal(t, err)
		entries = append(entries, en)
	}
	checkUnique(t, entries, 12)
}
