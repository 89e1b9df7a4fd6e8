// Package dbdriver provides a local key-value store for the AIS-compatible mock gateway.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package dbdriver_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/NVIDIA/aisclient/dbdriver"
	"github.com/NVIDIA/aisclient/tools/tassert"
)

type testRecord struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

func drivers(t *testing.T) map[string]dbdriver.Driver {
	bunt, err := dbdriver.NewBuntDB(dbdriver.InMemory)
	tassert.CheckFatal(t, err)
	file, err := dbdriver.NewBuntDB(filepath.Join(t.TempDir(), "mock.db"))
	tassert.CheckFatal(t, err)
	t.Cleanup(func() {
		bunt.Close()
		file.Close()
	})
	return map[string]dbdriver.Driver{
		"mock":      dbdriver.NewDBMock(),
		"buntdb":    bunt,
		"buntdb-fs": file,
	}
}

func TestDriverCRUD(t *testing.T) {
	for name, driver := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			rec := testRecord{Name: "obj-1", Size: 1024}
			tassert.CheckFatal(t, driver.Set("obj", "bck/obj-1", rec))

			var out testRecord
			tassert.CheckFatal(t, driver.Get("obj", "bck/obj-1", &out))
			tassert.Errorf(t, out == rec, "expected %+v, got %+v", rec, out)

			_, err := driver.GetString("obj", "bck/obj-2")
			tassert.Fatalf(t, dbdriver.IsErrNotFound(err), "expected not-found, got %v", err)

			tassert.CheckFatal(t, driver.SetString("bck", "bck", "{}"))
			keys, err := driver.List("obj", "")
			tassert.CheckFatal(t, err)
			tassert.Fatalf(t, len(keys) == 1, "expected 1 key, got %v", keys)
			coll, key := dbdriver.ParsePath(keys[0])
			tassert.Errorf(t, coll == "obj" && key == "bck/obj-1", "unexpected path %q", keys[0])

			tassert.CheckFatal(t, driver.Delete("obj", "bck/obj-1"))
			err = driver.Delete("obj", "bck/obj-1")
			tassert.Errorf(t, dbdriver.IsErrNotFound(err), "expected not-found, got %v", err)

			_, err = driver.GetString("bck", "bck")
			tassert.CheckError(t, err)
		})
	}
}

func TestDriverIterate(t *testing.T) {
	const num = 25
	for name, driver := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			for i := range num {
				tassert.CheckFatal(t, driver.SetString("obj", fmt.Sprintf("b1/obj-%02d", i), "x"))
				tassert.CheckFatal(t, driver.SetString("obj", fmt.Sprintf("b2/obj-%02d", i), "x"))
			}

			// page through b1 in chunks of 7, threading the last key
			var (
				all   []string
				after string
			)
			for {
				var page []string
				err := driver.Iterate("obj", "b1/", after, func(key, _ string) bool {
					page = append(page, key)
					return len(page) < 7
				})
				tassert.CheckFatal(t, err)
				all = append(all, page...)
				if len(page) < 7 {
					break
				}
				after = page[len(page)-1]
			}
			tassert.Fatalf(t, len(all) == num, "expected %d keys, got %d", num, len(all))
			for i, key := range all {
				expected := fmt.Sprintf("b1/obj-%02d", i)
				tassert.Errorf(t, key == expected, "position %d: expected %q, got %q", i, expected, key)
			}

			values, err := driver.GetAll("obj", "b2/obj-1")
			tassert.CheckFatal(t, err)
			tassert.Errorf(t, len(values) == 10, "expected 10 values, got %d", len(values))

			tassert.CheckFatal(t, driver.DeleteCollection("obj"))
			keys, err := driver.List("obj", "")
			tassert.CheckFatal(t, err)
			tassert.Errorf(t, len(keys) == 0, "expected empty collection, got %d keys", len(keys))
		})
	}
}

func TestBuntShrink(t *testing.T) {
	driver, err := dbdriver.NewBuntDB(filepath.Join(t.TempDir(), "shrink.db"))
	tassert.CheckFatal(t, err)
	defer driver.Close()
	for i := range 100 {
		tassert.CheckFatal(t, driver.SetString("obj", fmt.Sprintf("k%d", i), "v"))
	}
	tassert.CheckFatal(t, driver.DeleteCollection("obj"))
	tassert.CheckError(t, driver.Shrink())
}
