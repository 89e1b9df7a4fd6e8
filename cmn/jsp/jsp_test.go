// Package jsp (JSON persistence) provides utilities to store and load arbitrary
// JSON-encoded structures.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package jsp_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/aisclient/cmn/jsp"
	"github.com/NVIDIA/aisclient/tools/tassert"
)

type testStruct struct {
	Name  string            `json:"name"`
	Count int64             `json:"count"`
	KVs   map[string]string `json:"kvs"`
}

func TestSaveLoad(t *testing.T) {
	var (
		dir = t.TempDir()
		fqn = filepath.Join(dir, "sub", "conf.json")
		v   = testStruct{Name: "xyz", Count: 42, KVs: map[string]string{"a": "b"}}
	)
	for _, opts := range []jsp.Options{{}, {Indent: true}} {
		tassert.CheckFatal(t, jsp.Save(fqn, v, opts))
		b, err := os.ReadFile(fqn)
		tassert.CheckFatal(t, err)
		tassert.Errorf(t, strings.Contains(string(b), "\n  ") == opts.Indent, "indent=%t: %q", opts.Indent, b)

		var loaded testStruct
		tassert.CheckFatal(t, jsp.Load(fqn, &loaded))
		tassert.Errorf(t, loaded.Name == v.Name && loaded.Count == v.Count && loaded.KVs["a"] == "b",
			"loaded %+v, expected %+v", loaded, v)
	}

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(fqn))
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, len(entries) == 1, "expected a single file, got %d", len(entries))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	err := jsp.Load(filepath.Join(dir, "nonexistent.json"), &testStruct{})
	tassert.Errorf(t, os.IsNotExist(err), "expected not-exist, got %v", err)

	fqn := filepath.Join(dir, "bad.json")
	tassert.CheckFatal(t, os.WriteFile(fqn, []byte("{not json"), 0o644))
	err = jsp.Load(fqn, &testStruct{})
	tassert.Errorf(t, err != nil && strings.Contains(err.Error(), fqn), "expected decode error, got %v", err)
}
