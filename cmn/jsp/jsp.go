// Package jsp (JSON persistence) provides utilities to store and load arbitrary
// JSON-encoded structures.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package jsp

import (
	"fmt"
	"io"
	"os"

	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/cmn/debug"
)

const indent = "  "

type Options struct {
	Indent bool // human-readable (e.g., CLI config)
}

func Encode(w io.Writer, v any, opts Options) error {
	enc := cos.JSON.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", indent)
	}
	return enc.Encode(v)
}

func Decode(r io.Reader, v any, tag string) error {
	if err := cos.JSON.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", tag, err)
	}
	return nil
}

// Save writes `v` into a temporary file and renames it, so that
// a reader never sees partially written content.
func Save(fqn string, v any, opts Options) (err error) {
	var (
		file *os.File
		tmp  = fqn + ".tmp." + cos.GenUUID()
	)
	if file, err = cos.CreateFile(tmp); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			errRm := os.Remove(tmp)
			debug.AssertNoErr(errRm)
		}
	}()
	if err = Encode(file, v, opts); err != nil {
		cos.Close(file)
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, fqn)
}

func Load(fqn string, v any) error {
	file, err := os.Open(fqn)
	if err != nil {
		return err
	}
	err = Decode(file, v, fqn)
	cos.Close(file)
	return err
}
