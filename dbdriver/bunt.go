// Package dbdriver provides a local key-value store for the AIS-compatible mock gateway.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package dbdriver

import (
	"strings"

	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/pkg/errors"
	"github.com/tidwall/buntdb"
)

// InMemory opens buntdb without a backing file
const InMemory = ":memory:"

const autoShrinkSize = cos.MiB

type BuntDriver struct {
	driver *buntdb.DB
}

// interface guard
var _ Driver = (*BuntDriver)(nil)

func NewBuntDB(path string) (*BuntDriver, error) {
	driver, err := buntdb.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", path)
	}
	err = driver.SetConfig(buntdb.Config{
		SyncPolicy:           buntdb.EverySecond, // periodical FS sync
		AutoShrinkMinSize:    autoShrinkSize,     // start autoShrink only if the file exceeds the size
		AutoShrinkPercentage: 50,                 // run compaction when DB grows by half
	})
	if err != nil {
		driver.Close()
		return nil, errors.Wrap(err, "failed to configure")
	}
	return &BuntDriver{driver: driver}, nil
}

func buntToCommonErr(err error, collection, key string) error {
	if err == buntdb.ErrNotFound {
		return NewErrNotFound(collection, key)
	}
	return errors.Wrapf(err, "%s%s%s", collection, CollectionSepa, key)
}

func (bd *BuntDriver) Close() error {
	return bd.driver.Close()
}

func (bd *BuntDriver) Set(collection, key string, object any) error {
	b := cos.MustMarshal(object)
	err := bd.SetString(collection, key, string(b))
	return err
}

func (bd *BuntDriver) Get(collection, key string, object any) error {
	s, err := bd.GetString(collection, key)
	if err != nil {
		return err
	}
	return cos.JSON.UnmarshalFromString(s, object)
}

func (bd *BuntDriver) SetString(collection, key, data string) error {
	name := makePath(collection, key)
	err := bd.driver.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(name, data, nil)
		return err
	})
	if err != nil {
		return buntToCommonErr(err, collection, key)
	}
	return nil
}

func (bd *BuntDriver) GetString(collection, key string) (string, error) {
	var (
		name  = makePath(collection, key)
		value string
	)
	err := bd.driver.View(func(tx *buntdb.Tx) error {
		var err error
		value, err = tx.Get(name)
		return err
	})
	if err != nil {
		return "", buntToCommonErr(err, collection, key)
	}
	return value, nil
}

func (bd *BuntDriver) Delete(collection, key string) error {
	name := makePath(collection, key)
	err := bd.driver.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(name)
		return err
	})
	if err != nil {
		return buntToCommonErr(err, collection, key)
	}
	return nil
}

// buntdb patterns are globs: escape the wildcards that may appear in keys
func escapePattern(s string) string {
	if !strings.ContainsAny(s, "*?\\") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := range len(s) {
		if c := s[i]; c == '*' || c == '?' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func (bd *BuntDriver) List(collection, prefix string) ([]string, error) {
	var (
		keys    = make([]string, 0)
		pattern = escapePattern(makePath(collection, prefix)) + "*"
	)
	err := bd.driver.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(pattern, func(key, _ string) bool {
			if _, k := ParsePath(key); k != "" {
				keys = append(keys, key)
			}
			return true
		})
	})
	if err != nil {
		return nil, buntToCommonErr(err, collection, "")
	}
	return keys, nil
}

func (bd *BuntDriver) DeleteCollection(collection string) error {
	keys, err := bd.List(collection, "")
	if err != nil || len(keys) == 0 {
		return err
	}
	err = bd.driver.Update(func(tx *buntdb.Tx) error {
		for _, k := range keys {
			_, err := tx.Delete(k)
			if err != nil && err != buntdb.ErrNotFound {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return buntToCommonErr(err, collection, "")
	}
	return nil
}

func (bd *BuntDriver) GetAll(collection, prefix string) (map[string]string, error) {
	var (
		values  = make(map[string]string)
		pattern = escapePattern(makePath(collection, prefix)) + "*"
	)
	err := bd.driver.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(pattern, func(key, value string) bool {
			if _, k := ParsePath(key); k != "" {
				values[k] = value
			}
			return true
		})
	})
	if err != nil {
		return nil, buntToCommonErr(err, collection, "")
	}
	return values, nil
}

// ordered scan starting right after `after` (primary key index)
func (bd *BuntDriver) Iterate(collection, prefix, after string, cb func(key, value string) bool) error {
	var (
		filter = makePath(collection, prefix)
		pivot  = filter
	)
	if after != "" {
		if a := makePath(collection, after); a > pivot {
			pivot = a
		}
	}
	err := bd.driver.View(func(tx *buntdb.Tx) error {
		return tx.AscendGreaterOrEqual("", pivot, func(key, value string) bool {
			if !strings.HasPrefix(key, filter) {
				return false // past the prefix range
			}
			_, k := ParsePath(key)
			if k == "" || (after != "" && k <= after) {
				return true
			}
			return cb(k, value)
		})
	})
	if err != nil {
		return buntToCommonErr(err, collection, after)
	}
	return nil
}

// compacts the append-only file (no-op in memory)
func (bd *BuntDriver) Shrink() error {
	err := bd.driver.Shrink()
	if err != nil && err != buntdb.ErrShrinkInProcess {
		return errors.Wrap(err, "shrink")
	}
	return nil
}
