// Package dbdriver provides a local key-value store for the AIS-compatible mock gateway.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package dbdriver

import (
	"slices"
	"strings"
	"sync"

	"github.com/NVIDIA/aisclient/cmn/cos"
)

// DBMock keeps everything in memory: values by full path plus a sorted
// index of the same paths, so that ordered scans don't need to sort.
type DBMock struct {
	values map[string]string
	index  []string
	mtx    sync.RWMutex
}

var _ Driver = (*DBMock)(nil)

func NewDBMock() *DBMock { return &DBMock{values: make(map[string]string, 64)} }

func (*DBMock) Close() error { return nil }

func (m *DBMock) Set(collection, key string, object any) error {
	return m.SetString(collection, key, cos.MustMarshalToString(object))
}

func (m *DBMock) Get(collection, key string, object any) error {
	s, err := m.GetString(collection, key)
	if err == nil {
		err = cos.JSON.UnmarshalFromString(s, object)
	}
	return err
}

func (m *DBMock) SetString(collection, key, data string) error {
	path := makePath(collection, key)
	m.mtx.Lock()
	if _, exists := m.values[path]; !exists {
		i, _ := slices.BinarySearch(m.index, path)
		m.index = slices.Insert(m.index, i, path)
	}
	m.values[path] = data
	m.mtx.Unlock()
	return nil
}

func (m *DBMock) GetString(collection, key string) (string, error) {
	m.mtx.RLock()
	s, ok := m.values[makePath(collection, key)]
	m.mtx.RUnlock()
	if !ok {
		return "", NewErrNotFound(collection, key)
	}
	return s, nil
}

func (m *DBMock) Delete(collection, key string) error {
	path := makePath(collection, key)
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if _, ok := m.values[path]; !ok {
		return NewErrNotFound(collection, key)
	}
	m.remove(path)
	return nil
}

func (m *DBMock) remove(path string) {
	delete(m.values, path)
	if i, found := slices.BinarySearch(m.index, path); found {
		m.index = slices.Delete(m.index, i, i+1)
	}
}

// span returns [lo, hi) bounds of the index entries under collection/prefix,
// starting strictly after `after` when the latter is non-empty.
// Caller holds the lock.
func (m *DBMock) span(collection, prefix, after string) (lo, hi int) {
	filter := makePath(collection, prefix)
	lo, _ = slices.BinarySearch(m.index, filter)
	if after != "" {
		start := makePath(collection, after)
		j, found := slices.BinarySearch(m.index, start)
		if found {
			j++
		}
		lo = max(lo, j)
	}
	hi = lo
	for hi < len(m.index) && strings.HasPrefix(m.index[hi], filter) {
		hi++
	}
	return lo, hi
}

func (m *DBMock) List(collection, prefix string) ([]string, error) {
	m.mtx.RLock()
	lo, hi := m.span(collection, prefix, "")
	keys := make([]string, 0, hi-lo)
	for _, path := range m.index[lo:hi] {
		if _, key := ParsePath(path); key != "" {
			keys = append(keys, path)
		}
	}
	m.mtx.RUnlock()
	return keys, nil
}

func (m *DBMock) DeleteCollection(collection string) error {
	m.mtx.Lock()
	lo, hi := m.span(collection, "", "")
	for _, path := range m.index[lo:hi] {
		delete(m.values, path)
	}
	m.index = slices.Delete(m.index, lo, hi)
	m.mtx.Unlock()
	return nil
}

func (m *DBMock) GetAll(collection, prefix string) (map[string]string, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	lo, hi := m.span(collection, prefix, "")
	all := make(map[string]string, hi-lo)
	for _, path := range m.index[lo:hi] {
		if _, key := ParsePath(path); key != "" {
			all[key] = m.values[path]
		}
	}
	return all, nil
}

// Iterate snapshots the matching range and then runs the callback unlocked,
// which lets the callback itself read from the store.
func (m *DBMock) Iterate(collection, prefix, after string, cb func(key, value string) bool) error {
	type kv struct{ k, v string }
	m.mtx.RLock()
	lo, hi := m.span(collection, prefix, after)
	snap := make([]kv, 0, hi-lo)
	for _, path := range m.index[lo:hi] {
		if _, key := ParsePath(path); key != "" {
			snap = append(snap, kv{key, m.values[path]})
		}
	}
	m.mtx.RUnlock()

	for _, e := range snap {
		if !cb(e.k, e.v) {
			break
		}
	}
	return nil
}
