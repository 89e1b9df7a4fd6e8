// Package dbdriver provides a local key-value store for the AIS-compatible mock gateway.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package dbdriver

import (
	"errors"
	"fmt"
	"strings"
)

// Keys live in flat namespaces called collections; the collection name is
// simply prepended to the key with CollectionSepa in between
// (e.g. "obj##ais/@#/bucket/" + object name). Drivers return this package's
// ErrNotFound rather than their own not-found errors.

const CollectionSepa = "##"

type (
	// Driver is the storage contract of the mock gateway. Ordered scans
	// (List, GetAll, Iterate) go in ascending lexicographic key order,
	// and list-objects pagination depends on it.
	Driver interface {
		Close() error
		// Set stores object as JSON.
		Set(collection, key string, object any) error
		Get(collection, key string, object any) error
		SetString(collection, key, data string) error
		GetString(collection, key string) (string, error)
		Delete(collection, key string) error
		DeleteCollection(collection string) error
		// List returns full paths (collection + separator + key).
		List(collection, prefix string) ([]string, error)
		// GetAll maps bare keys to values.
		GetAll(collection, prefix string) (map[string]string, error)
		// Iterate visits keys with the given prefix that sort strictly after
		// `after` (empty: from the start) until cb returns false.
		Iterate(collection, prefix, after string, cb func(key, value string) bool) error
	}

	ErrNotFound struct {
		collection string
		key        string
	}
)

func makePath(collection, key string) string { return collection + CollectionSepa + key }

// ParsePath splits a full path into collection and key.
func ParsePath(path string) (collection, key string) {
	collection, key, _ = strings.Cut(path, CollectionSepa)
	return collection, key
}

func NewErrNotFound(collection, key string) *ErrNotFound {
	return &ErrNotFound{collection: collection, key: key}
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.collection, e.key)
}

func IsErrNotFound(err error) bool {
	var e *ErrNotFound
	return errors.As(err, &e)
}
