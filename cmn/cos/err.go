// Package cos provides common low-level types and utilities for all aisclient packages
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"syscall"
)

type (
	ErrInvalidObjName struct {
		name string
	}
	ErrInvalidPrefix struct {
		tag    string
		prefix string
	}
)

//
// connection errors
//

// (gateway restarting, idle connection closed by the server, and similar)
func IsRetriableConnErr(err error) bool {
	for _, errno := range []syscall.Errno{syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.EPIPE} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}

func IsClientTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || IsErrClientURLTimeout(err)
}

func IsErrClientURLTimeout(err error) bool {
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}

//
// object names and prefixes: no parent-directory or home-relative elements
//

func hasBadPath(s string) bool {
	return strings.Contains(s, "../") || strings.Contains(s, "~/")
}

func ValidateOname(name string) error {
	if name == "" || name[len(name)-1] == '/' || hasBadPath(name) {
		return &ErrInvalidObjName{name}
	}
	return nil
}

func (e *ErrInvalidObjName) Error() string {
	return fmt.Sprintf("invalid object name %q", e.name)
}

func ValidatePrefix(tag, prefix string) error {
	if hasBadPath(prefix) {
		return &ErrInvalidPrefix{tag, prefix}
	}
	return nil
}

func (e *ErrInvalidPrefix) Error() string {
	return fmt.Sprintf("%s: invalid prefix %q", e.tag, e.prefix)
}
