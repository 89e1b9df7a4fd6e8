// Package cos provides common low-level types and utilities for all aisclient packages.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"os"
	"os/user"
	"path/filepath"
	"strconv"
)

const (
	homeConfigsDir = ".config"
	homeAIS        = "ais"
)

func HomeDir() (string, error) {
	currentUser, err := user.Current()
	if err != nil {
		return os.UserHomeDir()
	}
	return currentUser.HomeDir, nil
}

// $HOME/.config/ais/<subdir>
func HomeConfigDir(subdir string) string {
	home, err := HomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, homeConfigsDir, homeAIS, subdir)
}

func GetEnvOrDefault(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return defaultValue
}

// returns dflt when the variable is not set; parsing error otherwise
func GetEnvIntOrDefault(envVar string, dflt int64) (int64, error) {
	value := os.Getenv(envVar)
	if value == "" {
		return dflt, nil
	}
	return strconv.ParseInt(value, 10, 64)
}
