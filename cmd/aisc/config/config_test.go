// Package config provides types and functions to configure aisc (AIS client CLI).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NVIDIA/aisclient/api/env"
	"github.com/NVIDIA/aisclient/tools/tassert"
)

func TestLoadCreatesDefault(t *testing.T) {
	fqn := filepath.Join(t.TempDir(), "aisc.json")
	cfg, err := LoadFrom(fqn)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, cfg.Cluster.URL == "http://127.0.0.1:8080", "unexpected URL %q", cfg.Cluster.URL)
	tassert.Errorf(t, cfg.Timeout.TCPTimeout == time.Minute, "unexpected timeout %v", cfg.Timeout.TCPTimeout)

	_, err = os.Stat(fqn)
	tassert.Errorf(t, err == nil, "default config not saved: %v", err)
}

func TestLoadEnvOverride(t *testing.T) {
	fqn := filepath.Join(t.TempDir(), "aisc.json")
	tassert.CheckFatal(t, os.WriteFile(fqn,
		[]byte(`{"cluster": {"url": "http://10.0.0.1:8080"}, "timeout": {"tcp_timeout": "5s", "http_timeout": "1m"}, "page_size": 100}`), 0o644))

	cfg, err := LoadFrom(fqn)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, cfg.Cluster.URL == "http://10.0.0.1:8080" && cfg.PageSize == 100, "unexpected %+v", cfg)
	tassert.Errorf(t, cfg.Timeout.HTTPTimeout == time.Minute, "unexpected http timeout %v", cfg.Timeout.HTTPTimeout)

	t.Setenv(env.AIS.Endpoint, "http://localhost:51080")
	t.Setenv(env.AIS.PageSize, "7")
	cfg, err = LoadFrom(fqn)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, cfg.Cluster.URL == "http://localhost:51080" && cfg.PageSize == 7, "env not applied: %+v", cfg)

	t.Setenv(env.AIS.PageSize, "-1")
	_, err = LoadFrom(fqn)
	tassert.Errorf(t, err != nil, "expected error on negative page size")
}

func TestAuthTokenFile(t *testing.T) {
	dir := t.TempDir()
	tokenFile := filepath.Join(dir, "token")
	tassert.CheckFatal(t, os.WriteFile(tokenFile, []byte("abc.def.ghi\n"), 0o600))

	cfg := &Config{Auth: AuthConfig{TokenFile: tokenFile}}
	token, err := cfg.AuthToken()
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, token == "abc.def.ghi", "unexpected token %q", token)

	cfg.Auth.Token = "explicit"
	token, err = cfg.AuthToken()
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, token == "explicit", "unexpected token %q", token)
}
