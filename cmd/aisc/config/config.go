// Package config provides types and functions to configure aisc (AIS client CLI).
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/api/env"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/cmn/jsp"
)

// default pathname: $HOME/.config/ais/aisc/aisc.json

const (
	fname   = "aisc.json"
	subdir  = "aisc"
	urlFmt  = "http://%s:%d"
	dfltIP  = "127.0.0.1"
	dfltPrt = 8080
)

type (
	ClusterConfig struct {
		URL           string `json:"url"`
		SkipVerifyCrt bool   `json:"skip_verify_crt"`
	}
	TimeoutConfig struct {
		TCPTimeoutStr  string        `json:"tcp_timeout"`
		TCPTimeout     time.Duration `json:"-"`
		HTTPTimeoutStr string        `json:"http_timeout"`
		HTTPTimeout    time.Duration `json:"-"`
	}
	AuthConfig struct {
		Token     string `json:"token,omitempty"`
		TokenFile string `json:"token_file,omitempty"`
	}

	// all of the above
	Config struct {
		Cluster  ClusterConfig `json:"cluster"`
		Timeout  TimeoutConfig `json:"timeout"`
		Auth     AuthConfig    `json:"auth"`
		PageSize int64         `json:"page_size"` // list-objects; zero - gateway default
		NoColor  bool          `json:"no_color"`
		Verbose  bool          `json:"verbose"`
	}
)

var (
	ConfigDir     string
	defaultConfig Config
)

func init() {
	ConfigDir = cos.HomeConfigDir(subdir)
	defaultConfig = Config{
		Cluster: ClusterConfig{
			URL: fmt.Sprintf(urlFmt, dfltIP, dfltPrt),
		},
		Timeout: TimeoutConfig{
			TCPTimeoutStr:  "60s",
			TCPTimeout:     60 * time.Second,
			HTTPTimeoutStr: "0s",
			HTTPTimeout:    0,
		},
	}
}

func Path() string { return filepath.Join(ConfigDir, fname) }

func (c *Config) validate() (err error) {
	if c.Timeout.TCPTimeout, err = time.ParseDuration(c.Timeout.TCPTimeoutStr); err != nil {
		return fmt.Errorf("invalid timeout.tcp_timeout format %q: %v", c.Timeout.TCPTimeoutStr, err)
	}
	if c.Timeout.HTTPTimeout, err = time.ParseDuration(c.Timeout.HTTPTimeoutStr); err != nil {
		return fmt.Errorf("invalid timeout.http_timeout format %q: %v", c.Timeout.HTTPTimeoutStr, err)
	}
	if c.PageSize < 0 || c.PageSize > apc.MaxPageSizeAIS {
		return fmt.Errorf("invalid page_size %d (expecting 0 to %d)", c.PageSize, apc.MaxPageSizeAIS)
	}
	return nil
}

// Load reads the config file (or, if it does not exist, creates one with the defaults)
// and applies environment overrides.
func Load() (*Config, error) { return LoadFrom(Path()) }

func LoadFrom(fqn string) (*Config, error) {
	cfg := defaultConfig
	err := jsp.Load(fqn, &cfg)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		if err := jsp.Save(fqn, &defaultConfig, jsp.Options{Indent: true}); err != nil {
			// (read-only home; proceed with defaults)
			fmt.Fprintf(os.Stderr, "Warning: failed to save default config %q: %v\n", fqn, err)
		}
	default:
		return nil, fmt.Errorf("failed to load CLI config %q: %v", fqn, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(cfg *Config) error { return jsp.Save(Path(), cfg, jsp.Options{Indent: true}) }

func (c *Config) applyEnv() error {
	if url := os.Getenv(env.AIS.Endpoint); url != "" {
		c.Cluster.URL = url
	}
	if token := os.Getenv(env.AIS.AuthToken); token != "" {
		c.Auth.Token = token
	}
	if fqn := os.Getenv(env.AIS.TokenFile); fqn != "" {
		c.Auth.TokenFile = fqn
	}
	if os.Getenv(env.AIS.SkipVerify) != "" {
		c.Cluster.SkipVerifyCrt = cos.IsParseBool(os.Getenv(env.AIS.SkipVerify))
	}
	ps, err := cos.GetEnvIntOrDefault(env.AIS.PageSize, c.PageSize)
	if err != nil {
		return fmt.Errorf("invalid %s: %v", env.AIS.PageSize, err)
	}
	c.PageSize = ps
	return nil
}

// AuthToken returns the token from the config or, if not set, from the token file
func (c *Config) AuthToken() (string, error) {
	if c.Auth.Token != "" || c.Auth.TokenFile == "" {
		return c.Auth.Token, nil
	}
	b, err := os.ReadFile(c.Auth.TokenFile)
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %v", err)
	}
	return string(trimSpace(b)), nil
}

func trimSpace(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r' || b[len(b)-1] == ' ') {
		b = b[:len(b)-1]
	}
	return b
}
