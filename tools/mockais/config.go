// Package mockais provides an in-process, single-node, AIS-compatible gateway
// that implements the subset of the AIS v1 API used by `api` package and CLI.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mockais

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/api/env"
	"github.com/NVIDIA/aisclient/cmn/cos"

	"gopkg.in/yaml.v3"
)

const (
	dfltListen      = "127.0.0.1:0"
	dfltMaxBodySize = 64 * cos.MiB
	dfltDontEvict   = 2 * time.Hour
	dfltNodeID      = "mock-t1"
)

type Config struct {
	// listen address; empty - localhost, ephemeral port
	Listen string `json:"listen" yaml:"listen"`
	// buntdb file; empty - in-memory
	DBPath string `json:"db_path" yaml:"db_path"`
	// log directory; empty - standard error
	LogDir string `json:"log_dir" yaml:"log_dir"`
	// when non-empty, requests must carry a valid (HMAC-signed) JWT
	AuthSecret string `json:"auth_secret" yaml:"auth_secret"`
	NodeID     string `json:"node_id" yaml:"node_id"`

	// list-objects: page size used when the request does not specify one,
	// and the upper bound for the requested page size
	DefaultPageSize int64 `json:"default_page_size" yaml:"default_page_size"`
	MaxPageSize     int64 `json:"max_page_size" yaml:"max_page_size"`

	// LRU: objects (of remote buckets) accessed within this interval are not evicted
	DontEvictTime time.Duration `json:"dont_evict_time" yaml:"dont_evict_time"`

	MaxBodySize int  `json:"max_body_size" yaml:"max_body_size"`
	Verbose     bool `json:"verbose" yaml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:          dfltListen,
		NodeID:          dfltNodeID,
		DefaultPageSize: apc.DefaultPageSizeAIS,
		MaxPageSize:     apc.MaxPageSizeAIS,
		DontEvictTime:   dfltDontEvict,
		MaxBodySize:     dfltMaxBodySize,
	}
}

// LoadConfig reads JSON (.json) or YAML (.yaml, .yml) configuration file;
// unspecified values are set to their defaults
func LoadConfig(fqn string) (*Config, error) {
	b, err := os.ReadFile(fqn)
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(fqn)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, config)
	case ".json", "":
		err = cos.JSON.Unmarshal(b, config)
	default:
		return nil, fmt.Errorf("unsupported config file format %q (expecting json or yaml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", fqn, err)
	}
	return config, config.Validate()
}

// ApplyEnv overrides the default page size with AIS_MOCK_PAGE_SIZE (if set)
func (c *Config) ApplyEnv() error {
	ps, err := cos.GetEnvIntOrDefault(env.AIS.MockDefaultPageSize, c.DefaultPageSize)
	if err != nil {
		return err
	}
	c.DefaultPageSize = ps
	if c.LogDir == "" {
		c.LogDir = os.Getenv(env.AIS.LogDir)
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.Listen == "" {
		c.Listen = dfltListen
	}
	if c.NodeID == "" {
		c.NodeID = dfltNodeID
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = apc.MaxPageSizeAIS
	}
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = min(apc.DefaultPageSizeAIS, c.MaxPageSize)
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("invalid config: default page size (%d) exceeds max (%d)", c.DefaultPageSize, c.MaxPageSize)
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = dfltMaxBodySize
	}
	if c.DontEvictTime < 0 {
		return fmt.Errorf("invalid config: negative dont-evict time %v", c.DontEvictTime)
	}
	return nil
}
