// Package apc: API control messages and constants
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

import (
	"errors"
	"fmt"
	"path/filepath"
)

// common part that's used in `api.Promote` and on the gateway side, both
type PromoteArgs struct {
	DaemonID  string `json:"tid,omitempty"` // target ID
	SrcFQN    string `json:"src,omitempty"` // source file or directory (must be absolute pathname)
	ObjName   string `json:"obj,omitempty"` // destination object name or prefix
	Recursive bool   `json:"rcr,omitempty"` // recursively promote nested dirs
	// once successfully promoted:
	OverwriteDst bool `json:"ovw,omitempty"` // overwrite destination
	DeleteSrc    bool `json:"dls,omitempty"` // remove source when (and after) successfully promoting
}

func (args *PromoteArgs) Validate() error {
	if args.SrcFQN == "" {
		return errors.New("promote: missing source pathname")
	}
	if !filepath.IsAbs(args.SrcFQN) {
		return fmt.Errorf("promote: source %q must be an absolute pathname", args.SrcFQN)
	}
	return nil
}
