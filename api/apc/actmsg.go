// Package apc: API control messages and constants
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

import (
	"strings"

	"github.com/NVIDIA/aisclient/cmn/cos"
	jsoniter "github.com/json-iterator/go"
)

// ActMsg.Action
// includes xaction kind == ActMsg.Action (when the action is asynchronous)
const (
	ActCreateBck    = "create-bck"
	ActDestroyBck   = "destroy-bck" // destroy bucket data and metadata
	ActList         = "list"
	ActLRU          = "lru"
	ActPromote      = "promote"
	ActRebalance    = "rebalance"
	ActResilver     = "resilver"
	ActStoreCleanup = "cleanup-store"
	ActSummaryBck   = "summary-bck"

	// Actions on xactions
	ActXactStop  = "stop"
	ActXactStart = "start"
)

// ActMsg is a JSON-formatted control structure used in a majority of API calls
type ActMsg struct {
	Value  any    `json:"value"`  // action-specific and optional
	Action string `json:"action"` // ActList, ActLRU, and more (see above)
	Name   string `json:"name"`   // action-specific name (e.g., bucket name)
}

func (msg *ActMsg) String() string {
	s := "amsg[" + msg.Action
	if msg.Name != "" {
		s += ", name=" + msg.Name
	}
	if msg.Value == nil {
		return s + "]"
	}
	vs, err := jsoniter.Marshal(msg.Value)
	if err != nil {
		s += "-<json err: " + err.Error() + ">"
		return s + "]"
	}
	s += ", val=" + strings.ReplaceAll(string(vs), ",", ", ") + "]"
	return s
}

// MorphValue re-decodes generic (map) Value into the action-specific type.
func (msg *ActMsg) MorphValue(v any) error {
	return cos.MorphMarshal(msg.Value, v)
}
