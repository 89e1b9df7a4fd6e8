// Package mono_test tests the monotonic clock helpers
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mono_test

import (
	"testing"
	"time"

	"github.com/NVIDIA/aisclient/cmn/mono"
)

func TestSince(t *testing.T) {
	started := mono.NanoTime()
	time.Sleep(2 * time.Millisecond)
	d := mono.Since(started)
	if d < 2*time.Millisecond || d > time.Minute {
		t.Fatalf("unexpected elapsed %v", d)
	}
	if later := mono.Since(started); later < d {
		t.Fatalf("clock went backwards: %v < %v", later, d)
	}
}

func BenchmarkSince(b *testing.B) {
	started := mono.NanoTime()
	for b.Loop() {
		_ = mono.Since(started)
	}
}
