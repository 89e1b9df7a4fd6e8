// Package nlog - aistore logger, provides buffering, timestamping, and writing
// to standard error or to log files
/*
 * Copyright (c) 2023-2025, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeverityPrefixAndCaller(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Infof("listed %d objects", 110)
	Warningln("page", 7)
	Errorf("failed: %v", os.ErrNotExist)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	for i, prefix := range []string{"I ", "W ", "E "} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d: expected prefix %q, got %q", i, prefix, lines[i])
		}
		if !strings.Contains(lines[i], "nlog_test:") {
			t.Errorf("line %d: expected caller file name, got %q", i, lines[i])
		}
	}
	if !strings.HasSuffix(lines[0], "listed 110 objects") {
		t.Errorf("unexpected info line %q", lines[0])
	}
}

func TestQuiet(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetVerbose(false)
	Infoln("hidden")
	Errorln("shown")
	SetVerbose(true)

	s := buf.String()
	if strings.Contains(s, "hidden") || !strings.Contains(s, "shown") {
		t.Fatalf("unexpected output %q", s)
	}
}

func TestLogDir(t *testing.T) {
	dir := t.TempDir()
	mu.Lock()
	saved := nlogs
	nlogs = [sevErr + 1]*nlog{}
	mu.Unlock()
	SetLogDir(dir, "mockais")
	defer func() {
		mu.Lock()
		for _, l := range nlogs {
			if l != nil {
				l.file.Close()
			}
		}
		nlogs, toStderr, logDir, title = saved, true, "", ""
		mu.Unlock()
	}()

	Infoln("info line")
	Errorln("error line")
	Flush()

	info, err := os.ReadFile(filepath.Join(dir, "mockais.INFO"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(info, []byte("info line")) || !bytes.Contains(info, []byte("error line")) {
		t.Errorf("INFO log is missing lines: %q", info)
	}
	errlog, err := os.ReadFile(filepath.Join(dir, "mockais.ERROR"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(errlog, []byte("info line")) || !bytes.Contains(errlog, []byte("error line")) {
		t.Errorf("unexpected ERROR log: %q", errlog)
	}
}
