// Package main is the command-line client for AIS gateways (aisc)
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/NVIDIA/aisclient/cmd/aisc/cli"
)

var (
	build     string
	buildtime string
)

func dispatchInterruptHandler() {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt)
	go func() {
		<-stopCh
		os.Exit(0)
	}()
}

func main() {
	// `aisc mock` handles its own signals
	if len(os.Args) < 2 || os.Args[1] != "mock" {
		dispatchInterruptHandler()
	}
	if err := cli.Init(); err != nil {
		exitf("%v", err)
	}
	if err := cli.Run(cli.Version+"."+build, buildtime, os.Args); err != nil {
		exitf("%v", err)
	}
}

func exitf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}
