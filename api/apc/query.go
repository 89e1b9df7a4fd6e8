// Package apc: API control messages and constants
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

const (
	// see related "GET(what)" set of APIs
	QparamWhat = "what"

	QparamProps = "props" // e.g. "checksum, size"|"atime, size"| ...

	QparamUUID = "uuid" // job ID

	// Main bucket query params.
	QparamProvider  = "provider"
	QparamNamespace = "namespace"

	// validate checksum upon GET
	QparamValidateCksum = "validate"

	// overwrite existing object
	QparamOverwrite = "overwrite"
)

// QparamWhat enum
const (
	WhatXactStatus = "status"
	WhatXactStats  = "stats"
	WhatBMD        = "bmd"
)
