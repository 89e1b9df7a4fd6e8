// Package apc: API control messages and constants
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// AIS http header prefix
const HeaderPrefix = "ais-"

// object props
const (
	HdrObjCksumType = HeaderPrefix + "checksum-type"
	HdrObjCksumVal  = HeaderPrefix + "checksum-value"
	HdrObjAtime     = HeaderPrefix + "atime"
	HdrObjVersion   = HeaderPrefix + "version"
	HdrObjCustomMD  = HeaderPrefix + "custom-md"
	HdrObjSize      = HeaderPrefix + "size"
)

// bucket props
const (
	HdrBackendProvider  = HeaderPrefix + "provider"
	HdrBucketProps      = HeaderPrefix + "bucket-props"
	HdrBucketCreated    = HeaderPrefix + "created"
	HdrBucketVerEnabled = HeaderPrefix + "versioning-enabled"
	HdrBucketCksumType  = HeaderPrefix + "bucket-checksum-type"
)

// misc
const (
	HdrXactionID = HeaderPrefix + "xaction-id"
	HdrNodeID    = HeaderPrefix + "node-id"

	// with no response body (HEAD), the error's type code travels in this header
	HdrErrTcode = HeaderPrefix + "error-tcode"

	AuthenticationTypeBearer = "Bearer"
)
