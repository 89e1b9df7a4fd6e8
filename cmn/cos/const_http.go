// Package cos provides common low-level types and utilities for all aisclient packages
/*
 * Copyright (c) 2018-2024, NVIDIA CORPORATION. All rights reserved.
 */
package cos

// References:
// - Standard HTTP headers: https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers
// - AIS HTTP headers:      api/apc/headers.go source

const (
	HdrRange          = "Range"
	HdrRangeValPrefix = "bytes="
	HdrContentType    = "Content-Type"
	HdrContentLength  = "Content-Length"
	HdrUserAgent      = "User-Agent"
	HdrAccept         = "Accept"
	HdrAuthorization  = "Authorization"
	HdrServer         = "Server"
	HdrETag           = "ETag"

	// the header to carry error message with no response body (e.g. HEAD)
	HdrError = "Ais-Error"
)

// Ref: https://www.iana.org/assignments/media-types/media-types.xhtml
const (
	ContentJSON           = "application/json"
	ContentJSONCharsetUTF = "application/json; charset=utf-8"
	ContentMsgPack        = "application/msgpack"
	ContentBinary         = "application/octet-stream"
)
