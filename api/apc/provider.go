// Package apc: API control messages and constants
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

import "strings"

// Backend Provider enum
const (
	AIS   = "ais"
	AWS   = "aws"
	Azure = "azure"
	GCP   = "gcp"
	HT    = "ht" // HTTP(S) datasets

	AllProviders = "ais, aws (s3://), gcp (gs://), azure (az://), ht://" // NOTE: must include all the above

	NsUUIDPrefix = '@' // BEWARE: used by on-disk layout
	NsNamePrefix = '#' // BEWARE: used by on-disk layout

	// consistent with rfc2396.txt "Uniform Resource Identifiers (URI): Generic Syntax"
	BckProviderSeparator = "://"

	// scheme://
	DefaultScheme = "https"
	GSScheme      = "gs"
	S3Scheme      = "s3"
	AZScheme      = "az"
	AISScheme     = "ais"
)

var Providers = []string{AIS, GCP, AWS, Azure, HT}

func IsProvider(p string) bool {
	for _, prov := range Providers {
		if prov == p {
			return true
		}
	}
	return false
}

func IsCloudProvider(p string) bool {
	return p == AWS || p == GCP || p == Azure
}

func NormalizeProvider(p string) string {
	p = strings.ToLower(p)
	if IsProvider(p) {
		return p
	}
	switch p {
	case "":
		return AIS // NOTE: ais is the default provider
	case S3Scheme:
		return AWS
	case AZScheme:
		return Azure
	case GSScheme:
		return GCP
	default:
		return ""
	}
}

func ToScheme(p string) string {
	switch p {
	case AWS:
		return S3Scheme
	case Azure:
		return AZScheme
	case GCP:
		return GSScheme
	default:
		return p
	}
}
