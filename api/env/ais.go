// Package env contains environment variables
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package env

var (
	AIS = struct {
		Endpoint   string
		AuthToken  string
		TokenFile  string
		PageSize   string
		SkipVerify string
		// tests, CI
		MockDefaultPageSize string
		LogDir              string
	}{
		Endpoint:   "AIS_ENDPOINT",
		AuthToken:  "AIS_AUTHN_TOKEN",
		TokenFile:  "AIS_AUTHN_TOKEN_FILE", // fully qualified
		PageSize:   "AIS_PAGE_SIZE",
		SkipVerify: "AIS_SKIP_VERIFY_CRT",

		// Env variables used for tests or CI
		MockDefaultPageSize: "AIS_MOCK_PAGE_SIZE",
		LogDir:              "AIS_LOG_DIR",
	}
)
