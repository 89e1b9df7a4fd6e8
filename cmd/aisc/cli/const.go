// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
// This file contains common constants and global flags.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"time"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/urfave/cli"
)

const Version = "1.0"

// top-level commands and subcommands
const (
	commandAuth   = "auth"
	commandBucket = "bucket"
	commandObject = "object"
	commandJob    = "job"
	commandList   = "ls"
	commandMock   = "mock"

	cmdCreate  = "create"
	cmdRemove  = "rm"
	cmdList    = "ls"
	cmdGet     = "get"
	cmdPut     = "put"
	cmdHead    = "head"
	cmdPromote = "promote"
	cmdStart   = "start"
	cmdWait    = "wait"
	cmdStatus  = "status"
	cmdStop    = "stop"
	cmdToken   = "token"
)

// argument placeholders in help messages
const (
	bucketArgument       = "BUCKET"
	optionalBucketArg    = "[PROVIDER]"
	objectArgument       = "BUCKET/OBJECT_NAME"
	putObjectArgument    = "FILE|DIRECTORY " + objectArgument
	getObjectArgument    = objectArgument + " [OUT_FILE|-]"
	promoteArgument      = "FILE|DIRECTORY " + bucketArgument + "/[OBJECT_NAME]"
	jobStartArgument     = "KIND [BUCKET]"
	jobIDArgument        = "JOB_ID|KIND [BUCKET]"
	userArgument         = "USER_ID"
	barTextList          = "Listed"
	barTextPut           = "Uploaded"
	dfltProgressInterval = time.Second
)

// flags
var (
	noColorFlag = cli.BoolFlag{Name: "no-color", Usage: "disable colored output"}
	verboseFlag = cli.BoolFlag{Name: "verbose,v", Usage: "verbose output"}

	// list-objects
	prefixFlag     = cli.StringFlag{Name: "prefix", Usage: "list only objects whose names start with the specified prefix"}
	pageSizeFlag   = cli.IntFlag{Name: "page-size", Usage: "max number of names per page (0 - gateway's default)"}
	pagedFlag      = cli.BoolFlag{Name: "paged", Usage: "list objects page by page, printing each page as it arrives"}
	lazyFlag       = cli.BoolFlag{Name: "lazy", Usage: "list objects via lazy iterator (fetch next page only when needed)"}
	limitFlag      = cli.IntFlag{Name: "limit", Usage: "max number of objects to list (0 - unlimited)"}
	startAfterFlag = cli.StringFlag{Name: "start-after", Usage: "list objects with names that sort after the specified one"}
	propsFlag      = cli.StringFlag{
		Name:  "props",
		Usage: "comma-separated list of object properties, e.g. 'name,size,version' ('all' - all properties)",
		Value: apc.GetPropsName + "," + apc.GetPropsSize,
	}
	nameOnlyFlag = cli.BoolFlag{Name: "name-only", Usage: "list only object names"}
	progressFlag = cli.BoolFlag{Name: "progress", Usage: "show progress bar"}
	noHeaderFlag = cli.BoolFlag{Name: "no-headers,H", Usage: "display tables without headers"}

	// output format
	jsonFlag = cli.BoolFlag{Name: "json,j", Usage: "json input/output"}
	yamlFlag = cli.BoolFlag{Name: "yaml", Usage: "yaml output"}

	// bucket
	cksumTypeFlag  = cli.StringFlag{Name: "checksum", Usage: "checksum type (xxhash, md5, crc32c, sha256, none)"}
	versioningFlag = cli.BoolFlag{Name: "versioning", Usage: "enable object versioning"}

	// object
	recursiveFlag    = cli.BoolFlag{Name: "recursive,r", Usage: "recursive operation"}
	overwriteFlag    = cli.BoolFlag{Name: "overwrite-dst,o", Usage: "overwrite destination, if exists"}
	deleteSrcFlag    = cli.BoolFlag{Name: "delete-src", Usage: "delete successfully promoted source"}
	computeCksumFlag = cli.StringFlag{Name: "compute-checksum", Usage: "compute checksum of the type (e.g., xxhash) and have the gateway validate it"}
	validateFlag     = cli.BoolFlag{Name: "validate", Usage: "validate checksum of the received object"}
	offsetFlag       = cli.Int64Flag{Name: "offset", Usage: "object read offset (range read)"}
	lengthFlag       = cli.Int64Flag{Name: "length", Usage: "object read length (range read)"}
	concurrencyFlag  = cli.IntFlag{Name: "conc", Usage: "max number of concurrent uploads", Value: 8}
	customMDFlag     = cli.StringFlag{Name: "custom", Usage: "custom metadata, e.g. 'key1=value1,key2=value2'"}

	// jobs
	waitFlag    = cli.BoolFlag{Name: "wait", Usage: "wait for the job to finish"}
	timeoutFlag = cli.DurationFlag{Name: "timeout", Usage: "max time to wait (0 - forever)"}
	forceFlag   = cli.BoolFlag{Name: "force,f", Usage: "force the action"}

	// mock
	mockConfigFlag = cli.StringFlag{Name: "config", Usage: "gateway config (.json or .yaml)"}
	listenFlag     = cli.StringFlag{Name: "listen", Usage: "listen address, e.g. 'localhost:8080'"}
	dbPathFlag     = cli.StringFlag{Name: "db", Usage: "on-disk store (buntdb file); default: in-memory"}
	secretFlag     = cli.StringFlag{Name: "secret", Usage: "HMAC secret to sign and validate tokens"}

	// auth
	expiresFlag = cli.DurationFlag{Name: "expires", Usage: "token lifetime", Value: 24 * time.Hour}
	adminFlag   = cli.BoolFlag{Name: "admin", Usage: "issue admin token"}
)
