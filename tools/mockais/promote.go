// Package mockais provides an in-process, single-node, AIS-compatible gateway
// that implements the subset of the AIS v1 API used by `api` package and CLI.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mockais

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"

	"github.com/karrick/godirwalk"
)

// directories with up to so many files are promoted synchronously
// (no job ID is returned); otherwise - asynchronously, by a "promote" job
const promoteNumSync = 16

// source path missing on the gateway's side; the request is bad (400), the bucket is fine
type errPromoteSrc struct{ src string }

func (e *errPromoteSrc) Error() string { return "promote: source " + e.src + " does not exist" }

// returns job ID, if any
func (s *Server) promote(bck *cmn.Bck, args *apc.PromoteArgs) (string, error) {
	finfo, err := os.Stat(args.SrcFQN)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &errPromoteSrc{src: args.SrcFQN}
		}
		return "", err
	}
	if !finfo.IsDir() {
		objName := args.ObjName
		if objName == "" {
			objName = filepath.Base(args.SrcFQN)
		}
		_, err := s.promoteFile(bck, args.SrcFQN, objName, args)
		if err == nil {
			logPromote(bck, args, 1)
		}
		return "", err
	}

	files, err := walkPromote(args.SrcFQN, args.Recursive)
	if err != nil {
		return "", err
	}
	if len(files) <= promoteNumSync {
		n, err := s.promoteFiles(context.Background(), bck, args, files, nil)
		if err == nil {
			logPromote(bck, args, n)
		}
		return "", err
	}
	xid := s.xacts.start(apc.ActPromote, *bck, func(ctx context.Context, xctn *xentry) error {
		n, err := s.promoteFiles(ctx, bck, args, files, xctn)
		if err == nil {
			logPromote(bck, args, n)
		}
		return err
	})
	return xid, nil
}

// relative (slash-separated) pathnames of regular files;
// non-recursive walk visits only the top directory
func walkPromote(dir string, recursive bool) ([]string, error) {
	var files []string
	opts := &godirwalk.Options{
		Callback: func(fqn string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				if fqn != dir && !recursive {
					return godirwalk.SkipThis
				}
				return nil
			}
			if !de.IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(dir, fqn)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
			return nil
		},
		ErrorCallback: func(_ string, err error) godirwalk.ErrorAction {
			if os.IsNotExist(err) {
				return godirwalk.SkipNode
			}
			return godirwalk.Halt
		},
	}
	if err := godirwalk.Walk(dir, opts); err != nil {
		return nil, err
	}
	return files, nil
}

func (s *Server) promoteFiles(ctx context.Context, bck *cmn.Bck, args *apc.PromoteArgs, files []string, xctn *xentry) (n int, err error) {
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		var (
			fqn     = filepath.Join(args.SrcFQN, filepath.FromSlash(rel))
			objName = rel
		)
		if args.ObjName != "" {
			objName = path.Join(args.ObjName, rel)
		}
		size, err := s.promoteFile(bck, fqn, objName, args)
		if err != nil {
			return n, err
		}
		if size >= 0 {
			n++
			if xctn != nil {
				s.xacts.addStats(xctn, 1, size)
			}
		}
	}
	return n, nil
}

// returns the size of the promoted file, or -1 if the destination exists
// and must not be overwritten
func (s *Server) promoteFile(bck *cmn.Bck, fqn, objName string, args *apc.PromoteArgs) (int64, error) {
	data, err := os.ReadFile(fqn)
	if err != nil {
		return 0, err
	}
	stored, err := s.putObj(bck, objName, data, &lom{}, args.OverwriteDst)
	if err != nil || !stored {
		return -1, err
	}
	if args.DeleteSrc {
		if err := os.Remove(fqn); err != nil {
			return 0, err
		}
	}
	return int64(len(data)), nil
}
