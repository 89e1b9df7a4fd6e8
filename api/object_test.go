// Package api_test contains tests for the api package, run against in-process mock gateway.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api_test

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/tools/tassert"
	"github.com/NVIDIA/aisclient/tools/trand"
)

func TestObjectPutGetHeadDelete(t *testing.T) {
	_, bp := startMock(t, nil)
	bck := newBck(t, bp)

	var (
		objName = "dir/" + trand.String(10)
		data    = trand.Bytes(4096)
	)
	oah, err := api.PutObject(&api.PutArgs{
		BaseParams: bp,
		Bck:        bck,
		ObjName:    objName,
		Reader:     bytes.NewReader(data),
		Size:       uint64(len(data)),
		CustomMD:   map[string]string{"source": "unit-test"},
	})
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, oah.Size() == int64(len(data)), "put: expected size %d, got %d", len(data), oah.Size())

	// GET
	buf := &bytes.Buffer{}
	oah, err = api.GetObject(bp, bck, objName, &api.GetArgs{Writer: buf})
	tassert.CheckFatal(t, err)
	tassert.Fatalf(t, bytes.Equal(buf.Bytes(), data), "get: content mismatch")
	attrs := oah.Attrs()
	tassert.Errorf(t, attrs.Ver == "1", "expected version 1, got %q", attrs.Ver)
	tassert.Errorf(t, attrs.CustomMD["source"] == "unit-test", "custom metadata lost: %v", attrs.CustomMD)

	// GET with validation
	buf.Reset()
	_, err = api.GetObjectWithValidation(bp, bck, objName, &api.GetArgs{Writer: buf})
	tassert.CheckFatal(t, err)

	// range read
	buf.Reset()
	hdr := http.Header{}
	hdr.Set(cos.HdrRange, "bytes=100-199")
	oah, err = api.GetObject(bp, bck, objName, &api.GetArgs{Writer: buf, Header: hdr})
	tassert.CheckFatal(t, err)
	tassert.Fatalf(t, bytes.Equal(buf.Bytes(), data[100:200]), "range: content mismatch (%d bytes)", buf.Len())

	// HEAD
	oa, err := api.HeadObject(bp, bck, objName)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, oa.Size == int64(len(data)), "head: expected size %d, got %d", len(data), oa.Size)
	tassert.Errorf(t, !oa.Cksum.IsEmpty() && oa.Cksum.Type() == cos.ChecksumXXHash, "head: unexpected checksum %s", oa.Cksum)
	tassert.Errorf(t, oa.Cksum.Equal(cos.ChecksumBytes(cos.ChecksumXXHash, data)), "head: checksum mismatch")

	// overwrite bumps the version
	putObj(t, bp, bck, objName, data[:10])
	oa, err = api.HeadObject(bp, bck, objName)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, oa.Ver == "2" && oa.Size == 10, "overwrite: unexpected attrs %s", oa)

	// DELETE
	tassert.CheckFatal(t, api.DeleteObject(bp, bck, objName))
	_, err = api.HeadObject(bp, bck, objName)
	tassert.Errorf(t, cmn.IsErrObjNotFound(err), "head deleted: expected ErrObjNotFound, got %v", err)
	err = api.DeleteObject(bp, bck, objName)
	tassert.Errorf(t, cmn.IsErrObjNotFound(err), "delete deleted: expected ErrObjNotFound, got %v", err)
}

func TestObjectNotFound(t *testing.T) {
	_, bp := startMock(t, nil)
	bck := newBck(t, bp)

	_, err := api.GetObject(bp, bck, "nonexistent", nil)
	tassert.Errorf(t, cmn.IsErrObjNotFound(err), "expected ErrObjNotFound, got %v", err)
	tassert.Errorf(t, api.HTTPStatus(err) == http.StatusNotFound, "expected 404, got %d", api.HTTPStatus(err))

	// HEAD carries no body: the type code comes in a header
	_, err = api.HeadObject(bp, bck, "nonexistent")
	tassert.Errorf(t, cmn.IsErrObjNotFound(err), "expected ErrObjNotFound, got %v", err)

	_, err = api.HeadObject(bp, cmn.Bck{Name: "nonexistent", Provider: apc.AIS}, "obj")
	tassert.Errorf(t, cmn.IsErrBckNotFound(err), "expected ErrBckNotFound, got %v", err)

	_, err = api.GetObject(bp, bck, "", nil)
	tassert.Errorf(t, err != nil, "expected invalid object name error")
	_, err = api.GetObject(bp, bck, "a/../b", nil)
	tassert.Errorf(t, err != nil, "expected invalid object name error")
}

func TestObjectPutChecksum(t *testing.T) {
	_, bp := startMock(t, nil)
	bck := newBck(t, bp)
	data := trand.Bytes(1024)

	_, err := api.PutObject(&api.PutArgs{
		BaseParams: bp,
		Bck:        bck,
		ObjName:    "good",
		Reader:     bytes.NewReader(data),
		Cksum:      cos.ChecksumBytes(cos.ChecksumMD5, data),
	})
	tassert.CheckFatal(t, err)

	_, err = api.PutObject(&api.PutArgs{
		BaseParams: bp,
		Bck:        bck,
		ObjName:    "bad",
		Reader:     bytes.NewReader(data),
		Cksum:      cos.NewCksum(cos.ChecksumXXHash, "0123456789abcdef"),
	})
	tassert.Fatalf(t, err != nil, "expected checksum mismatch")
	tassert.Errorf(t, api.HTTPStatus(err) == http.StatusBadRequest, "expected 400, got %d (%v)", api.HTTPStatus(err), err)

	_, err = api.HeadObject(bp, bck, "bad")
	tassert.Errorf(t, cmn.IsErrObjNotFound(err), "object with bad checksum must not be stored: %v", err)
}

func TestGetObjectReader(t *testing.T) {
	_, bp := startMock(t, nil)
	bck := newBck(t, bp)
	data := trand.Bytes(10 * cos.KiB)
	putObj(t, bp, bck, "obj", data)

	r, size, err := api.GetObjectReader(bp, bck, "obj", nil)
	tassert.CheckFatal(t, err)
	defer r.Close()
	tassert.Errorf(t, size == int64(len(data)), "expected size %d, got %d", len(data), size)
	b, err := io.ReadAll(r)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, bytes.Equal(b, data), "content mismatch")

	_, _, err = api.GetObjectReader(bp, bck, "nonexistent", nil)
	tassert.Errorf(t, cmn.IsErrObjNotFound(err), "expected ErrObjNotFound, got %v", err)
}

func TestPromote(t *testing.T) {
	_, bp := startMock(t, nil)
	bck := newBck(t, bp)

	dir := t.TempDir()
	top := filepath.Join(dir, "top.txt")
	nested := filepath.Join(dir, "sub", "nested.txt")
	tassert.CheckFatal(t, os.MkdirAll(filepath.Dir(nested), 0o755))
	tassert.CheckFatal(t, os.WriteFile(top, []byte("top"), 0o644))
	tassert.CheckFatal(t, os.WriteFile(nested, []byte("nested"), 0o644))

	// relative source path is rejected client-side
	_, err := api.Promote(bp, bck, &apc.PromoteArgs{SrcFQN: "relative/path"})
	tassert.Errorf(t, err != nil, "expected error promoting relative path")

	// missing source: bad request, not a server failure
	_, err = api.Promote(bp, bck, &apc.PromoteArgs{SrcFQN: filepath.Join(dir, "no-such-file")})
	tassert.Fatalf(t, api.HTTPStatus(err) == http.StatusBadRequest, "expected 400, got %v", err)
	tassert.Errorf(t, strings.Contains(err.Error(), "does not exist"), "unexpected message: %v", err)
	tassert.Errorf(t, !cmn.IsErrBckNotFound(err), "bucket exists: %v", err)

	// single file: object name defaults to the file's basename
	xid, err := api.Promote(bp, bck, &apc.PromoteArgs{SrcFQN: top})
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, xid == "", "expected synchronous promotion, got job %q", xid)
	_, err = api.HeadObject(bp, bck, "top.txt")
	tassert.CheckFatal(t, err)

	// non-recursive directory
	_, err = api.Promote(bp, bck, &apc.PromoteArgs{SrcFQN: dir, ObjName: "pr"})
	tassert.CheckFatal(t, err)
	lst, err := api.ListObjects(bp, bck, &apc.LsoMsg{Prefix: "pr/"}, api.ListArgs{})
	tassert.CheckFatal(t, err)
	tassert.Fatalf(t, len(lst.Entries) == 1 && lst.Entries[0].Name == "pr/top.txt",
		"non-recursive: unexpected %v", lst.Entries.Names())

	// recursive, overwrite, delete source
	_, err = api.Promote(bp, bck, &apc.PromoteArgs{
		SrcFQN:       dir,
		ObjName:      "pr",
		Recursive:    true,
		OverwriteDst: true,
		DeleteSrc:    true,
	})
	tassert.CheckFatal(t, err)
	lst, err = api.ListObjects(bp, bck, &apc.LsoMsg{Prefix: "pr/"}, api.ListArgs{})
	tassert.CheckFatal(t, err)
	tassert.Fatalf(t, len(lst.Entries) == 2, "recursive: unexpected %v", lst.Entries.Names())

	buf := &bytes.Buffer{}
	_, err = api.GetObject(bp, bck, "pr/sub/nested.txt", &api.GetArgs{Writer: buf})
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, buf.String() == "nested", "unexpected content %q", buf.String())

	for _, fqn := range []string{top, nested} {
		_, err := os.Stat(fqn)
		tassert.Errorf(t, os.IsNotExist(err), "source %q must be removed (err: %v)", fqn, err)
	}
}
