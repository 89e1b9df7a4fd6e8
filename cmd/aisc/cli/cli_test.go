// Package cli provides easy-to-use commands to list, read, and write AIS buckets and objects.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/tools/mockais"
	"github.com/NVIDIA/aisclient/tools/tassert"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/urfave/cli"
)

const testSecret = "cli-test-secret"

type tcli struct {
	t   *testing.T
	srv *mockais.Server
	out bytes.Buffer
}

func newTestCLI(t *testing.T) *tcli {
	config := mockais.DefaultConfig()
	config.DefaultPageSize = 4
	srv, err := mockais.New(config)
	tassert.CheckFatal(t, err)
	tassert.CheckFatal(t, srv.Start())
	t.Cleanup(func() { srv.Stop() })

	cfg = nil
	clusterURL = srv.URL()
	apiBP = newBaseParams(clusterURL, "")
	tassert.CheckFatal(t, api.WaitForHealthy(apiBP, 10))
	return &tcli{t: t, srv: srv}
}

func (tc *tcli) run(args ...string) (string, error) {
	tc.out.Reset()
	a := acli{app: cli.NewApp(), outWriter: &tc.out, errWriter: &tc.out}
	a.init("test")
	err := a.app.Run(append([]string{cliName}, args...))
	return tc.out.String(), err
}

func (tc *tcli) mustRun(args ...string) string {
	out, err := tc.run(args...)
	tassert.Fatalf(tc.t, err == nil, "%v: %v\n%s", args, err, out)
	return out
}

func (tc *tcli) lsFetches() int {
	return int(testutil.ToFloat64(tc.srv.Counter(mockais.OpList)))
}

func lines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// dir/{a,b,c}.txt and dir/sub/{d,e}.txt
func makeTree(t *testing.T) string {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "sub/d.txt", "sub/e.txt"} {
		fqn := filepath.Join(dir, name)
		tassert.CheckFatal(t, os.MkdirAll(filepath.Dir(fqn), 0o755))
		tassert.CheckFatal(t, os.WriteFile(fqn, []byte("content of "+name), 0o644))
	}
	return dir
}

func TestBucketCommands(t *testing.T) {
	tc := newTestCLI(t)

	out := tc.mustRun(commandBucket, cmdCreate, "--versioning", "ais://one", "ais://two")
	tassert.Errorf(t, strings.Count(out, "created") == 2, "unexpected output: %q", out)

	_, err := tc.run(commandBucket, cmdCreate, "ais://one")
	tassert.Errorf(t, err != nil && strings.Contains(err.Error(), "already exists"), "expected already-exists, got %v", err)

	out = tc.mustRun(commandBucket, cmdList, "--no-headers")
	tassert.Errorf(t, len(lines(out)) == 2, "expected 2 buckets, got %q", out)
	tassert.Errorf(t, strings.Contains(out, "ais://one") && strings.Contains(out, "ais://two"), "unexpected output: %q", out)

	out = tc.mustRun(commandBucket, cmdHead, "ais://one")
	tassert.Errorf(t, strings.Contains(out, "versioning") && strings.Contains(out, "true"), "unexpected props: %q", out)

	tc.mustRun(commandBucket, cmdRemove, "ais://two")
	out = tc.mustRun(commandList)
	tassert.Errorf(t, !strings.Contains(out, "ais://two"), "bucket not destroyed: %q", out)

	_, err = tc.run(commandBucket, cmdRemove, "ais://two")
	tassert.Errorf(t, cmn.IsErrBckNotFound(err), "expected bucket-not-found, got %v", err)
}

func TestListModes(t *testing.T) {
	var (
		tc  = newTestCLI(t)
		dir = makeTree(t)
		bck = "ais://lsmodes"
	)
	tc.mustRun(commandBucket, cmdCreate, bck)
	out := tc.mustRun(commandObject, cmdPut, "--recursive", dir, bck+"/pfx")
	tassert.Errorf(t, strings.Contains(out, "5 files"), "unexpected output: %q", out)

	expected := []string{"pfx/a.txt", "pfx/b.txt", "pfx/c.txt", "pfx/sub/d.txt", "pfx/sub/e.txt"}

	// eager, gateway's default page size (4) => 2 pages
	before := tc.lsFetches()
	names := lines(tc.mustRun(commandList, "--name-only", bck))
	tassert.Errorf(t, strings.Join(names, ",") == strings.Join(expected, ","), "expected %v, got %v", expected, names)
	tassert.Errorf(t, tc.lsFetches()-before == 2, "eager: expected 2 fetches, got %d", tc.lsFetches()-before)

	// paged w/ limit
	before = tc.lsFetches()
	names = lines(tc.mustRun(commandList, "--paged", "--page-size", "2", "--limit", "3", "--name-only", bck))
	tassert.Errorf(t, len(names) == 3 && names[2] == "pfx/c.txt", "paged: unexpected %v", names)
	tassert.Errorf(t, tc.lsFetches()-before == 2, "paged: expected 2 fetches, got %d", tc.lsFetches()-before)

	// lazy w/ limit: no fetch beyond the page that contains the last needed name
	before = tc.lsFetches()
	names = lines(tc.mustRun(commandList, "--lazy", "--page-size", "3", "--limit", "3", "--name-only", bck))
	tassert.Errorf(t, len(names) == 3, "lazy: unexpected %v", names)
	tassert.Errorf(t, tc.lsFetches()-before == 1, "lazy: expected 1 fetch, got %d", tc.lsFetches()-before)

	// prefix (via URI) and start-after
	names = lines(tc.mustRun(commandList, "--name-only", "--start-after", "pfx/sub/d.txt", bck+"/pfx/sub/"))
	tassert.Errorf(t, len(names) == 1 && names[0] == "pfx/sub/e.txt", "unexpected %v", names)

	// table w/ props
	out = tc.mustRun(commandList, "--props", "name,size,version", bck)
	tassert.Errorf(t, strings.HasPrefix(out, "NAME"), "expected header, got %q", out)
	tassert.Errorf(t, len(lines(out)) == 6, "expected header + 5 rows, got %q", out)

	// json
	out = tc.mustRun(commandList, "--json", bck)
	lst := &cmn.LsoRes{}
	tassert.CheckFatal(t, cos.JSON.Unmarshal([]byte(out), lst))
	tassert.Errorf(t, len(lst.Entries) == 5 && lst.IsFinal(), "json: unexpected %+v", lst)

	_, err := tc.run(commandList, "--props", "bogus", bck)
	tassert.Errorf(t, err != nil, "expected error on invalid property")
	_, err = tc.run(commandList, "--paged", "--lazy", bck)
	tassert.Errorf(t, err != nil, "expected error on --paged --lazy")
	_, err = tc.run(commandList, "ais://nonexistent")
	tassert.Errorf(t, cmn.IsErrBckNotFound(err), "expected bucket-not-found, got %v", err)
}

func TestObjectCommands(t *testing.T) {
	var (
		tc   = newTestCLI(t)
		dir  = t.TempDir()
		src  = filepath.Join(dir, "src.bin")
		dst  = filepath.Join(dir, "dst.bin")
		bck  = "ais://objcmds"
		data = []byte("0123456789abcdefghij")
	)
	tassert.CheckFatal(t, os.WriteFile(src, data, 0o644))
	tc.mustRun(commandBucket, cmdCreate, bck)

	tc.mustRun(commandObject, cmdPut, "--compute-checksum", cos.ChecksumXXHash, "--custom", "k1=v1,k2=v2", src, bck+"/obj")
	tc.mustRun(commandObject, cmdGet, "--validate", bck+"/obj", dst)
	b, err := os.ReadFile(dst)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, bytes.Equal(b, data), "content mismatch: %q", b)

	out := tc.mustRun(commandObject, cmdGet, "--offset", "10", "--length", "5", bck+"/obj", "-")
	tassert.Errorf(t, out == "abcde", "range read: expected %q, got %q", "abcde", out)

	out = tc.mustRun(commandObject, cmdHead, "--json", bck+"/obj")
	attrs := &cmn.ObjAttrs{}
	tassert.CheckFatal(t, cos.JSON.Unmarshal([]byte(out), attrs))
	tassert.Errorf(t, attrs.Size == int64(len(data)), "unexpected size %d", attrs.Size)
	tassert.Errorf(t, attrs.CustomMD["k2"] == "v2", "unexpected custom md %v", attrs.CustomMD)

	tc.mustRun(commandObject, cmdRemove, bck+"/obj")
	_, err = tc.run(commandObject, cmdHead, bck+"/obj")
	tassert.Errorf(t, cmn.IsErrObjNotFound(err), "expected object-not-found, got %v", err)

	_, err = tc.run(commandObject, cmdGet, bck)
	tassert.Errorf(t, err != nil, "expected error on missing object name")
	_, err = tc.run(commandObject, cmdPut, "--custom", "novalue", src, bck+"/x")
	tassert.Errorf(t, err != nil, "expected error on invalid custom metadata")

	// promote
	tree := makeTree(t)
	tc.mustRun(commandObject, cmdPromote, "--wait", tree, bck+"/promoted")
	names := lines(tc.mustRun(commandList, "--name-only", bck+"/promoted/"))
	tassert.Errorf(t, len(names) == 3, "non-recursive promote: expected 3, got %v", names)
}

func TestJobCommands(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(commandBucket, cmdCreate, "ais://jobs")

	out := tc.mustRun(commandJob, cmdStart, "--wait", "cleanup-store", "ais://jobs")
	tassert.Errorf(t, strings.Contains(out, "done"), "unexpected output: %q", out)

	out = tc.mustRun(commandJob, cmdStatus, "--no-headers", "cleanup-store")
	tassert.Errorf(t, len(lines(out)) >= 1 && strings.Contains(out, "cleanup-store"), "unexpected status: %q", out)

	_, err := tc.run(commandJob, cmdStart, "promote")
	tassert.Errorf(t, err != nil, "promote must not be startable")
	_, err = tc.run(commandJob, cmdStatus, "not-a-kind-or-uuid!")
	tassert.Errorf(t, err != nil, "expected error on invalid job ID")
}

func TestAuthToken(t *testing.T) {
	tc := &tcli{t: t}
	out := tc.mustRun(commandAuth, cmdToken, "--secret", testSecret, "--admin", "bob")
	claims, err := mockais.ValidateToken(strings.TrimSpace(out), testSecret)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, claims.UserID == "bob" && claims.IsAdmin, "unexpected claims %+v", claims)

	_, err = tc.run(commandAuth, cmdToken, "bob")
	tassert.Errorf(t, err != nil, "expected error on missing secret")
}

func TestParseKVs(t *testing.T) {
	kvs, err := parseKVs("a=1, b=2,c=")
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, len(kvs) == 3 && kvs["a"] == "1" && kvs["b"] == "2" && kvs["c"] == "", "unexpected %v", kvs)

	kvs, err = parseKVs("")
	tassert.Errorf(t, err == nil && kvs == nil, "expected nil, got %v, %v", kvs, err)

	_, err = parseKVs("=x")
	tassert.Errorf(t, err != nil, "expected error on empty key")
}
