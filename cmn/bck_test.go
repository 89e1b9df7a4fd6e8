// Package cmn_test: tests for common types (buckets, errors, list-objects results)
/*
 * Copyright (c) 2021-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn_test

import (
	"sort"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bck", func() {
	DescribeTable("ParseBckObjectURI",
		func(uri string, expectedBck cmn.Bck, expectedObj string) {
			bck, objName, err := cmn.ParseBckObjectURI(uri)
			Expect(err).NotTo(HaveOccurred())
			Expect(bck).To(Equal(expectedBck))
			Expect(objName).To(Equal(expectedObj))
		},
		Entry("bucket only", "ais://bucket", cmn.Bck{Name: "bucket", Provider: apc.AIS}, ""),
		Entry("default provider", "bucket/object", cmn.Bck{Name: "bucket", Provider: apc.AIS}, "object"),
		Entry("nested object", "ais://bucket/a/b/c", cmn.Bck{Name: "bucket", Provider: apc.AIS}, "a/b/c"),
		Entry("s3 alias", "s3://bucket/obj", cmn.Bck{Name: "bucket", Provider: apc.AWS}, "obj"),
		Entry("gs alias", "gs://bucket", cmn.Bck{Name: "bucket", Provider: apc.GCP}, ""),
		Entry("namespace", "ais://@uuid#ns/bucket/obj",
			cmn.Bck{Name: "bucket", Provider: apc.AIS, Ns: cmn.Ns{UUID: "uuid", Name: "ns"}}, "obj"),
	)

	DescribeTable("ParseBckObjectURI errors",
		func(uri string) {
			_, _, err := cmn.ParseBckObjectURI(uri)
			Expect(err).To(HaveOccurred())
		},
		Entry("unknown provider", "xyz://bucket"),
		Entry("empty bucket", "ais://"),
		Entry("invalid name", "ais://bad..name"),
		Entry("namespace w/o bucket", "ais://@uuid#ns"),
	)

	It("reverses MakeUname", func() {
		for _, bck := range []cmn.Bck{
			{Name: "b1", Provider: apc.AIS},
			{Name: "b2", Provider: apc.AWS},
			{Name: "b3", Provider: apc.AIS, Ns: cmn.Ns{UUID: "remote", Name: "ns"}},
		} {
			for _, objName := range []string{"", "obj", "a/b/c"} {
				parsed, name, err := cmn.ParseUname(bck.MakeUname(objName))
				Expect(err).NotTo(HaveOccurred())
				Expect(parsed.Equal(&bck)).To(BeTrue(), "%s vs %s", parsed.String(), bck.String())
				Expect(name).To(Equal(objName))
			}
		}
		_, _, err := cmn.ParseUname("ais/@#")
		Expect(err).To(HaveOccurred())
	})

	It("validates bucket names", func() {
		for _, name := range []string{"bucket", "my-bucket_1", "a.b.c"} {
			bck := cmn.Bck{Name: name}
			Expect(bck.ValidateName()).To(Succeed(), name)
		}
		for _, name := range []string{"", ".", "a..b", "with space", "a/b", "ü"} {
			bck := cmn.Bck{Name: name}
			err := bck.ValidateName()
			Expect(cmn.IsErrInvalidBckName(err)).To(BeTrue(), "%q: %v", name, err)
		}
	})

	It("distinguishes ais and remote buckets", func() {
		Expect((&cmn.Bck{Name: "b"}).IsAIS()).To(BeTrue())
		Expect((&cmn.Bck{Name: "b", Provider: apc.AWS}).IsRemote()).To(BeTrue())
		Expect((&cmn.Bck{Name: "b", Provider: apc.AIS, Ns: cmn.Ns{UUID: "remote"}}).IsRemote()).To(BeTrue())
	})

	It("round-trips through URL query", func() {
		bck := cmn.Bck{Name: "b", Provider: apc.GCP, Ns: cmn.Ns{Name: "ns"}}
		parsed, err := cmn.BckFromQuery("b", bck.AddToQuery(nil))
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed).To(Equal(bck))
	})

	It("sorts and searches", func() {
		bcks := cmn.Bcks{
			{Name: "z", Provider: apc.AIS},
			{Name: "a", Provider: apc.GCP},
			{Name: "a", Provider: apc.AIS},
		}
		sort.Sort(bcks)
		Expect(bcks[0].Name).To(Equal("a"))
		Expect(bcks[0].Provider).To(Equal(apc.AIS))
		Expect(bcks[2].Provider).To(Equal(apc.GCP))
		Expect(bcks.Contains(&cmn.Bck{Name: "z", Provider: apc.AIS})).To(BeTrue())
		Expect(bcks.Contains(&cmn.Bck{Name: "z", Provider: apc.GCP})).To(BeFalse())
	})
})
