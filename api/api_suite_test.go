// Package api_test contains tests for the api package, run against in-process mock gateway.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api_test

import (
	"testing"

	"github.com/NVIDIA/aisclient/api"
	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"
	"github.com/NVIDIA/aisclient/tools/mockais"
	"github.com/NVIDIA/aisclient/tools/trand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAPI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Suite")
}

var _ = Describe("Buckets", func() {
	var (
		srv *mockais.Server
		bp  api.BaseParams
	)

	BeforeEach(func() {
		var err error
		srv, err = mockais.New(mockais.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(srv.Start()).To(Succeed())
		bp = api.BaseParams{Client: cmn.NewClient(cmn.TransportArgs{}), URL: srv.URL()}
		Expect(api.WaitForHealthy(bp, 10)).To(Succeed())
	})

	AfterEach(func() {
		Expect(srv.Stop()).To(Succeed())
	})

	It("creates, lists, and destroys buckets", func() {
		bck := cmn.Bck{Name: trand.BckName(8), Provider: apc.AIS}
		Expect(api.CreateBucket(bp, bck, nil)).To(Succeed())

		exists, err := api.QueryBuckets(bp, bck)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())

		bcks, err := api.ListBuckets(bp, apc.AIS)
		Expect(err).NotTo(HaveOccurred())
		Expect(bcks.Contains(&bck)).To(BeTrue())

		Expect(api.DestroyBucket(bp, bck)).To(Succeed())
		exists, err = api.QueryBuckets(bp, bck)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())
	})

	It("fails to create the same bucket twice", func() {
		bck := cmn.Bck{Name: trand.BckName(8), Provider: apc.AIS}
		Expect(api.CreateBucket(bp, bck, nil)).To(Succeed())
		err := api.CreateBucket(bp, bck, nil)
		Expect(cmn.IsErrBckAlreadyExists(err)).To(BeTrue(), "got %v", err)
	})

	It("returns bucket properties", func() {
		bck := cmn.Bck{Name: trand.BckName(8), Provider: apc.AIS}
		Expect(api.CreateBucket(bp, bck, &cmn.Bprops{CksumType: cos.ChecksumMD5, Versioning: true})).To(Succeed())

		props, err := api.HeadBucket(bp, bck)
		Expect(err).NotTo(HaveOccurred())
		Expect(props.Provider).To(Equal(apc.AIS))
		Expect(props.CksumType).To(Equal(cos.ChecksumMD5))
		Expect(props.Versioning).To(BeTrue())
		Expect(props.Created).NotTo(BeZero())
	})

	It("lists buckets across providers", func() {
		var (
			local  = cmn.Bck{Name: trand.BckName(8), Provider: apc.AIS}
			remote = cmn.Bck{Name: trand.BckName(8), Provider: apc.GCP}
		)
		Expect(api.CreateBucket(bp, local, nil)).To(Succeed())
		Expect(api.CreateBucket(bp, remote, nil)).To(Succeed())

		all, err := api.ListBuckets(bp, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(2))

		gcp, err := api.ListBuckets(bp, apc.GCP)
		Expect(err).NotTo(HaveOccurred())
		Expect(gcp).To(HaveLen(1))
		Expect(gcp[0].Name).To(Equal(remote.Name))

		// "gs" is an alias
		exists, err := api.QueryBuckets(bp, cmn.Bck{Name: remote.Name, Provider: apc.GSScheme})
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())
	})

	DescribeTable("missing bucket",
		func(op func(cmn.Bck) error) {
			err := op(cmn.Bck{Name: "nonexistent", Provider: apc.AIS})
			Expect(cmn.IsErrBckNotFound(err)).To(BeTrue(), "got %v", err)
			Expect(api.HTTPStatus(err)).To(Equal(404))
		},
		Entry("head", func(bck cmn.Bck) error { _, err := api.HeadBucket(bp, bck); return err }),
		Entry("destroy", func(bck cmn.Bck) error { return api.DestroyBucket(bp, bck) }),
		Entry("list objects", func(bck cmn.Bck) error {
			_, err := api.ListObjects(bp, bck, nil, api.ListArgs{})
			return err
		}),
		Entry("put object", func(bck cmn.Bck) error {
			_, err := api.PutObject(&api.PutArgs{BaseParams: bp, Bck: bck, ObjName: "obj"})
			return err
		}),
	)
})
