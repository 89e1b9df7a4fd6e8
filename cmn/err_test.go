// Package cmn_test: tests for common types (buckets, errors, list-objects results)
/*
 * Copyright (c) 2019-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	bck := cmn.Bck{Name: "bucket", Provider: apc.AIS}

	DescribeTable("server-side error => ErrHTTP => typed error",
		func(err error, status int, is func(error) bool) {
			herr := cmn.NewErrHTTP(http.MethodGet, "/v1/buckets/bucket", err, status)
			Expect(herr.TypeCode).NotTo(BeEmpty())

			// (as if received over the wire)
			b := cos.MustMarshal(herr)
			received := &cmn.ErrHTTP{}
			Expect(cos.JSON.Unmarshal(b, received)).To(Succeed())

			typed := received.Typed(&bck, "obj")
			Expect(is(typed)).To(BeTrue(), "%T: %v", typed, typed)
			Expect(cmn.HTTPStatus(typed)).To(Equal(status))
			Expect(typed.Error()).To(Equal(err.Error()))

			var target *cmn.ErrHTTP
			Expect(errors.As(typed, &target)).To(BeTrue())
			Expect(target.Status).To(Equal(status))
		},
		Entry("bucket not found", cmn.NewErrBckNotFound(&bck), http.StatusNotFound, cmn.IsErrBckNotFound),
		Entry("object not found", cmn.NewErrObjNotFound(&bck, "obj"), http.StatusNotFound, cmn.IsErrObjNotFound),
		Entry("invalid bucket name", cmn.NewErrInvalidBckName("a b"), http.StatusBadRequest, cmn.IsErrInvalidBckName),
		Entry("bucket exists", cmn.NewErrBckAlreadyExists(&bck), http.StatusConflict, cmn.IsErrBckAlreadyExists),
		Entry("job not found", cmn.NewErrXactNotFound("xyz"), http.StatusNotFound, cmn.IsErrXactNotFound),
	)

	It("keeps the type code of wrapped errors", func() {
		err := fmt.Errorf("head %s: %w", bck.String(), cmn.NewErrBckNotFound(&bck))
		herr := cmn.NewErrHTTP(http.MethodHead, "/v1/objects/bucket/obj", err, http.StatusNotFound)
		Expect(herr.TypeCode).To(Equal(cmn.TcodeBckNotFound))

		// the type code wins over request-context inference
		Expect(cmn.IsErrBckNotFound(herr.Typed(&bck, "obj"))).To(BeTrue())
	})

	It("infers not-found from the request context when there is no type code", func() {
		herr := &cmn.ErrHTTP{Method: http.MethodHead, Status: http.StatusNotFound}
		Expect(cmn.IsErrObjNotFound(herr.Typed(&bck, "obj"))).To(BeTrue())
		Expect(cmn.IsErrBckNotFound(herr.Typed(&bck, ""))).To(BeTrue())

		// no context: remains plain ErrHTTP
		err := herr.Typed(nil, "")
		Expect(err).To(BeIdenticalTo(herr))
		Expect(cmn.IsNotFound(err)).To(BeTrue())
	})

	It("server-side typed errors carry no HTTP status", func() {
		err := cmn.NewErrBckNotFound(&bck)
		Expect(cmn.HTTPStatus(err)).To(BeZero())
		Expect(errors.Unwrap(err)).To(BeNil())
		Expect(err.Error()).To(ContainSubstring("ais://bucket"))
	})

	It("wraps transport errors", func() {
		uerr := &url.Error{Op: "Get", URL: "http://localhost:1", Err: errors.New("connection refused")}
		err := fmt.Errorf("list: %w", cmn.NewErrTransport(uerr))
		Expect(cmn.IsErrTransport(err)).To(BeTrue())
		Expect(cmn.HTTPStatus(err)).To(BeZero())
		Expect(err.Error()).To(ContainSubstring("failed to reach http://localhost:1"))
		Expect(errors.Is(err, uerr)).To(BeTrue())
	})

	It("handles non-JSON error bodies", func() {
		herr := cmn.NewErrHTTPFromBody(http.MethodGet, "/v1/buckets", []byte("<html><body>bad gateway</body></html>"), http.StatusBadGateway)
		Expect(herr.Message).To(Equal(http.StatusText(http.StatusBadGateway)))
		herr = cmn.NewErrHTTPFromBody(http.MethodGet, "/v1/buckets", []byte(" upstream timeout\n"), http.StatusGatewayTimeout)
		Expect(herr.Message).To(Equal("upstream timeout"))
		Expect(herr.Error()).To(ContainSubstring("504"))
	})
})
