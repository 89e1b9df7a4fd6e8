// Package cmn_test: tests for common types (buckets, errors, list-objects results)
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn_test

import (
	"bytes"
	"fmt"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
	"github.com/NVIDIA/aisclient/cmn/cos"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tinylib/msgp/msgp"
)

var _ = Describe("LsoRes", func() {
	makePage := func(n int, token string) *cmn.LsoRes {
		lst := &cmn.LsoRes{UUID: cos.GenUUID(), ContinuationToken: token}
		for i := range n {
			lst.Entries = append(lst.Entries, &cmn.LsoEnt{
				Name:     fmt.Sprintf("obj-%04d", i),
				Size:     int64(i * 100),
				Checksum: "abc",
				Copies:   1,
				Flags:    apc.LocOK | apc.EntryIsCached,
			})
		}
		return lst
	}

	It("encodes and decodes msgpack with the pooled buffer size", func() {
		lst := makePage(1000, "obj-0999")
		var buf bytes.Buffer
		w := msgp.NewWriter(&buf)
		Expect(lst.EncodeMsg(w)).To(Succeed())
		Expect(w.Flush()).To(Succeed())

		decoded := &cmn.LsoRes{}
		r := msgp.NewReaderBuf(&buf, make([]byte, 16*cos.KiB))
		Expect(decoded.DecodeMsg(r)).To(Succeed())
		Expect(decoded).To(Equal(lst))
		Expect(decoded.IsFinal()).To(BeFalse())
	})

	It("copies only the requested properties", func() {
		en := &cmn.LsoEnt{Name: "o", Size: 1, Checksum: "c", Atime: "t", Version: "1", Location: "t1:/m", Copies: 1}
		props := cos.NewStrSet(apc.GetPropsName, apc.GetPropsSize, apc.GetPropsVersion)
		cp := en.CopyWithProps(props)
		Expect(*cp).To(Equal(cmn.LsoEnt{Name: "o", Size: 1, Version: "1"}))
		Expect(cp.IsPresent()).To(BeFalse())
		cp.SetPresent()
		Expect(cp.IsPresent()).To(BeTrue())
		Expect(cp.IsStatusOK()).To(BeTrue())
	})

	It("returns names in page order", func() {
		lst := makePage(3, "")
		Expect(lst.Entries.Names()).To(Equal([]string{"obj-0000", "obj-0001", "obj-0002"}))
		Expect(lst.IsFinal()).To(BeTrue())
	})
})
