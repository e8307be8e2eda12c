// This file is part of strokepm - https://github.com/db47h/strokepm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stroke_test

import (
	"bytes"
	"strings"

	"github.com/db47h/strokepm/lang/stroke"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Text codec", func() {
	hello := C{3, 10, 9, 8, 30, 29, 1}

	It("should encode text", func() {
		regs, err := stroke.EncodeText("Hello World")
		Expect(err).NotTo(HaveOccurred())
		Expect(regs).To(Equal(hello))
	})

	It("should decode registers", func() {
		s, err := stroke.DecodeText(hello)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal("Hello World"))
	})

	It("should round trip through a program", func() {
		regs, err := stroke.EncodeText("Hello World")
		Expect(err).NotTo(HaveOccurred())
		res := run(stroke.Set(regs), nil)
		Expect(res).To(Equal(hello))
		s, err := stroke.DecodeText(res)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal("Hello World"))
	})

	It("should round trip short texts", func() {
		for _, text := range []string{"H", "He", "Hello", "World Hello", "Word"} {
			regs, err := stroke.EncodeText(text)
			Expect(err).NotTo(HaveOccurred())
			s, err := stroke.DecodeText(regs)
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(Equal(text))
		}
	})

	It("should reject unknown symbols", func() {
		_, err := stroke.EncodeText("hello")
		Expect(err).To(HaveOccurred())
	})

	It("should reject out of range values", func() {
		_, err := stroke.DecodeText(C{1, 32})
		Expect(err).To(MatchError(ContainSubstring("register 1")))
	})

	It("should decode nothing to nothing", func() {
		s, err := stroke.DecodeText(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeEmpty())
	})
})

var _ = Describe("DumpRegisters", func() {
	It("should tabulate registers", func() {
		var b bytes.Buffer
		regs := C{3, 0, 9, 0, 0, 0, 0, 0, 1}
		Expect(stroke.DumpRegisters(&b, regs)).To(Succeed())
		out := b.String()
		Expect(strings.Count(out, "\n")).To(BeNumerically(">=", len(regs)+2))
		Expect(out).To(ContainSubstring("|||"))
		Expect(out).To(ContainSubstring("|x9"))
		Expect(out).To(ContainSubstring("13"))
	})
})
