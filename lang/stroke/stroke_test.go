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
	"github.com/db47h/strokepm"
	"github.com/db47h/strokepm/lang/stroke"
	"github.com/db47h/strokepm/vm"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type C = []vm.Cell

func run(code string, regs C) C {
	res, err := strokepm.Interpret(code, vm.InitRegisters(regs))
	Expect(err).NotTo(HaveOccurred())
	return res
}

var _ = Describe("Macros", func() {
	Describe("primitives", func() {
		It("should address registers with strokes", func() {
			Expect(stroke.Reg(0)).To(Equal("|"))
			Expect(stroke.Reg(3)).To(Equal("||||"))
			Expect(stroke.Inc(1)).To(Equal("+ ||"))
			Expect(stroke.Dec(0)).To(Equal("- |"))
			Expect(stroke.Loop(0, stroke.Dec(0))).To(Equal("/ | - | \\"))
		})

		It("should repeat fragments", func() {
			Expect(stroke.Times(3, stroke.Inc(0))).To(Equal("+ | + | + |"))
			Expect(stroke.Times(0, stroke.Inc(0))).To(BeEmpty())
			Expect(run(stroke.Times(5, stroke.Inc(2)), nil)).To(Equal(C{0, 0, 5}))
		})
	})

	Describe("CLR", func() {
		It("should clear a register", func() {
			Expect(run(stroke.Clr(0), C{0})).To(BeEmpty())
			Expect(run(stroke.Clr(0), C{42})).To(BeEmpty())
			Expect(run(stroke.Clr(0), C{42, 13})).To(Equal(C{0, 13}))
		})
	})

	Describe("ADD", func() {
		It("should add and clear the source", func() {
			Expect(run(stroke.Add(0, 1), nil)).To(BeEmpty())
			Expect(run(stroke.Add(0, 1), C{1})).To(Equal(C{1}))
			Expect(run(stroke.Add(0, 1), C{0, 1})).To(Equal(C{1}))
			Expect(run(stroke.Add(0, 1), C{42, 13})).To(Equal(C{55}))
		})
	})

	Describe("MOV", func() {
		It("should move a register", func() {
			Expect(run(stroke.Mov(0, 1), nil)).To(BeEmpty())
			Expect(run(stroke.Mov(0, 1), C{1})).To(Equal(C{0, 1}))
			Expect(run(stroke.Mov(0, 1), C{42})).To(Equal(C{0, 42}))
		})

		It("should overwrite the destination", func() {
			Expect(run(stroke.Mov(0, 1), C{42, 7})).To(Equal(C{0, 42}))
			Expect(run(stroke.Mov(1, 0), C{42, 7})).To(Equal(C{7}))
		})
	})

	Describe("CPY", func() {
		It("should copy a register", func() {
			Expect(run(stroke.Cpy(0, 1, 2), nil)).To(BeEmpty())
			Expect(run(stroke.Cpy(0, 1, 2), C{1})).To(Equal(C{1, 1}))
			Expect(run(stroke.Cpy(0, 1, 2), C{42})).To(Equal(C{42, 42}))
		})
	})

	Describe("IF", func() {
		It("should increment the destination only if the condition holds", func() {
			sel := stroke.If(0, 1, 2, 3)
			Expect(run(sel, nil)).To(BeEmpty())
			Expect(run(sel, C{1})).To(Equal(C{1, 1}))
			Expect(run(sel, C{42})).To(Equal(C{42, 1}))
			Expect(run(sel, C{42, 5})).To(Equal(C{42, 6}))
		})
	})

	Describe("SET", func() {
		It("should set registers from an empty machine", func() {
			regs := C{3, 0, 9, 1}
			Expect(run(stroke.Set(regs), nil)).To(Equal(regs))
			Expect(run(stroke.Set(nil), nil)).To(BeEmpty())
		})
	})

	Describe("Seq", func() {
		It("should compose macros", func() {
			code := stroke.Seq(
				stroke.Cpy(0, 1, 3),
				stroke.Add(1, 2),
				stroke.Out())
			var out []C
			res, err := strokepm.Interpret(code,
				vm.InitRegisters(C{4, 0, 5}),
				vm.OutputHandler(func(regs []vm.Cell) { out = append(out, regs) }))
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(C{4, 9}))
			Expect(out).To(Equal([]C{{4, 9}}))
		})
	})
})
