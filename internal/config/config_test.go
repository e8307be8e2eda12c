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

package config_test

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/strokepm/internal/config"
	"github.com/db47h/strokepm/vm"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Profile", func() {
	It("should decode all fields", func() {
		p, err := config.Decode(strings.NewReader(`
program: mov.spm
registers: [42, 0, 7]
max_steps: 5000
output: true
text: true
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Program).To(Equal("mov.spm"))
		Expect(p.Registers).To(Equal([]vm.Cell{42, 0, 7}))
		Expect(p.MaxSteps).To(Equal(5000))
		Expect(p.Output).To(BeTrue())
		Expect(p.Text).To(BeTrue())
	})

	It("should accept an empty document", func() {
		p, err := config.Decode(strings.NewReader(""))
		Expect(err).NotTo(HaveOccurred())
		Expect(*p).To(Equal(config.Profile{}))
	})

	It("should reject unknown fields", func() {
		_, err := config.Decode(strings.NewReader("maxsteps: 10\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should reject negative registers", func() {
		_, err := config.Decode(strings.NewReader("registers: [-1]\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should configure a vm", func() {
		p := &config.Profile{Registers: []vm.Cell{3}, MaxSteps: 0}
		prog, err := vm.NewProgram([]vm.Instruction{{Op: vm.OpInc, Reg: 0}})
		Expect(err).NotTo(HaveOccurred())
		i, err := vm.New(prog, p.Options()...)
		Expect(err).NotTo(HaveOccurred())
		Expect(i.StepLimit()).To(Equal(vm.DefaultMaxSteps))
		Expect(i.Run()).To(Equal([]vm.Cell{4}))
	})

	Describe("Load", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "strokepm")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, dir)
		})

		It("should resolve the program relative to the profile", func() {
			fn := filepath.Join(dir, "run.yaml")
			Expect(os.WriteFile(fn, []byte("program: prog/mov.spm\n"), 0o644)).To(Succeed())
			p, err := config.Load(fn)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Program).To(Equal(filepath.Join(dir, "prog", "mov.spm")))
		})

		It("should keep absolute program paths", func() {
			fn := filepath.Join(dir, "run.yaml")
			Expect(os.WriteFile(fn, []byte("program: /tmp/x.spm\n"), 0o644)).To(Succeed())
			p, err := config.Load(fn)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Program).To(Equal("/tmp/x.spm"))
		})

		It("should fail on missing files", func() {
			_, err := config.Load(filepath.Join(dir, "nope.yaml"))
			Expect(err).To(HaveOccurred())
		})
	})
})
