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

// Package stroke provides building blocks for stroke notation programs and
// helpers to decode their results.
//
// The macro functions return source text that can be combined with Seq and
// run with strokepm.Interpret. Registers given to a macro must be distinct and
// temporary registers must hold 0 on entry; they hold 0 again on exit.
package stroke

import (
	"strings"

	"github.com/db47h/strokepm/vm"
)

// Reg returns the operand addressing register r.
func Reg(r int) string {
	return vm.Strokes(r)
}

// Inc returns an instruction incrementing register r.
func Inc(r int) string {
	return "+ " + Reg(r)
}

// Dec returns an instruction decrementing register r.
func Dec(r int) string {
	return "- " + Reg(r)
}

// Out returns an output instruction.
func Out() string {
	return "!"
}

// Loop returns a loop guarded by register r around body.
func Loop(r int, body ...string) string {
	return "/ " + Reg(r) + " " + strings.Join(body, " ") + " \\"
}

// Seq joins program fragments, one per line.
func Seq(parts ...string) string {
	return strings.Join(parts, "\n")
}

// Times returns n copies of fragment s.
func Times(n int, s string) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSpace(strings.Repeat(s+" ", n))
}

// Clr sets register r to 0.
func Clr(r int) string {
	return Loop(r, Dec(r))
}

// Add adds register src to register dst and clears src.
func Add(dst, src int) string {
	return Loop(src, Dec(src), Inc(dst))
}

// Mov moves register src to register dst: dst is set to the value of src and
// src is cleared.
func Mov(src, dst int) string {
	return Seq(Clr(dst), Add(dst, src))
}

// Cpy adds register src to register dst and leaves src unchanged. Register
// tmp is used as temporary storage.
func Cpy(src, dst, tmp int) string {
	return Seq(
		Loop(src, Dec(src), Inc(dst), Inc(tmp)),
		Add(src, tmp))
}

// If increments register dst if register cond is not 0. Register cond is left
// unchanged; t1 and t2 are used as temporary storage.
func If(cond, dst, t1, t2 int) string {
	return Seq(
		Cpy(cond, t1, t2),
		Loop(t1, Clr(t1), Inc(dst)))
}

// Set returns a program that, run on a machine with all registers at 0, sets
// register n to regs[n].
func Set(regs []vm.Cell) string {
	var parts []string
	for r, v := range regs {
		if v > 0 {
			parts = append(parts, Times(int(v), Inc(r)))
		}
	}
	return Seq(parts...)
}
