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

package vm

import "github.com/pkg/errors"

// Program is an immutable, validated instruction sequence. Each loop marker
// is paired with its counterpart once, when the program is built, so that
// jumps do not need to scan the code.
type Program struct {
	code []Instruction
	jump []int
}

// NewProgram validates code and returns the corresponding Program. The code
// slice is copied.
//
// Operands of OpInc, OpDec and OpLoop must be valid register addresses (>= 0).
// The operand of OpEnd and OpOut is ignored and reset to NoOperand. Loop
// markers must be balanced, otherwise the returned error has ErrNoJumpTarget as
// its cause.
func NewProgram(code []Instruction) (*Program, error) {
	p := &Program{
		code: make([]Instruction, len(code)),
		jump: make([]int, len(code)),
	}
	var open []int
	for pc, in := range code {
		p.jump[pc] = -1
		switch in.Op {
		case OpInc, OpDec, OpLoop:
			if in.Reg < 0 {
				return nil, errors.Errorf("invalid register %d for %s at %d", in.Reg, in.Op, pc)
			}
			if in.Op == OpLoop {
				open = append(open, pc)
			}
		case OpEnd:
			in.Reg = NoOperand
			if len(open) == 0 {
				return nil, errors.Wrapf(ErrNoJumpTarget, "loop end at %d", pc)
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			p.jump[start], p.jump[pc] = pc, start
		case OpOut:
			in.Reg = NoOperand
		default:
			return nil, errors.Errorf("invalid opcode %d at %d", in.Op, pc)
		}
		p.code[pc] = in
	}
	if len(open) > 0 {
		return nil, errors.Wrapf(ErrNoJumpTarget, "loop start at %d", open[len(open)-1])
	}
	return p, nil
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.code)
}

// At returns the instruction at position pc.
func (p *Program) At(pc int) Instruction {
	return p.code[pc]
}

// Match returns the position of the loop marker paired with the one at pc, or
// -1 if the instruction at pc is not a loop marker.
func (p *Program) Match(pc int) int {
	return p.jump[pc]
}

// Code returns a copy of the program's instructions.
func (p *Program) Code() []Instruction {
	return append([]Instruction(nil), p.code...)
}
