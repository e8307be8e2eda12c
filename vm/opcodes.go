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

import "strings"

// Opcode identifies the kind of an Instruction.
type Opcode uint8

// Stroke machine opcodes.
const (
	OpInc  Opcode = iota // + increment register
	OpDec                // - decrement register, saturating at 0
	OpLoop               // / enter body while register is not 0
	OpEnd                // \ jump back to the matching OpLoop
	OpOut                // ! emit a register snapshot
)

// NoOperand is the Reg value of instructions that take no register.
const NoOperand = -1

var opcodes = [...]string{
	"+",
	"-",
	"/",
	"\\",
	"!",
}

func (op Opcode) String() string {
	if int(op) < len(opcodes) {
		return opcodes[op]
	}
	return "?"
}

// HasOperand returns true if instructions with this opcode address a register.
func (op Opcode) HasOperand() bool {
	return op == OpInc || op == OpDec || op == OpLoop
}

// Instruction is a single decoded instruction. Reg is the addressed register
// for OpInc, OpDec and OpLoop and NoOperand for the others.
type Instruction struct {
	Op  Opcode
	Reg int
}

// Strokes returns the stroke notation of register address reg.
func Strokes(reg int) string {
	if reg < 0 {
		return ""
	}
	return strings.Repeat("|", reg+1)
}

// String returns the instruction in canonical stroke notation.
func (in Instruction) String() string {
	if !in.Op.HasOperand() {
		return in.Op.String()
	}
	return in.Op.String() + " " + Strokes(in.Reg)
}
