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

// Package asm provides utility functions to assemble and disassemble stroke
// machine code.
//
// Source text is made of the following symbols:
//
//	symbol	operand	description
//	------	-------	------------------------------------------------------------
//	+	✓	increment register
//	-	✓	decrement register, a register holding 0 stays at 0
//	/	✓	loop start: skip to after the matching \ if the register is 0
//	\		loop end: jump back to the matching /
//	!		output a snapshot of the registers
//	|		stroke
//
// Operands:
//
// Registers are addressed by a run of strokes following the instruction. One
// stroke addresses register 0, two strokes register 1 and so on:
//
//	+ |	( increment register 0 )
//	- |||	( decrement register 2 )
//	/ ||	( loop while register 1 is not 0 )
//
// The operand may be separated from its instruction by white space, or not at
// all: "+|||" and "+ |||" are equivalent. A run of strokes is ended by white
// space or by any other instruction symbol, so "| |" is two operands.
//
// Comments:
//
// Any character that is neither one of the symbols above nor white space is
// ignored. This allows free-form comments next to the code:
//
//	/ |		while r0
//	  - |		dec r0
//	  + ||		inc r1
//	\
//
// Since ignored characters are removed before strokes are grouped, a comment
// character between two strokes does not split the operand: "+ |x|" increments
// register 1. Comments must obviously not contain any of the instruction
// symbols.
//
// Errors:
//
// Assembly stops at the first error. Errors are of type *Error and carry the
// position of the offending token in the source text. A loop end without
// matching loop start is reported at the loop end, an unterminated loop at its
// loop start.
package asm
