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

// Package strokepm interprets programs written in stroke notation, a minimal
// Turing complete language for a counter machine.
//
// A program is a sequence of instructions operating on an unbounded set of
// registers holding non-negative integers:
//
//	+ |||	increment register 2
//	- |	decrement register 0, unless it is already 0
//	/ ||	loop while register 1 is not 0 ...
//	\	... end of loop
//	!	output
//
// Registers are addressed with strokes: n strokes address register n-1. Any
// other character is a comment. For example, the following program moves the
// value of register 0 to register 1:
//
//	/ |	while r0
//	  - |	dec r0
//	  + ||	inc r1
//	\
//
// Interpret runs a program from source. Packages asm and vm provide lower
// level access to the assembler and the virtual machine. Package lang/stroke
// provides program building blocks and helpers to decode their results.
package strokepm
