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

package asm

import (
	"fmt"
	"text/scanner"
)

// ErrKind classifies syntax errors.
type ErrKind int

// Syntax error kinds.
const (
	ErrMissingOperand     ErrKind = iota + 1 // +, - or / without register
	ErrUnexpectedOperand                     // register after \
	ErrInvalidInstruction                    // register where an instruction is expected
	ErrMissingLoopStart                      // \ without matching /
	ErrMissingLoopEnd                        // / without matching \
)

// Error is a syntax error.
type Error struct {
	Pos  scanner.Position
	Kind ErrKind
	Msg  string
}

func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
