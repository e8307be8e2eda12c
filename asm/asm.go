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
	"io"
	"strings"

	"github.com/db47h/strokepm/internal/spi"
	"github.com/db47h/strokepm/vm"
	"github.com/pkg/errors"
)

// Assemble compiles stroke notation source read from the supplied io.Reader
// and returns the resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, is of type *Error. No program is returned
// in that case.
func Assemble(name string, r io.Reader) (*vm.Program, error) {
	return Parse(Lex(name, r))
}

// Parse validates a token sequence as returned by Lex and builds the
// corresponding program.
func Parse(toks []Token) (*vm.Program, error) {
	p := &parser{toks: toks}
	if err := p.parse(); err != nil {
		return nil, err
	}
	prog, err := vm.NewProgram(p.code)
	if err != nil {
		// the parser checks loop balance, this would be a bug.
		return nil, errors.Wrap(err, "internal error")
	}
	return prog, nil
}

// Disassemble writes the instruction at position pc in canonical stroke
// notation to the specified io.Writer and returns the position of the next
// instruction and any write error.
func Disassemble(p *vm.Program, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*spi.ErrWriter)
	if ew == nil {
		ew = spi.NewErrWriter(w)
	}
	io.WriteString(ew, p.At(pc).String())
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of the whole program to the specified
// io.Writer, one instruction per line, loop bodies indented. Each line is
// prefixed with the instruction address. The output assembles back to the same
// program. It will return any write error.
func DisassembleAll(p *vm.Program, w io.Writer) error {
	ew := spi.NewErrWriter(w)
	depth := 0
	for pc := 0; pc < p.Len(); {
		if p.At(pc).Op == vm.OpEnd {
			depth--
		}
		fmt.Fprintf(ew, "% 6d\t%s", pc, strings.Repeat("  ", depth))
		if p.At(pc).Op == vm.OpLoop {
			depth++
		}
		pc, _ = Disassemble(p, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
