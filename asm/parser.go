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
	"github.com/db47h/strokepm/vm"
)

type parser struct {
	toks []Token
	pos  int
	code []vm.Instruction
	open []Token // unterminated loop starts
}

func (p *parser) next() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	t := p.toks[p.pos]
	p.pos++
	return t, true
}

func (p *parser) peekStroke() (Token, bool) {
	if p.pos < len(p.toks) && p.toks[p.pos].Kind == Stroke {
		return p.toks[p.pos], true
	}
	return Token{}, false
}

// operand consumes the register operand of instruction t.
func (p *parser) operand(t Token) (int, error) {
	s, ok := p.peekStroke()
	if !ok {
		return 0, &Error{t.Pos, ErrMissingOperand, "missing register for " + t.Kind.String()}
	}
	p.pos++
	return s.Strokes - 1, nil
}

func (p *parser) emit(op vm.Opcode, reg int) {
	p.code = append(p.code, vm.Instruction{Op: op, Reg: reg})
}

func (p *parser) parse() error {
	for t, ok := p.next(); ok; t, ok = p.next() {
		switch t.Kind {
		case Inc, Dec, LoopStart:
			reg, err := p.operand(t)
			if err != nil {
				return err
			}
			switch t.Kind {
			case Inc:
				p.emit(vm.OpInc, reg)
			case Dec:
				p.emit(vm.OpDec, reg)
			default:
				p.open = append(p.open, t)
				p.emit(vm.OpLoop, reg)
			}
		case LoopEnd:
			if s, ok := p.peekStroke(); ok {
				return &Error{s.Pos, ErrUnexpectedOperand, "unexpected register after loop end"}
			}
			if len(p.open) == 0 {
				return &Error{t.Pos, ErrMissingLoopStart, "loop end without loop start"}
			}
			p.open = p.open[:len(p.open)-1]
			p.emit(vm.OpEnd, vm.NoOperand)
		case Output:
			p.emit(vm.OpOut, vm.NoOperand)
		default:
			return &Error{t.Pos, ErrInvalidInstruction, "invalid instruction: register without instruction"}
		}
	}
	if n := len(p.open); n > 0 {
		return &Error{p.open[n-1].Pos, ErrMissingLoopEnd, "missing loop end"}
	}
	return nil
}
