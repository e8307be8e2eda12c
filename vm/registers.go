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

// Registers is a sparse register file mapping addresses to values. Registers
// that were never set read as 0. Only nonzero values are stored.
type Registers map[int]Cell

// NewRegisters returns a register file seeded with init, where init[n] is the
// value of register n.
func NewRegisters(init []Cell) Registers {
	r := make(Registers, len(init))
	for addr, v := range init {
		if v != 0 {
			r[addr] = v
		}
	}
	return r
}

// Get returns the value of register addr.
func (r Registers) Get(addr int) Cell {
	return r[addr]
}

// Inc increments register addr.
func (r Registers) Inc(addr int) {
	r[addr]++
}

// Dec decrements register addr. Decrementing a register holding 0 is a no-op.
func (r Registers) Dec(addr int) {
	switch v := r[addr]; v {
	case 0:
	case 1:
		delete(r, addr)
	default:
		r[addr] = v - 1
	}
}

// Snapshot returns the register file as a dense slice running from register 0
// up to the highest nonzero register. The result is empty, not nil, if all
// registers are 0.
func (r Registers) Snapshot() []Cell {
	top := -1
	for addr := range r {
		if addr > top {
			top = addr
		}
	}
	s := make([]Cell, top+1)
	for addr, v := range r {
		s[addr] = v
	}
	return s
}

// Normalize returns a copy of regs with trailing zeros removed. The result is
// empty, not nil, if all values are 0.
func Normalize(regs []Cell) []Cell {
	l := len(regs)
	for l > 0 && regs[l-1] == 0 {
		l--
	}
	return append(make([]Cell, 0, l), regs[:l]...)
}
