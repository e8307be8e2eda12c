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

package stroke

import (
	"strings"

	"github.com/db47h/strokepm/vm"
	"github.com/pkg/errors"
)

// Alphabet lists the symbols of the 3 bits text encoding, in code order.
const Alphabet = " deHlorW"

const (
	symbolBits = 3
	cellBits   = 5
)

// EncodeText packs text into registers: each symbol is encoded as its 3 bits
// index in Alphabet, the resulting bit string is left padded with zeros to a
// multiple of 5 bits and split into 5 bits register values.
func EncodeText(text string) ([]vm.Cell, error) {
	var bits []byte
	for _, r := range text {
		c := strings.IndexRune(Alphabet, r)
		if c < 0 {
			return nil, errors.Errorf("symbol %q not in alphabet", r)
		}
		for b := symbolBits - 1; b >= 0; b-- {
			bits = append(bits, byte(c>>uint(b))&1)
		}
	}
	if pad := len(bits) % cellBits; pad != 0 {
		bits = append(make([]byte, cellBits-pad), bits...)
	}
	regs := make([]vm.Cell, 0, len(bits)/cellBits)
	for i := 0; i < len(bits); i += cellBits {
		regs = append(regs, vm.Cell(pack(bits[i:i+cellBits])))
	}
	return regs, nil
}

// DecodeText reverses EncodeText. Register values must fit in 5 bits. Leading
// bits that do not make up a full symbol are ignored, and so are leading
// spaces since they cannot be told apart from padding. Note that trailing
// registers holding 0 are dropped from normalized snapshots, so texts that end
// with spaces may not decode back in full.
func DecodeText(regs []vm.Cell) (string, error) {
	bits := make([]byte, 0, len(regs)*cellBits)
	for r, v := range regs {
		if v >= 1<<cellBits {
			return "", errors.Errorf("register %d: value %d out of range", r, v)
		}
		for b := cellBits - 1; b >= 0; b-- {
			bits = append(bits, byte(v>>uint(b))&1)
		}
	}
	n := len(bits) / symbolBits
	text := make([]byte, n)
	for i, end := n-1, len(bits); i >= 0; i, end = i-1, end-symbolBits {
		text[i] = Alphabet[pack(bits[end-symbolBits:end])]
	}
	return strings.TrimLeft(string(text), " "), nil
}

func pack(bits []byte) int {
	var v int
	for _, b := range bits {
		v = v<<1 | int(b)
	}
	return v
}
