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

// Package spi - or strokepm-internal with some commonly used stuff.
package spi

import (
	"io"
	"strconv"

	"github.com/db47h/strokepm/vm"
	"github.com/pkg/errors"
)

// ErrWriter is a simple wrapper to track io errors. Write will keep returning
// the first error over and over. Lines counts the newlines written so far.
type ErrWriter struct {
	w     io.Writer
	Err   error
	Lines int
	buf   []byte
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	for _, c := range p[:n] {
		if c == '\n' {
			w.Lines++
		}
	}
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteCells writes a register snapshot on a single line, in the form
// "[0 1 42]".
func (w *ErrWriter) WriteCells(regs []vm.Cell) error {
	b := append(w.buf[:0], '[')
	for i, v := range regs {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendUint(b, uint64(v), 10)
	}
	b = append(b, ']', '\n')
	w.buf = b
	_, err := w.Write(b)
	return err
}

// NewErrWriter returns a new ErrWriter.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}
