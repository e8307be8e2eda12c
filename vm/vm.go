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

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Cell is the type of a register value.
type Cell uint64

// DefaultMaxSteps is the step budget of instances configured without a
// positive MaxSteps option.
const DefaultMaxSteps = 1000000

// LevelTrace is the log level at which every executed instruction is logged.
const LevelTrace = slog.LevelDebug - 4

// OutputFunc is the function prototype for output handlers. It receives a
// normalized snapshot of the register file, which it is free to keep or
// modify.
type OutputFunc func(regs []Cell)

// Instance represents a stroke machine running a single Program.
type Instance struct {
	PC       int // Program Counter
	prog     *Program
	regs     Registers
	maxSteps int
	insCount int
	output   OutputFunc
	log      *slog.Logger
}

// Option interface
type Option func(*Instance) error

// InitRegisters seeds the register file: register n is set to regs[n], all
// others are 0. Previous register contents are discarded.
func InitRegisters(regs []Cell) Option {
	return func(i *Instance) error {
		i.regs = NewRegisters(regs)
		return nil
	}
}

// MaxSteps sets the maximum number of instructions Run will execute before
// giving up with ErrStepLimit. Values <= 0 select DefaultMaxSteps.
func MaxSteps(n int) Option {
	return func(i *Instance) error {
		if n <= 0 {
			n = DefaultMaxSteps
		}
		i.maxSteps = n
		return nil
	}
}

// OutputHandler sets the function called by the output instruction. With no
// handler (or a nil one), output instructions do nothing.
func OutputHandler(fn OutputFunc) Option {
	return func(i *Instance) error {
		i.output = fn
		return nil
	}
}

// Logger sets the logger used for run diagnostics. The default is to not log
// anything.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error {
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new instance ready to run the given program from its first
// instruction with all registers set to 0.
//
// Options will be set by calling SetOptions.
func New(p *Program, opts ...Option) (*Instance, error) {
	if p == nil {
		return nil, errors.New("nil program")
	}
	i := &Instance{
		prog:     p,
		regs:     make(Registers),
		maxSteps: DefaultMaxSteps,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Program returns the program run by the instance.
func (i *Instance) Program() *Program {
	return i.prog
}

// Registers returns the instance's register file. Changes to it are
// reflected in the instance.
func (i *Instance) Registers() Registers {
	return i.regs
}

// StepLimit returns the step budget of the instance.
func (i *Instance) StepLimit() int {
	return i.maxSteps
}

// InstructionCount returns the number of instructions executed by the last
// call to Run.
func (i *Instance) InstructionCount() int {
	return i.insCount
}
