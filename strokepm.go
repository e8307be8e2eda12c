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

package strokepm

import (
	"strings"

	"github.com/db47h/strokepm/asm"
	"github.com/db47h/strokepm/vm"
	"github.com/pkg/errors"
)

// Interpret assembles source and runs it to completion on a fresh machine.
// It returns the final register values, from register 0 to the highest
// register that is not 0.
//
// Options are passed to vm.New: use vm.InitRegisters to seed the registers,
// vm.MaxSteps to change the step budget (vm.DefaultMaxSteps otherwise) and
// vm.OutputHandler to receive register snapshots from output instructions.
//
// Syntax errors are returned as *asm.Error (see IsSyntaxError) before
// anything runs. If the step budget is exhausted, the returned error has
// vm.ErrStepLimit as its cause; the output handler may have been called before
// that.
func Interpret(source string, opts ...vm.Option) ([]vm.Cell, error) {
	p, err := asm.Assemble("", strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	i, err := vm.New(p, opts...)
	if err != nil {
		return nil, err
	}
	return i.Run()
}

// IsSyntaxError returns true if err was caused by invalid source code.
func IsSyntaxError(err error) bool {
	_, ok := errors.Cause(err).(*asm.Error)
	return ok
}

// IsStepLimit returns true if err was caused by a program exceeding its step
// budget.
func IsStepLimit(err error) bool {
	return errors.Cause(err) == vm.ErrStepLimit
}
