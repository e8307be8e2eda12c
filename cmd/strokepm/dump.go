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

package main

import (
	"fmt"
	"io"

	"github.com/db47h/strokepm/lang/stroke"
	"github.com/db47h/strokepm/vm"
)

// dumpVM dumps the machine state to the specified io.Writer.
func dumpVM(i *vm.Instance, w io.Writer) error {
	_, err := fmt.Fprintf(w, "PC: %d/%d, steps: %d/%d\n", i.PC, i.Program().Len(), i.InstructionCount(), i.StepLimit())
	if err != nil {
		return err
	}
	return stroke.DumpRegisters(w, i.Registers().Snapshot())
}
