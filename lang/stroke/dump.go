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
	"io"
	"strconv"

	"github.com/db47h/strokepm/vm"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
)

// operands longer than this are shown as a count.
const maxStrokes = 8

func operand(r int) string {
	if r < maxStrokes {
		return Reg(r)
	}
	return "|x" + strconv.Itoa(r+1)
}

// DumpRegisters writes a table of the given register values to w.
func DumpRegisters(w io.Writer, regs []vm.Cell) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Register", "Operand", "Value"})
	var total vm.Cell
	for r, v := range regs {
		t.AppendRow(table.Row{r, operand(r), v})
		total += v
	}
	t.AppendFooter(table.Row{"", "Total", total})
	_, err := io.WriteString(w, t.Render()+"\n")
	return errors.Wrap(err, "register dump failed")
}
