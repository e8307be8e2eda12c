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
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

// Run executes the program from the current PC until it runs past the last
// instruction and returns a normalized snapshot of the register file.
//
// If the step budget is exhausted before that, Run returns an error whose
// cause is ErrStepLimit and the PC points to the instruction that would have
// exceeded the budget. Snapshots already passed to the output handler are not
// taken back.
func (i *Instance) Run() (regs []Cell, err error) {
	defer func() {
		if e := recover(); e != nil {
			regs, err = nil, errors.Errorf("pc %d: %v", i.PC, e)
		}
	}()
	ctx := context.Background()
	trace := i.log != nil && i.log.Enabled(ctx, LevelTrace)
	if i.log != nil {
		i.log.Debug("run", slog.Int("pc", i.PC), slog.Int("len", i.prog.Len()), slog.Int("maxSteps", i.maxSteps))
	}

	i.insCount = 0
	code, jump := i.prog.code, i.prog.jump
	for i.PC < len(code) {
		if i.insCount >= i.maxSteps {
			if i.log != nil {
				i.log.Debug("step limit", slog.Int("pc", i.PC), slog.Int("steps", i.insCount))
			}
			return nil, errors.Wrapf(ErrStepLimit, "pc %d after %d steps", i.PC, i.insCount)
		}
		in := code[i.PC]
		if trace {
			i.log.Log(ctx, LevelTrace, "exec", slog.Int("pc", i.PC), slog.String("ins", in.String()), slog.Uint64("value", uint64(i.regs.Get(in.Reg))))
		}
		switch in.Op {
		case OpInc:
			i.regs.Inc(in.Reg)
			i.PC++
		case OpDec:
			i.regs.Dec(in.Reg)
			i.PC++
		case OpLoop:
			if i.regs.Get(in.Reg) == 0 {
				i.PC = jump[i.PC] + 1
			} else {
				i.PC++
			}
		case OpEnd:
			i.PC = jump[i.PC]
		case OpOut:
			if i.output != nil {
				i.output(i.regs.Snapshot())
			}
			i.PC++
		}
		i.insCount++
	}

	if i.log != nil {
		i.log.Debug("done", slog.Int("steps", i.insCount))
	}
	return i.regs.Snapshot(), nil
}
