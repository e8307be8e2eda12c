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

// Package vm implements the stroke machine, a counter machine with an
// unbounded number of non-negative integer registers and five instructions:
//
//	+ r	increment register r
//	- r	decrement register r, unless it is already 0
//	/ r	if register r is 0, jump past the matching \
//	\	jump back to the matching /
//	!	pass a snapshot of the registers to the output handler
//
// Programs are usually built from source text with package
// github.com/db47h/strokepm/asm, but can also be assembled by hand with
// NewProgram.
//
// The loop condition is checked every time the / instruction is reached, so a
// loop whose body never clears its register does not terminate. Instances
// protect against this with a step budget (see MaxSteps): Run gives up with
// ErrStepLimit once the budget is exhausted.
//
// Register snapshots, whether passed to the output handler or returned by
// Run, are normalized: they run from register 0 up to the highest register
// that is not 0, so a machine with all registers cleared yields an empty
// slice.
package vm
