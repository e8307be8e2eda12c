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

import "github.com/pkg/errors"

var (
	// ErrStepLimit is the cause of the error returned by Run when a program
	// tries to execute more instructions than its step budget allows.
	ErrStepLimit = errors.New("maximum steps exceeded")

	// ErrNoJumpTarget is returned by NewProgram when a loop marker has no
	// matching counterpart. Programs built by package asm never trigger it.
	ErrNoJumpTarget = errors.New("jump target not found")
)
