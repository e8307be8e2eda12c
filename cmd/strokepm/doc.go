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

// The strokepm command line tool runs stroke notation programs. See package
// github.com/db47h/strokepm for a description of the language.
//
// Usage:
//
//	strokepm [flags] [program]
//
// The program is read from the named file, or from standard input if no file
// is given or the name is "-". Upon completion, the final registers are
// printed to standard output.
//
// Flags:
//
//	-config filename
//		  load run profile from filename
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump registers upon exit
//	-list
//		  list the assembled program and exit
//	-out
//		  print the registers on each output instruction
//	-r values
//		  comma separated initial register values
//	-steps int
//		  step budget (default 1000000)
//	-text
//		  decode the final registers as text
//	-trace
//		  trace executed instructions to stderr
//
// -debug: prints full stack traces of errors and logs run diagnostics to
// stderr.
//
// -dump: prints the program counter, the step count and a table of the
// registers when the program ends, including when it runs out of steps.
//
// -r: registers are given in address order, so "-r 42,,7" sets register 0 to
// 42 and register 2 to 7.
//
// -steps: values <= 0 select the default budget.
//
// -text: decodes the registers with the 3 bits alphabet " deHlorW", five bits
// per register. See package github.com/db47h/strokepm/lang/stroke.
//
// -config: a run profile is a YAML file that can set the program, the initial
// registers, the step budget and the -out and -text flags:
//
//	program: fib.spm
//	registers: [0, 1]
//	max_steps: 2000
//	output: true
//
// Flags given on the command line override the profile.
package main
