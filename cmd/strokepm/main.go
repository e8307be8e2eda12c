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
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/strokepm/asm"
	"github.com/db47h/strokepm/internal/config"
	"github.com/db47h/strokepm/internal/spi"
	"github.com/db47h/strokepm/lang/stroke"
	"github.com/db47h/strokepm/vm"
	"github.com/pkg/errors"
	"github.com/tebeka/atexit"
)

type regList []vm.Cell

func (l *regList) String() string {
	s := make([]string, len(*l))
	for i, v := range *l {
		s[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(s, ",")
}

func (l *regList) Set(s string) error {
	var r regList
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			r = append(r, 0)
			continue
		}
		v, err := strconv.ParseUint(f, 0, 64)
		if err != nil {
			return errors.Errorf("invalid register value %q", f)
		}
		r = append(r, vm.Cell(v))
	}
	*l = r
	return nil
}

func (l *regList) Get() interface{} { return *l }

var (
	regs     regList
	maxSteps int
	showOut  bool
	text     bool
	list     bool
	dump     bool
	debug    bool
	trace    bool
	cfgFile  string
)

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case trace:
		level = vm.LevelTrace
	case debug:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// applyProfile sets the options of profile p that were not given on the
// command line.
func applyProfile(fs *flag.FlagSet, p *config.Profile) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["r"] {
		regs = p.Registers
	}
	if !set["steps"] {
		maxSteps = p.MaxSteps
	}
	if !set["out"] {
		showOut = p.Output
	}
	if !set["text"] {
		text = p.Text
	}
}

func openSource(name string) (io.ReadCloser, string, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, name, errors.Wrap(err, "open failed")
	}
	return f, name, nil
}

// setupFlags registers the command line flags in fs and resets them to their
// default values.
func setupFlags(fs *flag.FlagSet) {
	regs = nil
	fs.Var(&regs, "r", "comma separated initial register `values`")
	fs.IntVar(&maxSteps, "steps", vm.DefaultMaxSteps, "step budget")
	fs.BoolVar(&showOut, "out", false, "print the registers on each output instruction")
	fs.BoolVar(&text, "text", false, "decode the final registers as text")
	fs.BoolVar(&list, "list", false, "list the assembled program and exit")
	fs.BoolVar(&dump, "dump", false, "dump registers upon exit")
	fs.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	fs.BoolVar(&trace, "trace", false, "trace executed instructions to stderr")
	fs.StringVar(&cfgFile, "config", "", "load run profile from `filename`")
}

func run(fs *flag.FlagSet, w *spi.ErrWriter) (err error) {
	name := fs.Arg(0)
	if cfgFile != "" {
		p, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyProfile(fs, p)
		if name == "" {
			name = p.Program
		}
	}

	r, name, err := openSource(name)
	if err != nil {
		return err
	}
	prog, err := asm.Assemble(name, r)
	r.Close()
	if err != nil {
		return err
	}
	if list {
		return asm.DisassembleAll(prog, w)
	}

	log := newLogger(os.Stderr)
	opts := []vm.Option{
		vm.InitRegisters(regs),
		vm.MaxSteps(maxSteps),
		vm.Logger(log),
	}
	if showOut {
		opts = append(opts, vm.OutputHandler(func(snap []vm.Cell) {
			w.WriteCells(snap)
		}))
		defer func() { log.Debug("output", "lines", w.Lines) }()
	}
	i, err := vm.New(prog, opts...)
	if err != nil {
		return err
	}

	res, err := i.Run()
	if dump {
		defer func() {
			if e := dumpVM(i, w); err == nil {
				err = e
			}
		}()
	}
	if err != nil {
		return err
	}
	if text {
		s, err := stroke.DecodeText(res)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)
		return w.Err
	}
	return w.WriteCells(res)
}

func atExit(err error) {
	if err == nil {
		atexit.Exit(0)
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	}
	atexit.Exit(1)
}

func main() {
	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { stdout.Flush() })

	setupFlags(flag.CommandLine)
	flag.Parse()

	atExit(run(flag.CommandLine, spi.NewErrWriter(stdout)))
}
