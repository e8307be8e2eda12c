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

// Package config loads run profiles for the strokepm command.
//
// A run profile is a YAML document:
//
//	program: mov.spm	# program file, relative to the profile
//	registers: [42]	# initial registers
//	max_steps: 5000	# step budget, 0 for the default
//	output: true		# print snapshots on output instructions
//	text: false		# decode final registers as text
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/db47h/strokepm/vm"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Profile is a run profile.
type Profile struct {
	Program   string    `yaml:"program"`
	Registers []vm.Cell `yaml:"registers"`
	MaxSteps  int       `yaml:"max_steps"`
	Output    bool      `yaml:"output"`
	Text      bool      `yaml:"text"`
}

// Decode reads a profile from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "profile")
	}
	return &p, nil
}

// Load reads the profile in file fileName. A relative program path is
// resolved against the directory of the profile.
func Load(fileName string) (*Profile, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	p, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	if p.Program != "" && !filepath.IsAbs(p.Program) {
		p.Program = filepath.Join(filepath.Dir(fileName), p.Program)
	}
	return p, nil
}

// Options returns the vm options configured by the profile.
func (p *Profile) Options() []vm.Option {
	return []vm.Option{
		vm.InitRegisters(p.Registers),
		vm.MaxSteps(p.MaxSteps),
	}
}
