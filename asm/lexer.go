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

package asm

import (
	"io"
	"strconv"
	"text/scanner"
	"unicode"
)

// TokenKind is the kind of a source token.
type TokenKind int

// Token kinds.
const (
	Inc TokenKind = iota
	Dec
	LoopStart
	LoopEnd
	Output
	Stroke
)

var tokenNames = [...]string{
	"increment",
	"decrement",
	"loop start",
	"loop end",
	"output",
	"register",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

var symbols = map[rune]TokenKind{
	'+':  Inc,
	'-':  Dec,
	'/':  LoopStart,
	'\\': LoopEnd,
	'!':  Output,
}

// Token is a lexical token. For Stroke tokens, Strokes is the length of the
// stroke run.
type Token struct {
	Kind    TokenKind
	Pos     scanner.Position
	Strokes int
}

// Lex splits the source text read from r into tokens. Characters that are not
// part of the language are dropped. Lex never fails: read errors and invalid
// UTF-8 sequences simply end or are skipped like comments.
//
// The name parameter is used to name the source in token positions.
func Lex(name string, r io.Reader) []Token {
	var s scanner.Scanner
	s.Init(r)
	s.Filename = name
	s.Mode = 0
	s.Whitespace = 0
	s.Error = func(*scanner.Scanner, string) {}

	var toks []Token
	run := -1 // index of the stroke token being grown
	for ch := s.Scan(); ch != scanner.EOF; ch = s.Scan() {
		if ch == '|' {
			if run >= 0 {
				toks[run].Strokes++
				continue
			}
			run = len(toks)
			toks = append(toks, Token{Kind: Stroke, Pos: s.Position, Strokes: 1})
			continue
		}
		if k, ok := symbols[ch]; ok {
			toks = append(toks, Token{Kind: k, Pos: s.Position})
			run = -1
		} else if unicode.IsSpace(ch) {
			run = -1
		}
	}
	return toks
}
