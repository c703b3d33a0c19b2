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

package command

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Counter hands out a monotonically increasing, unshared-by-default ordinal.
// A single Counter shared across every Parser in a compilation is how
// cross-file ordinal (and therefore generated-label) uniqueness is
// guaranteed, per the "Global freshness counter" design note: per-file line
// numbers alone are only unique within one file.
type Counter struct{ n int }

// NewCounter returns a Counter starting at 0.
func NewCounter() *Counter { return &Counter{} }

// Next returns the next ordinal and advances the counter.
func (c *Counter) Next() int {
	n := c.n
	c.n++
	return n
}

// ParseError reports a malformed line, positioned by file and line number,
// as required by spec.md §7: "Reported with the source line text and line
// number."
type ParseError struct {
	Pos  Position
	Line string
	Msg  string
}

func (e *ParseError) Error() string {
	return e.Pos.String() + ": " + e.Msg + ": " + e.Line
}

// Parser turns the text of one VM translation unit into a finite, lazy,
// forward-only sequence of Command values, one per source line, in source
// order — the contract of spec.md §4.1. It holds no state beyond the
// current scan position, the owning unit's stem (used to mangle static
// symbols) and a shared ordinal Counter (used to keep comparison and call
// labels fresh across the whole compilation).
type Parser struct {
	stem    string
	counter *Counter
	scan    *bufio.Scanner
	line    int
	file    string
	done    bool
}

// NewParser returns a Parser over r. name is used only to position
// diagnostics (conventionally the source file's path); stem is the
// translation unit's identifier, used to mangle static-segment symbols. If
// counter is nil, a fresh per-Parser Counter is used, which is sufficient
// for single-file translation but not for multi-file compilations — callers
// translating more than one file must share one Counter across all of their
// Parsers.
func NewParser(name, stem string, r io.Reader, counter *Counter) *Parser {
	if counter == nil {
		counter = NewCounter()
	}
	return &Parser{
		stem:    stem,
		counter: counter,
		scan:    bufio.NewScanner(r),
		file:    name,
	}
}

// Next returns the next Command in source order. It returns io.EOF once the
// input is exhausted.
func (p *Parser) Next() (Command, error) {
	if p.done {
		return Command{}, io.EOF
	}
	if !p.scan.Scan() {
		p.done = true
		if err := p.scan.Err(); err != nil {
			return Command{}, errors.Wrapf(err, "%s: read failed", p.file)
		}
		return Command{}, io.EOF
	}
	p.line++
	pos := Position{File: p.file, Line: p.line}
	raw := p.scan.Text()
	return p.parseLine(pos, raw)
}

func (p *Parser) parseLine(pos Position, raw string) (Command, error) {
	line := raw
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Noop(pos), nil
	}

	fail := func(msg string) (Command, error) {
		return Command{}, &ParseError{Pos: pos, Line: raw, Msg: msg}
	}

	switch fields[0] {
	case "add", "sub", "neg", "and", "or", "not", "eq", "lt", "gt":
		if len(fields) != 1 {
			return fail("arithmetic command takes no operands")
		}
		return p.arithmetic(pos, fields[0])

	case "push", "pop":
		if len(fields) != 3 {
			return fail(fields[0] + " requires a segment and an index")
		}
		return p.memoryAccess(pos, raw, fields[0], fields[1], fields[2])

	case "label", "goto", "if-goto":
		if len(fields) != 2 {
			return fail(fields[0] + " requires exactly one label")
		}
		if !validIdent(fields[1]) {
			return fail("invalid identifier " + fields[1])
		}
		op := Label
		switch fields[0] {
		case "goto":
			op = Goto
		case "if-goto":
			op = IfGoto
		}
		return Command{Kind: KindBranching, Pos: pos, Branch: op, Label: fields[1]}, nil

	case "function", "call":
		if len(fields) != 3 {
			return fail(fields[0] + " requires a name and a count")
		}
		if !validIdent(fields[1]) {
			return fail("invalid identifier " + fields[1])
		}
		n, err := parseNat(fields[2])
		if err != nil {
			return fail("invalid count " + fields[2])
		}
		if fields[0] == "function" {
			return Command{Kind: KindFunction, Pos: pos, Func: Decl, Name: fields[1], NLocals: n}, nil
		}
		return Command{Kind: KindFunction, Pos: pos, Func: Call, Name: fields[1], NArgs: n, Ordinal: p.counter.Next()}, nil

	case "return":
		if len(fields) != 1 {
			return fail("return takes no operands")
		}
		return Command{Kind: KindFunction, Pos: pos, Func: Return}, nil

	default:
		return fail("unrecognized command " + fields[0])
	}
}

func (p *Parser) arithmetic(pos Position, word string) (Command, error) {
	var op ArithOp
	switch word {
	case "add":
		op = Add
	case "sub":
		op = Sub
	case "neg":
		op = Neg
	case "and":
		op = And
	case "or":
		op = Or
	case "not":
		op = Not
	case "eq":
		op = Eq
	case "lt":
		op = Lt
	case "gt":
		op = Gt
	}
	cmd := Command{Kind: KindArithmetic, Pos: pos, Arith: op}
	if op.IsComparison() {
		cmd.Ordinal = p.counter.Next()
	}
	return cmd, nil
}

func (p *Parser) memoryAccess(pos Position, raw, word, segWord, idxWord string) (Command, error) {
	seg, ok := segmentIndex[segWord]
	if !ok {
		return Command{}, &ParseError{Pos: pos, Line: raw, Msg: "unrecognized segment " + segWord}
	}
	idx, err := parseNat(idxWord)
	if err != nil {
		return Command{}, &ParseError{Pos: pos, Line: raw, Msg: "invalid index " + idxWord}
	}
	dir := Push
	if word == "pop" {
		dir = Pop
	}
	if seg == Pointer && idx != 0 && idx != 1 {
		return Command{}, &ParseError{Pos: pos, Line: raw, Msg: "pointer index must be 0 or 1"}
	}
	if seg == Constant && dir == Pop {
		return Command{}, &ParseError{Pos: pos, Line: raw, Msg: "constant segment is not writable"}
	}
	return Command{
		Kind:      KindMemoryAccess,
		Pos:       pos,
		Direction: dir,
		Segment:   seg,
		Index:     idx,
		Stem:      p.stem,
	}, nil
}

func parseNat(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.Errorf("%q is not a non-negative integer", s)
	}
	return n, nil
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r), r == '_', r == '.', r == '$', r == ':':
			// always valid
		case unicode.IsDigit(r):
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
