// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package calc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/consensys/go-polynomial/pkg/poly"
)

// ErrUnknownCommand is returned when a line does not start with a known
// command, and is not a binding or a name.
var ErrUnknownCommand = errors.New("unknown command")

// Session maintains a set of named polynomials against which lines of input are
// executed.  For example:
//
//	p = 3x^2 + 1
//	derive p
//	eval p 2
type Session struct {
	bindings map[string]*poly.Polynomial
}

// NewSession constructs an empty session.
func NewSession() *Session {
	return &Session{make(map[string]*poly.Polynomial)}
}

// Bind a given name to a copy of the given polynomial.
func (s *Session) Bind(name string, p *poly.Polynomial) error {
	if !isIdentifier(name) {
		return fmt.Errorf("invalid name %q", name)
	}
	//
	s.bindings[name] = p.Clone()
	//
	return nil
}

// Lookup the polynomial bound to a given name, if any.
func (s *Session) Lookup(name string) (*poly.Polynomial, bool) {
	p, ok := s.bindings[name]
	return p, ok
}

// Names returns the bound names in sorted order.
func (s *Session) Names() []string {
	return slices.Sorted(maps.Keys(s.bindings))
}

// Exec executes a single line of input, returning the text to be shown (if
// any).  The session is unchanged when an error is returned.
func (s *Session) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	//
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil
	} else if lhs, rhs, ok := strings.Cut(line, "="); ok {
		return s.assign(strings.TrimSpace(lhs), rhs)
	}
	//
	fields := strings.Fields(line)
	args := fields[1:]
	//
	switch fields[0] {
	case "add":
		return s.binary(args, (*poly.Polynomial).Sum)
	case "sub":
		return s.binary(args, (*poly.Polynomial).Subtract)
	case "mul":
		return s.binary(args, (*poly.Polynomial).Multiply)
	case "div":
		return s.divide(args)
	case "neg":
		return s.unary(args, func(p *poly.Polynomial) (*poly.Polynomial, error) {
			return p.Minus(), nil
		})
	case "derive":
		return s.unary(args, (*poly.Polynomial).Derive)
	case "eval":
		return s.evaluate(args)
	case "integrate":
		return s.integrate(args)
	case "equals":
		return s.equals(args)
	case "write":
		return s.write(args)
	case "read":
		return s.read(args)
	case "list":
		return s.list(args)
	}
	//
	if p, ok := s.bindings[line]; ok {
		return p.String(), nil
	}
	//
	return "", fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
}

// Run executes every line from a given source until it is exhausted, writing
// results to the given output.  Failing lines are reported on the output but
// do not stop execution.
func (s *Session) Run(in LineReader, out io.Writer) error {
	for {
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		//
		if res, err := s.Exec(line); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		} else if res != "" {
			fmt.Fprintln(out, res)
		}
	}
}

func (s *Session) assign(name string, text string) (string, error) {
	p, err := poly.Parse(text)
	if err != nil {
		return "", err
	} else if err = s.Bind(name, p); err != nil {
		return "", err
	}
	//
	return p.String(), nil
}

func (s *Session) unary(args []string, op func(*poly.Polynomial) (*poly.Polynomial, error)) (string, error) {
	operands, err := s.operands(args, 1)
	if err != nil {
		return "", err
	}
	//
	res, err := op(operands[0])
	if err != nil {
		return "", err
	}
	//
	return res.String(), nil
}

func (s *Session) binary(args []string, op func(*poly.Polynomial, *poly.Polynomial) *poly.Polynomial) (string,
	error) {
	operands, err := s.operands(args, 2)
	if err != nil {
		return "", err
	}
	//
	return op(operands[0], operands[1]).String(), nil
}

func (s *Session) divide(args []string) (string, error) {
	operands, err := s.operands(args, 2)
	if err != nil {
		return "", err
	}
	//
	q, r, err := operands[0].DivMod(operands[1])
	if err != nil {
		return "", err
	}
	//
	return fmt.Sprintf("quotient: %s\nremainder: %s", q, r), nil
}

func (s *Session) evaluate(args []string) (string, error) {
	if len(args) != 2 {
		return "", arityError(2, args)
	}
	//
	operands, err := s.operands(args[:1], 1)
	if err != nil {
		return "", err
	}
	//
	x, err := parseFloat(args[1])
	if err != nil {
		return "", err
	}
	//
	return formatFloat(operands[0].Evaluate(x)), nil
}

func (s *Session) integrate(args []string) (string, error) {
	if len(args) != 3 {
		return "", arityError(3, args)
	}
	//
	operands, err := s.operands(args[:1], 1)
	if err != nil {
		return "", err
	}
	//
	start, err := parseFloat(args[1])
	if err != nil {
		return "", err
	}
	//
	end, err := parseFloat(args[2])
	if err != nil {
		return "", err
	}
	//
	return formatFloat(operands[0].Integrate(start, end)), nil
}

func (s *Session) equals(args []string) (string, error) {
	operands, err := s.operands(args, 2)
	if err != nil {
		return "", err
	}
	//
	return strconv.FormatBool(operands[0].Equals(operands[1])), nil
}

func (s *Session) write(args []string) (string, error) {
	var buf bytes.Buffer
	//
	operands, err := s.operands(args, 1)
	if err != nil {
		return "", err
	} else if err = operands[0].Write(&buf); err != nil {
		return "", err
	}
	//
	return strings.TrimSpace(buf.String()), nil
}

func (s *Session) read(args []string) (string, error) {
	var p poly.Polynomial
	//
	if len(args) < 2 {
		return "", errors.New("expected name and serialised polynomial")
	}
	//
	in := strings.NewReader(strings.Join(args[1:], " "))
	//
	if err := p.Read(in); err != nil {
		return "", err
	} else if in.Len() != 0 {
		return "", fmt.Errorf("%w: trailing input", poly.ErrMalformed)
	} else if err = s.Bind(args[0], &p); err != nil {
		return "", err
	}
	//
	return p.String(), nil
}

func (s *Session) list(args []string) (string, error) {
	var lines []string
	//
	if len(args) != 0 {
		return "", arityError(0, args)
	}
	//
	for _, name := range s.Names() {
		lines = append(lines, fmt.Sprintf("%s = %s", name, s.bindings[name]))
	}
	//
	return strings.Join(lines, "\n"), nil
}

// Resolve operands which are either bound names or inline polynomials.
func (s *Session) operands(args []string, n int) ([]*poly.Polynomial, error) {
	if len(args) != n {
		return nil, arityError(n, args)
	}
	//
	operands := make([]*poly.Polynomial, n)
	//
	for i, arg := range args {
		if p, ok := s.bindings[arg]; ok {
			operands[i] = p
		} else if p, err := poly.Parse(arg); err == nil {
			operands[i] = p
		} else {
			return nil, fmt.Errorf("unknown operand %q: %w", arg, err)
		}
	}
	//
	return operands, nil
}

func arityError(expected int, args []string) error {
	return fmt.Errorf("expected %d operand(s), found %d", expected, len(args))
}

func parseFloat(text string) (float32, error) {
	val, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", text)
	}
	//
	return float32(val), nil
}

func formatFloat(val float32) string {
	return strconv.FormatFloat(float64(val), 'g', -1, 32)
}

// Names start with a letter and continue with letters, digits or underscores.
// The variable name "x" is reserved.
func isIdentifier(name string) bool {
	if name == "" || name == "x" {
		return false
	}
	//
	for i, r := range name {
		switch {
		case unicode.IsLetter(r), r == '_':
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	//
	return !isCommand(name)
}

func isCommand(name string) bool {
	return slices.Contains(commands, name)
}

var commands = []string{"add", "sub", "mul", "div", "neg", "derive", "eval", "integrate", "equals", "write", "read",
	"list"}

// LineReader is a source of lines, such as a terminal or a file.
type LineReader interface {
	// ReadLine returns the next line (without its terminator), or io.EOF when
	// there are no more.
	ReadLine() (string, error)
}

// Lines constructs a line reader over an arbitrary reader.
func Lines(r io.Reader) LineReader {
	return &scannerLines{bufio.NewScanner(r)}
}

type scannerLines struct {
	scanner *bufio.Scanner
}

func (p *scannerLines) ReadLine() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	} else if err := p.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}
