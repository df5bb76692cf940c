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
package poly

import (
	"fmt"
	"strconv"

	"github.com/consensys/go-polynomial/pkg/util/lex"
)

// SyntaxError is returned when parsing a polynomial from text fails.  It
// identifies the offending range of characters.
type SyntaxError struct {
	span lex.Span
	msg  string
}

// Span returns the range of characters (as rune offsets) in the original text
// to which this error applies.
func (p *SyntaxError) Span() lex.Span {
	return p.span
}

// Message returns the message associated with this error.
func (p *SyntaxError) Message() string {
	return p.msg
}

func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%s (at offset %d)", p.msg, p.span.Start())
}

const (
	tokEOF uint = iota
	tokSpace
	tokNumber
	tokVariable
	tokCaret
	tokPlus
	tokMinus
	tokStar
)

var (
	digits   = lex.Many(lex.Within('0', '9'))
	mantissa = lex.Or(
		lex.Sequence(digits, lex.Unit('.'), digits),
		lex.Sequence(digits, lex.Unit('.')),
		lex.Sequence(lex.Unit('.'), digits),
		digits)
	exponent = lex.Sequence(lex.Or(lex.Unit('e'), lex.Unit('E')), lex.Or(
		lex.Sequence(lex.Or(lex.Unit('+'), lex.Unit('-')), digits),
		digits))
	number = lex.Or(lex.Sequence(mantissa, exponent), mantissa)
)

var rules = []lex.LexRule[rune]{
	lex.Rule(lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n'), lex.Unit('\r'))), tokSpace),
	lex.Rule(number, tokNumber),
	lex.Rule(lex.Unit('x'), tokVariable),
	lex.Rule(lex.Unit('^'), tokCaret),
	lex.Rule(lex.Unit('+'), tokPlus),
	lex.Rule(lex.Unit('-'), tokMinus),
	lex.Rule(lex.Unit('*'), tokStar),
	lex.Rule(lex.Eof[rune](), tokEOF),
}

// Parse a polynomial in the variable x from a human-readable string, such as
// "3x^2 - 1.5x + 0.5" or the display form "+3.00x^2 -1.50x^1 +0.50".  Like
// terms are summed, and the degree of the result is the highest exponent
// mentioned (even if its coefficient is zero).
func Parse(text string) (*Polynomial, error) {
	var (
		items  = []rune(text)
		lexer  = lex.NewLexer(items, rules...)
		tokens []lex.Token
	)
	// Tokenise, dropping whitespace
	for lexer.HasNext() {
		if tok := lexer.Next(); tok.Kind != tokSpace {
			tokens = append(tokens, tok)
		}
	}
	//
	if lexer.Remaining() > 0 {
		start := int(lexer.Index())
		return nil, &SyntaxError{lex.NewSpan(start, start+1), "unknown character"}
	}
	//
	p := &parser{items, tokens, 0}
	//
	return p.parsePolynomial()
}

type parser struct {
	text   []rune
	tokens []lex.Token
	index  int
}

func (p *parser) parsePolynomial() (*Polynomial, error) {
	var coeffs []float32
	//
	for first := true; p.lookahead().Kind != tokEOF; first = false {
		sign := float32(1)
		// Determine sign of the next term, which is optional only for the first.
		switch tok := p.lookahead(); {
		case tok.Kind == tokMinus:
			sign = -1
			p.index++
		case tok.Kind == tokPlus:
			p.index++
		case !first:
			return nil, p.syntaxError(tok, "expected '+' or '-'")
		}
		//
		coeff, exp, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		//
		for uint(len(coeffs)) <= exp {
			coeffs = append(coeffs, 0)
		}
		//
		coeffs[exp] += sign * coeff
	}
	//
	if len(coeffs) == 0 {
		return nil, p.syntaxError(p.lookahead(), "expected term")
	}
	//
	return New(coeffs...), nil
}

// Parse a single term, such as "3", "x", "2.5x^3" or "2*x^3".
func (p *parser) parseTerm() (coeff float32, exp uint, err error) {
	var hasCoeff bool
	//
	coeff = 1
	//
	if tok := p.lookahead(); tok.Kind == tokNumber {
		if coeff, err = p.parseFloat(tok); err != nil {
			return 0, 0, err
		}
		//
		hasCoeff = true
		p.index++
		// Explicit multiplication must be followed by the variable.
		if p.lookahead().Kind == tokStar {
			p.index++
			//
			if tok = p.lookahead(); tok.Kind != tokVariable {
				return 0, 0, p.syntaxError(tok, "expected variable")
			}
		}
	}
	//
	if tok := p.lookahead(); tok.Kind == tokVariable {
		p.index++
		exp = 1
		//
		if p.lookahead().Kind == tokCaret {
			p.index++
			//
			if exp, err = p.parseExponent(p.lookahead()); err != nil {
				return 0, 0, err
			}
			//
			p.index++
		}
	} else if !hasCoeff {
		return 0, 0, p.syntaxError(tok, "expected term")
	}
	//
	return coeff, exp, nil
}

func (p *parser) parseFloat(tok lex.Token) (float32, error) {
	val, err := strconv.ParseFloat(p.string(tok), 32)
	if err != nil {
		return 0, p.syntaxError(tok, "invalid coefficient")
	}
	//
	return float32(val), nil
}

func (p *parser) parseExponent(tok lex.Token) (uint, error) {
	if tok.Kind != tokNumber {
		return 0, p.syntaxError(tok, "expected exponent")
	}
	//
	val, err := strconv.ParseUint(p.string(tok), 10, 16)
	if err != nil {
		return 0, p.syntaxError(tok, "invalid exponent")
	}
	//
	return uint(val), nil
}

// Get the next token without consuming it.  The final token is always EOF.
func (p *parser) lookahead() lex.Token {
	return p.tokens[min(p.index, len(p.tokens)-1)]
}

func (p *parser) string(tok lex.Token) string {
	return string(p.text[tok.Span.Start():tok.Span.End()])
}

func (p *parser) syntaxError(tok lex.Token, msg string) *SyntaxError {
	return &SyntaxError{tok.Span, msg}
}
