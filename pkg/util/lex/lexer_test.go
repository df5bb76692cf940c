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
package lex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Lexer_00(t *testing.T) {
	checkLexer(t, "", 0, Token{END_OF, NewSpan(0, 0)})
}

func Test_Lexer_01(t *testing.T) {
	checkLexer(t, "(", 0,
		Token{LBRACE, NewSpan(0, 1)},
		Token{END_OF, NewSpan(1, 1)})
}

func Test_Lexer_02(t *testing.T) {
	checkLexer(t, "( )", 0,
		Token{LBRACE, NewSpan(0, 1)},
		Token{WSPACE, NewSpan(1, 2)},
		Token{RBRACE, NewSpan(2, 3)},
		Token{END_OF, NewSpan(3, 3)})
}

func Test_Lexer_03(t *testing.T) {
	// No rule matches, hence nothing is produced.
	checkLexer(t, "x", 1)
}

func Test_Lexer_04(t *testing.T) {
	checkLexer(t, "123", 0,
		Token{NUMBER, NewSpan(0, 3)},
		Token{END_OF, NewSpan(3, 3)})
}

func Test_Lexer_05(t *testing.T) {
	checkLexer(t, "(90) x", 1,
		Token{LBRACE, NewSpan(0, 1)},
		Token{NUMBER, NewSpan(1, 3)},
		Token{RBRACE, NewSpan(3, 4)},
		Token{WSPACE, NewSpan(4, 5)})
}

func Test_Scanner_01(t *testing.T) {
	rule := Sequence(Unit('a'), Unit('b'), Unit('c'))
	//
	require.Equal(t, uint(3), rule([]rune("abcd")))
	require.Equal(t, uint(0), rule([]rune("acc")))
	require.Equal(t, uint(0), rule([]rune("ab")))
}

func Test_Scanner_02(t *testing.T) {
	digits := Many(Within('0', '9'))
	rule := Or(Sequence(digits, Unit('.'), digits), digits)
	//
	require.Equal(t, uint(4), rule([]rune("12.5x")))
	require.Equal(t, uint(2), rule([]rune("12.")))
	require.Equal(t, uint(0), rule([]rune(".5")))
}

func Test_Scanner_03(t *testing.T) {
	// Digits which do not start with zero
	rule := And(Many(Within('0', '9')), Within('1', '9'))
	//
	require.Equal(t, uint(3), rule([]rune("120x")))
	require.Equal(t, uint(0), rule([]rune("012")))
	require.Equal(t, uint(0), rule([]rune("x")))
}

func Test_Span_01(t *testing.T) {
	span := NewSpan(2, 5)
	//
	require.Equal(t, 2, span.Start())
	require.Equal(t, 5, span.End())
	require.Equal(t, 3, span.Length())
	require.Panics(t, func() { NewSpan(5, 2) })
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const LBRACE uint = 2
const RBRACE uint = 3
const NUMBER uint = 4

var rules = []LexRule[rune]{
	Rule(Unit('('), LBRACE),
	Rule(Unit(')'), RBRACE),
	Rule(Many(Or(Unit(' '), Unit('\t'))), WSPACE),
	Rule(Many(Within('0', '9')), NUMBER),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	lexer := NewLexer(items, rules...)
	tokens := lexer.Collect()
	//
	require.Equal(t, expected, tokens)
	require.Equal(t, remainder, lexer.Remaining())
}
