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
package termio

import "fmt"

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_BLUE represents blue
const TERM_BLUE = uint(4)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// AnsiEscape represents an ANSI escape code used for formatting text in a
// terminal.  Escapes are built up by chaining attributes, for example
// BoldAnsiEscape().FgColour(TERM_GREEN).Build().
type AnsiEscape struct {
	codes []uint
}

// ResetAnsiEscape constructs an escape which clears all attributes.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{0}}
}

// BoldAnsiEscape constructs an escape for bold text.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{1}}
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return AnsiEscape{append(p.codes[:len(p.codes):len(p.codes)], 30+col)}
}

// Build constructs the final escape sequence.
func (p AnsiEscape) Build() string {
	var escape = "\033["
	//
	for i, code := range p.codes {
		if i != 0 {
			escape += ";"
		}
		//
		escape += fmt.Sprintf("%d", code)
	}
	//
	return escape + "m"
}

// Colour wraps some text in a foreground colour, followed by a reset.
func Colour(col uint, text string) string {
	return AnsiEscape{}.FgColour(col).Build() + text + ResetAnsiEscape().Build()
}
