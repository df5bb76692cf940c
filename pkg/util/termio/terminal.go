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

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal checks whether a given file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// Prompt provides a line editor over the controlling terminal, showing a given
// prompt before each line.  The terminal is placed in raw mode until the prompt
// is closed.
type Prompt struct {
	// file descriptor for input.
	fd int
	// Underlying terminal
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
}

// NewPrompt constructs a new prompt over stdin / stdout.  This fails if stdin
// is not a terminal.
func NewPrompt(prompt string) (*Prompt, error) {
	fd := int(os.Stdin.Fd())
	//
	if !term.IsTerminal(fd) {
		return nil, errors.New("invalid terminal")
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	//
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	return &Prompt{fd, term.NewTerminal(screen, prompt), state}, nil
}

// ReadLine reads the next line entered by the user, returning io.EOF when the
// user ends input (e.g. with Ctrl-D).
func (p *Prompt) ReadLine() (string, error) {
	return p.xterm.ReadLine()
}

// Write output to the terminal, translating line endings for raw mode.
func (p *Prompt) Write(data []byte) (int, error) {
	return p.xterm.Write(data)
}

// Close restores the terminal to its original state.
func (p *Prompt) Close() error {
	return term.Restore(p.fd, p.state)
}
