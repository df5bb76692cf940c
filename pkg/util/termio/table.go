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
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter is useful for printing tables of right-aligned columns to the
// terminal.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with a given number of columns and
// no rows.
func NewTablePrinter(columns uint) *TablePrinter {
	return &TablePrinter{make([]uint, columns), nil, nil, true}
}

// AddRow appends a row to this table, whose number of values must match the
// number of columns.
func (p *TablePrinter) AddRow(vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], uint(utf8.RuneCountInString(val)))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]string, len(vals)))
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// SetEscape sets the escape to use when printing the contents of a given cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful when output is not a terminal as,
// otherwise, you get a lot of visible escape characters being printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) error {
	var buf strings.Builder
	//
	for i, row := range p.rows {
		for j, col := range row {
			escape := p.escapes[i][j]
			padding := int(p.widths[j]) - utf8.RuneCountInString(col)
			//
			if j != 0 {
				buf.WriteString(" | ")
			}
			//
			buf.WriteString(strings.Repeat(" ", padding))
			//
			if p.enableEscapes && escape != "" {
				buf.WriteString(escape)
				buf.WriteString(col)
				buf.WriteString(ResetAnsiEscape().Build())
			} else {
				buf.WriteString(col)
			}
		}
		//
		buf.WriteString("\n")
	}
	//
	_, err := fmt.Fprint(out, buf.String())
	//
	return err
}
