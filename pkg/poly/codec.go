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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode"
)

// ErrMalformed is returned when reading a polynomial from a stream which does
// not hold a well-formed serialisation.
var ErrMalformed = errors.New("malformed polynomial")

// String renders this polynomial for display, from the highest exponent down
// to the constant term.  For example, "+3.00x^2 -1.50x^1 +0.50".  The display
// form rounds coefficients and, hence, is not intended to be read back.
func (p *Polynomial) String() string {
	var (
		buf   bytes.Buffer
		terms = p.terms()
	)
	//
	for i := len(terms) - 1; i > 0; i-- {
		fmt.Fprintf(&buf, "%+.2fx^%d ", terms[i], i)
	}
	//
	fmt.Fprintf(&buf, "%+.2f", terms[0])
	//
	return buf.String()
}

// Write serialises this polynomial onto a given writer as its degree followed
// by its coefficients (constant term first), separated by spaces and terminated
// by a newline.  For example, "2 0.5 -1.5 3".
func (p *Polynomial) Write(w io.Writer) error {
	var buf bytes.Buffer
	//
	terms := p.terms()
	buf.WriteString(strconv.Itoa(len(terms) - 1))
	//
	for _, c := range terms {
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatFloat(float64(c), 'g', -1, 32))
	}
	//
	buf.WriteByte('\n')
	//
	_, err := w.Write(buf.Bytes())
	//
	return err
}

// Read deserialises a polynomial from a given reader, in the format produced by
// Write, and assigns it to this polynomial.  The receiver is only updated once
// every coefficient has been read successfully, otherwise it is left untouched.
// When the reader is already exhausted io.EOF is returned; any other failure
// wraps ErrMalformed.  If the reader implements io.RuneScanner (as bufio.Reader
// and strings.Reader do), nothing is consumed beyond the last coefficient, such
// that several polynomials can be read one after the other from the same
// reader.
func (p *Polynomial) Read(r io.Reader) error {
	in, ok := r.(io.RuneScanner)
	if !ok {
		in = bufio.NewReader(r)
	}
	// Read degree
	token, err := nextToken(in)
	if err != nil {
		return err
	}
	//
	degree, err := strconv.ParseUint(token, 10, 0)
	if err != nil || degree == math.MaxUint64 {
		return fmt.Errorf("%w: invalid degree %q", ErrMalformed, token)
	}
	// Read coefficients into scratch space, growing as they arrive rather than
	// trusting the degree for an allocation.
	coeffs := make([]float32, 0, min(degree+1, 1024))
	//
	for i := uint64(0); i <= degree; i++ {
		if token, err = nextToken(in); errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: expected %d coefficients, found %d: %w", ErrMalformed, degree+1, i,
				io.ErrUnexpectedEOF)
		} else if err != nil {
			return err
		}
		//
		c, err := strconv.ParseFloat(token, 32)
		if err != nil {
			return fmt.Errorf("%w: invalid coefficient %q", ErrMalformed, token)
		}
		//
		coeffs = append(coeffs, float32(c))
	}
	// Commit
	if len(p.coefficients) == len(coeffs) {
		copy(p.coefficients, coeffs)
	} else {
		p.coefficients = coeffs
	}
	//
	return nil
}

// Read the next whitespace delimited token, returning io.EOF if the stream ends
// before any token is found.  The whitespace rune which terminates a token is
// not consumed.
func nextToken(in io.RuneScanner) (string, error) {
	var token []rune
	//
	for {
		r, _, err := in.ReadRune()
		//
		switch {
		case errors.Is(err, io.EOF) && len(token) > 0:
			return string(token), nil
		case err != nil:
			return "", err
		case unicode.IsSpace(r) && len(token) > 0:
			return string(token), in.UnreadRune()
		case !unicode.IsSpace(r):
			token = append(token, r)
		}
	}
}
