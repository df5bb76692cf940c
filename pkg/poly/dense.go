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
	"errors"
	"fmt"
	"math"
)

// Tolerance is the largest absolute difference between two coefficients for
// them to still be considered equal.
const Tolerance = 0.0001

// ErrShortCoefficients is returned when fewer coefficients are supplied than the
// requested degree needs.
var ErrShortCoefficients = errors.New("insufficient coefficients")

// ErrConstantDerivative is returned when differentiating a polynomial of degree
// zero, since the result would have no coefficient slots.
var ErrConstantDerivative = errors.New("cannot derive polynomial of degree 0")

// ErrDivisionByZero is returned when dividing by a polynomial whose coefficients
// are all zero.
var ErrDivisionByZero = errors.New("division by zero polynomial")

// Polynomial is a dense univariate polynomial c0 + c1*x + ... + cn*x^n with
// single-precision coefficients.  The coefficient at index i is the multiplier
// of x^i, hence there are always exactly degree+1 coefficients.  The leading
// coefficient is permitted to be zero.  Observe that an uninitialised
// Polynomial variable corresponds with the constant zero.
type Polynomial struct {
	coefficients []float32
}

// FromDegree constructs a polynomial of the given degree whose coefficients are
// all zero.
func FromDegree(degree uint) *Polynomial {
	return &Polynomial{make([]float32, degree+1)}
}

// FromCoefficients constructs a polynomial of the given degree by copying the
// first degree+1 coefficients from coeffs.
func FromCoefficients(degree uint, coeffs []float32) (*Polynomial, error) {
	if uint(len(coeffs)) < degree+1 {
		return nil, fmt.Errorf("%w: degree %d requires %d coefficients, found %d", ErrShortCoefficients,
			degree, degree+1, len(coeffs))
	}
	//
	p := FromDegree(degree)
	copy(p.coefficients, coeffs)
	//
	return p, nil
}

// New constructs a polynomial from its coefficients, ordered from the constant
// term upwards.  With no coefficients this gives the constant zero.
func New(coeffs ...float32) *Polynomial {
	if len(coeffs) == 0 {
		return FromDegree(0)
	}
	//
	p := FromDegree(uint(len(coeffs) - 1))
	copy(p.coefficients, coeffs)
	//
	return p
}

// Clone performs a deep copy of this polynomial.
func (p *Polynomial) Clone() *Polynomial {
	return New(p.terms()...)
}

// Set assigns this polynomial an independent copy of another, reusing the
// existing coefficient buffer when the degrees already match.
func (p *Polynomial) Set(other *Polynomial) *Polynomial {
	if p == other {
		return p
	}
	//
	src := other.terms()
	//
	if len(p.coefficients) != len(src) {
		p.coefficients = make([]float32, len(src))
	}
	//
	copy(p.coefficients, src)
	//
	return p
}

// Degree returns the highest exponent with a coefficient slot.
func (p *Polynomial) Degree() uint {
	return uint(len(p.terms()) - 1)
}

// Coefficient returns the multiplier of x^i, which is zero for any i beyond the
// degree.
func (p *Polynomial) Coefficient(i uint) float32 {
	if terms := p.terms(); i < uint(len(terms)) {
		return terms[i]
	}
	//
	return 0
}

// Coefficients returns a copy of the coefficients, constant term first.
func (p *Polynomial) Coefficients() []float32 {
	terms := p.terms()
	res := make([]float32, len(terms))
	copy(res, terms)
	//
	return res
}

// LeadingCoefficient returns the coefficient at the index equal to the degree.
func (p *Polynomial) LeadingCoefficient() float32 {
	terms := p.terms()
	return terms[len(terms)-1]
}

// Sum returns the sum of this polynomial and another.  The result has the
// higher of the two degrees: it starts from a copy of the higher degree operand
// and the other operand is added into its low-order positions.
func (p *Polynomial) Sum(rhs *Polynomial) *Polynomial {
	base, other := p, rhs
	//
	if rhs.Degree() > p.Degree() {
		base, other = rhs, p
	}
	//
	res := base.Clone()
	//
	for i, c := range other.terms() {
		res.coefficients[i] += c
	}
	//
	return res
}

// Minus returns the negation of this polynomial.
func (p *Polynomial) Minus() *Polynomial {
	res := p.Clone()
	//
	for i := range res.coefficients {
		res.coefficients[i] = -res.coefficients[i]
	}
	//
	return res
}

// Subtract returns this polynomial minus another, computed as the sum with the
// negated right-hand side.
func (p *Polynomial) Subtract(rhs *Polynomial) *Polynomial {
	return p.Sum(rhs.Minus())
}

// Multiply returns the product of this polynomial and another, whose degree is
// the sum of both degrees.
func (p *Polynomial) Multiply(rhs *Polynomial) *Polynomial {
	res := FromDegree(p.Degree() + rhs.Degree())
	//
	for i, ith := range p.terms() {
		for j, jth := range rhs.terms() {
			// e.g. 2x^2 * 3x^3 contributes 6 at position 5
			res.coefficients[i+j] += ith * jth
		}
	}
	//
	return res
}

// Derive returns the derivative of this polynomial, whose degree is one less
// than this.  Polynomials of degree zero cannot be derived.
func (p *Polynomial) Derive() (*Polynomial, error) {
	degree := p.Degree()
	//
	if degree == 0 {
		return nil, ErrConstantDerivative
	}
	//
	res := FromDegree(degree - 1)
	//
	for i := range res.coefficients {
		res.coefficients[i] = p.coefficients[i+1] * float32(i+1)
	}
	//
	return res, nil
}

// Antiderivative returns the antiderivative of this polynomial whose constant
// term is zero.
func (p *Polynomial) Antiderivative() *Polynomial {
	terms := p.terms()
	res := FromDegree(uint(len(terms)))
	//
	for i, c := range terms {
		res.coefficients[i+1] = c / float32(i+1)
	}
	//
	return res
}

// Evaluate this polynomial at a given point.  Powers of x are accumulated in a
// running term, rather than being recomputed for each coefficient.
func (p *Polynomial) Evaluate(x float32) float32 {
	var (
		result float32
		term   float32 = 1
	)
	//
	for _, c := range p.terms() {
		result += term * c
		term *= x
	}
	//
	return result
}

// Integrate computes the definite integral of this polynomial between start and
// end, by evaluating its antiderivative at both points.
func (p *Polynomial) Integrate(start float32, end float32) float32 {
	anti := p.Antiderivative()
	return anti.Evaluate(end) - anti.Evaluate(start)
}

// Equals determines whether this polynomial has the same degree as another and
// every pair of coefficients (including the leading ones) differs by no more
// than Tolerance.  A NaN coefficient is never equal to anything.
func (p *Polynomial) Equals(rhs *Polynomial) bool {
	lhsTerms, rhsTerms := p.terms(), rhs.terms()
	//
	if len(lhsTerms) != len(rhsTerms) {
		return false
	}
	//
	for i := range lhsTerms {
		// NaN never lies within tolerance
		if diff := math.Abs(float64(lhsTerms[i] - rhsTerms[i])); !(diff <= Tolerance) {
			return false
		}
	}
	//
	return true
}

// Returns the coefficients of this polynomial, substituting the constant zero
// for an uninitialised polynomial.  The returned slice must not be modified.
func (p *Polynomial) terms() []float32 {
	if p == nil || len(p.coefficients) == 0 {
		return zero
	}
	//
	return p.coefficients
}

var zero = []float32{0}
