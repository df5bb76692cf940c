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

// Divide returns the quotient of this polynomial divided by another, discarding
// the remainder.
func (p *Polynomial) Divide(rhs *Polynomial) (*Polynomial, error) {
	q, _, err := p.DivMod(rhs)
	//
	return q, err
}

// DivMod performs polynomial long division of this polynomial (the dividend) by
// another (the divisor), producing a quotient q and remainder r such that
// dividend = q*divisor + r.  Leading coefficients of the divisor which are
// exactly zero are ignored, such that its effective degree m is the highest
// exponent with a non-zero coefficient.  The quotient has degree max(0, n-m)
// and the remainder has degree max(0, m-1), where n is the degree of the
// dividend.  An error is returned if every coefficient of the divisor is zero.
func (p *Polynomial) DivMod(rhs *Polynomial) (quotient *Polynomial, remainder *Polynomial, err error) {
	var (
		dividend = p.terms()
		divisor  = rhs.terms()
		n        = len(dividend) - 1
		m        = effectiveDegree(divisor)
	)
	//
	if m < 0 {
		return nil, nil, ErrDivisionByZero
	}
	// Remainder always has one slot less than the effective divisor.
	remainder = FromDegree(uint(max(0, m-1)))
	//
	if n < m {
		// Divisor too large, hence dividend is the remainder.
		copy(remainder.coefficients, dividend)
		return FromDegree(0), remainder, nil
	}
	//
	var (
		rem  = New(dividend...).coefficients
		lead = divisor[m]
	)
	//
	quotient = FromDegree(uint(n - m))
	// Eliminate the highest remaining term at each step
	for k := n - m; k >= 0; k-- {
		coeff := rem[k+m] / lead
		quotient.coefficients[k] = coeff
		//
		for j := 0; j < m; j++ {
			rem[k+j] -= coeff * divisor[j]
		}
		// Cancelled by construction
		rem[k+m] = 0
	}
	//
	copy(remainder.coefficients, rem[:m])
	//
	return quotient, remainder, nil
}

// Determine the highest index holding a non-zero coefficient, or -1 if there is
// none.
func effectiveDegree(coeffs []float32) int {
	for i := len(coeffs) - 1; i >= 0; i-- {
		if coeffs[i] != 0 {
			return i
		}
	}
	//
	return -1
}
