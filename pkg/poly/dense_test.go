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
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_Dense_Construct_01(t *testing.T) {
	p := FromDegree(3)
	//
	require.Equal(t, uint(3), p.Degree())
	checkCoefficients(t, p, 0, 0, 0, 0)
}

func Test_Dense_Construct_02(t *testing.T) {
	coeffs := []float32{3, 2, 1, 9}
	p, err := FromCoefficients(2, coeffs)
	//
	require.NoError(t, err)
	checkCoefficients(t, p, 3, 2, 1)
	// Source is copied, not shared
	coeffs[0] = 42
	checkCoefficients(t, p, 3, 2, 1)
}

func Test_Dense_Construct_03(t *testing.T) {
	_, err := FromCoefficients(3, []float32{1, 2})
	//
	require.ErrorIs(t, err, ErrShortCoefficients)
}

func Test_Dense_Construct_04(t *testing.T) {
	var p Polynomial
	// Uninitialised polynomial behaves as zero constant
	require.Equal(t, uint(0), p.Degree())
	require.Equal(t, float32(0), p.Evaluate(5))
	require.True(t, p.Equals(New()))
	require.Equal(t, "+0.00", p.String())
}

func Test_Dense_Clone_01(t *testing.T) {
	p := New(1, 2, 3)
	q := p.Clone()
	q.coefficients[0] = 99
	//
	checkCoefficients(t, p, 1, 2, 3)
	checkCoefficients(t, q, 99, 2, 3)
}

func Test_Dense_Set_01(t *testing.T) {
	p := New(1, 2, 3)
	q := New(4)
	q.Set(p)
	// Assignment gives an independent copy
	p.coefficients[2] = 7
	//
	checkCoefficients(t, q, 1, 2, 3)
	// Self assignment is a no-op
	require.Same(t, q, q.Set(q))
	checkCoefficients(t, q, 1, 2, 3)
}

func Test_Dense_Set_02(t *testing.T) {
	p := New(1, 2)
	q := New(5, 6)
	buf := q.coefficients
	q.Set(p)
	// Same degree reuses existing storage
	require.Same(t, &buf[0], &q.coefficients[0])
	require.NotSame(t, &p.coefficients[0], &q.coefficients[0])
	checkCoefficients(t, q, 1, 2)
}

func Test_Dense_Accessors_01(t *testing.T) {
	p := New(1, 2, 3)
	//
	require.Equal(t, float32(3), p.LeadingCoefficient())
	require.Equal(t, float32(2), p.Coefficient(1))
	require.Equal(t, float32(0), p.Coefficient(10))
	// Coefficients are copied out
	cs := p.Coefficients()
	cs[0] = 100
	checkCoefficients(t, p, 1, 2, 3)
}

func Test_Dense_Sum_01(t *testing.T) {
	// (2x + 3) + (x + 1) = 3x + 4
	p := New(3, 2)
	q := New(1, 1)
	//
	checkCoefficients(t, p.Sum(q), 4, 3)
}

func Test_Dense_Sum_02(t *testing.T) {
	// Coefficients beyond the shorter operand are carried unchanged.
	p := New(1, 1)
	q := New(1, 2, 3, 4)
	//
	checkCoefficients(t, p.Sum(q), 2, 3, 3, 4)
	checkCoefficients(t, q.Sum(p), 2, 3, 3, 4)
	// Operands unchanged
	checkCoefficients(t, p, 1, 1)
	checkCoefficients(t, q, 1, 2, 3, 4)
}

func Test_Dense_Minus_01(t *testing.T) {
	checkCoefficients(t, New(1, -2, 0.5).Minus(), -1, 2, -0.5)
}

func Test_Dense_Subtract_01(t *testing.T) {
	p := New(5, 4, 3)
	q := New(1, 1)
	//
	checkCoefficients(t, p.Subtract(q), 4, 3, 3)
	checkCoefficients(t, q.Subtract(p), -4, -3, -3)
}

func Test_Dense_Multiply_01(t *testing.T) {
	// x^2 * x = x^3
	checkCoefficients(t, New(0, 0, 1).Multiply(New(0, 1)), 0, 0, 0, 1)
}

func Test_Dense_Multiply_02(t *testing.T) {
	// (x + 1)(x - 1) = x^2 - 1
	checkCoefficients(t, New(1, 1).Multiply(New(-1, 1)), -1, 0, 1)
}

func Test_Dense_Derive_01(t *testing.T) {
	// d/dx 3x^2 = 6x
	d, err := New(0, 0, 3).Derive()
	//
	require.NoError(t, err)
	checkCoefficients(t, d, 0, 6)
}

func Test_Dense_Derive_02(t *testing.T) {
	d, err := New(5, 4, 3, 2).Derive()
	//
	require.NoError(t, err)
	checkCoefficients(t, d, 4, 6, 6)
}

func Test_Dense_Derive_03(t *testing.T) {
	_, err := New(7).Derive()
	//
	require.ErrorIs(t, err, ErrConstantDerivative)
}

func Test_Dense_Evaluate_01(t *testing.T) {
	p := New(1, -2, 3)
	//
	require.Equal(t, float32(1), p.Evaluate(0))
	require.Equal(t, float32(2), p.Evaluate(1))
	require.Equal(t, float32(9), p.Evaluate(2))
	require.Equal(t, float32(6), p.Evaluate(-1))
}

func Test_Dense_Integrate_01(t *testing.T) {
	// Integral of x^2 over [0,1] is 1/3
	require.InDelta(t, 0.3333, New(0, 0, 1).Integrate(0, 1), 1e-4)
}

func Test_Dense_Integrate_02(t *testing.T) {
	// Integral of a constant over an interval
	require.InDelta(t, 10.0, New(2).Integrate(-2, 3), 1e-6)
	require.InDelta(t, -10.0, New(2).Integrate(3, -2), 1e-6)
}

func Test_Dense_Antiderivative_01(t *testing.T) {
	checkCoefficients(t, New(1, 2, 3).Antiderivative(), 0, 1, 1, 1)
}

func Test_Dense_Equals_01(t *testing.T) {
	require.True(t, New(1, 2, 3).Equals(New(1, 2, 3.00005)))
	require.False(t, New(1, 2, 3).Equals(New(1, 2.001, 3)))
	require.False(t, New(1, 2).Equals(New(1, 2, 0)))
}

func Test_Dense_Equals_02(t *testing.T) {
	// Leading coefficients are compared too.
	require.False(t, New(1, 2, 3).Equals(New(1, 2, 99)))
}

func Test_Dense_Equals_03(t *testing.T) {
	nan := float32(math.NaN())
	//
	require.False(t, New(nan).Equals(New(0)))
	require.False(t, New(0).Equals(New(nan)))
	require.False(t, New(1, nan).Equals(New(1, nan)))
}

// ==================================================================
// Properties
// ==================================================================

func Test_Dense_Commutative_01(t *testing.T) {
	forEachPair(t, func(p, q *Polynomial) {
		require.True(t, p.Sum(q).Equals(q.Sum(p)))
		require.True(t, p.Multiply(q).Equals(q.Multiply(p)))
	})
}

func Test_Dense_Inverse_01(t *testing.T) {
	forEachPair(t, func(p, _ *Polynomial) {
		require.True(t, p.Sum(p.Minus()).Equals(FromDegree(p.Degree())))
	})
}

func Test_Dense_Associative_01(t *testing.T) {
	forEachPair(t, func(p, q *Polynomial) {
		r := randomPolynomial(rand.New(rand.NewSource(int64(p.Degree()))), 4)
		require.True(t, p.Sum(q).Sum(r).Equals(p.Sum(q.Sum(r))))
	})
}

func Test_Dense_MultiplyDegree_01(t *testing.T) {
	forEachPair(t, func(p, q *Polynomial) {
		require.Equal(t, p.Degree()+q.Degree(), p.Multiply(q).Degree())
	})
}

func Test_Dense_FundamentalTheorem_01(t *testing.T) {
	forEachPair(t, func(p, _ *Polynomial) {
		if p.Degree() == 0 {
			return
		}
		//
		d, err := p.Derive()
		require.NoError(t, err)
		//
		expected := p.Evaluate(0.75) - p.Evaluate(-0.5)
		require.InDelta(t, expected, d.Integrate(-0.5, 0.75), 1e-3)
	})
}

// ==================================================================
// Framework
// ==================================================================

func checkCoefficients(t *testing.T, p *Polynomial, expected ...float32) {
	t.Helper()
	//
	if diff := cmp.Diff(expected, p.Coefficients()); diff != "" {
		t.Errorf("unexpected coefficients (-expected +actual):\n%s", diff)
	}
	//
	require.Equal(t, uint(len(expected)-1), p.Degree())
}

// Apply a check to pairs of randomly generated polynomials with small
// coefficients.
func forEachPair(t *testing.T, check func(p, q *Polynomial)) {
	rng := rand.New(rand.NewSource(1))
	//
	for i := 0; i < 100; i++ {
		check(randomPolynomial(rng, 6), randomPolynomial(rng, 6))
	}
}

func randomPolynomial(rng *rand.Rand, maxDegree int) *Polynomial {
	coeffs := make([]float32, 1+rng.Intn(maxDegree+1))
	//
	for i := range coeffs {
		// Quarter steps in [-4,4] are exact in float32
		coeffs[i] = float32(math.Round(rng.Float64()*32-16) / 4)
	}
	//
	return New(coeffs...)
}
