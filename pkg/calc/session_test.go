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
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-polynomial/pkg/poly"
	"github.com/stretchr/testify/require"
)

func Test_Session_01(t *testing.T) {
	checkExec(t, NewSession(),
		"p = 2x + 3", "+2.00x^1 +3.00",
		"q = x + 1", "+1.00x^1 +1.00",
		"add p q", "+3.00x^1 +4.00",
		"sub p q", "+1.00x^1 +2.00",
		"mul p q", "+2.00x^2 +5.00x^1 +3.00",
		"neg p", "-2.00x^1 -3.00",
		"p", "+2.00x^1 +3.00")
}

func Test_Session_02(t *testing.T) {
	checkExec(t, NewSession(),
		"p = 3x^2", "+3.00x^2 +0.00x^1 +0.00",
		"derive p", "+6.00x^1 +0.00",
		"eval p 2", "12",
		"integrate x^2 0 3", "9",
		"equals p 3x^2", "true",
		"equals p 3x^2+1", "false")
}

func Test_Session_03(t *testing.T) {
	checkExec(t, NewSession(),
		"div x^2-1 x-1", "quotient: +1.00x^1 +1.00\nremainder: +0.00",
		"write 0.5-1.5x+3x^2", "2 0.5 -1.5 3",
		"read r 1 3 2", "+2.00x^1 +3.00",
		"b = 1", "+1.00",
		"list", "b = +1.00\nr = +2.00x^1 +3.00",
		"# comment", "",
		"", "")
}

func Test_Session_Invalid_01(t *testing.T) {
	s := NewSession()
	//
	checkExecFails(t, s, "frobnicate p", "unknown command")
	checkExecFails(t, s, "add p", "expected 2 operand(s), found 1")
	checkExecFails(t, s, "add p q", "unknown operand \"p\"")
	checkExecFails(t, s, "derive 5", "cannot derive")
	checkExecFails(t, s, "div x 0", "division by zero")
	checkExecFails(t, s, "eval x two", "invalid number")
}

func Test_Session_Invalid_02(t *testing.T) {
	s := NewSession()
	//
	checkExecFails(t, s, "x = 1", "invalid name")
	checkExecFails(t, s, "add = 1", "invalid name")
	checkExecFails(t, s, "p = 3 +", "expected term")
	checkExecFails(t, s, "read p 2 1 2", "malformed")
	checkExecFails(t, s, "read p 0 1 2", "trailing input")
	// Nothing was bound
	require.Empty(t, s.Names())
}

func Test_Session_Bind_01(t *testing.T) {
	s := NewSession()
	p := poly.New(1, 2)
	//
	require.NoError(t, s.Bind("p", p))
	// Bindings are copies
	q, ok := s.Lookup("p")
	require.True(t, ok)
	require.NotSame(t, p, q)
	require.True(t, p.Equals(q))
}

func Test_Session_Run_01(t *testing.T) {
	var (
		out bytes.Buffer
		in  = "p = x^2\nbogus\neval p 3\n"
	)
	//
	require.NoError(t, NewSession().Run(Lines(strings.NewReader(in)), &out))
	require.Equal(t, "+1.00x^2 +0.00x^1 +0.00\nerror: unknown command \"bogus\"\n9\n", out.String())
}

func checkExec(t *testing.T, s *Session, script ...string) {
	t.Helper()
	//
	for i := 0; i < len(script); i += 2 {
		res, err := s.Exec(script[i])
		require.NoError(t, err, script[i])
		require.Equal(t, script[i+1], res, script[i])
	}
}

func checkExecFails(t *testing.T, s *Session, line string, msg string) {
	t.Helper()
	//
	_, err := s.Exec(line)
	require.Error(t, err)
	require.Contains(t, err.Error(), msg)
}
