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
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-polynomial/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetFloat gets an expected floating point flag, or exits if an error arises.
func GetFloat(cmd *cobra.Command, flag string) float32 {
	r, err := cmd.Flags().GetFloat32(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Parse each argument as a polynomial, reporting syntax errors and exiting if
// any is malformed.
func parsePolynomials(args ...string) []*poly.Polynomial {
	var (
		polys  = make([]*poly.Polynomial, len(args))
		failed bool
	)
	//
	for i, arg := range args {
		p, err := poly.Parse(arg)
		//
		var serr *poly.SyntaxError
		//
		if errors.As(err, &serr) {
			printSyntaxError(os.Stdout, arg, serr)
			//
			failed = true
		} else if err != nil {
			fmt.Println(err)
			//
			failed = true
		} else {
			log.Debugf("parsed polynomial of degree %d from %q", p.Degree(), arg)
			//
			polys[i] = p
		}
	}
	//
	if failed {
		os.Exit(2)
	}
	//
	return polys
}

// Parse each argument as a floating point number, exiting if any is malformed.
func parseFloats(args ...string) []float32 {
	vals := make([]float32, len(args))
	//
	for i, arg := range args {
		val, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			fmt.Printf("invalid number %q\n", arg)
			os.Exit(2)
		}
		//
		vals[i] = float32(val)
	}
	//
	return vals
}

// Print a syntax error with the offending characters highlighted beneath the
// original text.
func printSyntaxError(out io.Writer, text string, err *poly.SyntaxError) {
	span := err.Span()
	width := max(1, span.Length())
	//
	fmt.Fprintf(out, "%d: %s\n", span.Start()+1, err.Message())
	fmt.Fprintln(out, text)
	fmt.Fprint(out, strings.Repeat(" ", span.Start()))
	fmt.Fprintln(out, strings.Repeat("^", width))
}

func formatFloat(val float32) string {
	return strconv.FormatFloat(float64(val), 'g', -1, 32)
}

// Check that the number of arguments lies within a given range, printing usage
// and exiting otherwise.
func checkArgs(cmd *cobra.Command, args []string, least int, most int) {
	if len(args) < least || (most >= 0 && len(args) > most) {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
}
