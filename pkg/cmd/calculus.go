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
	"fmt"
	"os"

	"github.com/consensys/go-polynomial/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var deriveCmd = &cobra.Command{
	Use:   "derive [flags] [--] polynomial",
	Short: "Differentiate a polynomial.",
	Long: `Differentiate a polynomial one or more times.  Each derivative
	reduces the degree by one, hence the order cannot exceed the degree.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1, 1)
		//
		order := GetUint(cmd, "order")
		if order == 0 {
			fmt.Println("order must be at least 1")
			os.Exit(2)
		}
		//
		res, err := derive(parsePolynomials(args[0])[0], order)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		fmt.Fprintln(cmd.OutOrStdout(), res)
	},
}

// Derive a polynomial a given number of times.
func derive(p *poly.Polynomial, order uint) (*poly.Polynomial, error) {
	var err error
	//
	for i := uint(0); i < order; i++ {
		if p, err = p.Derive(); err != nil {
			return nil, fmt.Errorf("derivative %d: %w", i+1, err)
		}
	}
	//
	return p, nil
}

var integrateCmd = &cobra.Command{
	Use:   "integrate [flags] [--] polynomial [start end]",
	Short: "Integrate a polynomial over an interval.",
	Long: `Compute the definite integral of a polynomial between two points or,
	with --antiderivative, print its antiderivative instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		//
		if GetFlag(cmd, "antiderivative") {
			checkArgs(cmd, args, 1, 1)
			fmt.Fprintln(out, parsePolynomials(args[0])[0].Antiderivative())
			//
			return
		}
		//
		checkArgs(cmd, args, 3, 3)
		//
		p := parsePolynomials(args[0])[0]
		bounds := parseFloats(args[1:]...)
		//
		fmt.Fprintln(out, formatFloat(p.Integrate(bounds[0], bounds[1])))
	},
}

var equalsCmd = &cobra.Command{
	Use:   "equals [flags] [--] polynomial polynomial",
	Short: "Check whether two polynomials are equal.",
	Long: `Check whether two polynomials have the same degree and their
	coefficients agree within a tolerance of 0.0001.  Exits with status 1
	when they differ.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2, 2)
		//
		polys := parsePolynomials(args...)
		equal := polys[0].Equals(polys[1])
		//
		fmt.Fprintln(cmd.OutOrStdout(), equal)
		//
		if !equal {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(integrateCmd)
	rootCmd.AddCommand(equalsCmd)
	deriveCmd.Flags().UintP("order", "n", 1, "number of times to differentiate")
	integrateCmd.Flags().Bool("antiderivative", false, "print the antiderivative rather than a definite integral")
	// Negative operands are not flags
	deriveCmd.Flags().SetInterspersed(false)
	integrateCmd.Flags().SetInterspersed(false)
	equalsCmd.Flags().SetInterspersed(false)
}
