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

// Binary operation on polynomials which cannot fail.
type foldOp func(*poly.Polynomial, *poly.Polynomial) *poly.Polynomial

var divCmd = &cobra.Command{
	Use:   "div [flags] [--] dividend divisor",
	Short: "Divide one polynomial by another.",
	Long: `Divide one polynomial by another using long division, printing
	both the quotient and remainder.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2, 2)
		//
		polys := parsePolynomials(args...)
		//
		q, r, err := polys[0].DivMod(polys[1])
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		fmt.Fprintf(cmd.OutOrStdout(), "quotient: %s\nremainder: %s\n", q, r)
	},
}

// Construct a command which folds a binary operation over all its arguments
// from left to right.
func newFoldCommand(name string, short string, op foldOp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [flags] [--] polynomial polynomial...", name),
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			checkArgs(cmd, args, 2, -1)
			//
			res := fold(op, parsePolynomials(args...))
			//
			fmt.Fprintln(cmd.OutOrStdout(), res)
		},
	}
	// Negative operands are not flags
	cmd.Flags().SetInterspersed(false)
	//
	return cmd
}

func fold(op foldOp, polys []*poly.Polynomial) *poly.Polynomial {
	res := polys[0]
	//
	for _, p := range polys[1:] {
		res = op(res, p)
	}
	//
	return res
}

func init() {
	rootCmd.AddCommand(newFoldCommand("add", "Sum two or more polynomials.", (*poly.Polynomial).Sum))
	rootCmd.AddCommand(newFoldCommand("sub", "Subtract polynomials from the first.", (*poly.Polynomial).Subtract))
	rootCmd.AddCommand(newFoldCommand("mul", "Multiply two or more polynomials.", (*poly.Polynomial).Multiply))
	rootCmd.AddCommand(divCmd)
	divCmd.Flags().SetInterspersed(false)
}
