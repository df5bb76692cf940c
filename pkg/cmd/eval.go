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

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [--] polynomial x...",
	Short: "Evaluate a polynomial at one or more points.",
	Long: `Evaluate a given polynomial at each of the given points,
	printing one value per line.  Flags must precede the polynomial, and
	"--" is needed when the polynomial starts with "-".`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2, -1)
		//
		p := parsePolynomials(args[0])[0]
		//
		for _, x := range parseFloats(args[1:]...) {
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(p.Evaluate(x)))
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().SetInterspersed(false)
}
