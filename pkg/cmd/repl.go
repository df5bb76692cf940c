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

	"github.com/consensys/go-polynomial/pkg/calc"
	"github.com/consensys/go-polynomial/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Interactive polynomial calculator.",
	Long: `Start an interactive session in which polynomials can be named and
	combined.  For example:

	p = 3x^2 + 1
	q = x - 2
	mul p q
	derive p
	eval p 2
	integrate p 0 1

	When stdin is not a terminal, lines are read from it without a prompt.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			session = calc.NewSession()
			err     error
		)
		//
		checkArgs(cmd, args, 0, 0)
		//
		if !GetFlag(cmd, "no-prompt") && termio.IsTerminal(os.Stdin) {
			var prompt *termio.Prompt
			//
			if prompt, err = termio.NewPrompt("> "); err == nil {
				err = session.Run(prompt, prompt)
				// Always restore terminal
				if rerr := prompt.Close(); err == nil {
					err = rerr
				}
			}
		} else {
			log.Debug("reading session from stdin")
			//
			err = session.Run(calc.Lines(os.Stdin), cmd.OutOrStdout())
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("no-prompt", false, "read lines without a prompt, even on a terminal")
}
