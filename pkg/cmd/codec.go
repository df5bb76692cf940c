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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-polynomial/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] [--] polynomial...",
	Short: "Serialise polynomials.",
	Long: `Serialise each polynomial as its degree followed by its coefficients
	(constant term first), one polynomial per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1, -1)
		//
		for _, p := range parsePolynomials(args...) {
			if err := p.Write(cmd.OutOrStdout()); err != nil {
				log.Error(err)
				os.Exit(1)
			}
		}
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] [file]",
	Short: "Print serialised polynomials in readable form.",
	Long: `Read serialised polynomials from a file (or stdin when no file is
	given) and print each in readable form.`,
	Run: func(cmd *cobra.Command, args []string) {
		var in io.Reader = os.Stdin
		//
		checkArgs(cmd, args, 0, 1)
		//
		if len(args) == 1 {
			file, err := os.Open(args[0])
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			defer file.Close()
			//
			in = file
		}
		//
		n, err := decode(bufio.NewReader(in), cmd.OutOrStdout())
		if err != nil {
			log.Errorf("polynomial %d: %v", n+1, err)
			os.Exit(2)
		}
		//
		log.Debugf("decoded %d polynomial(s)", n)
	},
}

// Decode serialised polynomials until the input is exhausted, printing each in
// display form.  This returns the number of polynomials decoded.
func decode(in *bufio.Reader, out io.Writer) (uint, error) {
	var n uint
	//
	for ; ; n++ {
		var p poly.Polynomial
		//
		if err := p.Read(in); errors.Is(err, io.EOF) {
			return n, nil
		} else if err != nil {
			return n, err
		}
		//
		fmt.Fprintln(out, p.String())
	}
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(decodeCmd)
}
