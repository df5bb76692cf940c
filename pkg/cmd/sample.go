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
	"io"
	"os"

	"github.com/consensys/go-polynomial/pkg/poly"
	"github.com/consensys/go-polynomial/pkg/util"
	"github.com/consensys/go-polynomial/pkg/util/termio"
	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [flags] [--] polynomial",
	Short: "Tabulate a polynomial over an interval.",
	Long: `Evaluate a polynomial at evenly spaced points over an interval, printing
	a table of values followed by summary statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg sampleConfig
		//
		checkArgs(cmd, args, 1, 1)
		//
		cfg.from = GetFloat(cmd, "from")
		cfg.to = GetFloat(cmd, "to")
		cfg.steps = GetUint(cmd, "steps")
		cfg.ansiEscapes = !GetFlag(cmd, "no-color") && termio.IsTerminal(os.Stdout)
		//
		p := parsePolynomials(args[0])[0]
		perf := util.NewPerfStats()
		//
		if err := printSamples(cmd.OutOrStdout(), p, cfg); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		perf.Log("Sampling polynomial")
	},
}

type sampleConfig struct {
	from        float32
	to          float32
	steps       uint
	ansiEscapes bool
}

// Evaluate a polynomial at steps+1 evenly spaced points from the start to the
// end of the interval (inclusive).
func sample(p *poly.Polynomial, cfg sampleConfig) (xs []float32, ys []float32) {
	width := cfg.to - cfg.from
	//
	for i := uint(0); i <= cfg.steps; i++ {
		x := cfg.from
		//
		if cfg.steps != 0 {
			x += width * float32(i) / float32(cfg.steps)
		}
		//
		xs = append(xs, x)
		ys = append(ys, p.Evaluate(x))
	}
	//
	return xs, ys
}

// Summary statistics for a set of sampled values.
type summary struct {
	min    float64
	max    float64
	mean   float64
	stddev float64
}

func summarise(ys []float32) (summary, error) {
	var (
		res  summary
		data = make(stats.Float64Data, len(ys))
		err  error
	)
	//
	for i, y := range ys {
		data[i] = float64(y)
	}
	//
	if res.min, err = data.Min(); err != nil {
		return res, err
	} else if res.max, err = data.Max(); err != nil {
		return res, err
	} else if res.mean, err = data.Mean(); err != nil {
		return res, err
	}
	//
	res.stddev, err = data.StandardDeviation()
	//
	return res, err
}

func printSamples(out io.Writer, p *poly.Polynomial, cfg sampleConfig) error {
	xs, ys := sample(p, cfg)
	//
	info, err := summarise(ys)
	if err != nil {
		return err
	}
	//
	table := termio.NewTablePrinter(2)
	table.AddRow("x", "p(x)")
	table.SetEscape(0, 0, termio.BoldAnsiEscape())
	table.SetEscape(1, 0, termio.BoldAnsiEscape())
	//
	for i := range xs {
		table.AddRow(formatFloat(xs[i]), formatFloat(ys[i]))
		// Highlight sign of each value
		if ys[i] < 0 {
			table.SetEscape(1, table.Height()-1, termio.AnsiEscape{}.FgColour(termio.TERM_RED))
		}
	}
	//
	table.AnsiEscapes(cfg.ansiEscapes)
	//
	if err := table.Print(out); err != nil {
		return err
	}
	//
	_, err = fmt.Fprintf(out, "min: %g\nmax: %g\nmean: %g\nstddev: %g\n", info.min, info.max, info.mean,
		info.stddev)
	//
	return err
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().Float32("from", -1, "start of interval")
	sampleCmd.Flags().Float32("to", 1, "end of interval")
	sampleCmd.Flags().Uint("steps", 10, "number of steps across the interval")
	sampleCmd.Flags().Bool("no-color", false, "disable ANSI colour")
	sampleCmd.Flags().SetInterspersed(false)
}
