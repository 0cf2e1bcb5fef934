/*
Copyright © 2026 the Arrhenius authors.
This file is part of Arrhenius.

Arrhenius is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Arrhenius is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Arrhenius.  If not, see <http://www.gnu.org/licenses/>.
*/

package arrheniusutil

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/arrhenius"
	"github.com/spatialmodel/arrhenius/render"
	"github.com/spf13/cobra"
)

// Calc calculates the given reactions. It writes the summary table to
// tableFile, or to the command output if tableFile is empty, and saves
// the plot to plotFile if it is not empty. Nothing is written if none
// of the reactions are complete.
func Calc(cmd *cobra.Command, inputs []arrhenius.ReactionInput, cfg arrhenius.Config, o render.Options, tableFile, plotFile string) error {
	s, err := arrhenius.NewSession(inputs...)
	if err != nil {
		return err
	}
	res, err := s.Compute(cfg)
	if err != nil {
		return err
	}
	for _, err := range res.Errors {
		cmd.PrintErrln(err)
	}
	if res.Empty() {
		cmd.PrintErrln("There are no complete reactions to calculate.")
		return nil
	}

	if tableFile == "" {
		if err := res.Table.WriteCSV(cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		if err := res.Table.WriteFile(tableFile); err != nil {
			return err
		}
		logrus.WithField("file", tableFile).Info("wrote summary table")
	}

	if plotFile != "" {
		if err := render.Save(plotFile, res, o); err != nil {
			return err
		}
		logrus.WithField("file", plotFile).Info("saved plot")
	}
	return nil
}

// Rate writes the rate constant for parameters a, n, and ea at each of
// the given temperatures to w.
func Rate(w io.Writer, a, n, ea string, temperatures []string, R float64) error {
	var p arrhenius.RateParameters
	for _, f := range []struct {
		name, text string
		v          *float64
	}{{"A", a, &p.A}, {"n", n, &p.N}, {"Ea", ea, &p.Ea}} {
		v, err := arrhenius.ParseLiteral(f.text)
		if err != nil {
			return fmt.Errorf("arrheniusutil: %s: %v", f.name, err)
		}
		*f.v = v
	}
	fmt.Fprintf(w, "%10s  %12s  %10s\n", "T (K)", "k", "log10(k)")
	for _, s := range temperatures {
		T, err := arrhenius.ParseLiteral(s)
		if err != nil {
			return fmt.Errorf("arrheniusutil: temperature: %v", err)
		}
		if T <= 0 {
			return fmt.Errorf("arrheniusutil: temperature must be positive but is %g", T)
		}
		k := p.K(T, R)
		fmt.Fprintf(w, "%10g  %12.4e  %10.4f\n", T, k, math.Log10(k))
	}
	return nil
}

// Parse writes the value that each of the given texts is read as to w.
// Texts that can't be read are reported but do not stop the others
// from being read.
func Parse(w io.Writer, texts ...string) error {
	var failed int
	for _, t := range texts {
		v, err := arrhenius.ParseLiteral(t)
		if err != nil {
			fmt.Fprintf(w, "%q: %v\n", t, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "%q = %g\n", t, v)
	}
	if failed > 0 {
		return fmt.Errorf("arrheniusutil: %d of %d values could not be parsed", failed, len(texts))
	}
	return nil
}
