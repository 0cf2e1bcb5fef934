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
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
	"github.com/spatialmodel/arrhenius"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to Arrhenius.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ReactionFile",
			usage: `
              ReactionFile is the path to a TOML file listing the reactions
              to calculate. It can include environment variables.`,
			shorthand:  "r",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "TMin",
			usage: `
              TMin is the lowest temperature in the sweep [K]. It must be
              at least 100 K.`,
			defaultVal: 300.0,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "TMax",
			usage: `
              TMax is the highest temperature in the sweep [K]. It must be
              at least 100 K.`,
			defaultVal: 2000.0,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "Points",
			usage: `
              Points is the number of evenly spaced temperatures in the sweep.`,
			defaultVal: arrhenius.DefaultPoints,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "GasConstant",
			usage: `
              GasConstant is the gas constant R. Its units set the units of
              the activation energies: "1.987" or "cal" for cal/mol and
              "8.314" or "J" for J/mol. Other values are used as is.`,
			defaultVal: "1.987",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), rateCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "XAxis",
			usage: `
              XAxis specifies the horizontal axis of the plot: "T" for
              temperature or "1000/T" for a classical Arrhenius plot.`,
			shorthand:  "x",
			defaultVal: "T",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "YRange",
			usage: `
              YRange specifies how the vertical axis range is chosen: "auto"
              fits it to the curves and "manual" uses YMin and YMax.`,
			defaultVal: "auto",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "YMin",
			usage: `
              YMin is the bottom of the vertical axis in manual mode, as log10(k).`,
			defaultVal: -20.0,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "YMax",
			usage: `
              YMax is the top of the vertical axis in manual mode, as log10(k).`,
			defaultVal: 20.0,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "YPreset",
			usage: `
              YPreset selects a named manual vertical range, overriding
              YRange, YMin, and YMax. Options are "combustion" [-10, 20]
              and "catalysis" [-20, 10].`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "ShowComponents",
			usage: `
              ShowComponents specifies whether the individual channels of
              duplicate reactions are plotted along with their sum.`,
			shorthand:  "c",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "ShowGrid",
			usage: `
              ShowGrid specifies whether grid lines are drawn on the plot.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "ShowLegend",
			usage: `
              ShowLegend specifies whether the plot has a legend.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "LineWidth",
			usage: `
              LineWidth is the width of the reaction curves in points.`,
			defaultVal: 2.0,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "MarkerSize",
			usage: `
              MarkerSize is the size of the curve markers in points.`,
			defaultVal: 6.0,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "MarkerEvery",
			usage: `
              MarkerEvery is the number of temperature points between markers.`,
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile is the path where the plot should be saved. The
              format is chosen by the extension (.png, .svg, or .pdf).
              No plot is saved if it is empty.`,
			shorthand:  "p",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags()},
		},
		{
			name: "TableFile",
			usage: `
              TableFile is the path where the summary table should be saved,
              in .csv or .xlsx format. If it is empty the table is written
              to standard output as CSV.`,
			shorthand:  "t",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{calcCmd.Flags()},
		},
		{
			name: "TableExpressions",
			usage: `
              TableExpressions specifies additional summary table columns.
              It is a map of column names to expressions, which can use the
              variables A, n, Ea, R, k300, k1000, and k2000 and the functions
              log10 and exp. When set from the command line it should be in
              JSON format, for example '{"Ea/R":"Ea/R"}'.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{calcCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "HTTPAddress",
			usage: `
              HTTPAddress is the address the web interface listens on.`,
			defaultVal: ":8080",
			flagsets:   []*pflag.FlagSet{serveCmd.Flags()},
		},
		{
			name: "Open",
			usage: `
              Open specifies whether to open the web interface in a browser.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{serveCmd.Flags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the logging threshold: one of debug, info, warn, or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ARRHENIUS")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := string(bytes.TrimSpace(b.Bytes()))
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(calcCmd)
	Root.AddCommand(rateCmd)
	Root.AddCommand(parseCmd)
	Root.AddCommand(serveCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the logging level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("arrheniusutil: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("arrheniusutil: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "arrhenius",
	Short: "A calculator for chemical reaction rate constants.",
	Long: `Arrhenius calculates rate constants of chemical reactions from modified
Arrhenius parameters, k = A·T^n·exp(-Ea/(R·T)), over a range of temperatures.
It plots log10(k) against T or 1000/T and summarizes the rate constants at
300, 1000, and 2000 K. Use the subcommands specified below to access the
functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'ARRHENIUS_var' where 'var' is the
name of the variable to be set. File paths are additionally allowed to contain
environment variables within them.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Arrhenius.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Arrhenius v%s\n", arrhenius.Version)
	},
	DisableAutoGenTag: true,
}

// calcCmd calculates the reactions in a reaction file.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate the reactions in a reaction file.",
	Long: `calc reads the reactions in ReactionFile, writes the summary table to
TableFile (or standard output), and saves the plot to PlotFile if it is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := ReadReactionFile(Cfg.GetString("ReactionFile"))
		if err != nil {
			return err
		}
		cfg, err := CalcConfig(Cfg)
		if err != nil {
			return err
		}
		return Calc(cmd, inputs, cfg, RenderOptions(Cfg),
			os.ExpandEnv(Cfg.GetString("TableFile")), os.ExpandEnv(Cfg.GetString("PlotFile")))
	},
	DisableAutoGenTag: true,
}

// rateCmd evaluates one set of rate parameters.
var rateCmd = &cobra.Command{
	Use:   "rate A n Ea T...",
	Short: "Evaluate a rate constant at given temperatures.",
	Long: `rate calculates the rate constant for the given A, n, and Ea at each of
the given temperatures [K], and prints the temperature, k, and log10(k).
Use -- before the arguments if any of them are negative, for example:

	arrhenius rate -- 2.64e16 -0.67 16800 300 1000 2000`,
	Args: cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		R, err := arrhenius.GasConstant(Cfg.GetString("GasConstant"))
		if err != nil {
			return err
		}
		return Rate(cmd.OutOrStdout(), args[0], args[1], args[2], args[3:], R)
	},
	DisableAutoGenTag: true,
}

// parseCmd shows how numeric values are interpreted.
var parseCmd = &cobra.Command{
	Use:   "parse value...",
	Short: "Show how numeric values are read.",
	Long: `parse prints the number that each argument is read as. Values can be written
as plain decimals, in e-notation, or in scientific notation using ×, x, X, or *
followed by 10^exponent, for example 2.64×10^16.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Parse(cmd.OutOrStdout(), args...)
	},
	DisableAutoGenTag: true,
}

// serveCmd starts the web interface.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface.",
	Long: `serve starts a web interface for entering reactions and viewing the plot
and summary table. Reactions in ReactionFile, if it is set, are loaded first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var inputs []arrhenius.ReactionInput
		if f := Cfg.GetString("ReactionFile"); f != "" {
			var err error
			if inputs, err = ReadReactionFile(f); err != nil {
				return err
			}
		}
		cfg, err := CalcConfig(Cfg)
		if err != nil {
			return err
		}
		session, err := arrhenius.NewSession(inputs...)
		if err != nil {
			return err
		}
		s := NewServer(session, cfg, RenderOptions(Cfg))
		addr := Cfg.GetString("HTTPAddress")
		if Cfg.GetBool("Open") {
			url := "http://localhost" + addr
			if addr != "" && addr[0] != ':' {
				url = "http://" + addr
			}
			if err := open.Start(url); err != nil {
				s.Log.WithError(err).Warn("unable to open browser")
			}
		}
		return s.ListenAndServe(addr)
	},
	DisableAutoGenTag: true,
}
