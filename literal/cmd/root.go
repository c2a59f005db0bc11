/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/literal/literal/cmd/catalog"
	"github.com/hypermodeinc/literal/literal/cmd/parse"
	"github.com/hypermodeinc/literal/literal/cmd/version"
	"github.com/hypermodeinc/literal/x"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "literal",
	Short: "Literal: typed RDF literal values",
	Long: `
Literal parses, types and renders RDF literal values: IRIs, blank nodes, strings,
booleans, integers, decimals, durations, dates and date-times, as identified by
their XSD data type.
` + x.BuildDetails(),
	Args: cobra.NoArgs,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	goflag.Parse()
	x.Init()
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var rootConf = viper.New()

// loadDefaults fills x.Config from LITERAL_DEFAULT_FORMAT and LITERAL_DEFAULT_BASE.
// Sub-command flags and their own environment variables still take precedence.
func loadDefaults(env *viper.Viper) {
	if f := env.GetString("default_format"); f != "" {
		x.Config.DefaultFormat = f
	}
	if b := env.GetString("default_base"); b != "" {
		x.Config.DefaultBase = b
	}
}

var subcommands = []*x.SubCommand{
	&parse.Parse, &catalog.Catalog, &version.Version,
}

func init() {
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	x.Check(rootConf.BindPFlags(RootCmd.PersistentFlags()))

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	// Always set stderrthreshold=0. Don't let users set it themselves.
	x.Check(flag.Set("stderrthreshold", "0"))
	x.Check(flag.CommandLine.MarkDeprecated("stderrthreshold",
		"Literal always sets this flag to 0. It can't be overwritten."))

	x.AddInit(func() {
		env := viper.New()
		env.SetEnvPrefix("LITERAL")
		env.AutomaticEnv()
		loadDefaults(env)
	})

	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		x.Check(sc.Conf.BindPFlags(sc.Cmd.Flags()))
		x.Check(sc.Conf.BindPFlags(RootCmd.PersistentFlags()))
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}
	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			x.Checkf(sc.Conf.ReadInConfig(), "while reading config %s", cfg)
		}
	})
}
