/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package catalog

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hypermodeinc/literal/types"
	"github.com/hypermodeinc/literal/x"
)

// Catalog is the sub-command invoked when running "literal types".
var Catalog x.SubCommand

func init() {
	Catalog.Cmd = &cobra.Command{
		Use:   "types",
		Short: "Lists the known data types",
		Long: `
Types lists every data type with its numeric id, name, type IRI and the category of
values it holds. Types without a category are known but can not be parsed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), Catalog.GetStringP("output", "o", "table"))
		},
	}
	Catalog.EnvPrefix = "LITERAL_TYPES"
	Catalog.Cmd.SetHelpTemplate(x.NonRootTemplate)

	flag := Catalog.Cmd.Flags()
	flag.StringP("output", "o", "table", "Output format, one of [table, yaml, json].")
}

func run(w io.Writer, output string) error {
	entries := types.Catalogue()
	switch output {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tIRI\tCATEGORY")
		for _, e := range entries {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.IRI, e.Category)
		}
		return tw.Flush()
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return errors.Wrap(err, "while encoding catalogue")
		}
		return x.Wrapf(enc.Close(), "while flushing catalogue")
	case "json":
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return errors.Wrap(err, "while encoding catalogue")
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	return errors.Errorf("unknown output %q", output)
}
