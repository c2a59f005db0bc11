/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package parse

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/literal/types"
	"github.com/hypermodeinc/literal/x"
)

// Parse is the sub-command invoked when running "literal parse".
var Parse x.SubCommand

func init() {
	Parse.Cmd = &cobra.Command{
		Use:   "parse [flags] TEXT...",
		Short: "Parse text as typed literals and render them",
		Long: `
Parse interprets every argument as a value of the data type given by --type and
prints it in the requested --format. Without --type the data type is inferred:
IRIs, integers, dates and date-times, and decimals are recognized, anything else
becomes a plain literal.

--type takes a numeric id, a type IRI, an xsd:, rdf: or rdfs: prefixed name or a
type name as listed by "literal types".`,
		Example: `  literal parse --type xsd:integer 42
  literal parse --type DateTime --format turtle "Fri, 20 Dec 1996 00:39:57 GMT"
  literal parse --base https://example.org/id/ --type AnyUri --format id abc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args)
		},
	}
	Parse.EnvPrefix = "LITERAL_PARSE"
	Parse.Cmd.SetHelpTemplate(x.NonRootTemplate)

	flag := Parse.Cmd.Flags()
	flag.StringP("type", "t", "", "Data type of the values. Inferred when empty.")
	flag.StringP("base", "b", x.Config.DefaultBase,
		"Base IRI that relative IRIs are resolved against.")
	flag.StringP("format", "f", x.Config.DefaultFormat,
		"Output format, one of [display, debug, turtle, json, url, id].")
	flag.BoolP("keep-going", "k", false,
		"Log values that fail to parse and carry on with the rest.")
}

var prefixes = map[string]string{
	"xsd":  "http://www.w3.org/2001/XMLSchema#",
	"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
}

// resolveType accepts a numeric id, a full type IRI with or without angle brackets,
// a prefixed name such as xsd:integer or a catalogue name such as Integer.
func resolveType(s string) (types.DataType, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.ParseUint(s, 10, 8); err == nil {
		return types.DataTypeFromID(uint8(id))
	}
	if dt, ok := types.DataTypeForName(s); ok {
		return dt, nil
	}
	if prefix, local, ok := strings.Cut(s, ":"); ok {
		if ns, found := prefixes[prefix]; found {
			return types.DataTypeFromIRI(ns + local)
		}
	}
	return types.DataTypeFromIRI(strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">"))
}

func render(lit types.Literal, format string, base types.IRIBase) (string, error) {
	switch format {
	case "display":
		return lit.String(), nil
	case "debug":
		return lit.GoString(), nil
	case "turtle":
		return lit.Turtle(), nil
	case "json":
		return lit.JSON(), nil
	case "url":
		return lit.URLEncoded(), nil
	case "id":
		return lit.IDString(base), nil
	}
	return "", errors.Errorf("unknown format %q", format)
}

func run(w io.Writer, args []string) error {
	typ := Parse.GetStringP("type", "t", "")
	format := Parse.GetStringP("format", "f", x.Config.DefaultFormat)
	keepGoing := Parse.GetBoolP("keep-going", "k", false)
	var base types.IRIBase
	if b := Parse.GetStringP("base", "b", x.Config.DefaultBase); b != "" {
		base = types.BaseIRI(b)
	}

	var dt types.DataType
	if typ != "" {
		var err error
		if dt, err = resolveType(typ); err != nil {
			return errors.Wrapf(err, "while resolving type %q", typ)
		}
		glog.V(1).Infof("Parsing %d values as %s", len(args), dt.IRI())
	}

	var failed int
	for _, text := range args {
		var lit types.Literal
		if typ == "" {
			inferred, err := types.InferLiteral(text)
			if err != nil {
				return err
			}
			lit = inferred
		} else {
			parsed, err := types.FromText(dt, text, base)
			if err != nil {
				err = errors.Wrapf(err, "while parsing %q", text)
				if !keepGoing {
					return err
				}
				glog.Warningf("Skipping value: %v", err)
				failed++
				continue
			}
			if parsed == nil {
				fmt.Fprintln(w, "(no value)")
				continue
			}
			lit = *parsed
		}
		out, err := render(lit, format, base)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d values failed to parse", failed, len(args))
	}
	return nil
}
