/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package version

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hypermodeinc/literal/x"
)

// Version is the sub-command invoked when running "literal version".
var Version x.SubCommand

func init() {
	Version.Cmd = &cobra.Command{
		Use:   "version",
		Short: "Prints the literal version details",
		Long:  "Version prints the literal version as reported by the build details.",
		Run: func(cmd *cobra.Command, args []string) {
			x.Check2(fmt.Fprint(cmd.OutOrStdout(), x.BuildDetails()))
			os.Exit(0)
		},
	}
	Version.Cmd.SetHelpTemplate(x.NonRootTemplate)
}
