/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

// Options stores the options for this package.
type Options struct {
	// DefaultFormat is the output format used when none is asked for.
	DefaultFormat string
	// DefaultBase is the base relative IRIs are resolved against. Empty means none.
	DefaultBase string
}

// Config stores the global instance of this package's options.
var Config = Options{DefaultFormat: "display"}
