/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"fmt"
)

var (
	initFunc []func()

	// These variables are set using -ldflags
	literalVersion string
	lastCommitSHA  string
	lastCommitTime string
)

// AddInit adds a function to be run in x.Init, which should be called at the
// beginning of all mains.
func AddInit(f func()) {
	initFunc = append(initFunc, f)
}

// Init runs all functions in initFunc.
func Init() {
	for _, f := range initFunc {
		f()
	}
}

// Version returns the version the binary was built from, or "dev".
func Version() string {
	if literalVersion == "" {
		return "dev"
	}
	return literalVersion
}

func BuildDetails() string {
	return fmt.Sprintf(`
Literal version  : %v
Commit SHA-1     : %v
Commit timestamp : %v

Licensed under the Apache Public License 2.0.
© Hypermode Inc.

`,
		Version(), lastCommitSHA, lastCommitTime)
}
