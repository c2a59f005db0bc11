/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitRunsAddedFuncs(t *testing.T) {
	saved := initFunc
	defer func() { initFunc = saved }()
	initFunc = nil

	var order []int
	AddInit(func() { order = append(order, 1) })
	AddInit(func() { order = append(order, 2) })
	Init()
	require.Equal(t, []int{1, 2}, order)
}

func TestBuildDetails(t *testing.T) {
	require.Equal(t, "dev", Version())
	require.Contains(t, BuildDetails(), "Literal version  : dev")
}
