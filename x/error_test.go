/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	require.NoError(t, Wrapf(nil, "reading %s", "config"))

	base := errors.New("file not found")
	err := Wrapf(base, "reading %s", "config")
	require.EqualError(t, err, "reading config: file not found")
	require.True(t, errors.Is(err, base))
	require.Contains(t, fmt.Sprintf("%+v", err), "TestWrapf")
}

func TestChecksPassOnSuccess(t *testing.T) {
	require.NotPanics(t, func() {
		Check(nil)
		Checkf(nil, "never printed")
		Check2(42, nil)
		AssertTrue(true)
		AssertTruef(true, "never printed")
	})
}
