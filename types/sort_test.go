/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLess(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2023, 12, d, 0, 0, 0, 0, time.UTC) }
	tests := []struct {
		a, b Literal
		less bool
	}{
		{NewSignedInteger(-1, Integer), NewUnsignedInteger(0, NonNegativeInteger), true},
		{NewUnsignedInteger(18446744073709551615, UnsignedLong), NewSignedInteger(9223372036854775807, Long), false},
		{NewSignedInteger(2, Int), NewSignedInteger(10, Short), true},
		{NewDecimal("2.5"), NewDecimal("10"), true},
		{NewDecimal("-0.001"), NewDecimal("-0.0001"), true},
		{NewBool(false), NewBool(true), true},
		{NewBool(true), NewBool(true), false},
		{NewPlainLiteral("apple"), NewString("Banana", XSDString), true},
		{NewPlainLiteral("b"), NewPlainLiteral("a"), false},
		{mustIRI(t, "http://a/", IRIReference), mustIRI(t, "http://b/", AnyURI), true},
		{NewBlankNode("b1"), NewBlankNode("b0"), false},
		{NewDateLiteral(DateOf(day(1))), NewDateLiteral(DateOf(day(2))), true},
		{NewDateTime(day(2)), NewDateTime(day(1)), false},
		{NewDateTimeStamp(day(1)), NewDateTimeStamp(day(2)), true},
	}
	for _, tc := range tests {
		less, err := Less(tc.a, tc.b)
		require.NoError(t, err, "%#v < %#v", tc.a, tc.b)
		require.Equal(t, tc.less, less, "%#v < %#v", tc.a, tc.b)
	}
}

func TestLessErrors(t *testing.T) {
	tests := [][2]Literal{
		{NewDuration("P1D"), NewDuration("P2D")},
		{NewPlainLiteral("1"), NewSignedInteger(1, Integer)},
		{NewDateLiteral(NewDate(2023, 1, 1)), NewDateTime(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))},
		{NewDecimal("abc"), NewDecimal("1")},
	}
	for _, tc := range tests {
		_, err := Less(tc[0], tc[1])
		require.Error(t, err, "%#v < %#v", tc[0], tc[1])
	}
}

func TestSort(t *testing.T) {
	ls := []Literal{
		NewInteger(3),
		NewSignedInteger(-5, Integer),
		NewUnsigned(0),
		NewSignedInteger(7, Long),
	}
	require.NoError(t, Sort(ls, false))
	var got []string
	for _, l := range ls {
		got = append(got, l.Lexical())
	}
	require.Equal(t, []string{"-5", "0", "3", "7"}, got)

	require.NoError(t, Sort(ls, true))
	got = got[:0]
	for _, l := range ls {
		got = append(got, l.Lexical())
	}
	require.Equal(t, []string{"7", "3", "0", "-5"}, got)

	strs := []Literal{NewPlainLiteral("cherry"), NewPlainLiteral("Apple"), NewPlainLiteral("banana")}
	require.NoError(t, Sort(strs, false))
	require.Equal(t, `"Apple"`, strs[0].String())
	require.Equal(t, `"cherry"`, strs[2].String())

	mixed := []Literal{NewPlainLiteral("a"), NewBool(true)}
	require.Error(t, Sort(mixed, false))
}
