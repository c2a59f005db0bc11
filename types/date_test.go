/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		in    string
		debug string
	}{
		// RFC 2822
		{"Fri, 20 Dec 1996 00:39:57 +0000", "Literal(DateTime,1996-12-20 00:39:57 UTC)"},
		{"Fri, 20 Dec 1996 01:39:57 +0100", "Literal(DateTime,1996-12-20 00:39:57 UTC)"},
		{"Thu, 19 Dec 1996 19:39:57 EST", "Literal(DateTime,1996-12-20 00:39:57 UTC)"},
		{"19 Dec 1996 16:39:57 PST", "Literal(DateTime,1996-12-20 00:39:57 UTC)"},
		{"20 Dec 1996 00:39 GMT", "Literal(DateTime,1996-12-20 00:39:00 UTC)"},
		{"Fri, 20 Dec 96 00:39:57 UT", "Literal(DateTime,1996-12-20 00:39:57 UTC)"},
		{"Mon, 2 Jan 06 15:04:05 +0000", "Literal(DateTime,2006-01-02 15:04:05 UTC)"},
		// RFC 3339
		{"2015-02-19T04:16:09Z", "Literal(DateTime,2015-02-19 04:16:09 UTC)"},
		{"2015-02-19T05:16:09+01:00", "Literal(DateTime,2015-02-19 04:16:09 UTC)"},
		{"2015-02-19T04:16:09.5Z", "Literal(DateTime,2015-02-19 04:16:09.5 UTC)"},
		// zoned
		{"2023-12-31 14:21:00 +0100", "Literal(DateTime,2023-12-31 13:21:00 UTC)"},
		{"2023-12-31 14:21:00 +01:00", "Literal(DateTime,2023-12-31 13:21:00 UTC)"},
		// naive, assumed UTC
		{"2023-12-31 13:21:00", "Literal(DateTime,2023-12-31 13:21:00 UTC)"},
		{"2023-12-31 13:21", "Literal(DateTime,2023-12-31 13:21:00 UTC)"},
		{"2023-1-5 13:21", "Literal(DateTime,2023-01-05 13:21:00 UTC)"},
		// dates
		{"2023-12-31", "Literal(Date,2023-12-31)"},
		{"2023/12/31", "Literal(Date,2023-12-31)"},
		{"12/31/2023", "Literal(Date,2023-12-31)"},
		{"1/5/2023", "Literal(Date,2023-01-05)"},
		// JSON string
		{`"2015-02-19T04:16:09Z"`, "Literal(DateTime,2015-02-19 04:16:09 UTC)"},
	}
	for _, tc := range tests {
		lit, err := ParseDateTime(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.debug, lit.GoString(), tc.in)
	}
}

func TestParseDateTimeToUTC(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"1996-12-19T16:39:57-08:00", "1996-12-20T00:39:57Z"},
		{"Wed, 18 Feb 2015 23:16:09 EST", "2015-02-19T04:16:09Z"},
	}
	for _, tc := range tests {
		lit, err := ParseDateTime(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, DateTimeID, lit.DataType(), tc.in)
		require.Equal(t, tc.out, lit.String(), tc.in)
	}
}

func TestParseDateTimeOrder(t *testing.T) {
	// A plain date is never read as midnight of a date-time.
	lit, err := ParseDateTime("2023-12-31")
	require.NoError(t, err)
	require.Equal(t, DateID, lit.DataType())
	d, ok := lit.AsDate()
	require.True(t, ok)
	require.Equal(t, NewDate(2023, time.December, 31), d)

	// RFC 3339 wins over the JSON string form when the quotes are missing.
	lit, err = ParseDateTime("2015-02-19T04:16:09Z")
	require.NoError(t, err)
	require.Equal(t, DateTimeID, lit.DataType())
}

func TestParseDateTimeErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"yesterday",
		"2023-13-01",
		"31/12/2023",
		"2023-12-31T25:00:00Z",
		"Fri, 20 Dec 1996 00:39:57 XYZ",
		"null",
		"42",
		`""`,
		`"yesterday"`,
		`{"t":"2015-02-19T04:16:09Z"}`,
	} {
		_, err := ParseDateTime(in)
		var target *UnknownValueForDataTypeError
		require.True(t, errors.As(err, &target), "%q should not parse", in)
		require.Equal(t, DateTimeID, target.DataType)
		require.Equal(t, in, target.Value)
	}
}

func TestDate(t *testing.T) {
	var zero Date
	require.Equal(t, "0001-01-01", zero.String())
	require.Equal(t, 1, zero.Year())
	require.Equal(t, time.January, zero.Month())
	require.Equal(t, 1, zero.Day())
	require.True(t, zero.Equal(DateOf(time.Time{})))

	d := NewDate(2023, time.October, 32)
	require.Equal(t, "2023-11-01", d.String())
	require.True(t, NewDate(2023, 1, 1).Before(d))
	require.Equal(t, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), d.Time())

	loc := time.FixedZone("", -5*3600)
	require.Equal(t, "2023-12-31", DateOf(time.Date(2023, 12, 31, 22, 0, 0, 0, loc)).String())
}
