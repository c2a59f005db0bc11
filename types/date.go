/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// rfc2822Layouts cover the RFC 2822 date-time with and without the day of week, with
// and without seconds, and with a four or a two digit year. Zone names are replaced
// by their numeric offset before these are tried.
var rfc2822Layouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04 -0700",
}

var rfc2822ShortYearLayouts = []string{
	"Mon, 2 Jan 06 15:04:05 -0700",
	"Mon, 2 Jan 06 15:04 -0700",
	"2 Jan 06 15:04:05 -0700",
	"2 Jan 06 15:04 -0700",
}

// obsoleteZones are the zone names RFC 2822 section 4.3 still allows.
var obsoleteZones = map[string]string{
	"UT":  "+0000",
	"GMT": "+0000",
	"Z":   "+0000",
	"EST": "-0500",
	"EDT": "-0400",
	"CST": "-0600",
	"CDT": "-0500",
	"MST": "-0700",
	"MDT": "-0600",
	"PST": "-0800",
	"PDT": "-0700",
}

func parseRFC2822(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if idx := strings.LastIndexByte(s, ' '); idx >= 0 {
		if off, ok := obsoleteZones[strings.ToUpper(s[idx+1:])]; ok {
			s = s[:idx+1] + off
		}
	}
	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range rfc2822ShortYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			// Two digit years below 50 are in this century, the rest in the last one.
			// time.Parse splits at 69 instead.
			if t.Year() >= 2050 {
				t = t.AddDate(-100, 0, 0)
			}
			return t, true
		}
	}
	return time.Time{}, false
}

// Layouts tried after RFC 2822 and RFC 3339, in order. Single digit months, days and
// hours are accepted.
var (
	zonedLayouts = []string{
		"2006-1-2 15:04:05 -0700",
		"2006-1-2 15:04:05 -07:00",
	}
	naiveLayouts = []string{
		"2006-1-2 15:04:05",
		"2006-1-2 15:04",
	}
	dateLayouts = []string{
		"2006-1-2",
		"2006/1/2",
		"1/2/2006",
	}
)

// ParseDateTime parses text as a date-time or a date. The formats are tried in a
// fixed order and the first one that matches wins:
//
//  1. RFC 2822, e.g. "Fri, 20 Dec 1996 00:39:57 GMT"
//  2. RFC 3339, e.g. "2023-12-31T13:21:00Z"
//  3. "2023-12-31 13:21:00 +0100"
//  4. "2023-12-31 13:21:00", in UTC
//  5. "2023-12-31 13:21", in UTC
//  6. "2023-12-31"
//  7. "2023/12/31"
//  8. "12/31/2023"
//  9. a JSON string holding an RFC 3339 instant, quotes included
//
// Formats 6 to 8 yield an xsd:date, all others an xsd:dateTime.
func ParseDateTime(text string) (Literal, error) {
	if t, ok := parseRFC2822(text); ok {
		return NewDateTime(t), nil
	}
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return NewDateTime(t), nil
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return NewDateTime(t), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return NewDateTime(t), nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return NewDateLiteral(DateOf(t)), nil
		}
	}
	// The last step takes a JSON string holding an RFC 3339 instant. Decoding into a
	// string first keeps a bare null from turning into the zero time.
	var quoted string
	err := json.Unmarshal([]byte(text), &quoted)
	if err == nil {
		var t time.Time
		if t, err = time.Parse(time.RFC3339Nano, quoted); err == nil {
			return NewDateTime(t), nil
		}
	}
	return Literal{}, errors.WithStack(&UnknownValueForDataTypeError{
		DataType: DateTimeID, Value: text, Err: err})
}
