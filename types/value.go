/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"fmt"
	"time"
)

// Value is the payload of a Literal. There is exactly one concrete Value type per
// Category and the set is closed: use a type switch to get at the payload.
//
// Decimals and durations keep their lexical text so that no precision is lost.
// Date-times are always held in UTC.
type Value interface {
	Category() Category
	isValue()
}

// IRIValue is an absolute IRI.
type IRIValue string

// StringValue is a plain or xsd:string text.
type StringValue string

// BooleanValue is an xsd:boolean.
type BooleanValue bool

// SignedIntegerValue is the payload of the signed integer types.
type SignedIntegerValue int64

// UnsignedIntegerValue is the payload of the unsigned integer types.
type UnsignedIntegerValue uint64

// DecimalValue is the lexical form of an xsd:decimal.
type DecimalValue string

// DurationValue is the lexical form of an xsd:duration.
type DurationValue string

// BlankNodeValue is a blank node label, without the "_:" prefix.
type BlankNodeValue string

// DateTimeValue is an instant, normalized to UTC.
type DateTimeValue struct{ t time.Time }

// DateTimeStampValue is an instant that was given with an explicit time zone,
// normalized to UTC.
type DateTimeStampValue struct{ t time.Time }

// Date is a calendar date without a time zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func (IRIValue) Category() Category             { return IRICategory }
func (StringValue) Category() Category          { return StringCategory }
func (BooleanValue) Category() Category         { return BooleanCategory }
func (SignedIntegerValue) Category() Category   { return SignedIntegerCategory }
func (UnsignedIntegerValue) Category() Category { return UnsignedIntegerCategory }
func (DecimalValue) Category() Category         { return DecimalCategory }
func (DurationValue) Category() Category        { return DurationCategory }
func (BlankNodeValue) Category() Category       { return BlankNodeCategory }
func (DateTimeValue) Category() Category        { return DateTimeCategory }
func (DateTimeStampValue) Category() Category   { return DateTimeStampCategory }
func (Date) Category() Category                 { return DateCategory }

func (IRIValue) isValue()             {}
func (StringValue) isValue()          {}
func (BooleanValue) isValue()         {}
func (SignedIntegerValue) isValue()   {}
func (UnsignedIntegerValue) isValue() {}
func (DecimalValue) isValue()         {}
func (DurationValue) isValue()        {}
func (BlankNodeValue) isValue()       {}
func (DateTimeValue) isValue()        {}
func (DateTimeStampValue) isValue()   {}
func (Date) isValue()                 {}

// utc drops the location and the monotonic clock reading so that equal instants
// are also equal under ==.
func utc(t time.Time) time.Time {
	return t.UTC().Round(0)
}

// NewDateTimeValue returns t as a UTC instant.
func NewDateTimeValue(t time.Time) DateTimeValue { return DateTimeValue{utc(t)} }

// Time returns the instant in UTC.
func (v DateTimeValue) Time() time.Time { return v.t }

// NewDateTimeStampValue returns t as a UTC instant.
func NewDateTimeStampValue(t time.Time) DateTimeStampValue { return DateTimeStampValue{utc(t)} }

// Time returns the instant in UTC.
func (v DateTimeStampValue) Time() time.Time { return v.t }

// NewDate returns the given calendar date. Out of range values are normalized the way
// time.Date does it, e.g. October 32 becomes November 1.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// norm maps the zero Date to 0001-01-01, the date of the zero time.Time.
func (d Date) norm() Date {
	if d == (Date{}) {
		return Date{year: 1, month: time.January, day: 1}
	}
	return d
}

func (d Date) Year() int          { return d.norm().year }
func (d Date) Month() time.Month  { return d.norm().month }
func (d Date) Day() int           { return d.norm().day }
func (d Date) Equal(o Date) bool  { return d.norm() == o.norm() }
func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	d = d.norm()
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	d = d.norm()
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}
