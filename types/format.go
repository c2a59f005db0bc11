/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/literal/x"
)

// String renders l for display: IRIs in angle brackets, strings in double quotes,
// blank nodes with "_:" and everything else in its lexical form.
func (l Literal) String() string {
	switch v := l.payload().(type) {
	case IRIValue:
		return "<" + string(v) + ">"
	case StringValue:
		return `"` + string(v) + `"`
	case BlankNodeValue:
		return "_:" + string(v)
	}
	return l.Lexical()
}

// turtleEscaper escapes the characters a Turtle STRING_LITERAL_QUOTE can not hold.
var turtleEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

// Turtle renders l as a Turtle term. Dates, date-times and durations get an explicit
// xsd datatype, decimals are written bare.
func (l Literal) Turtle() string {
	switch v := l.payload().(type) {
	case IRIValue:
		return "<" + string(v) + ">"
	case StringValue:
		return `"` + turtleEscaper.Replace(string(v)) + `"`
	case BlankNodeValue:
		return "_:" + string(v)
	case Date:
		return `"` + v.String() + `"^^xsd:date`
	case DateTimeValue:
		return `"` + v.t.Format(time.RFC3339Nano) + `"^^xsd:dateTime`
	case DateTimeStampValue:
		return `"` + v.t.Format(time.RFC3339Nano) + `"^^xsd:dateTimeStamp`
	case DurationValue:
		return `"` + string(v) + `"^^xsd:duration`
	}
	return l.Lexical()
}

func jsonString(s string) string {
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	// A Go string always marshals.
	x.Check(err)
	return string(b)
}

// JSON renders l as a JSON value. Booleans, integers and decimals are written bare,
// everything else as a JSON string.
func (l Literal) JSON() string {
	switch l.payload().(type) {
	case BooleanValue, SignedIntegerValue, UnsignedIntegerValue, DecimalValue:
		return l.Lexical()
	case BlankNodeValue:
		return jsonString(l.String())
	}
	return jsonString(l.Lexical())
}

// URLEncoded renders l for use in a URL query. Strings are form encoded, everything
// else is rendered as by String.
func (l Literal) URLEncoded() string {
	switch v := l.payload().(type) {
	case StringValue:
		return url.QueryEscape(string(v))
	case BooleanValue:
		return l.Lexical()
	}
	return l.String()
}

// IsUnderBase reports whether l is an IRI that starts with base.
func (l Literal) IsUnderBase(base IRIBase) bool {
	iri, ok := l.AsIRI()
	if !ok {
		return false
	}
	b := baseString(base)
	return b != "" && strings.HasPrefix(iri, b)
}

// LocalID returns the part of an IRI after base.
func (l Literal) LocalID(base IRIBase) (string, error) {
	iri, ok := l.AsIRI()
	if !ok {
		return "", errors.WithStack(&UnknownDataTypeError{ID: uint8(l.DataType())})
	}
	if !l.IsUnderBase(base) {
		return "", errors.WithStack(&UnknownValueForDataTypeError{
			DataType: l.DataType(), Value: iri,
			Err: errors.Errorf("not under base %q", baseString(base))})
	}
	return iri[len(baseString(base)):], nil
}

// IDString returns the local id of an IRI under base and the display form of
// anything else.
func (l Literal) IDString(base IRIBase) string {
	if id, err := l.LocalID(base); err == nil {
		return id
	}
	return l.String()
}
