/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// IRIBase is the base that relative IRIs are resolved against. *url.URL satisfies it.
type IRIBase interface {
	String() string
}

// BaseIRI is an IRIBase held as text. Unlike *url.URL it keeps an empty trailing
// fragment, as in "https://example.org/ontology#".
type BaseIRI string

func (b BaseIRI) String() string { return string(b) }

func baseString(base IRIBase) string {
	if base == nil {
		return ""
	}
	return base.String()
}

// joinBase appends rel to base, adding a '/' unless base already ends in '/' or '#'.
func joinBase(base, rel string) string {
	if strings.HasSuffix(base, "/") || strings.HasSuffix(base, "#") {
		return base + rel
	}
	return base + "/" + rel
}

// FromText interprets text as a value of type dt. Relative IRIs are resolved against
// base, which may be nil.
//
// A nil Literal with a nil error means there is no value, which is what the unbound
// type yields for any text.
func FromText(dt DataType, text string, base IRIBase) (*Literal, error) {
	lit, err := fromText(dt, text, base)
	if err != nil {
		glog.V(2).Infof("Unable to parse %q as %s: %v", text, dt, err)
		return nil, err
	}
	return lit, nil
}

func fromText(dt DataType, text string, base IRIBase) (*Literal, error) {
	if dt == UnboundValueID {
		return nil, nil
	}

	var lit Literal
	switch dt.Category() {
	case IRICategory:
		t, _ := dt.AsIRIType()
		l, err := parseIRIText(text, t, base)
		if err != nil {
			return nil, err
		}
		lit = l
	case BlankNodeCategory:
		lit = NewBlankNode(text)
	case StringCategory:
		t, _ := dt.AsStringType()
		lit = NewString(text, t)
	case BooleanCategory:
		l, err := ParseBool(text)
		if err != nil {
			return nil, err
		}
		lit = l
	case DateCategory, DateTimeCategory:
		l, err := ParseDateTime(text)
		if err != nil {
			return nil, err
		}
		lit = l
	case DateTimeStampCategory:
		t, err := time.Parse(time.RFC3339Nano, text)
		if err != nil {
			return nil, errors.WithStack(&UnknownValueForDataTypeError{
				DataType: dt, Value: text, Err: err})
		}
		lit = NewDateTimeStamp(t)
	case DecimalCategory:
		lit = NewDecimal(text)
	case DurationCategory:
		lit = NewDuration(text)
	case SignedIntegerCategory:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, errors.WithStack(&UnknownValueForDataTypeError{
				DataType: dt, Value: text, Err: err})
		}
		t, _ := dt.AsSignedIntegerType()
		lit = NewSignedInteger(i, t)
	case UnsignedIntegerCategory:
		u, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, errors.WithStack(&UnknownValueForDataTypeError{
				DataType: dt, Value: text, Err: err})
		}
		t, _ := dt.AsUnsignedIntegerType()
		lit = NewUnsignedInteger(u, t)
	default:
		glog.Warningf("Data type %s (%s) has no lexical form", dt, dt.IRI())
		return nil, errors.WithStack(&UnsupportedDataTypeError{DataType: dt})
	}
	return &lit, nil
}

// parseIRIText accepts an absolute IRI, optionally in angle brackets, or an IRI
// relative to base.
func parseIRIText(text string, t IRIType, base IRIBase) (Literal, error) {
	text = stripAngleBrackets(text)
	if l, err := NewIRI(text, t); err == nil {
		return l, nil
	}
	if b := baseString(base); b != "" {
		if l, err := NewIRI(joinBase(b, text), t); err == nil {
			return l, nil
		}
	}
	return Literal{}, errors.WithStack(&UnknownValueForDataTypeError{
		DataType: t.DataType(), Value: text})
}

// FromTextIRI is FromText for a data type given by its type identifier, e.g.
// http://www.w3.org/2001/XMLSchema#integer.
func FromTextIRI(typeIRI, text string, base IRIBase) (*Literal, error) {
	dt, err := DataTypeFromIRI(typeIRI)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return FromText(dt, text, base)
}

// FromTextID is FromText for a data type given by its numeric id.
func FromTextID(id uint8, text string, base IRIBase) (*Literal, error) {
	dt, err := DataTypeFromID(id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return FromText(dt, text, base)
}
