/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"fmt"
)

// UnknownDataTypeError is returned for a numeric data type id outside the catalogue.
type UnknownDataTypeError struct {
	ID uint8
}

func (e *UnknownDataTypeError) Error() string {
	return fmt.Sprintf("unknown data type id %d", e.ID)
}

// UnknownXSDDataTypeError is returned for a type identifier that is not in the catalogue.
type UnknownXSDDataTypeError struct {
	IRI string
}

func (e *UnknownXSDDataTypeError) Error() string {
	return fmt.Sprintf("unknown XSD data type %q", e.IRI)
}

// UnknownValueForDataTypeError is returned when text can not be interpreted as a value
// of the requested data type. Err holds the underlying parse error, if any.
type UnknownValueForDataTypeError struct {
	DataType DataType
	Value    string
	Err      error
}

func (e *UnknownValueForDataTypeError) Error() string {
	msg := fmt.Sprintf("unknown value %q for data type %s", e.Value, e.DataType.IRI())
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnknownValueForDataTypeError) Unwrap() error { return e.Err }

// UnknownNTriplesValueError is returned for a malformed boolean lexical form.
type UnknownNTriplesValueError struct {
	Value string
}

func (e *UnknownNTriplesValueError) Error() string {
	return fmt.Sprintf("unknown N-Triples value %q", e.Value)
}

// UnsupportedDataTypeError is returned by the lexical parser for catalogue entries that
// have no payload category, e.g. xsd:double or xsd:gYear. It unwraps to an
// UnknownDataTypeError carrying the same id.
type UnsupportedDataTypeError struct {
	DataType DataType
}

func (e *UnsupportedDataTypeError) Error() string {
	return fmt.Sprintf("unsupported data type %s", e.DataType)
}

func (e *UnsupportedDataTypeError) Unwrap() error {
	return &UnknownDataTypeError{ID: uint8(e.DataType)}
}

// InvalidIRIError is returned when an IRI term uses a protocol we do not accept.
type InvalidIRIError struct {
	IRI string
}

func (e *InvalidIRIError) Error() string {
	return fmt.Sprintf("invalid IRI %q", e.IRI)
}
