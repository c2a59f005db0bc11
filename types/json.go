/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"bytes"
	"regexp"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MarshalJSON writes booleans and integers as JSON literals and every other payload
// as a JSON string of its lexical form. Blank node labels are written without "_:".
func (l Literal) MarshalJSON() ([]byte, error) {
	switch v := l.payload().(type) {
	case BooleanValue:
		return json.Marshal(bool(v))
	case SignedIntegerValue:
		return json.Marshal(int64(v))
	case UnsignedIntegerValue:
		return json.Marshal(uint64(v))
	case DateTimeValue:
		return json.Marshal(v.t.Format(time.RFC3339Nano))
	case DateTimeStampValue:
		return json.Marshal(v.t.Format(time.RFC3339Nano))
	}
	return json.Marshal(l.Lexical())
}

// UnmarshalJSON reads a JSON string through InferLiteral. JSON booleans become
// xsd:boolean and JSON numbers xsd:integer, or xsd:decimal when they are not
// integral. null leaves l unchanged.
func (l *Literal) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return errors.Wrapf(err, "while decoding literal %s", data)
	}
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		lit, err := InferLiteral(v)
		if err != nil {
			return err
		}
		*l = lit
	case bool:
		*l = NewBool(v)
	case json.Number:
		*l = numberLiteral(v.String())
	default:
		return errors.Errorf("a literal can not be decoded from %s", data)
	}
	return nil
}

func numberLiteral(s string) Literal {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewSignedInteger(i, Integer)
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return NewUnsignedInteger(u, NonNegativeInteger)
	}
	return NewDecimal(s)
}

var decimalShape = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// InferLiteral guesses the type of untyped text. It tries, in order, an absolute
// IRI, an xsd:integer, the date-time formats of ParseDateTime and an xsd:decimal,
// and falls back to a plain literal.
func InferLiteral(text string) (Literal, error) {
	for _, dt := range []DataType{AnyURIID, IntegerID, DateTimeID} {
		if lit, err := fromText(dt, text, nil); err == nil && lit != nil {
			return *lit, nil
		}
	}
	if decimalShape.MatchString(text) {
		return NewDecimal(text), nil
	}
	return NewPlainLiteral(text), nil
}
