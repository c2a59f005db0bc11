/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"encoding/binary"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	farm "github.com/dgryski/go-farm"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/literal/x"
)

// Literal is a typed scalar value such as a string, a number or a date, or an IRI or
// blank node used in the same positions. It pairs a DataType with the Value payload of
// that DataType's category.
//
// A Literal is immutable and safe to copy and share. The zero Literal is the boolean
// false, as DefaultDataType says.
type Literal struct {
	dataType DataType
	value    Value
}

// iriForbidden holds the characters, besides controls and space, that an IRIREF may
// not contain.
const iriForbidden = "<>\"{}|^`\\"

// validateIRI accepts absolute IRIs only, i.e. there has to be a scheme.
func validateIRI(s string) error {
	if s == "" {
		return errors.New("empty IRI")
	}
	for _, r := range s {
		if r <= 0x20 || strings.ContainsRune(iriForbidden, r) {
			return errors.Errorf("invalid character %q in IRI", r)
		}
	}
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme == "" {
		return errors.Errorf("IRI %q has no scheme", s)
	}
	return nil
}

// NewIRI returns an IRI literal. The IRI has to be absolute.
func NewIRI(iri string, t IRIType) (Literal, error) {
	if err := validateIRI(iri); err != nil {
		return Literal{}, errors.WithStack(&UnknownValueForDataTypeError{
			DataType: t.DataType(), Value: iri, Err: err})
	}
	return newIRI(IRIValue(iri), t), nil
}

// newIRI builds an IRI literal from an identifier that was already validated.
func newIRI(v IRIValue, t IRIType) Literal {
	return Literal{t.DataType(), v}
}

// NewIRIFromString returns an IRI reference literal. The IRI may be given with or
// without surrounding angle brackets.
func NewIRIFromString(s string) (Literal, error) {
	return NewIRI(stripAngleBrackets(s), IRIReference)
}

func stripAngleBrackets(s string) string {
	if len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>' {
		return s[1 : len(s)-1]
	}
	return s
}

// NewString returns a string literal.
func NewString(s string, t StringType) Literal {
	return Literal{t.DataType(), StringValue(s)}
}

// NewPlainLiteral returns an untyped string literal.
func NewPlainLiteral(s string) Literal {
	return NewString(s, PlainLiteral)
}

// NewPlainLiteralBool returns an untyped string literal holding "true" or "false".
func NewPlainLiteralBool(b bool) Literal {
	return NewPlainLiteral(strconv.FormatBool(b))
}

// NewBool returns an xsd:boolean literal.
func NewBool(b bool) Literal {
	return Literal{BooleanID, BooleanValue(b)}
}

// ParseBool returns an xsd:boolean literal for exactly "true" or "false".
func ParseBool(s string) (Literal, error) {
	switch s {
	case "true":
		return NewBool(true), nil
	case "false":
		return NewBool(false), nil
	}
	return Literal{}, errors.WithStack(&UnknownNTriplesValueError{Value: s})
}

// NewSignedInteger returns a literal of one of the signed integer types.
func NewSignedInteger(i int64, t SignedIntegerType) Literal {
	return Literal{t.DataType(), SignedIntegerValue(i)}
}

// NewUnsignedInteger returns a literal of one of the unsigned integer types.
func NewUnsignedInteger(u uint64, t UnsignedIntegerType) Literal {
	return Literal{t.DataType(), UnsignedIntegerValue(u)}
}

// NewInteger picks the narrowest integer type for i: xsd:positiveInteger,
// xsd:nonNegativeInteger for zero, or xsd:negativeInteger.
func NewInteger(i int64) Literal {
	if i >= 0 {
		return NewUnsigned(uint64(i))
	}
	return NewSignedInteger(i, NegativeInteger)
}

// NewUnsigned returns an xsd:positiveInteger, or xsd:nonNegativeInteger for zero.
func NewUnsigned(u uint64) Literal {
	if u == 0 {
		return NewUnsignedInteger(u, NonNegativeInteger)
	}
	return NewUnsignedInteger(u, PositiveInteger)
}

// NewDateLiteral returns an xsd:date literal.
func NewDateLiteral(d Date) Literal {
	return Literal{DateID, d}
}

// NewDateTime returns an xsd:dateTime literal holding t in UTC.
func NewDateTime(t time.Time) Literal {
	return Literal{DateTimeID, NewDateTimeValue(t)}
}

// NewDateTimeStamp returns an xsd:dateTimeStamp literal holding t in UTC.
func NewDateTimeStamp(t time.Time) Literal {
	return Literal{DateTimeStampID, NewDateTimeStampValue(t)}
}

// NewDecimal returns an xsd:decimal literal. The text is kept as given and is not
// checked for being a decimal number.
func NewDecimal(s string) Literal {
	return Literal{DecimalID, DecimalValue(s)}
}

// NewDuration returns an xsd:duration literal. The text is kept as given and is not
// checked for being an ISO-8601 duration.
func NewDuration(s string) Literal {
	return Literal{DurationID, DurationValue(s)}
}

// NewBlankNode returns a blank node with the given label, without "_:".
func NewBlankNode(label string) Literal {
	return Literal{BlankNodeID, BlankNodeValue(label)}
}

// NewFreshBlankNode returns a blank node whose label is unique to this call. Labels
// start with "b" so they are valid in N-Triples and Turtle alike.
func NewFreshBlankNode() Literal {
	id := uuid.New()
	return NewBlankNode("b" + strings.ReplaceAll(id.String(), "-", ""))
}

func (l Literal) payload() Value {
	if l.value == nil {
		return BooleanValue(false)
	}
	return l.value
}

// DataType returns the data type of l.
func (l Literal) DataType() DataType {
	if l.value == nil {
		return DefaultDataType
	}
	return l.dataType
}

// Category returns the payload category of l.
func (l Literal) Category() Category {
	return l.payload().Category()
}

// Value returns the payload. Its concrete type is determined by l.Category().
func (l Literal) Value() Value {
	return l.payload()
}

func (l Literal) AsIRI() (string, bool) {
	v, ok := l.payload().(IRIValue)
	return string(v), ok
}

func (l Literal) AsString() (string, bool) {
	v, ok := l.payload().(StringValue)
	return string(v), ok
}

func (l Literal) AsBool() (bool, bool) {
	v, ok := l.payload().(BooleanValue)
	return bool(v), ok
}

func (l Literal) AsSignedInteger() (int64, bool) {
	v, ok := l.payload().(SignedIntegerValue)
	return int64(v), ok
}

func (l Literal) AsUnsignedInteger() (uint64, bool) {
	v, ok := l.payload().(UnsignedIntegerValue)
	return uint64(v), ok
}

func (l Literal) AsDate() (Date, bool) {
	v, ok := l.payload().(Date)
	return v, ok
}

func (l Literal) AsDateTime() (time.Time, bool) {
	v, ok := l.payload().(DateTimeValue)
	return v.t, ok
}

func (l Literal) AsDateTimeStamp() (time.Time, bool) {
	v, ok := l.payload().(DateTimeStampValue)
	return v.t, ok
}

func (l Literal) AsDecimal() (string, bool) {
	v, ok := l.payload().(DecimalValue)
	return string(v), ok
}

func (l Literal) AsDuration() (string, bool) {
	v, ok := l.payload().(DurationValue)
	return string(v), ok
}

func (l Literal) AsBlankNode() (string, bool) {
	v, ok := l.payload().(BlankNodeValue)
	return string(v), ok
}

// Lexical returns the lexical form of the payload: the bare IRI, text or label, the
// canonical number, YYYY-MM-DD for dates and RFC 3339 for date-times.
func (l Literal) Lexical() string {
	switch v := l.payload().(type) {
	case IRIValue:
		return string(v)
	case StringValue:
		return string(v)
	case BooleanValue:
		return strconv.FormatBool(bool(v))
	case SignedIntegerValue:
		return strconv.FormatInt(int64(v), 10)
	case UnsignedIntegerValue:
		return strconv.FormatUint(uint64(v), 10)
	case DecimalValue:
		return string(v)
	case DurationValue:
		return string(v)
	case BlankNodeValue:
		return string(v)
	case Date:
		return v.String()
	case DateTimeValue:
		return v.t.Format(time.RFC3339Nano)
	case DateTimeStampValue:
		return v.t.Format(time.RFC3339Nano)
	}
	panic(fmt.Sprintf("unhandled payload %T", l.value))
}

// Equal reports whether l and o are of the same category and hold equal payloads.
// Literals of different categories are never equal, whatever their lexical forms.
func (l Literal) Equal(o Literal) bool {
	a, b := l.payload(), o.payload()
	if a.Category() != b.Category() {
		return false
	}
	switch av := a.(type) {
	case Date:
		return av.Equal(b.(Date))
	case DateTimeValue:
		return av.t.Equal(b.(DateTimeValue).t)
	case DateTimeStampValue:
		return av.t.Equal(b.(DateTimeStampValue).t)
	}
	// Same category means same concrete type, and the remaining payloads are
	// comparable scalars.
	return a == b
}

// Hash returns a fingerprint of the category and the payload. Equal literals have
// equal hashes.
func (l Literal) Hash() uint64 {
	v := l.payload()
	buf := make([]byte, 1, 32)
	buf[0] = byte(v.Category())
	switch pv := v.(type) {
	case IRIValue:
		buf = append(buf, pv...)
	case StringValue:
		buf = append(buf, pv...)
	case DecimalValue:
		buf = append(buf, pv...)
	case DurationValue:
		buf = append(buf, pv...)
	case BlankNodeValue:
		buf = append(buf, pv...)
	case BooleanValue:
		if pv {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	case SignedIntegerValue:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(pv))
	case UnsignedIntegerValue:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(pv))
	case Date:
		n := pv.norm()
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(n.year)))
		buf = append(buf, byte(n.month), byte(n.day))
	case DateTimeValue:
		buf = appendInstant(buf, pv.t)
	case DateTimeStampValue:
		buf = appendInstant(buf, pv.t)
	}
	return farm.Fingerprint64(buf)
}

func appendInstant(buf []byte, t time.Time) []byte {
	buf = binary.LittleEndian.AppendUint64(buf, uint64(t.Unix()))
	return binary.LittleEndian.AppendUint32(buf, uint32(t.Nanosecond()))
}

// Clone returns a copy of l, rebuilt through the constructor of its category.
func (l Literal) Clone() Literal {
	dt := l.DataType()
	switch v := l.payload().(type) {
	case IRIValue:
		t, ok := dt.AsIRIType()
		x.AssertTrue(ok)
		return newIRI(v, t)
	case StringValue:
		t, ok := dt.AsStringType()
		x.AssertTrue(ok)
		return NewString(string(v), t)
	case BooleanValue:
		return NewBool(bool(v))
	case SignedIntegerValue:
		t, ok := dt.AsSignedIntegerType()
		x.AssertTrue(ok)
		return NewSignedInteger(int64(v), t)
	case UnsignedIntegerValue:
		t, ok := dt.AsUnsignedIntegerType()
		x.AssertTrue(ok)
		return NewUnsignedInteger(uint64(v), t)
	case DecimalValue:
		return NewDecimal(string(v))
	case DurationValue:
		return NewDuration(string(v))
	case BlankNodeValue:
		return NewBlankNode(string(v))
	case Date:
		return NewDateLiteral(v)
	case DateTimeValue:
		return NewDateTime(v.t)
	case DateTimeStampValue:
		return NewDateTimeStamp(v.t)
	}
	panic(fmt.Sprintf("unhandled payload %T", l.value))
}

const debugTimeLayout = "2006-01-02 15:04:05.999999999 MST"

// GoString renders l as Literal(<DataType>,<payload>), used by %#v.
func (l Literal) GoString() string {
	var b strings.Builder
	b.WriteString("Literal(")
	b.WriteString(l.DataType().String())
	b.WriteByte(',')
	switch v := l.payload().(type) {
	case IRIValue:
		b.WriteString("<" + string(v) + ">")
	case StringValue:
		b.WriteString(`"` + string(v) + `"`)
	case BlankNodeValue:
		b.WriteString("_:" + string(v))
	case DateTimeValue:
		b.WriteString(v.t.Format(debugTimeLayout))
	case DateTimeStampValue:
		b.WriteString(v.t.Format(debugTimeLayout))
	default:
		b.WriteString(l.Lexical())
	}
	b.WriteByte(')')
	return b.String()
}

// LocalName returns the part of an IRI after its last '#' or '/'.
func (l Literal) LocalName() (string, bool) {
	iri, ok := l.AsIRI()
	if !ok {
		return "", false
	}
	idx := strings.LastIndexAny(iri, "#/")
	if idx < 0 {
		return "", false
	}
	return iri[idx+1:], true
}
