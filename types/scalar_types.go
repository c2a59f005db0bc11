/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package types holds the typed scalar values used for RDF literals: the DataType
// catalogue, the Literal value and its lexical parsing and rendering.
package types

import (
	"fmt"

	"github.com/hypermodeinc/literal/x"
)

// DataType is the XSD data type of a Literal.
type DataType uint8

// Note: These ids are consumed by the database engine to indicate the type of a
// value. The order *cannot* be changed without breaking existing data. When adding
// a new type *always* add to the end of this list. Never delete anything from this
// list even if it becomes unused.
const (
	UnboundValueID       DataType = 0
	BlankNodeID          DataType = 1
	IRIReferenceID       DataType = 2
	LiteralID            DataType = 3
	AnyURIID             DataType = 4
	StringID             DataType = 5
	PlainLiteralID       DataType = 6
	BooleanID            DataType = 7
	DateTimeID           DataType = 8
	DateTimeStampID      DataType = 9
	TimeID               DataType = 10
	DateID               DataType = 11
	YearMonthID          DataType = 12
	YearID               DataType = 13
	MonthDayID           DataType = 14
	DayID                DataType = 15
	MonthID              DataType = 16
	DurationID           DataType = 17
	YearMonthDurationID  DataType = 18
	DayTimeDurationID    DataType = 19
	DoubleID             DataType = 20
	FloatID              DataType = 21
	DecimalID            DataType = 22
	IntegerID            DataType = 23
	NonNegativeIntegerID DataType = 24
	NonPositiveIntegerID DataType = 25
	NegativeIntegerID    DataType = 26
	PositiveIntegerID    DataType = 27
	LongID               DataType = 28
	IntID                DataType = 29
	ShortID              DataType = 30
	ByteID               DataType = 31
	UnsignedLongID       DataType = 32
	UnsignedIntID        DataType = 33
	UnsignedShortID      DataType = 34
	UnsignedByteID       DataType = 35
)

// DefaultDataType is boolean, since the zero Literal holds the boolean false.
const DefaultDataType = BooleanID

// Category groups the data types that share a payload representation. It is the only
// key used to dispatch equality, hashing and formatting.
type Category uint8

const (
	NoCategory Category = iota
	StringCategory
	IRICategory
	BooleanCategory
	SignedIntegerCategory
	UnsignedIntegerCategory
	DateCategory
	DateTimeCategory
	DateTimeStampCategory
	DecimalCategory
	DurationCategory
	BlankNodeCategory
)

var categoryNames = [...]string{
	NoCategory:              "none",
	StringCategory:          "string",
	IRICategory:             "iri",
	BooleanCategory:         "boolean",
	SignedIntegerCategory:   "signed-integer",
	UnsignedIntegerCategory: "unsigned-integer",
	DateCategory:            "date",
	DateTimeCategory:        "date-time",
	DateTimeStampCategory:   "date-time-stamp",
	DecimalCategory:         "decimal",
	DurationCategory:        "duration",
	BlankNodeCategory:       "blank-node",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

const (
	xsdNS  = "http://www.w3.org/2001/XMLSchema#"
	rdfNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	rdfsNS = "http://www.w3.org/2000/01/rdf-schema#"
)

// DataTypeInfo describes one catalogue entry.
type DataTypeInfo struct {
	ID       DataType `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	IRI      string   `json:"iri" yaml:"iri"`
	Category Category `json:"category" yaml:"category"`
}

// catalogue is indexed by DataType.
var catalogue = [...]DataTypeInfo{
	{UnboundValueID, "UnboundValue", "Unbound Value", NoCategory},
	{BlankNodeID, "BlankNode", "Blank Node", BlankNodeCategory},
	{IRIReferenceID, "IriReference", "IRI Reference", IRICategory},
	{LiteralID, "Literal", rdfsNS + "Literal", NoCategory},
	{AnyURIID, "AnyUri", xsdNS + "anyURI", IRICategory},
	{StringID, "String", xsdNS + "string", StringCategory},
	{PlainLiteralID, "PlainLiteral", rdfNS + "PlainLiteral", StringCategory},
	{BooleanID, "Boolean", xsdNS + "boolean", BooleanCategory},
	{DateTimeID, "DateTime", xsdNS + "dateTime", DateTimeCategory},
	{DateTimeStampID, "DateTimeStamp", xsdNS + "dateTimeStamp", DateTimeStampCategory},
	{TimeID, "Time", xsdNS + "time", NoCategory},
	{DateID, "Date", xsdNS + "date", DateCategory},
	{YearMonthID, "YearMonth", xsdNS + "gYearMonth", NoCategory},
	{YearID, "Year", xsdNS + "gYear", NoCategory},
	{MonthDayID, "MonthDay", xsdNS + "gMonthDay", NoCategory},
	{DayID, "Day", xsdNS + "gDay", NoCategory},
	{MonthID, "Month", xsdNS + "gMonth", NoCategory},
	{DurationID, "Duration", xsdNS + "duration", DurationCategory},
	{YearMonthDurationID, "YearMonthDuration", xsdNS + "yearMonthDuration", NoCategory},
	{DayTimeDurationID, "DayTimeDuration", xsdNS + "dayTimeDuration", NoCategory},
	{DoubleID, "Double", xsdNS + "double", NoCategory},
	{FloatID, "Float", xsdNS + "float", NoCategory},
	{DecimalID, "Decimal", xsdNS + "decimal", DecimalCategory},
	{IntegerID, "Integer", xsdNS + "integer", SignedIntegerCategory},
	{NonNegativeIntegerID, "NonNegativeInteger", xsdNS + "nonNegativeInteger", UnsignedIntegerCategory},
	{NonPositiveIntegerID, "NonPositiveInteger", xsdNS + "nonPositiveInteger", SignedIntegerCategory},
	{NegativeIntegerID, "NegativeInteger", xsdNS + "negativeInteger", SignedIntegerCategory},
	{PositiveIntegerID, "PositiveInteger", xsdNS + "positiveInteger", UnsignedIntegerCategory},
	{LongID, "Long", xsdNS + "long", SignedIntegerCategory},
	{IntID, "Int", xsdNS + "int", SignedIntegerCategory},
	{ShortID, "Short", xsdNS + "short", SignedIntegerCategory},
	{ByteID, "Byte", xsdNS + "byte", SignedIntegerCategory},
	{UnsignedLongID, "UnsignedLong", xsdNS + "unsignedLong", UnsignedIntegerCategory},
	{UnsignedIntID, "UnsignedInt", xsdNS + "unsignedInt", UnsignedIntegerCategory},
	{UnsignedShortID, "UnsignedShort", xsdNS + "unsignedShort", UnsignedIntegerCategory},
	{UnsignedByteID, "UnsignedByte", xsdNS + "unsignedByte", UnsignedIntegerCategory},
}

var (
	typeIRIMap  = make(map[string]DataType, len(catalogue))
	typeNameMap = make(map[string]DataType, len(catalogue))
)

func init() {
	for i, info := range catalogue {
		x.AssertTruef(int(info.ID) == i, "catalogue entry %s is at position %d", info.Name, i)
		typeIRIMap[info.IRI] = info.ID
		typeNameMap[info.Name] = info.ID
	}
}

// DataTypeFromID returns the data type with the given numeric id.
func DataTypeFromID(id uint8) (DataType, error) {
	if int(id) >= len(catalogue) {
		return UnboundValueID, &UnknownDataTypeError{ID: id}
	}
	return DataType(id), nil
}

// DataTypeFromIRI returns the data type identified by the given XSD (or RDF) IRI.
func DataTypeFromIRI(iri string) (DataType, error) {
	if t, ok := typeIRIMap[iri]; ok {
		return t, nil
	}
	return UnboundValueID, &UnknownXSDDataTypeError{IRI: iri}
}

// DataTypeForName returns the type corresponding to the given name, e.g. "Integer".
func DataTypeForName(name string) (DataType, bool) {
	t, ok := typeNameMap[name]
	return t, ok
}

// Catalogue returns a copy of every catalogue entry, ordered by id.
func Catalogue() []DataTypeInfo {
	out := make([]DataTypeInfo, len(catalogue))
	copy(out, catalogue[:])
	return out
}

func (t DataType) valid() bool {
	return int(t) < len(catalogue)
}

// IRI returns the type identifier of t. Every catalogue entry has one, so this only
// panics for a DataType that was forged from an out of range number.
func (t DataType) IRI() string {
	if !t.valid() {
		panic(fmt.Sprintf("DataType %d is not in the catalogue", uint8(t)))
	}
	return catalogue[t].IRI
}

// String returns the name of the type.
func (t DataType) String() string {
	if !t.valid() {
		return fmt.Sprintf("DataType(%d)", uint8(t))
	}
	return catalogue[t].Name
}

// Category returns the payload category of t.
func (t DataType) Category() Category {
	if !t.valid() {
		return NoCategory
	}
	return catalogue[t].Category
}

func (t DataType) IsString() bool          { return t.Category() == StringCategory }
func (t DataType) IsIRI() bool             { return t.Category() == IRICategory }
func (t DataType) IsBoolean() bool         { return t.Category() == BooleanCategory }
func (t DataType) IsDate() bool            { return t.Category() == DateCategory }
func (t DataType) IsDateTime() bool        { return t.Category() == DateTimeCategory }
func (t DataType) IsDateTimeStamp() bool   { return t.Category() == DateTimeStampCategory }
func (t DataType) IsDecimal() bool         { return t.Category() == DecimalCategory }
func (t DataType) IsDuration() bool        { return t.Category() == DurationCategory }
func (t DataType) IsSignedInteger() bool   { return t.Category() == SignedIntegerCategory }
func (t DataType) IsUnsignedInteger() bool { return t.Category() == UnsignedIntegerCategory }
func (t DataType) IsBlankNode() bool       { return t.Category() == BlankNodeCategory }

// IsInteger returns whether the type is a signed or an unsigned integer type.
func (t DataType) IsInteger() bool {
	return t.IsSignedInteger() || t.IsUnsignedInteger()
}
