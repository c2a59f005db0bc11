/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

// The types below restrict a DataType to one category. Their only field is
// unexported, so outside this package a value can only be one of the variables
// declared here or the zero value, which stands for the category's canonical type.
// Constructors take these instead of a DataType, which makes it impossible to
// build e.g. an xsd:boolean Literal around an int64.

// IRIType is a DataType of the IRI category.
type IRIType struct{ id DataType }

var (
	IRIReference = IRIType{IRIReferenceID}
	AnyURI       = IRIType{AnyURIID}
)

// DataType returns the restricted type. The zero IRIType is IRIReferenceID.
func (t IRIType) DataType() DataType {
	if t.id == UnboundValueID {
		return IRIReferenceID
	}
	return t.id
}

// StringType is a DataType of the string category.
type StringType struct{ id DataType }

var (
	XSDString    = StringType{StringID}
	PlainLiteral = StringType{PlainLiteralID}
)

// DataType returns the restricted type. The zero StringType is StringID.
func (t StringType) DataType() DataType {
	if t.id == UnboundValueID {
		return StringID
	}
	return t.id
}

// SignedIntegerType is a DataType of the signed integer category.
type SignedIntegerType struct{ id DataType }

var (
	Integer            = SignedIntegerType{IntegerID}
	Int                = SignedIntegerType{IntID}
	Long               = SignedIntegerType{LongID}
	Short              = SignedIntegerType{ShortID}
	Byte               = SignedIntegerType{ByteID}
	NegativeInteger    = SignedIntegerType{NegativeIntegerID}
	NonPositiveInteger = SignedIntegerType{NonPositiveIntegerID}
)

// DataType returns the restricted type. The zero SignedIntegerType is IntegerID.
func (t SignedIntegerType) DataType() DataType {
	if t.id == UnboundValueID {
		return IntegerID
	}
	return t.id
}

// UnsignedIntegerType is a DataType of the unsigned integer category.
type UnsignedIntegerType struct{ id DataType }

var (
	PositiveInteger    = UnsignedIntegerType{PositiveIntegerID}
	NonNegativeInteger = UnsignedIntegerType{NonNegativeIntegerID}
	UnsignedLong       = UnsignedIntegerType{UnsignedLongID}
	UnsignedInt        = UnsignedIntegerType{UnsignedIntID}
	UnsignedShort      = UnsignedIntegerType{UnsignedShortID}
	UnsignedByte       = UnsignedIntegerType{UnsignedByteID}
)

// DataType returns the restricted type. The zero UnsignedIntegerType is
// NonNegativeIntegerID.
func (t UnsignedIntegerType) DataType() DataType {
	if t.id == UnboundValueID {
		return NonNegativeIntegerID
	}
	return t.id
}

// AsIRIType narrows t to the IRI category.
func (t DataType) AsIRIType() (IRIType, bool) {
	if !t.IsIRI() {
		return IRIType{}, false
	}
	return IRIType{t}, true
}

// AsStringType narrows t to the string category.
func (t DataType) AsStringType() (StringType, bool) {
	if !t.IsString() {
		return StringType{}, false
	}
	return StringType{t}, true
}

// AsSignedIntegerType narrows t to the signed integer category.
func (t DataType) AsSignedIntegerType() (SignedIntegerType, bool) {
	if !t.IsSignedInteger() {
		return SignedIntegerType{}, false
	}
	return SignedIntegerType{t}, true
}

// AsUnsignedIntegerType narrows t to the unsigned integer category.
func (t DataType) AsUnsignedIntegerType() (UnsignedIntegerType, bool) {
	if !t.IsUnsignedInteger() {
		return UnsignedIntegerType{}, false
	}
	return UnsignedIntegerType{t}, true
}
