/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDataTypeFromID(t *testing.T) {
	for id := 0; id <= 35; id++ {
		dt, err := DataTypeFromID(uint8(id))
		require.NoError(t, err)
		require.Equal(t, uint8(id), uint8(dt))
	}

	for _, id := range []uint8{36, 100, 255} {
		_, err := DataTypeFromID(id)
		var unknown *UnknownDataTypeError
		require.True(t, errors.As(err, &unknown), "id %d", id)
		require.Equal(t, id, unknown.ID)
	}
}

func TestDataTypeFromIRI(t *testing.T) {
	for _, info := range Catalogue() {
		dt, err := DataTypeFromIRI(info.ID.IRI())
		require.NoError(t, err)
		require.Equal(t, info.ID, dt, "round trip of %s", info.IRI)
	}

	tests := []struct {
		iri string
		out DataType
	}{
		{"http://www.w3.org/2001/XMLSchema#integer", IntegerID},
		{"http://www.w3.org/2001/XMLSchema#anyURI", AnyURIID},
		{"http://www.w3.org/2001/XMLSchema#dateTimeStamp", DateTimeStampID},
		{"http://www.w3.org/1999/02/22-rdf-syntax-ns#PlainLiteral", PlainLiteralID},
		{"http://www.w3.org/2000/01/rdf-schema#Literal", LiteralID},
		{"IRI Reference", IRIReferenceID},
		{"Blank Node", BlankNodeID},
	}
	for _, tc := range tests {
		dt, err := DataTypeFromIRI(tc.iri)
		require.NoError(t, err)
		require.Equal(t, tc.out, dt, tc.iri)
	}

	_, err := DataTypeFromIRI("http://www.w3.org/2001/XMLSchema#nonsense")
	var unknown *UnknownXSDDataTypeError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "http://www.w3.org/2001/XMLSchema#nonsense", unknown.IRI)
}

func TestDataTypeForName(t *testing.T) {
	dt, ok := DataTypeForName("AnyUri")
	require.True(t, ok)
	require.Equal(t, AnyURIID, dt)

	dt, ok = DataTypeForName("UnsignedByte")
	require.True(t, ok)
	require.Equal(t, UnsignedByteID, dt)

	_, ok = DataTypeForName("anyuri")
	require.False(t, ok)
}

func TestCatalogueEntries(t *testing.T) {
	got := Catalogue()
	require.Len(t, got, 36)
	for i, info := range got {
		require.Equal(t, DataType(i), info.ID)
	}

	want := []DataTypeInfo{
		{UnboundValueID, "UnboundValue", "Unbound Value", NoCategory},
		{BlankNodeID, "BlankNode", "Blank Node", BlankNodeCategory},
		{IRIReferenceID, "IriReference", "IRI Reference", IRICategory},
		{LiteralID, "Literal", "http://www.w3.org/2000/01/rdf-schema#Literal", NoCategory},
		{AnyURIID, "AnyUri", "http://www.w3.org/2001/XMLSchema#anyURI", IRICategory},
		{StringID, "String", "http://www.w3.org/2001/XMLSchema#string", StringCategory},
	}
	if diff := cmp.Diff(want, got[:len(want)]); diff != "" {
		t.Errorf("catalogue head mismatch (-want +got):\n%s", diff)
	}

	// Callers get a copy.
	got[0].Name = "changed"
	require.Equal(t, "UnboundValue", Catalogue()[0].Name)
}

func TestCategories(t *testing.T) {
	tests := []struct {
		dt  DataType
		cat Category
	}{
		{StringID, StringCategory},
		{PlainLiteralID, StringCategory},
		{AnyURIID, IRICategory},
		{IRIReferenceID, IRICategory},
		{BooleanID, BooleanCategory},
		{DateID, DateCategory},
		{DateTimeID, DateTimeCategory},
		{DateTimeStampID, DateTimeStampCategory},
		{DecimalID, DecimalCategory},
		{DurationID, DurationCategory},
		{BlankNodeID, BlankNodeCategory},
		{IntID, SignedIntegerCategory},
		{IntegerID, SignedIntegerCategory},
		{NegativeIntegerID, SignedIntegerCategory},
		{NonPositiveIntegerID, SignedIntegerCategory},
		{LongID, SignedIntegerCategory},
		{ShortID, SignedIntegerCategory},
		{ByteID, SignedIntegerCategory},
		{PositiveIntegerID, UnsignedIntegerCategory},
		{NonNegativeIntegerID, UnsignedIntegerCategory},
		{UnsignedByteID, UnsignedIntegerCategory},
		{UnsignedShortID, UnsignedIntegerCategory},
		{UnsignedIntID, UnsignedIntegerCategory},
		{UnsignedLongID, UnsignedIntegerCategory},
		{UnboundValueID, NoCategory},
		{LiteralID, NoCategory},
		{TimeID, NoCategory},
		{YearID, NoCategory},
		{DoubleID, NoCategory},
		{FloatID, NoCategory},
		{DayTimeDurationID, NoCategory},
	}
	for _, tc := range tests {
		require.Equal(t, tc.cat, tc.dt.Category(), "%s", tc.dt)
	}

	require.True(t, IntID.IsInteger())
	require.True(t, UnsignedByteID.IsInteger())
	require.False(t, DecimalID.IsInteger())
	require.True(t, AnyURIID.IsIRI())
	require.False(t, StringID.IsIRI())
	require.Equal(t, "signed-integer", SignedIntegerCategory.String())
}

func TestDataTypeOutOfRange(t *testing.T) {
	forged := DataType(200)
	require.Equal(t, "DataType(200)", forged.String())
	require.Equal(t, NoCategory, forged.Category())
	require.Panics(t, func() { _ = forged.IRI() })
}

func TestRestrictedTypes(t *testing.T) {
	require.Equal(t, IRIReferenceID, IRIType{}.DataType())
	require.Equal(t, StringID, StringType{}.DataType())
	require.Equal(t, IntegerID, SignedIntegerType{}.DataType())
	require.Equal(t, NonNegativeIntegerID, UnsignedIntegerType{}.DataType())

	it, ok := AnyURIID.AsIRIType()
	require.True(t, ok)
	require.Equal(t, AnyURI, it)

	_, ok = StringID.AsIRIType()
	require.False(t, ok)

	st, ok := ShortID.AsSignedIntegerType()
	require.True(t, ok)
	require.Equal(t, ShortID, st.DataType())

	_, ok = ShortID.AsUnsignedIntegerType()
	require.False(t, ok)

	ut, ok := UnsignedShortID.AsUnsignedIntegerType()
	require.True(t, ok)
	require.Equal(t, UnsignedShort, ut)

	pt, ok := PlainLiteralID.AsStringType()
	require.True(t, ok)
	require.Equal(t, PlainLiteral, pt)
}
