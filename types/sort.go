/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"math/big"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/literal/types/collate"
)

// Less returns true if a is strictly less than b. Signed and unsigned integers compare
// with each other; any other pair has to share a category. Durations have no total
// order and can not be compared.
func Less(a, b Literal) (bool, error) {
	c, err := compare(a, b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

func isInteger(c Category) bool {
	return c == SignedIntegerCategory || c == UnsignedIntegerCategory
}

func compare(a, b Literal) (int, error) {
	ca, cb := a.Category(), b.Category()
	if isInteger(ca) && isInteger(cb) {
		return compareIntegers(a.payload(), b.payload()), nil
	}
	if ca != cb {
		return 0, errors.Errorf("Literals of type %s and %s can not be compared.",
			a.DataType(), b.DataType())
	}

	switch av := a.payload().(type) {
	case BooleanValue:
		bv := b.payload().(BooleanValue)
		switch {
		case av == bv:
			return 0, nil
		case !bool(av):
			return -1, nil
		}
		return 1, nil
	case StringValue:
		return collate.Compare("", string(av), string(b.payload().(StringValue))), nil
	case IRIValue:
		return strings.Compare(string(av), string(b.payload().(IRIValue))), nil
	case BlankNodeValue:
		return strings.Compare(string(av), string(b.payload().(BlankNodeValue))), nil
	case Date:
		return av.Time().Compare(b.payload().(Date).Time()), nil
	case DateTimeValue:
		return av.t.Compare(b.payload().(DateTimeValue).t), nil
	case DateTimeStampValue:
		return av.t.Compare(b.payload().(DateTimeStampValue).t), nil
	case DecimalValue:
		return compareDecimals(string(av), string(b.payload().(DecimalValue)))
	}
	return 0, errors.Errorf("Compare not supported for type: %s", a.DataType())
}

func compareIntegers(a, b Value) int {
	toBig := func(v Value) *big.Int {
		if s, ok := v.(SignedIntegerValue); ok {
			return big.NewInt(int64(s))
		}
		return new(big.Int).SetUint64(uint64(v.(UnsignedIntegerValue)))
	}
	return toBig(a).Cmp(toBig(b))
}

func compareDecimals(a, b string) (int, error) {
	ra, ok := new(big.Rat).SetString(a)
	if !ok {
		return 0, errors.Errorf("%q is not a decimal number", a)
	}
	rb, ok := new(big.Rat).SetString(b)
	if !ok {
		return 0, errors.Errorf("%q is not a decimal number", b)
	}
	return ra.Cmp(rb), nil
}

type byValue struct {
	values []Literal
	desc   bool
	err    error
}

func (s *byValue) Len() int      { return len(s.values) }
func (s *byValue) Swap(i, j int) { s.values[i], s.values[j] = s.values[j], s.values[i] }

func (s *byValue) Less(i, j int) bool {
	c, err := compare(s.values[i], s.values[j])
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return false
	}
	if s.desc {
		return c > 0
	}
	return c < 0
}

// Sort sorts the given literals in place, in ascending order unless desc is set. It
// fails if any two literals can not be compared, in which case the order of ls is
// unspecified.
func Sort(ls []Literal, desc bool) error {
	s := &byValue{values: ls, desc: desc}
	sort.Stable(s)
	return s.err
}
