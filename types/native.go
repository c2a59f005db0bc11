/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// FromNative converts a Go value into a Literal. Integers get the type NewInteger or
// NewUnsigned picks, floats become decimals in their shortest exact text and
// strings go through InferLiteral. Anything cast can turn into a string, such as
// []byte or a fmt.Stringer, is treated as a string.
func FromNative(v interface{}) (Literal, error) {
	switch tv := v.(type) {
	case nil:
		return Literal{}, errors.New("a literal can not be made from nil")
	case Literal:
		return tv, nil
	case *Literal:
		if tv == nil {
			return Literal{}, errors.New("nil literal")
		}
		return *tv, nil
	case bool:
		return NewBool(tv), nil
	case string:
		return InferLiteral(tv)
	case time.Time:
		return NewDateTime(tv), nil
	case *time.Time:
		if tv == nil {
			return Literal{}, errors.New("nil time")
		}
		return NewDateTime(*tv), nil
	case Date:
		return NewDateLiteral(tv), nil
	case *url.URL:
		if tv == nil {
			return Literal{}, errors.New("nil URL")
		}
		return NewIRI(tv.String(), IRIReference)
	case json.Number:
		return numberLiteral(tv.String()), nil
	case int, int8, int16, int32, int64:
		i, err := cast.ToInt64E(tv)
		if err != nil {
			return Literal{}, errors.WithStack(err)
		}
		return NewInteger(i), nil
	case uint, uint8, uint16, uint32, uint64:
		u, err := cast.ToUint64E(tv)
		if err != nil {
			return Literal{}, errors.WithStack(err)
		}
		return NewUnsigned(u), nil
	case float32:
		return floatLiteral(float64(tv), 32)
	case float64:
		return floatLiteral(tv, 64)
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return Literal{}, errors.Wrapf(err, "a literal can not be made from %T", v)
	}
	return InferLiteral(s)
}

func floatLiteral(f float64, bitSize int) (Literal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Literal{}, errors.Errorf("%v is not a decimal number", f)
	}
	return NewDecimal(strconv.FormatFloat(f, 'f', -1, bitSize)), nil
}
