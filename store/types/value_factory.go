// Copyright 2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"math"
)

func NewBoolean(b bool) Value {
	if b {
		return Value{typeID: Boolean, num: 1}
	}
	return Value{typeID: Boolean, num: 0}
}

// NewBooleanFromCmpBool converts a comparison result. CmpNull becomes a null boolean.
func NewBooleanFromCmpBool(c CmpBool) Value {
	switch c {
	case CmpTrue:
		return NewBoolean(true)
	case CmpFalse:
		return NewBoolean(false)
	default:
		return NullValue(Boolean)
	}
}

func NewTinyInt(x int8) Value {
	return newIntegerValue(TinyInt, int64(x))
}

func NewSmallInt(x int16) Value {
	return newIntegerValue(SmallInt, int64(x))
}

func NewInteger(x int32) Value {
	return newIntegerValue(Integer, int64(x))
}

func NewBigInt(x int64) Value {
	return newIntegerValue(BigInt, x)
}

func NewDecimal(f float64) Value {
	if f == DecimalNull {
		return NullValue(Decimal)
	}
	return Value{typeID: Decimal, num: math.Float64bits(f)}
}

func NewVarchar(s string) Value {
	return Value{typeID: Varchar, str: s}
}

// NewVector builds a vector holding a copy of |elems|.
func NewVector(elems []float64) Value {
	return Value{typeID: Vector, str: encodeVector(elems)}
}

func NewTimestamp(ts uint64) Value {
	if ts == TimestampNull {
		return NullValue(Timestamp)
	}
	return Value{typeID: Timestamp, num: ts}
}

// newIntegerValue builds a value of integer kind |id| from |x|, which must
// already fit the kind. The kind's sentinel yields a null.
func newIntegerValue(id TypeID, x int64) Value {
	if x == integerNull(id) {
		return NullValue(id)
	}
	return Value{typeID: id, num: uint64(x)}
}

// NullValue returns the null of kind |id|.
func NullValue(id TypeID) Value {
	switch id {
	case Boolean, TinyInt, SmallInt, Integer, BigInt:
		return Value{typeID: id, null: true, num: uint64(integerNull(id))}
	case Decimal:
		return Value{typeID: id, null: true, num: math.Float64bits(DecimalNull)}
	case Timestamp:
		return Value{typeID: id, null: true, num: TimestampNull}
	case Varchar, Vector:
		return Value{typeID: id, null: true}
	default:
		return Value{}
	}
}

// ZeroValue returns the zero of kind |id|: false, 0, 0.0, the empty string
// the zero timestamp or the empty vector.
func ZeroValue(id TypeID) (Value, error) {
	switch id {
	case Boolean:
		return NewBoolean(false), nil
	case TinyInt, SmallInt, Integer, BigInt:
		return newIntegerValue(id, 0), nil
	case Decimal:
		return NewDecimal(0), nil
	case Timestamp:
		return NewTimestamp(0), nil
	case Varchar:
		return NewVarchar(""), nil
	case Vector:
		return NewVector(nil), nil
	default:
		return Value{}, ErrUnknownType.New(id.String())
	}
}

// MinValue returns the smallest representable value of kind |id|. Vectors
// are unordered and have no minimum.
func MinValue(id TypeID) (Value, error) {
	switch id {
	case Boolean:
		return NewBoolean(false), nil
	case TinyInt, SmallInt, Integer, BigInt:
		lo, _ := integerRange(id)
		return newIntegerValue(id, lo), nil
	case Decimal:
		return NewDecimal(DecimalMin), nil
	case Timestamp:
		return NewTimestamp(TimestampMin), nil
	case Varchar:
		return NewVarchar(""), nil
	case Vector:
		return Value{}, ErrNotImplemented.New("minimum value", id)
	default:
		return Value{}, ErrUnknownType.New(id.String())
	}
}

// MaxValue returns the largest representable value of kind |id|. Varchar and
// Vector have no maximum.
func MaxValue(id TypeID) (Value, error) {
	switch id {
	case Boolean:
		return NewBoolean(true), nil
	case TinyInt, SmallInt, Integer, BigInt:
		_, hi := integerRange(id)
		return newIntegerValue(id, hi), nil
	case Decimal:
		return NewDecimal(DecimalMax), nil
	case Timestamp:
		return NewTimestamp(TimestampMax), nil
	case Varchar, Vector:
		return Value{}, ErrNotImplemented.New("maximum value", id)
	default:
		return Value{}, ErrUnknownType.New(id.String())
	}
}

func integerNull(id TypeID) int64 {
	switch id {
	case Boolean:
		return int64(BooleanNull)
	case TinyInt:
		return int64(TinyIntNull)
	case SmallInt:
		return int64(SmallIntNull)
	case Integer:
		return int64(IntegerNull)
	default:
		return BigIntNull
	}
}

func integerRange(id TypeID) (int64, int64) {
	switch id {
	case TinyInt:
		return int64(TinyIntMin), int64(TinyIntMax)
	case SmallInt:
		return int64(SmallIntMin), int64(SmallIntMax)
	case Integer:
		return int64(IntegerMin), int64(IntegerMax)
	default:
		return BigIntMin, BigIntMax
	}
}
