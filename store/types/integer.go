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
	"strconv"

	"github.com/dolthub/scalar/store/val"
)

// integerType implements the TINYINT, SMALLINT, INTEGER and BIGINT kinds,
// parameterized by the width T of the left operand.
type integerType[T integer] struct {
	typeBase
}

var _ Type = (*integerType[int8])(nil)

func newIntegerType[T integer](id TypeID) *integerType[T] {
	t := &integerType[T]{}
	t.typeBase = typeBase{id: id, ops: t}
	return t
}

func (t *integerType[T]) Add(left, right Value) (Value, error) {
	return t.arithmetic(opAdd, left, right)
}

func (t *integerType[T]) Subtract(left, right Value) (Value, error) {
	return t.arithmetic(opSubtract, left, right)
}

func (t *integerType[T]) Multiply(left, right Value) (Value, error) {
	return t.arithmetic(opMultiply, left, right)
}

func (t *integerType[T]) Divide(left, right Value) (Value, error) {
	return t.arithmetic(opDivide, left, right)
}

func (t *integerType[T]) Modulo(left, right Value) (Value, error) {
	return t.arithmetic(opModulo, left, right)
}

func (t *integerType[T]) arithmetic(op arithOp, left, right Value) (Value, error) {
	if err := checkArithmetic(op, left, right); err != nil {
		return Value{}, err
	}
	if left.IsNull() || right.IsNull() {
		return t.OperateNull(left, right)
	}

	if right.typeID == Varchar {
		coerced, err := right.CastAs(t.id)
		if err != nil {
			return Value{}, err
		}
		right = coerced
	}

	if (op == opDivide || op == opModulo) && right.IsZero() {
		return Value{}, ErrDivideByZero.New()
	}

	switch right.typeID {
	case TinyInt:
		return integerArith[T, int8](op, left, right)
	case SmallInt:
		return integerArith[T, int16](op, left, right)
	case Integer:
		return integerArith[T, int32](op, left, right)
	case BigInt:
		return integerArith[T, int64](op, left, right)
	case Decimal:
		return decimalArith(op, float64(getAs[T](left)), right.decimal())
	default:
		return Value{}, ErrTypeMismatch.New(op.String(), left.typeID, right.typeID)
	}
}

func (t *integerType[T]) Sqrt(v Value) (Value, error) {
	return numericSqrt(v, float64(getAs[T](v)))
}

func (t *integerType[T]) OperateNull(left, right Value) (Value, error) {
	return numericOperateNull(left, right)
}

func (t *integerType[T]) IsZero(v Value) bool {
	return !v.IsNull() && getAs[T](v) == 0
}

func (t *integerType[T]) compare(left, right Value) (int, error) {
	switch right.typeID {
	case Decimal:
		return compareFloats(float64(getAs[T](left)), right.decimal()), nil
	case Varchar:
		coerced, err := right.CastAs(t.id)
		if err != nil {
			return 0, err
		}
		right = coerced
	}

	l, r := int64(getAs[T](left)), right.AsInt64()
	switch {
	case l < r:
		return -1, nil
	case l > r:
		return 1, nil
	default:
		return 0, nil
	}
}

func (t *integerType[T]) ToString(v Value) string {
	if v.IsNull() {
		return integerNullNames[t.id]
	}
	return strconv.FormatInt(int64(getAs[T](v)), 10)
}

var integerNullNames = map[TypeID]string{
	TinyInt:  "tinyint_null",
	SmallInt: "smallint_null",
	Integer:  "integer_null",
	BigInt:   "bigint_null",
}

func (t *integerType[T]) SerializeTo(v Value, storage []byte) {
	x := getAs[T](v)
	switch t.id {
	case TinyInt:
		val.WriteInt8(storage, int8(x))
	case SmallInt:
		val.WriteInt16(storage, int16(x))
	case Integer:
		val.WriteInt32(storage, int32(x))
	default:
		val.WriteInt64(storage, int64(x))
	}
}

func (t *integerType[T]) DeserializeFrom(storage []byte) Value {
	switch t.id {
	case TinyInt:
		return NewTinyInt(val.ReadInt8(storage))
	case SmallInt:
		return NewSmallInt(val.ReadInt16(storage))
	case Integer:
		return NewInteger(val.ReadInt32(storage))
	default:
		return NewBigInt(val.ReadInt64(storage))
	}
}

func (t *integerType[T]) CastAs(v Value, id TypeID) (Value, error) {
	switch id {
	case TinyInt, SmallInt, Integer, BigInt:
		if v.IsNull() {
			return NullValue(id), nil
		}
		x := int64(getAs[T](v))
		lo, hi := integerRange(id)
		if x < lo || x > hi {
			return Value{}, ErrOutOfRange.New(id, strconv.FormatInt(x, 10))
		}
		return newIntegerValue(id, x), nil
	case Decimal:
		if v.IsNull() {
			return NullValue(Decimal), nil
		}
		return NewDecimal(float64(getAs[T](v))), nil
	case Varchar:
		if v.IsNull() {
			return NullValue(Varchar), nil
		}
		return NewVarchar(t.ToString(v)), nil
	default:
		return Value{}, ErrUnsupportedCast.New(t.id, id)
	}
}

// castFloatToInteger narrows a decimal to integer kind |id|. Fractions are
// truncated toward zero after the range check. float64(BigIntMin) rounds to
// -2^63, the BIGINT null sentinel, so that bound is checked explicitly.
func castFloatToInteger(f float64, id TypeID) (Value, error) {
	lo, hi := integerRange(id)
	if math.IsNaN(f) || f < float64(lo) || f > float64(hi) || f >= 0x1p63 || f <= -0x1p63 {
		return Value{}, ErrOutOfRange.New(id, strconv.FormatFloat(f, 'g', -1, 64))
	}
	return newIntegerValue(id, int64(f)), nil
}
