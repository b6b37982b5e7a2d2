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

	"github.com/shopspring/decimal"

	"github.com/dolthub/scalar/store/val"
)

// decimalPlaces is the number of fractional digits a decimal renders with.
const decimalPlaces = 6

type decimalType struct {
	typeBase
}

var _ Type = (*decimalType)(nil)

func newDecimalType() *decimalType {
	t := &decimalType{}
	t.typeBase = typeBase{id: Decimal, ops: t}
	return t
}

func (t *decimalType) Add(left, right Value) (Value, error) {
	return t.arithmetic(opAdd, left, right)
}

func (t *decimalType) Subtract(left, right Value) (Value, error) {
	return t.arithmetic(opSubtract, left, right)
}

func (t *decimalType) Multiply(left, right Value) (Value, error) {
	return t.arithmetic(opMultiply, left, right)
}

func (t *decimalType) Divide(left, right Value) (Value, error) {
	return t.arithmetic(opDivide, left, right)
}

func (t *decimalType) Modulo(left, right Value) (Value, error) {
	return t.arithmetic(opModulo, left, right)
}

func (t *decimalType) arithmetic(op arithOp, left, right Value) (Value, error) {
	if err := checkArithmetic(op, left, right); err != nil {
		return Value{}, err
	}
	if left.IsNull() || right.IsNull() {
		return t.OperateNull(left, right)
	}

	r, err := asFloat(right)
	if err != nil {
		return Value{}, err
	}
	return decimalArith(op, left.decimal(), r)
}

// asFloat reads a non-null numeric or text operand as a float64.
func asFloat(v Value) (float64, error) {
	switch v.typeID {
	case Decimal:
		return v.decimal(), nil
	case Varchar:
		coerced, err := v.CastAs(Decimal)
		if err != nil {
			return 0, err
		}
		return coerced.decimal(), nil
	default:
		return float64(v.AsInt64()), nil
	}
}

func (t *decimalType) Sqrt(v Value) (Value, error) {
	return numericSqrt(v, v.decimal())
}

func (t *decimalType) OperateNull(left, right Value) (Value, error) {
	return numericOperateNull(left, right)
}

func (t *decimalType) IsZero(v Value) bool {
	return !v.IsNull() && v.decimal() == 0
}

func (t *decimalType) compare(left, right Value) (int, error) {
	r, err := asFloat(right)
	if err != nil {
		return 0, err
	}
	return compareFloats(left.decimal(), r), nil
}

func (t *decimalType) ToString(v Value) string {
	if v.IsNull() {
		return "decimal_null"
	}
	return formatDecimal(v.decimal())
}

func formatDecimal(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', decimalPlaces, 64)
	}
	return decimal.NewFromFloat(f).StringFixed(decimalPlaces)
}

func (t *decimalType) SerializeTo(v Value, storage []byte) {
	val.WriteFloat64(storage, v.decimal())
}

func (t *decimalType) DeserializeFrom(storage []byte) Value {
	return NewDecimal(val.ReadFloat64(storage))
}

func (t *decimalType) CastAs(v Value, id TypeID) (Value, error) {
	switch id {
	case TinyInt, SmallInt, Integer, BigInt:
		if v.IsNull() {
			return NullValue(id), nil
		}
		return castFloatToInteger(v.decimal(), id)
	case Decimal:
		return t.Copy(v), nil
	case Varchar:
		if v.IsNull() {
			return NullValue(Varchar), nil
		}
		return NewVarchar(t.ToString(v)), nil
	default:
		return Value{}, ErrUnsupportedCast.New(Decimal, id)
	}
}
