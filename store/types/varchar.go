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
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dolthub/scalar/store/val"
)

type varcharType struct {
	typeBase
	noArithmetic
}

var _ Type = (*varcharType)(nil)

func newVarcharType() *varcharType {
	t := &varcharType{noArithmetic: noArithmetic{id: Varchar}}
	t.typeBase = typeBase{id: Varchar, ops: t}
	return t
}

// IsInlined is false as varchar bytes live outside the fixed-width slot.
func (t *varcharType) IsInlined(Value) bool {
	return false
}

func (t *varcharType) OperateNull(_, right Value) (Value, error) {
	return t.operateNull(right)
}

func (t *varcharType) IsZero(Value) bool {
	return false
}

func (t *varcharType) compare(left, right Value) (int, error) {
	if right.typeID != Varchar {
		coerced, err := right.CastAs(Varchar)
		if err != nil {
			return 0, err
		}
		right = coerced
	}
	return strings.Compare(left.str, right.str), nil
}

func (t *varcharType) ToString(v Value) string {
	if v.IsNull() {
		return "varlen_null"
	}
	return v.str
}

func (t *varcharType) SerializeTo(v Value, storage []byte) {
	if v.IsNull() {
		val.WriteNullVarlen(storage)
		return
	}
	val.WriteVarlen(storage, []byte(v.str))
}

func (t *varcharType) DeserializeFrom(storage []byte) Value {
	b, ok := val.ReadVarlen(storage)
	if !ok {
		return NullValue(Varchar)
	}
	return NewVarchar(string(b))
}

func (t *varcharType) CastAs(v Value, id TypeID) (Value, error) {
	if id == Varchar {
		return t.Copy(v), nil
	}
	if !GetInstance(id).IsCoercableFrom(Varchar) {
		return Value{}, ErrUnsupportedCast.New(Varchar, id)
	}
	if v.IsNull() {
		return NullValue(id), nil
	}

	switch id {
	case Boolean:
		return parseBoolean(v.str)
	case TinyInt, SmallInt, Integer, BigInt:
		return parseInteger(v.str, id)
	case Decimal:
		return parseDecimal(v.str)
	default:
		return parseTimestamp(v.str)
	}
}

func parseBoolean(s string) (Value, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "t":
		return NewBoolean(true), nil
	case "false", "0", "f":
		return NewBoolean(false), nil
	default:
		return Value{}, ErrInvalidTextRepresentation.New(Boolean, s)
	}
}

func parseInteger(s string, id TypeID) (Value, error) {
	x, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Value{}, ErrOutOfRange.New(id, s)
		}
		return Value{}, ErrInvalidTextRepresentation.New(id, s)
	}

	lo, hi := integerRange(id)
	if x < lo || x > hi {
		return Value{}, ErrOutOfRange.New(id, s)
	}
	return newIntegerValue(id, x), nil
}

func parseDecimal(s string) (Value, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Value{}, ErrInvalidTextRepresentation.New(Decimal, s)
	}

	f, _ := d.Float64()
	if math.IsInf(f, 0) || f < DecimalMin || f > DecimalMax {
		return Value{}, ErrOutOfRange.New(Decimal, s)
	}
	return NewDecimal(f), nil
}
