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
	"strconv"
	"strings"

	"github.com/dolthub/scalar/store/val"
)

// vectorType implements the VECTOR kind: a variable length array of float64.
// Elements are kept in the value as their stored bytes. Vectors can be
// stored, copied and rendered, but not compared, cast or used in arithmetic.
type vectorType struct {
	typeBase
	noArithmetic
}

var _ Type = (*vectorType)(nil)

func newVectorType() *vectorType {
	t := &vectorType{noArithmetic: noArithmetic{id: Vector}}
	t.typeBase = typeBase{id: Vector, ops: t}
	return t
}

func (t *vectorType) CompareEquals(left, right Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New("=", Vector)
}

func (t *vectorType) CompareNotEquals(left, right Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New("<>", Vector)
}

func (t *vectorType) CompareLessThan(left, right Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New("<", Vector)
}

func (t *vectorType) CompareLessThanEquals(left, right Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New("<=", Vector)
}

func (t *vectorType) CompareGreaterThan(left, right Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New(">", Vector)
}

func (t *vectorType) CompareGreaterThanEquals(left, right Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New(">=", Vector)
}

func (t *vectorType) Min(left, right Value) (Value, error) {
	return Value{}, ErrNotImplemented.New("min", Vector)
}

func (t *vectorType) Max(left, right Value) (Value, error) {
	return Value{}, ErrNotImplemented.New("max", Vector)
}

// compare is never reached as every comparison entry point is overridden.
func (t *vectorType) compare(left, right Value) (int, error) {
	return 0, ErrNotImplemented.New("comparison", Vector)
}

func (t *vectorType) OperateNull(left, right Value) (Value, error) {
	if right.typeID != Vector {
		return Value{}, ErrTypeMismatch.New("null", left.typeID, right.typeID)
	}
	return NullValue(Vector), nil
}

func (t *vectorType) IsInlined(Value) bool {
	return false
}

func (t *vectorType) IsZero(Value) bool {
	return false
}

func (t *vectorType) ToString(v Value) string {
	if v.IsNull() {
		return "vector_null"
	}

	elems := decodeVector(v.str)
	parts := make([]string, len(elems))
	for i, f := range elems {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (t *vectorType) SerializeTo(v Value, storage []byte) {
	if v.IsNull() {
		val.WriteNullVarlen(storage)
		return
	}
	val.WriteVarlen(storage, []byte(v.str))
}

// DeserializeFrom reads a vector. Trailing bytes that do not make up a whole
// element are dropped.
func (t *vectorType) DeserializeFrom(storage []byte) Value {
	b, ok := val.ReadVarlen(storage)
	if !ok {
		return NullValue(Vector)
	}
	b = b[:len(b)-len(b)%int(val.Float64Size)]
	return Value{typeID: Vector, str: string(b)}
}

func (t *vectorType) CastAs(v Value, id TypeID) (Value, error) {
	if id == Vector {
		return t.Copy(v), nil
	}
	return Value{}, ErrUnsupportedCast.New(Vector, id)
}

func encodeVector(elems []float64) string {
	buf := make([]byte, len(elems)*int(val.Float64Size))
	for i, f := range elems {
		val.WriteFloat64(buf[i*int(val.Float64Size):], f)
	}
	return string(buf)
}

func decodeVector(s string) []float64 {
	b := []byte(s)
	elems := make([]float64, len(b)/int(val.Float64Size))
	for i := range elems {
		elems[i] = val.ReadFloat64(b[i*int(val.Float64Size):])
	}
	return elems
}

// ParseVector reads a vector written as [a,b,...], the form ToString renders.
func ParseVector(s string) (Value, error) {
	inner := strings.TrimSpace(s)
	if !strings.HasPrefix(inner, "[") || !strings.HasSuffix(inner, "]") {
		return Value{}, ErrInvalidTextRepresentation.New(Vector, s)
	}
	inner = strings.TrimSpace(inner[1 : len(inner)-1])
	if inner == "" {
		return NewVector(nil), nil
	}

	fields := strings.Split(inner, ",")
	elems := make([]float64, len(fields))
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Value{}, ErrOutOfRange.New(Vector, s)
			}
			return Value{}, ErrInvalidTextRepresentation.New(Vector, s)
		}
		elems[i] = f
	}
	return NewVector(elems), nil
}
