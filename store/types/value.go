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

	"github.com/dolthub/scalar/store/val"
)

// Value is an immutable, typed, nullable scalar. The payload is interpreted
// according to the kind: integer kinds and booleans keep a sign extended
// integer, decimals keep float64 bits, timestamps keep the packed uint64,
// varchars keep their bytes in str and vectors keep their stored element bytes
// in str. Null values carry their kind's sentinel
// as payload, so the sentinel is what gets written to storage.
//
// The zero Value is a null of the Invalid kind.
type Value struct {
	typeID TypeID
	null   bool
	num    uint64
	str    string
}

func (v Value) TypeID() TypeID {
	return v.typeID
}

func (v Value) IsNull() bool {
	return v.null || v.typeID == Invalid
}

func (v Value) IsZero() bool {
	return GetInstance(v.typeID).IsZero(v)
}

func (v Value) IsInlined() bool {
	return GetInstance(v.typeID).IsInlined(v)
}

// CheckInteger returns whether the value is of an integer kind.
func (v Value) CheckInteger() bool {
	return v.typeID.IsInteger()
}

// CheckComparable returns whether the value may be compared with |o|.
func (v Value) CheckComparable(o Value) bool {
	return v.typeID.IsComparable(o.typeID)
}

func (v Value) expectType(ids ...TypeID) {
	for _, id := range ids {
		if v.typeID == id {
			return
		}
	}
	panic("value of type " + v.typeID.String() + " read as " + ids[0].String())
}

func (v Value) AsTinyInt() int8 {
	v.expectType(TinyInt)
	return getAs[int8](v)
}

func (v Value) AsSmallInt() int16 {
	v.expectType(SmallInt)
	return getAs[int16](v)
}

func (v Value) AsInteger() int32 {
	v.expectType(Integer)
	return getAs[int32](v)
}

func (v Value) AsBigInt() int64 {
	v.expectType(BigInt)
	return getAs[int64](v)
}

// AsInt64 reads any integer kind widened to 64 bits.
func (v Value) AsInt64() int64 {
	v.expectType(TinyInt, SmallInt, Integer, BigInt)
	return int64(v.num)
}

func (v Value) AsDecimal() float64 {
	v.expectType(Decimal)
	return math.Float64frombits(v.num)
}

// AsBoolean returns true only for a non-null true value.
func (v Value) AsBoolean() bool {
	v.expectType(Boolean)
	return !v.null && v.num == 1
}

func (v Value) AsTimestamp() uint64 {
	v.expectType(Timestamp)
	return v.num
}

func (v Value) AsVarchar() string {
	v.expectType(Varchar)
	return v.str
}

// AsVector returns the elements of a vector. Null vectors have no elements.
func (v Value) AsVector() []float64 {
	v.expectType(Vector)
	return decodeVector(v.str)
}

// Length is the byte length of a varchar. Null varchars have length 0.
func (v Value) Length() uint32 {
	v.expectType(Varchar)
	return uint32(len(v.str))
}

func (v Value) IsTrue() bool {
	return v.typeID == Boolean && !v.null && v.num == 1
}

func (v Value) IsFalse() bool {
	return v.typeID == Boolean && !v.null && v.num == 0
}

func (v Value) decimal() float64 {
	return math.Float64frombits(v.num)
}

func (v Value) CompareEquals(o Value) (CmpBool, error) {
	return GetInstance(v.typeID).CompareEquals(v, o)
}

func (v Value) CompareNotEquals(o Value) (CmpBool, error) {
	return GetInstance(v.typeID).CompareNotEquals(v, o)
}

func (v Value) CompareLessThan(o Value) (CmpBool, error) {
	return GetInstance(v.typeID).CompareLessThan(v, o)
}

func (v Value) CompareLessThanEquals(o Value) (CmpBool, error) {
	return GetInstance(v.typeID).CompareLessThanEquals(v, o)
}

func (v Value) CompareGreaterThan(o Value) (CmpBool, error) {
	return GetInstance(v.typeID).CompareGreaterThan(v, o)
}

func (v Value) CompareGreaterThanEquals(o Value) (CmpBool, error) {
	return GetInstance(v.typeID).CompareGreaterThanEquals(v, o)
}

func (v Value) Add(o Value) (Value, error) {
	return GetInstance(v.typeID).Add(v, o)
}

func (v Value) Subtract(o Value) (Value, error) {
	return GetInstance(v.typeID).Subtract(v, o)
}

func (v Value) Multiply(o Value) (Value, error) {
	return GetInstance(v.typeID).Multiply(v, o)
}

func (v Value) Divide(o Value) (Value, error) {
	return GetInstance(v.typeID).Divide(v, o)
}

func (v Value) Modulo(o Value) (Value, error) {
	return GetInstance(v.typeID).Modulo(v, o)
}

func (v Value) Min(o Value) (Value, error) {
	return GetInstance(v.typeID).Min(v, o)
}

func (v Value) Max(o Value) (Value, error) {
	return GetInstance(v.typeID).Max(v, o)
}

func (v Value) Sqrt() (Value, error) {
	return GetInstance(v.typeID).Sqrt(v)
}

func (v Value) OperateNull(o Value) (Value, error) {
	return GetInstance(v.typeID).OperateNull(v, o)
}

func (v Value) CastAs(id TypeID) (Value, error) {
	return GetInstance(v.typeID).CastAs(v, id)
}

func (v Value) Copy() Value {
	return GetInstance(v.typeID).Copy(v)
}

func (v Value) ToString() string {
	return GetInstance(v.typeID).ToString(v)
}

func (v Value) String() string {
	return v.ToString()
}

// SerializeTo writes the value at the start of |storage|. The caller must
// provide at least SerializedSize bytes.
func (v Value) SerializeTo(storage []byte) {
	GetInstance(v.typeID).SerializeTo(v, storage)
}

// SerializedSize is the number of bytes SerializeTo writes.
func (v Value) SerializedSize() int {
	if v.typeID == Varchar || v.typeID == Vector {
		if v.IsNull() {
			return int(val.LengthSize)
		}
		return val.VarlenSize(len(v.str))
	}
	sz, _ := TypeSize(v.typeID)
	return sz
}

// DeserializeFrom reads a value of kind |id| from the start of |storage|.
func DeserializeFrom(storage []byte, id TypeID) Value {
	return GetInstance(id).DeserializeFrom(storage)
}
