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

// invalidType backs the Invalid kind. Every fallible operation reports
// not implemented and (de)serialization panics.
type invalidType struct{}

var _ Type = invalidType{}

func (invalidType) TypeID() TypeID {
	return Invalid
}

func (invalidType) IsCoercableFrom(TypeID) bool {
	return false
}

func (invalidType) CompareEquals(_, _ Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New("=", Invalid)
}

func (invalidType) CompareNotEquals(_, _ Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New("<>", Invalid)
}

func (invalidType) CompareLessThan(_, _ Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New("<", Invalid)
}

func (invalidType) CompareLessThanEquals(_, _ Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New("<=", Invalid)
}

func (invalidType) CompareGreaterThan(_, _ Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New(">", Invalid)
}

func (invalidType) CompareGreaterThanEquals(_, _ Value) (CmpBool, error) {
	return CmpNull, ErrNotImplemented.New(">=", Invalid)
}

func (invalidType) Add(_, _ Value) (Value, error) {
	return Value{}, ErrNotImplemented.New("+", Invalid)
}

func (invalidType) Subtract(_, _ Value) (Value, error) {
	return Value{}, ErrNotImplemented.New("-", Invalid)
}

func (invalidType) Multiply(_, _ Value) (Value, error) {
	return Value{}, ErrNotImplemented.New("*", Invalid)
}

func (invalidType) Divide(_, _ Value) (Value, error) {
	return Value{}, ErrNotImplemented.New("/", Invalid)
}

func (invalidType) Modulo(_, _ Value) (Value, error) {
	return Value{}, ErrNotImplemented.New("%", Invalid)
}

func (invalidType) Min(_, _ Value) (Value, error) {
	return Value{}, ErrNotImplemented.New("min", Invalid)
}

func (invalidType) Max(_, _ Value) (Value, error) {
	return Value{}, ErrNotImplemented.New("max", Invalid)
}

func (invalidType) Sqrt(Value) (Value, error) {
	return Value{}, ErrNotImplemented.New("sqrt", Invalid)
}

func (invalidType) OperateNull(_, _ Value) (Value, error) {
	return Value{}, ErrNotImplemented.New("null", Invalid)
}

func (invalidType) IsZero(Value) bool {
	return false
}

func (invalidType) IsInlined(Value) bool {
	return false
}

func (invalidType) ToString(Value) string {
	return "invalid"
}

func (invalidType) SerializeTo(Value, []byte) {
	panic(ErrNotImplemented.New("serialize", Invalid))
}

func (invalidType) DeserializeFrom([]byte) Value {
	panic(ErrNotImplemented.New("deserialize", Invalid))
}

func (invalidType) Copy(v Value) Value {
	return v
}

func (invalidType) CastAs(_ Value, id TypeID) (Value, error) {
	return Value{}, ErrUnsupportedCast.New(Invalid, id)
}
