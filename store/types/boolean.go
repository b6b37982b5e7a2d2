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
	"github.com/dolthub/scalar/store/val"
)

type booleanType struct {
	typeBase
	noArithmetic
}

var _ Type = (*booleanType)(nil)

func newBooleanType() *booleanType {
	t := &booleanType{noArithmetic: noArithmetic{id: Boolean}}
	t.typeBase = typeBase{id: Boolean, ops: t}
	return t
}

func (t *booleanType) OperateNull(_, right Value) (Value, error) {
	return t.operateNull(right)
}

func (t *booleanType) IsZero(v Value) bool {
	return v.IsFalse()
}

func (t *booleanType) compare(left, right Value) (int, error) {
	if right.typeID != Boolean {
		coerced, err := right.CastAs(Boolean)
		if err != nil {
			return 0, err
		}
		right = coerced
	}
	return int(int8(left.num) - int8(right.num)), nil
}

func (t *booleanType) ToString(v Value) string {
	switch {
	case v.IsTrue():
		return "true"
	case v.IsFalse():
		return "false"
	default:
		return "boolean_null"
	}
}

func (t *booleanType) SerializeTo(v Value, storage []byte) {
	val.WriteInt8(storage, int8(v.num))
}

func (t *booleanType) DeserializeFrom(storage []byte) Value {
	switch b := val.ReadInt8(storage); b {
	case BooleanNull:
		return NullValue(Boolean)
	default:
		return NewBoolean(b != 0)
	}
}

func (t *booleanType) CastAs(v Value, id TypeID) (Value, error) {
	switch id {
	case Boolean:
		return t.Copy(v), nil
	case Varchar:
		if v.IsNull() {
			return NullValue(Varchar), nil
		}
		return NewVarchar(t.ToString(v)), nil
	default:
		return Value{}, ErrUnsupportedCast.New(Boolean, id)
	}
}
