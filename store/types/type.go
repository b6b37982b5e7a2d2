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

// Type is the set of behaviors every scalar kind provides. Values delegate
// to the Type of their own kind; the left operand's kind decides how an
// operation is carried out.
type Type interface {
	// TypeID returns the kind this Type implements.
	TypeID() TypeID

	// IsCoercableFrom returns whether a value of kind |id| may be cast to this kind.
	IsCoercableFrom(id TypeID) bool

	CompareEquals(left, right Value) (CmpBool, error)
	CompareNotEquals(left, right Value) (CmpBool, error)
	CompareLessThan(left, right Value) (CmpBool, error)
	CompareLessThanEquals(left, right Value) (CmpBool, error)
	CompareGreaterThan(left, right Value) (CmpBool, error)
	CompareGreaterThanEquals(left, right Value) (CmpBool, error)

	Add(left, right Value) (Value, error)
	Subtract(left, right Value) (Value, error)
	Multiply(left, right Value) (Value, error)
	Divide(left, right Value) (Value, error)
	Modulo(left, right Value) (Value, error)
	Min(left, right Value) (Value, error)
	Max(left, right Value) (Value, error)
	Sqrt(val Value) (Value, error)

	// OperateNull returns the null value an operation between |left| and
	// |right| produces when either of them is null.
	OperateNull(left, right Value) (Value, error)

	IsZero(val Value) bool

	// IsInlined returns whether the value is stored directly in its fixed-width slot.
	IsInlined(val Value) bool

	ToString(val Value) string

	// SerializeTo writes |val| at the start of |storage|, which must be large
	// enough to hold it.
	SerializeTo(val Value, storage []byte)
	DeserializeFrom(storage []byte) Value

	Copy(val Value) Value
	CastAs(val Value, id TypeID) (Value, error)
}

var typeInstances [Vector + 1]Type

func init() {
	typeInstances[Invalid] = invalidType{}
	typeInstances[Boolean] = newBooleanType()
	typeInstances[TinyInt] = newIntegerType[int8](TinyInt)
	typeInstances[SmallInt] = newIntegerType[int16](SmallInt)
	typeInstances[Integer] = newIntegerType[int32](Integer)
	typeInstances[BigInt] = newIntegerType[int64](BigInt)
	typeInstances[Decimal] = newDecimalType()
	typeInstances[Varchar] = newVarcharType()
	typeInstances[Timestamp] = newTimestampType()
	typeInstances[Vector] = newVectorType()
}

// GetInstance returns the Type for the given kind. Unknown kinds map to the
// Invalid kind, whose operations all fail.
func GetInstance(id TypeID) Type {
	if int(id) < len(typeInstances) {
		return typeInstances[id]
	}
	return typeInstances[Invalid]
}

// kindOps is implemented by each concrete kind and supplies the pieces the
// shared comparison and min/max logic is built from.
type kindOps interface {
	// compare orders two non-null values whose kinds are comparable.
	compare(left, right Value) (int, error)
	OperateNull(left, right Value) (Value, error)
	Copy(val Value) Value
}

// typeBase holds the behavior shared by every kind.
type typeBase struct {
	id  TypeID
	ops kindOps
}

func (b typeBase) TypeID() TypeID {
	return b.id
}

func (b typeBase) IsCoercableFrom(id TypeID) bool {
	switch b.id {
	case Boolean:
		return id == Boolean || id == Varchar
	case TinyInt, SmallInt, Integer, BigInt, Decimal:
		return id.IsNumeric() || id == Varchar
	case Varchar:
		return id != Invalid && id != Vector && int(id) < len(typeInstances)
	case Timestamp:
		return id == Timestamp || id == Varchar
	case Vector:
		return id == Vector
	default:
		return false
	}
}

func (b typeBase) IsInlined(Value) bool {
	return true
}

func (b typeBase) Copy(val Value) Value {
	return val
}

func (b typeBase) CompareEquals(left, right Value) (CmpBool, error) {
	return b.compareOp("=", left, right, func(c int) bool { return c == 0 })
}

func (b typeBase) CompareNotEquals(left, right Value) (CmpBool, error) {
	return b.compareOp("<>", left, right, func(c int) bool { return c != 0 })
}

func (b typeBase) CompareLessThan(left, right Value) (CmpBool, error) {
	return b.compareOp("<", left, right, func(c int) bool { return c < 0 })
}

func (b typeBase) CompareLessThanEquals(left, right Value) (CmpBool, error) {
	return b.compareOp("<=", left, right, func(c int) bool { return c <= 0 })
}

func (b typeBase) CompareGreaterThan(left, right Value) (CmpBool, error) {
	return b.compareOp(">", left, right, func(c int) bool { return c > 0 })
}

func (b typeBase) CompareGreaterThanEquals(left, right Value) (CmpBool, error) {
	return b.compareOp(">=", left, right, func(c int) bool { return c >= 0 })
}

func (b typeBase) compareOp(op string, left, right Value, pred func(int) bool) (CmpBool, error) {
	if !left.typeID.IsComparable(right.typeID) {
		return CmpNull, ErrTypeMismatch.New(op, left.typeID, right.typeID)
	}
	if left.IsNull() || right.IsNull() {
		return CmpNull, nil
	}

	c, err := b.ops.compare(left, right)
	if err != nil {
		return CmpNull, err
	}
	return cmpBool(pred(c)), nil
}

func (b typeBase) Min(left, right Value) (Value, error) {
	return minMax("min", b, left, right, func(c int) bool { return c <= 0 })
}

func (b typeBase) Max(left, right Value) (Value, error) {
	return minMax("max", b, left, right, func(c int) bool { return c >= 0 })
}

// noArithmetic is embedded by kinds that do not support arithmetic.
type noArithmetic struct {
	id TypeID
}

func (n noArithmetic) Add(left, right Value) (Value, error) {
	return Value{}, ErrTypeMismatch.New("+", left.typeID, right.typeID)
}

func (n noArithmetic) Subtract(left, right Value) (Value, error) {
	return Value{}, ErrTypeMismatch.New("-", left.typeID, right.typeID)
}

func (n noArithmetic) Multiply(left, right Value) (Value, error) {
	return Value{}, ErrTypeMismatch.New("*", left.typeID, right.typeID)
}

func (n noArithmetic) Divide(left, right Value) (Value, error) {
	return Value{}, ErrTypeMismatch.New("/", left.typeID, right.typeID)
}

func (n noArithmetic) Modulo(left, right Value) (Value, error) {
	return Value{}, ErrTypeMismatch.New("%", left.typeID, right.typeID)
}

func (n noArithmetic) Sqrt(val Value) (Value, error) {
	return Value{}, ErrTypeMismatch.New("sqrt", val.typeID, val.typeID)
}

// operateNull returns the null of kind |id| if |right| may be combined with it.
func (n noArithmetic) operateNull(right Value) (Value, error) {
	if !n.id.IsComparable(right.typeID) {
		return Value{}, ErrTypeMismatch.New("null", n.id, right.typeID)
	}
	return NullValue(n.id), nil
}
