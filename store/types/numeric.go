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
	"fmt"
	"math"
)

type arithOp uint8

const (
	opAdd arithOp = iota
	opSubtract
	opMultiply
	opDivide
	opModulo
)

func (op arithOp) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSubtract:
		return "-"
	case opMultiply:
		return "*"
	case opDivide:
		return "/"
	default:
		return "%"
	}
}

// minMax returns a copy of |left| when keepLeft holds for the comparison of
// |left| and |right|, and a copy of |right| otherwise.
func minMax(name string, b typeBase, left, right Value, keepLeft func(int) bool) (Value, error) {
	if !left.typeID.IsComparable(right.typeID) {
		return Value{}, ErrTypeMismatch.New(name, left.typeID, right.typeID)
	}
	if left.IsNull() || right.IsNull() {
		return b.ops.OperateNull(left, right)
	}

	c, err := b.ops.compare(left, right)
	if err != nil {
		return Value{}, err
	}
	if keepLeft(c) {
		return b.ops.Copy(left), nil
	}
	return b.ops.Copy(right), nil
}

// resultTypeID is the kind of the result of arithmetic between numeric kinds
// |left| and |right|. Decimal wins over everything, otherwise the wider
// integer kind wins and ties go to |left|. Text operands are coerced to the
// left kind.
func resultTypeID(left, right TypeID) TypeID {
	if left == Decimal || right == Decimal {
		return Decimal
	}
	if right == Varchar {
		return left
	}

	ls, _ := TypeSize(left)
	rs, _ := TypeSize(right)
	if ls >= rs {
		return left
	}
	return right
}

// numericOperateNull is the null produced by arithmetic on numeric kinds.
func numericOperateNull(left, right Value) (Value, error) {
	if !right.typeID.IsNumeric() && right.typeID != Varchar {
		return Value{}, ErrTypeMismatch.New("null", left.typeID, right.typeID)
	}
	return NullValue(resultTypeID(left.typeID, right.typeID)), nil
}

// checkArithmetic verifies that |right| may be used as the right operand of
// arithmetic on a numeric kind.
func checkArithmetic(op arithOp, left, right Value) error {
	if !right.typeID.IsNumeric() && right.typeID != Varchar {
		return ErrTypeMismatch.New(op.String(), left.typeID, right.typeID)
	}
	return nil
}

func decimalArith(op arithOp, x, y float64) (Value, error) {
	var r float64
	switch op {
	case opAdd:
		r = x + y
	case opSubtract:
		r = x - y
	case opMultiply:
		r = x * y
	case opDivide:
		if y == 0 {
			return Value{}, ErrDivideByZero.New()
		}
		r = x / y
	default:
		if y == 0 {
			return Value{}, ErrDivideByZero.New()
		}
		r = valMod(x, y)
	}

	// The null sentinel is not a representable result.
	if r == DecimalNull {
		return Value{}, ErrOutOfRange.New(Decimal, fmt.Sprintf("%g %s %g", x, op, y))
	}
	return NewDecimal(r), nil
}

// valMod is the remainder of x / y with the quotient truncated toward zero.
func valMod(x, y float64) float64 {
	return x - math.Trunc(x/y)*y
}

func numericSqrt(val Value, f float64) (Value, error) {
	if val.IsNull() {
		return NullValue(Decimal), nil
	}
	if f < 0 {
		return Value{}, ErrDomain.New("cannot take square root of a negative number")
	}
	return NewDecimal(math.Sqrt(f)), nil
}

func compareFloats(l, r float64) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}
