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
)

type integer interface {
	int8 | int16 | int32 | int64
}

// getAs reads the payload of an integer kind value as T. The payload is kept
// sign extended so any integer kind may be read at any width.
func getAs[T integer](v Value) T {
	return T(int64(v.num))
}

// The functions below implement checked arithmetic between a left operand of
// width T1 and a right operand of width T2. The raw result is computed in 64
// bits and truncated to both widths. A raw result that survives neither
// truncation is out of range. The result takes the kind of the wider operand,
// with ties going to the left. 64 bit pairs may wrap, which the sign and
// inverse division checks catch.

func addValue[T1, T2 integer](left, right Value) (Value, error) {
	x, y := getAs[T1](left), getAs[T2](right)
	raw := int64(x) + int64(y)
	sum1, sum2 := T1(raw), T2(raw)
	if raw != int64(sum1) && raw != int64(sum2) {
		return Value{}, overflow(left, right, opAdd)
	}

	id, sum := pickCandidate(left, right, int64(sum1), int64(sum2))
	if (x > 0 && y > 0 && sum < 0) || (x < 0 && y < 0 && sum > 0) {
		return Value{}, overflow(left, right, opAdd)
	}
	return integerResult(id, sum, left, right, opAdd)
}

func subtractValue[T1, T2 integer](left, right Value) (Value, error) {
	x, y := getAs[T1](left), getAs[T2](right)
	raw := int64(x) - int64(y)
	diff1, diff2 := T1(raw), T2(raw)
	if raw != int64(diff1) && raw != int64(diff2) {
		return Value{}, overflow(left, right, opSubtract)
	}

	id, diff := pickCandidate(left, right, int64(diff1), int64(diff2))
	if (x > 0 && y < 0 && diff < 0) || (x < 0 && y > 0 && diff > 0) {
		return Value{}, overflow(left, right, opSubtract)
	}
	return integerResult(id, diff, left, right, opSubtract)
}

func multiplyValue[T1, T2 integer](left, right Value) (Value, error) {
	x, y := getAs[T1](left), getAs[T2](right)
	raw := int64(x) * int64(y)
	prod1, prod2 := T1(raw), T2(raw)
	if raw != int64(prod1) && raw != int64(prod2) {
		return Value{}, overflow(left, right, opMultiply)
	}

	id, prod := pickCandidate(left, right, int64(prod1), int64(prod2))
	if y != 0 && prod/int64(y) != int64(x) {
		return Value{}, overflow(left, right, opMultiply)
	}
	return integerResult(id, prod, left, right, opMultiply)
}

func divideValue[T1, T2 integer](left, right Value) (Value, error) {
	x, y := getAs[T1](left), getAs[T2](right)
	if y == 0 {
		return Value{}, ErrDivideByZero.New()
	}

	raw := int64(x) / int64(y)
	quot1, quot2 := T1(raw), T2(raw)
	if raw != int64(quot1) && raw != int64(quot2) {
		return Value{}, overflow(left, right, opDivide)
	}

	id, quot := pickCandidate(left, right, int64(quot1), int64(quot2))
	return integerResult(id, quot, left, right, opDivide)
}

func moduloValue[T1, T2 integer](left, right Value) (Value, error) {
	x, y := getAs[T1](left), getAs[T2](right)
	if y == 0 {
		return Value{}, ErrDivideByZero.New()
	}

	raw := int64(x) % int64(y)
	rem1, rem2 := T1(raw), T2(raw)
	if raw != int64(rem1) && raw != int64(rem2) {
		return Value{}, overflow(left, right, opModulo)
	}

	id, rem := pickCandidate(left, right, int64(rem1), int64(rem2))
	return integerResult(id, rem, left, right, opModulo)
}

// integerArith dispatches |op| to the width pair (T1, T2).
func integerArith[T1, T2 integer](op arithOp, left, right Value) (Value, error) {
	switch op {
	case opAdd:
		return addValue[T1, T2](left, right)
	case opSubtract:
		return subtractValue[T1, T2](left, right)
	case opMultiply:
		return multiplyValue[T1, T2](left, right)
	case opDivide:
		return divideValue[T1, T2](left, right)
	default:
		return moduloValue[T1, T2](left, right)
	}
}

// pickCandidate returns the result kind and the candidate truncated to it.
func pickCandidate(left, right Value, c1, c2 int64) (TypeID, int64) {
	id := resultTypeID(left.typeID, right.typeID)
	if id == left.typeID {
		return id, c1
	}
	return id, c2
}

// integerResult builds the result value. A result equal to the kind's null
// sentinel cannot be represented and is reported as out of range.
func integerResult(id TypeID, x int64, left, right Value, op arithOp) (Value, error) {
	if x == integerNull(id) {
		return Value{}, overflow(left, right, op)
	}
	return newIntegerValue(id, x), nil
}

func overflow(left, right Value, op arithOp) error {
	id := resultTypeID(left.typeID, right.typeID)
	return ErrOutOfRange.New(id, fmt.Sprintf("%d %s %d", left.AsInt64(), op, right.AsInt64()))
}
