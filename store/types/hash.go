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
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a hash of the value for use by hash based operators. Numeric
// kinds compare through float64, so they all hash their value widened to
// float64: values that compare equal hash alike whatever their kinds. Text and
// vectors hash their bytes. Null values hash to 0.
func (v Value) Hash() uint64 {
	if v.IsNull() {
		return 0
	}

	var buf [9]byte
	buf[0] = byte(hashFamily(v.typeID))
	switch {
	case v.typeID == Varchar || v.typeID == Vector:
		d := xxhash.New()
		_, _ = d.Write(buf[:1])
		_, _ = d.WriteString(v.str)
		return d.Sum64()
	case v.typeID.IsNumeric():
		binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(numericHashKey(v)))
		return xxhash.Sum64(buf[:])
	default:
		binary.LittleEndian.PutUint64(buf[1:], v.num)
		return xxhash.Sum64(buf[:])
	}
}

func numericHashKey(v Value) float64 {
	f := v.decimal()
	if v.typeID.IsInteger() {
		f = float64(v.AsInt64())
	}
	// -0 and 0 compare equal.
	if f == 0 {
		return 0
	}
	return f
}

func hashFamily(id TypeID) TypeID {
	if id.IsNumeric() {
		return Decimal
	}
	return id
}
