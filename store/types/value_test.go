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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/scalar/store/val"
)

func roundTrip(v Value) Value {
	buf := make([]byte, v.SerializedSize()+3)
	v.SerializeTo(buf)
	return DeserializeFrom(buf, v.TypeID())
}

func TestSerializationRoundTrip(t *testing.T) {
	values := []Value{
		NewBoolean(true),
		NewBoolean(false),
		NewTinyInt(TinyIntMin),
		NewTinyInt(TinyIntMax),
		NewSmallInt(-12345),
		NewInteger(IntegerMax),
		NewBigInt(BigIntMin),
		NewDecimal(math.Pi),
		NewDecimal(DecimalMin),
		NewVarchar(""),
		NewVarchar("hello, world"),
		NewTimestamp(TimestampMax),
		NewVector([]float64{1, -0.5}),
	}
	for _, id := range AllTypeIDs {
		values = append(values, NullValue(id))
	}

	for _, v := range values {
		t.Run(fmt.Sprintf(`%v %v`, v.TypeID(), v), func(t *testing.T) {
			assert.Equal(t, v, roundTrip(v))
		})
	}
}

func TestNullSerializesSentinel(t *testing.T) {
	buf := make([]byte, 8)

	NullValue(TinyInt).SerializeTo(buf)
	assert.Equal(t, int8(math.MinInt8), val.ReadInt8(buf))

	NullValue(SmallInt).SerializeTo(buf)
	assert.Equal(t, int16(math.MinInt16), val.ReadInt16(buf))

	NullValue(Integer).SerializeTo(buf)
	assert.Equal(t, int32(math.MinInt32), val.ReadInt32(buf))

	NullValue(BigInt).SerializeTo(buf)
	assert.Equal(t, int64(math.MinInt64), val.ReadInt64(buf))

	NullValue(Decimal).SerializeTo(buf)
	assert.Equal(t, DecimalNull, val.ReadFloat64(buf))

	NullValue(Boolean).SerializeTo(buf)
	assert.Equal(t, BooleanNull, val.ReadInt8(buf))

	NullValue(Timestamp).SerializeTo(buf)
	assert.Equal(t, TimestampNull, val.ReadUint64(buf))

	NullValue(Varchar).SerializeTo(buf)
	assert.Equal(t, VarcharNull, val.ReadUint32(buf))
}

func TestSentinelDeserializesNull(t *testing.T) {
	buf := make([]byte, 8)
	val.WriteInt32(buf, math.MinInt32)
	assert.True(t, DeserializeFrom(buf, Integer).IsNull())

	val.WriteInt32(buf, IntegerMin)
	v := DeserializeFrom(buf, Integer)
	assert.False(t, v.IsNull())
	assert.Equal(t, IntegerMin, v.AsInteger())
}

func TestSerializedSize(t *testing.T) {
	assert.Equal(t, 1, NewBoolean(true).SerializedSize())
	assert.Equal(t, 1, NewTinyInt(1).SerializedSize())
	assert.Equal(t, 2, NewSmallInt(1).SerializedSize())
	assert.Equal(t, 4, NewInteger(1).SerializedSize())
	assert.Equal(t, 8, NewBigInt(1).SerializedSize())
	assert.Equal(t, 8, NewDecimal(1).SerializedSize())
	assert.Equal(t, 8, NewTimestamp(1).SerializedSize())
	assert.Equal(t, 7, NewVarchar("abc").SerializedSize())
	assert.Equal(t, 4, NullValue(Varchar).SerializedSize())
}

func TestSerializationProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("smallint round trips", prop.ForAll(
		func(x int16) bool {
			v := NewSmallInt(x)
			return roundTrip(v) == v
		},
		gen.Int16(),
	))

	properties.Property("bigint round trips", prop.ForAll(
		func(x int64) bool {
			v := NewBigInt(x)
			return roundTrip(v) == v
		},
		gen.Int64(),
	))

	properties.Property("decimal round trips", prop.ForAll(
		func(f float64) bool {
			v := NewDecimal(f)
			return roundTrip(v) == v
		},
		gen.Float64(),
	))

	properties.Property("varchar round trips", prop.ForAll(
		func(s string) bool {
			v := NewVarchar(s)
			return roundTrip(v) == v
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestTypeSize(t *testing.T) {
	expected := map[TypeID]int{
		Boolean:   1,
		TinyInt:   1,
		SmallInt:  2,
		Integer:   4,
		BigInt:    8,
		Decimal:   8,
		Timestamp: 8,
		Varchar:   0,
		Vector:    0,
	}
	for id, sz := range expected {
		actual, err := TypeSize(id)
		require.NoError(t, err)
		assert.Equal(t, sz, actual, id.String())
	}

	_, err := TypeSize(Invalid)
	assert.True(t, ErrUnknownType.Is(err))
}

func TestTypeIDFromString(t *testing.T) {
	for _, id := range AllTypeIDs {
		parsed, err := TypeIDFromString(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}

	id, err := TypeIDFromString("int")
	require.NoError(t, err)
	assert.Equal(t, Integer, id)

	_, err = TypeIDFromString("float")
	assert.True(t, ErrUnknownType.Is(err))
}

func TestMinMaxZeroValues(t *testing.T) {
	for _, id := range []TypeID{TinyInt, SmallInt, Integer, BigInt, Decimal, Boolean, Timestamp} {
		t.Run(id.String(), func(t *testing.T) {
			lo, err := MinValue(id)
			require.NoError(t, err)
			hi, err := MaxValue(id)
			require.NoError(t, err)
			zero, err := ZeroValue(id)
			require.NoError(t, err)

			assert.False(t, lo.IsNull())
			assert.False(t, hi.IsNull())
			assert.True(t, zero.IsZero())

			c, err := lo.CompareLessThanEquals(zero)
			require.NoError(t, err)
			assert.Equal(t, CmpTrue, c)
			c, err = zero.CompareLessThanEquals(hi)
			require.NoError(t, err)
			assert.Equal(t, CmpTrue, c)
		})
	}

	_, err := MaxValue(Varchar)
	assert.True(t, ErrNotImplemented.Is(err))
	_, err = MinValue(Invalid)
	assert.True(t, ErrUnknownType.Is(err))
}

func TestCoercableFromMatchesCastAs(t *testing.T) {
	for _, src := range AllTypeIDs {
		from, err := ZeroValue(src)
		require.NoError(t, err)
		if src == Varchar {
			from = NewVarchar("0")
		}

		for _, dest := range AllTypeIDs {
			if src == Varchar && dest == Timestamp {
				continue
			}
			t.Run(fmt.Sprintf(`%v to %v`, src, dest), func(t *testing.T) {
				_, err := from.CastAs(dest)
				if GetInstance(dest).IsCoercableFrom(src) {
					assert.NoError(t, err)
				} else {
					assert.True(t, ErrUnsupportedCast.Is(err), "unexpected error: %v", err)
				}
			})
		}
	}
}

func TestHash(t *testing.T) {
	assert.Equal(t, NewTinyInt(7).Hash(), NewBigInt(7).Hash())
	assert.Equal(t, NewSmallInt(-1).Hash(), NewInteger(-1).Hash())
	assert.NotEqual(t, NewInteger(7).Hash(), NewInteger(8).Hash())
	assert.NotEqual(t, NewInteger(1).Hash(), NewBoolean(true).Hash())
	assert.Equal(t, NewVarchar("abc").Hash(), NewVarchar("abc").Hash())
	assert.NotEqual(t, NewVarchar("abc").Hash(), NewVarchar("abd").Hash())
	assert.Equal(t, uint64(0), NullValue(Integer).Hash())
	assert.Equal(t, uint64(0), NullValue(Varchar).Hash())
}

func TestEqualValuesHashAlike(t *testing.T) {
	pairs := [][2]Value{
		{NewInteger(3), NewDecimal(3)},
		{NewTinyInt(-1), NewDecimal(-1)},
		{NewBigInt(0), NewDecimal(math.Copysign(0, -1))},
		{NewDecimal(0), NewDecimal(math.Copysign(0, -1))},
		{NewSmallInt(300), NewBigInt(300)},
	}

	for _, pair := range pairs {
		t.Run(fmt.Sprintf(`%v %v = %v %v`, pair[0].TypeID(), pair[0], pair[1].TypeID(), pair[1]), func(t *testing.T) {
			eq, err := pair[0].CompareEquals(pair[1])
			require.NoError(t, err)
			require.Equal(t, CmpTrue, eq)
			assert.Equal(t, pair[0].Hash(), pair[1].Hash())
		})
	}

	properties := gopter.NewProperties(nil)
	properties.Property("integer and decimal of the same value hash alike", prop.ForAll(
		func(x int32) bool {
			return NewInteger(x).Hash() == NewDecimal(float64(x)).Hash()
		},
		gen.Int32Range(IntegerMin, IntegerMax),
	))
	properties.Property("bigint and decimal that compare equal hash alike", prop.ForAll(
		func(x int64) bool {
			l, r := NewBigInt(x), NewDecimal(float64(x))
			eq, err := l.CompareEquals(r)
			return err == nil && eq == CmpTrue && l.Hash() == r.Hash()
		},
		gen.Int64Range(BigIntMin, BigIntMax),
	))
	properties.TestingRun(t)
}

func TestInvalidValue(t *testing.T) {
	var v Value
	assert.Equal(t, Invalid, v.TypeID())
	assert.True(t, v.IsNull())

	_, err := v.Add(NewInteger(1))
	assert.True(t, ErrNotImplemented.Is(err))
	_, err = v.CompareEquals(NewInteger(1))
	assert.True(t, ErrNotImplemented.Is(err))
	_, err = v.CastAs(Integer)
	assert.True(t, ErrUnsupportedCast.Is(err))

	assert.Panics(t, func() { v.SerializeTo(make([]byte, 8)) })
	assert.Panics(t, func() { DeserializeFrom(make([]byte, 8), Invalid) })
	assert.Equal(t, GetInstance(Invalid), GetInstance(TypeID(200)))
}

func TestAccessorKindMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { NewInteger(1).AsTinyInt() })
	assert.Panics(t, func() { NewVarchar("1").AsInt64() })
	assert.Panics(t, func() { NewDecimal(1).AsVarchar() })
	assert.NotPanics(t, func() { NewTinyInt(1).AsInt64() })
}

func TestEndToEnd(t *testing.T) {
	_, err := NewInteger(2147483647).Add(NewInteger(1))
	assert.True(t, ErrOutOfRange.Is(err))

	v, err := NewInteger(100).Add(NewSmallInt(50))
	require.NoError(t, err)
	assert.Equal(t, Integer, v.TypeID())
	assert.Equal(t, int32(150), v.AsInteger())
}
