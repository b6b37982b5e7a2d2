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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-errors.v1"
)

func TestVarcharCompare(t *testing.T) {
	tests := []struct {
		left  Value
		right Value
		cmp   int
	}{
		{NewVarchar("abc"), NewVarchar("abd"), -1},
		{NewVarchar("abc"), NewVarchar("abc"), 0},
		{NewVarchar("ab"), NewVarchar("abc"), -1},
		{NewVarchar("b"), NewVarchar("abc"), 1},
		{NewVarchar(""), NewVarchar("a"), -1},
		{NewVarchar("10"), NewInteger(9), -1},
		{NewVarchar("true"), NewBoolean(true), 0},
		{NewVarchar("1.500000"), NewDecimal(1.5), 0},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf(`%q %v`, test.left.ToString(), test.right), func(t *testing.T) {
			lt, err := test.left.CompareLessThan(test.right)
			require.NoError(t, err)
			eq, err := test.left.CompareEquals(test.right)
			require.NoError(t, err)
			gt, err := test.left.CompareGreaterThan(test.right)
			require.NoError(t, err)

			assert.Equal(t, cmpBool(test.cmp < 0), lt)
			assert.Equal(t, cmpBool(test.cmp == 0), eq)
			assert.Equal(t, cmpBool(test.cmp > 0), gt)
		})
	}

	c, err := NewVarchar("a").CompareEquals(NullValue(Varchar))
	require.NoError(t, err)
	assert.Equal(t, CmpNull, c)

	c, err = NullValue(Varchar).CompareEquals(NewInteger(1))
	require.NoError(t, err)
	assert.Equal(t, CmpNull, c)
}

func TestVarcharCastAs(t *testing.T) {
	tests := []struct {
		input       string
		target      TypeID
		output      Value
		expectedErr *errors.Kind
	}{
		{"true", Boolean, NewBoolean(true), nil},
		{"TRUE", Boolean, NewBoolean(true), nil},
		{"t", Boolean, NewBoolean(true), nil},
		{"1", Boolean, NewBoolean(true), nil},
		{"False", Boolean, NewBoolean(false), nil},
		{"f", Boolean, NewBoolean(false), nil},
		{"0", Boolean, NewBoolean(false), nil},
		{"yes", Boolean, Value{}, ErrInvalidTextRepresentation},
		{"127", TinyInt, NewTinyInt(127), nil},
		{"-127", TinyInt, NewTinyInt(-127), nil},
		{"-128", TinyInt, Value{}, ErrOutOfRange},
		{"128", TinyInt, Value{}, ErrOutOfRange},
		{"32767", SmallInt, NewSmallInt(32767), nil},
		{"40000", SmallInt, Value{}, ErrOutOfRange},
		{"2147483647", Integer, NewInteger(2147483647), nil},
		{"2147483648", Integer, Value{}, ErrOutOfRange},
		{"9223372036854775807", BigInt, NewBigInt(9223372036854775807), nil},
		{"9223372036854775808", BigInt, Value{}, ErrOutOfRange},
		{"-9223372036854775808", BigInt, Value{}, ErrOutOfRange},
		{"12abc", Integer, Value{}, ErrInvalidTextRepresentation},
		{"", Integer, Value{}, ErrInvalidTextRepresentation},
		{"1.5", Integer, Value{}, ErrInvalidTextRepresentation},
		{"0.5", Decimal, NewDecimal(0.5), nil},
		{"hello", Varchar, NewVarchar("hello"), nil},
		{"2024-02-29 13:45:10.000250+00", Timestamp, mustTimestamp(t, TimestampParts{2024, 2, 29, 13, 45, 10, 250, 0}), nil},
		{"2024-02-29", Timestamp, Value{}, ErrInvalidTextRepresentation},
		{"x", Invalid, Value{}, ErrUnsupportedCast},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf(`%q as %v`, test.input, test.target), func(t *testing.T) {
			output, err := NewVarchar(test.input).CastAs(test.target)
			if test.expectedErr != nil {
				assert.True(t, test.expectedErr.Is(err), "unexpected error: %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.output, output)
			}
		})
	}
}

func TestNullVarcharCastAs(t *testing.T) {
	for _, id := range AllTypeIDs {
		if !GetInstance(id).IsCoercableFrom(Varchar) {
			continue
		}
		t.Run(id.String(), func(t *testing.T) {
			v, err := NullValue(Varchar).CastAs(id)
			require.NoError(t, err)
			assert.True(t, v.IsNull())
			assert.Equal(t, id, v.TypeID())
		})
	}
}

func TestVarcharOperations(t *testing.T) {
	_, err := NewVarchar("1").Add(NewInteger(1))
	assert.True(t, ErrTypeMismatch.Is(err))

	_, err = NewVarchar("4").Sqrt()
	assert.True(t, ErrTypeMismatch.Is(err))

	v, err := NewVarchar("apple").Min(NewVarchar("banana"))
	require.NoError(t, err)
	assert.Equal(t, NewVarchar("apple"), v)

	v, err = NewVarchar("apple").Max(NewVarchar("banana"))
	require.NoError(t, err)
	assert.Equal(t, NewVarchar("banana"), v)

	v, err = NewVarchar("apple").OperateNull(NewInteger(1))
	require.NoError(t, err)
	assert.Equal(t, NullValue(Varchar), v)

	assert.False(t, NewVarchar("abc").IsInlined())
	assert.Equal(t, uint32(3), NewVarchar("abc").Length())
	assert.Equal(t, uint32(0), NullValue(Varchar).Length())
	assert.Equal(t, "varlen_null", NullValue(Varchar).ToString())
	assert.Equal(t, "abc", NewVarchar("abc").ToString())
}
