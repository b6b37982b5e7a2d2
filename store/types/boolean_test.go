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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanCompare(t *testing.T) {
	c, err := NewBoolean(true).CompareEquals(NewBoolean(true))
	require.NoError(t, err)
	assert.Equal(t, CmpTrue, c)

	c, err = NewBoolean(false).CompareLessThan(NewBoolean(true))
	require.NoError(t, err)
	assert.Equal(t, CmpTrue, c)

	c, err = NewBoolean(true).CompareEquals(NewVarchar("t"))
	require.NoError(t, err)
	assert.Equal(t, CmpTrue, c)

	c, err = NewBoolean(true).CompareEquals(NullValue(Boolean))
	require.NoError(t, err)
	assert.Equal(t, CmpNull, c)

	_, err = NewBoolean(true).CompareEquals(NewVarchar("maybe"))
	assert.True(t, ErrInvalidTextRepresentation.Is(err))

	_, err = NewBoolean(true).CompareEquals(NewInteger(1))
	assert.True(t, ErrTypeMismatch.Is(err))
}

func TestBooleanCastAs(t *testing.T) {
	v, err := NewBoolean(true).CastAs(Varchar)
	require.NoError(t, err)
	assert.Equal(t, NewVarchar("true"), v)

	v, err = NewBoolean(false).CastAs(Boolean)
	require.NoError(t, err)
	assert.Equal(t, NewBoolean(false), v)

	v, err = NullValue(Boolean).CastAs(Varchar)
	require.NoError(t, err)
	assert.Equal(t, NullValue(Varchar), v)

	_, err = NewBoolean(true).CastAs(Integer)
	assert.True(t, ErrUnsupportedCast.Is(err))
}

func TestBooleanValues(t *testing.T) {
	assert.True(t, NewBoolean(true).IsTrue())
	assert.False(t, NewBoolean(true).IsFalse())
	assert.True(t, NewBoolean(false).IsFalse())
	assert.False(t, NullValue(Boolean).IsTrue())
	assert.False(t, NullValue(Boolean).IsFalse())
	assert.True(t, NewBoolean(false).IsZero())

	assert.Equal(t, "true", NewBoolean(true).ToString())
	assert.Equal(t, "false", NewBoolean(false).ToString())
	assert.Equal(t, "boolean_null", NullValue(Boolean).ToString())

	assert.Equal(t, NewBoolean(true), NewBooleanFromCmpBool(CmpTrue))
	assert.Equal(t, NewBoolean(false), NewBooleanFromCmpBool(CmpFalse))
	assert.Equal(t, NullValue(Boolean), NewBooleanFromCmpBool(CmpNull))

	_, err := NewBoolean(true).Add(NewBoolean(true))
	assert.True(t, ErrTypeMismatch.Is(err))

	v, err := NewBoolean(true).Max(NewBoolean(false))
	require.NoError(t, err)
	assert.Equal(t, NewBoolean(true), v)
}
