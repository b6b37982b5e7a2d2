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

import "math"

// Null sentinels. A stored field holding one of these payloads is null.
const (
	BooleanNull   int8    = math.MinInt8
	TinyIntNull   int8    = math.MinInt8
	SmallIntNull  int16   = math.MinInt16
	IntegerNull   int32   = math.MinInt32
	BigIntNull    int64   = math.MinInt64
	DecimalNull   float64 = -math.MaxFloat64
	TimestampNull uint64  = math.MaxUint64
	VarcharNull   uint32  = math.MaxUint32
)

// Representable ranges. Integer minimums sit one above the null sentinel.
const (
	TinyIntMin  int8 = math.MinInt8 + 1
	TinyIntMax  int8 = math.MaxInt8
	SmallIntMin int16 = math.MinInt16 + 1
	SmallIntMax int16 = math.MaxInt16
	IntegerMin  int32 = math.MinInt32 + 1
	IntegerMax  int32 = math.MaxInt32
	BigIntMin   int64 = math.MinInt64 + 1
	BigIntMax   int64 = math.MaxInt64

	DecimalMin float64 = -math.MaxFloat32
	DecimalMax float64 = math.MaxFloat64

	TimestampMin uint64 = 0
	TimestampMax uint64 = 11231999986399999999
)
