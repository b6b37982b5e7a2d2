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

// Package val holds the fixed-width field codec used for scalar storage.
// Fields are written in the host's native byte order at offset zero of the
// caller's buffer. Buffers may be larger than the field; the caller is
// responsible for sizing them.
package val

import (
	"encoding/binary"
	"math"
)

type ByteSize uint32

const (
	Int8Size    ByteSize = 1
	Uint8Size   ByteSize = 1
	Int16Size   ByteSize = 2
	Int32Size   ByteSize = 4
	Uint32Size  ByteSize = 4
	Int64Size   ByteSize = 8
	Uint64Size  ByteSize = 8
	Float64Size ByteSize = 8

	// LengthSize is the size of the prefix written ahead of variable length fields.
	LengthSize = Uint32Size
)

// NullLength is the length prefix written for a null variable length field.
const NullLength = math.MaxUint32

func ReadInt8(val []byte) int8 {
	expectFits(val, Int8Size)
	return int8(val[0])
}

func WriteInt8(buf []byte, val int8) {
	expectFits(buf, Int8Size)
	buf[0] = byte(val)
}

func ReadInt16(val []byte) int16 {
	expectFits(val, Int16Size)
	return int16(binary.NativeEndian.Uint16(val))
}

func WriteInt16(buf []byte, val int16) {
	expectFits(buf, Int16Size)
	binary.NativeEndian.PutUint16(buf, uint16(val))
}

func ReadInt32(val []byte) int32 {
	expectFits(val, Int32Size)
	return int32(binary.NativeEndian.Uint32(val))
}

func WriteInt32(buf []byte, val int32) {
	expectFits(buf, Int32Size)
	binary.NativeEndian.PutUint32(buf, uint32(val))
}

func ReadUint32(val []byte) uint32 {
	expectFits(val, Uint32Size)
	return binary.NativeEndian.Uint32(val)
}

func WriteUint32(buf []byte, val uint32) {
	expectFits(buf, Uint32Size)
	binary.NativeEndian.PutUint32(buf, val)
}

func ReadInt64(val []byte) int64 {
	expectFits(val, Int64Size)
	return int64(binary.NativeEndian.Uint64(val))
}

func WriteInt64(buf []byte, val int64) {
	expectFits(buf, Int64Size)
	binary.NativeEndian.PutUint64(buf, uint64(val))
}

func ReadUint64(val []byte) uint64 {
	expectFits(val, Uint64Size)
	return binary.NativeEndian.Uint64(val)
}

func WriteUint64(buf []byte, val uint64) {
	expectFits(buf, Uint64Size)
	binary.NativeEndian.PutUint64(buf, val)
}

func ReadFloat64(val []byte) float64 {
	expectFits(val, Float64Size)
	return math.Float64frombits(binary.NativeEndian.Uint64(val))
}

func WriteFloat64(buf []byte, val float64) {
	expectFits(buf, Float64Size)
	binary.NativeEndian.PutUint64(buf, math.Float64bits(val))
}

// ReadVarlen reads a length prefixed field. A NullLength prefix yields
// (nil, false). The returned slice is a copy.
func ReadVarlen(val []byte) ([]byte, bool) {
	l := ReadUint32(val)
	if l == NullLength {
		return nil, false
	}
	sz := VarlenSize(int(l))
	expectLen(val, sz)
	out := make([]byte, l)
	copy(out, val[LengthSize:sz])
	return out, true
}

// WriteVarlen writes the length prefix followed by |val|.
func WriteVarlen(buf []byte, val []byte) {
	sz := VarlenSize(len(val))
	expectLen(buf, sz)
	WriteUint32(buf, uint32(len(val)))
	copy(buf[LengthSize:sz], val)
}

// WriteNullVarlen writes the null length prefix.
func WriteNullVarlen(buf []byte) {
	WriteUint32(buf, NullLength)
}

// VarlenSize is the number of bytes a variable length field of |n| bytes
// occupies. It is computed in int so lengths near NullLength do not wrap.
func VarlenSize(n int) int {
	return int(LengthSize) + n
}

func expectFits(buf []byte, sz ByteSize) {
	expectLen(buf, int(sz))
}

func expectLen(buf []byte, n int) {
	if len(buf) < n {
		panic("byte slice is smaller than expected size")
	}
}
