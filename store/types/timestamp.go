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
	"regexp"
	"strconv"

	"github.com/dolthub/scalar/store/val"
)

// Timestamps are packed into a uint64 as
//
//	((((month*32 + day)*27 + tz+12)*10000 + year)*100000 + secondOfDay)*1000000 + micros
//
// where tz is a whole hour offset from UTC in [-12, 14].
type timestampType struct {
	typeBase
	noArithmetic
}

var _ Type = (*timestampType)(nil)

func newTimestampType() *timestampType {
	t := &timestampType{noArithmetic: noArithmetic{id: Timestamp}}
	t.typeBase = typeBase{id: Timestamp, ops: t}
	return t
}

func (t *timestampType) OperateNull(_, right Value) (Value, error) {
	return t.operateNull(right)
}

func (t *timestampType) IsZero(v Value) bool {
	return !v.IsNull() && v.num == 0
}

func (t *timestampType) compare(left, right Value) (int, error) {
	if right.typeID != Timestamp {
		coerced, err := right.CastAs(Timestamp)
		if err != nil {
			return 0, err
		}
		right = coerced
	}

	switch {
	case left.num < right.num:
		return -1, nil
	case left.num > right.num:
		return 1, nil
	default:
		return 0, nil
	}
}

func (t *timestampType) ToString(v Value) string {
	if v.IsNull() {
		return "timestamp_null"
	}
	return unpackTimestamp(v.num).String()
}

func (t *timestampType) SerializeTo(v Value, storage []byte) {
	val.WriteUint64(storage, v.num)
}

func (t *timestampType) DeserializeFrom(storage []byte) Value {
	return NewTimestamp(val.ReadUint64(storage))
}

func (t *timestampType) CastAs(v Value, id TypeID) (Value, error) {
	switch id {
	case Timestamp:
		return t.Copy(v), nil
	case Varchar:
		if v.IsNull() {
			return NullValue(Varchar), nil
		}
		return NewVarchar(t.ToString(v)), nil
	default:
		return Value{}, ErrUnsupportedCast.New(Timestamp, id)
	}
}

// TimestampParts are the fields of a packed timestamp.
type TimestampParts struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Micros               int
	TZ                   int
}

func (p TimestampParts) String() string {
	sign := '+'
	tz := p.TZ
	if tz < 0 {
		sign, tz = '-', -tz
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%06d%c%02d",
		p.Year, p.Month, p.Day, p.Hour, p.Minute, p.Second, p.Micros, sign, tz)
}

func (p TimestampParts) valid() bool {
	return p.Year >= 0 && p.Year < 10000 &&
		p.Month >= 1 && p.Month <= 12 &&
		p.Day >= 1 && p.Day <= 31 &&
		p.Hour >= 0 && p.Hour < 24 &&
		p.Minute >= 0 && p.Minute < 60 &&
		p.Second >= 0 && p.Second < 60 &&
		p.Micros >= 0 && p.Micros < 1000000 &&
		p.TZ >= -12 && p.TZ <= 14
}

// NewTimestampFromParts packs |p| into a timestamp value.
func NewTimestampFromParts(p TimestampParts) (Value, error) {
	if !p.valid() {
		return Value{}, ErrOutOfRange.New(Timestamp, p.String())
	}

	tm := uint64(p.Month)
	tm = tm*32 + uint64(p.Day)
	tm = tm*27 + uint64(p.TZ+12)
	tm = tm*10000 + uint64(p.Year)
	tm = tm*100000 + uint64(p.Hour*3600+p.Minute*60+p.Second)
	tm = tm*1000000 + uint64(p.Micros)
	return NewTimestamp(tm), nil
}

func unpackTimestamp(tm uint64) TimestampParts {
	var p TimestampParts
	p.Micros = int(tm % 1000000)
	tm /= 1000000
	secs := int(tm % 100000)
	p.Second = secs % 60
	p.Minute = secs / 60 % 60
	p.Hour = secs / 3600 % 24
	tm /= 100000
	p.Year = int(tm % 10000)
	tm /= 10000
	p.TZ = int(tm%27) - 12
	tm /= 27
	p.Day = int(tm % 32)
	tm /= 32
	p.Month = int(tm)
	return p
}

var timestampRegex = regexp.MustCompile(`^\s*(\d{4})-(\d{2})-(\d{2}) (\d{2}):(\d{2}):(\d{2})\.(\d{6})([+-]\d{2})\s*$`)

func parseTimestamp(s string) (Value, error) {
	m := timestampRegex.FindStringSubmatch(s)
	if m == nil {
		return Value{}, ErrInvalidTextRepresentation.New(Timestamp, s)
	}

	fields := make([]int, len(m)-1)
	for i, str := range m[1:] {
		n, err := strconv.Atoi(str)
		if err != nil {
			return Value{}, ErrInvalidTextRepresentation.New(Timestamp, s)
		}
		fields[i] = n
	}

	return NewTimestampFromParts(TimestampParts{
		Year:   fields[0],
		Month:  fields[1],
		Day:    fields[2],
		Hour:   fields[3],
		Minute: fields[4],
		Second: fields[5],
		Micros: fields[6],
		TZ:     fields[7],
	})
}
