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
	"strings"

	"github.com/dolthub/scalar/store/val"
)

// TypeID identifies the kind of a scalar Value.
type TypeID uint8

const (
	Invalid TypeID = iota
	Boolean
	TinyInt
	SmallInt
	Integer
	BigInt
	Decimal
	Varchar
	Timestamp
	Vector
)

var typeIDToName = map[TypeID]string{
	Invalid:   "INVALID",
	Boolean:   "BOOLEAN",
	TinyInt:   "TINYINT",
	SmallInt:  "SMALLINT",
	Integer:   "INTEGER",
	BigInt:    "BIGINT",
	Decimal:   "DECIMAL",
	Varchar:   "VARCHAR",
	Timestamp: "TIMESTAMP",
	Vector:    "VECTOR",
}

var nameToTypeID = map[string]TypeID{
	"boolean":   Boolean,
	"bool":      Boolean,
	"tinyint":   TinyInt,
	"smallint":  SmallInt,
	"integer":   Integer,
	"int":       Integer,
	"bigint":    BigInt,
	"decimal":   Decimal,
	"varchar":   Varchar,
	"text":      Varchar,
	"timestamp": Timestamp,
	"vector":    Vector,
}

// AllTypeIDs lists every valid kind in enumeration order.
var AllTypeIDs = []TypeID{Boolean, TinyInt, SmallInt, Integer, BigInt, Decimal, Varchar, Timestamp, Vector}

func (id TypeID) String() string {
	if name, ok := typeIDToName[id]; ok {
		return name
	}
	return "INVALID"
}

// TypeIDFromString returns the kind named by |name|, ignoring case.
func TypeIDFromString(name string) (TypeID, error) {
	if id, ok := nameToTypeID[strings.ToLower(strings.TrimSpace(name))]; ok {
		return id, nil
	}
	return Invalid, ErrUnknownType.New(name)
}

// TypeSize returns the number of bytes a value of the given kind occupies in
// fixed-width storage. Varchar and Vector report 0 as their size is variable.
func TypeSize(id TypeID) (int, error) {
	switch id {
	case Boolean, TinyInt:
		return int(val.Int8Size), nil
	case SmallInt:
		return int(val.Int16Size), nil
	case Integer:
		return int(val.Int32Size), nil
	case BigInt:
		return int(val.Int64Size), nil
	case Decimal:
		return int(val.Float64Size), nil
	case Timestamp:
		return int(val.Uint64Size), nil
	case Varchar, Vector:
		return 0, nil
	default:
		return 0, ErrUnknownType.New(id.String())
	}
}

// IsNumeric returns whether the kind supports arithmetic.
func (id TypeID) IsNumeric() bool {
	switch id {
	case TinyInt, SmallInt, Integer, BigInt, Decimal:
		return true
	default:
		return false
	}
}

// IsInteger returns whether the kind is one of the integer kinds.
func (id TypeID) IsInteger() bool {
	switch id {
	case TinyInt, SmallInt, Integer, BigInt:
		return true
	default:
		return false
	}
}

// IsComparable returns whether values of kind |id| may be compared with
// values of kind |other|. Vectors are not comparable.
func (id TypeID) IsComparable(other TypeID) bool {
	switch id {
	case Boolean:
		return other == Boolean || other == Varchar
	case TinyInt, SmallInt, Integer, BigInt, Decimal:
		return other.IsNumeric() || other == Varchar
	case Varchar:
		return other != Invalid && other != Vector
	case Timestamp:
		return other == Timestamp || other == Varchar
	default:
		return false
	}
}
