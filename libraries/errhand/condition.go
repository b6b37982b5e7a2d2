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

package errhand

import (
	"errors"

	goerrors "gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/scalar/store/types"
)

// Condition names the class of failure an engine error belongs to.
type Condition string

const (
	ConditionNone            Condition = ""
	ConditionOutOfRange      Condition = "out of range"
	ConditionDivideByZero    Condition = "division by zero"
	ConditionDomain          Condition = "domain error"
	ConditionTypeMismatch    Condition = "type mismatch"
	ConditionUnsupportedCast Condition = "unsupported cast"
	ConditionInvalidText     Condition = "invalid text representation"
	ConditionUnknownType     Condition = "unknown type"
	ConditionNotImplemented  Condition = "not implemented"
	ConditionUnclassified    Condition = "error"
)

var conditionKinds = []struct {
	kind *goerrors.Kind
	cond Condition
}{
	{types.ErrOutOfRange, ConditionOutOfRange},
	{types.ErrDivideByZero, ConditionDivideByZero},
	{types.ErrDomain, ConditionDomain},
	{types.ErrTypeMismatch, ConditionTypeMismatch},
	{types.ErrUnsupportedCast, ConditionUnsupportedCast},
	{types.ErrInvalidTextRepresentation, ConditionInvalidText},
	{types.ErrUnknownType, ConditionUnknownType},
	{types.ErrNotImplemented, ConditionNotImplemented},
}

// ConditionOf classifies |err|, looking through wrapped errors.
func ConditionOf(err error) Condition {
	if err == nil {
		return ConditionNone
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		for _, ck := range conditionKinds {
			if ck.kind.Is(e) {
				return ck.cond
			}
		}
	}
	return ConditionUnclassified
}

// FromEngineError builds a display error for a failed engine operation.
func FromEngineError(err error, op string) VerboseError {
	return BuildIf(err, "error: %s failed: %s", op, ConditionOf(err)).Build()
}
