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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrOutOfRange is returned when a result or cast does not fit the target kind.
	ErrOutOfRange = errors.NewKind("%s value is out of range: %s")

	ErrDivideByZero = errors.NewKind("division by zero")

	// ErrDomain is returned for inputs outside an operation's mathematical domain.
	ErrDomain = errors.NewKind("%s")

	ErrTypeMismatch = errors.NewKind("operation %s is not supported between %s and %s")

	ErrUnsupportedCast = errors.NewKind("%s is not coercable to %s")

	// ErrInvalidTextRepresentation is returned when text cannot be parsed as the target kind.
	ErrInvalidTextRepresentation = errors.NewKind("invalid input syntax for %s: %q")

	ErrUnknownType = errors.NewKind("unknown type: %s")

	ErrNotImplemented = errors.NewKind("%s is not implemented for %s")
)
