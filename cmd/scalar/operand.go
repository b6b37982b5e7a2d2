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

package main

import (
	"fmt"
	"strings"

	"github.com/dolthub/scalar/store/types"
)

// parseOperand reads a value written as kind:literal, e.g. integer:42,
// varchar:hello, vector:[1,2.5] or bigint:null. Scalar literals are coerced
// from text the same way the engine coerces varchar operands.
func parseOperand(s string) (types.Value, error) {
	kind, literal, ok := strings.Cut(s, ":")
	if !ok {
		return types.Value{}, fmt.Errorf("operand %q must be written as kind:literal", s)
	}

	id, err := types.TypeIDFromString(kind)
	if err != nil {
		return types.Value{}, err
	}

	if strings.EqualFold(literal, "null") {
		return types.NullValue(id), nil
	}
	if id == types.Vector {
		return types.ParseVector(literal)
	}
	return types.NewVarchar(literal).CastAs(id)
}

// formatValue renders a value with its kind, e.g. "INTEGER 150".
func formatValue(v types.Value) string {
	if v.IsNull() {
		return fmt.Sprintf("%s NULL", v.TypeID())
	}
	if v.TypeID() == types.Varchar {
		return fmt.Sprintf("%s %q", v.TypeID(), v.ToString())
	}
	return fmt.Sprintf("%s %s", v.TypeID(), v.ToString())
}
