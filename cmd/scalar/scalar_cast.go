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
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/dolthub/scalar/cmd/scalar/cli"
	"github.com/dolthub/scalar/cmd/scalar/util"
	"github.com/dolthub/scalar/store/types"
)

func scalarCast(app *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cast := app.Command("cast", "casts a value to another kind")
	operand := cast.Arg("value", "operand as kind:literal").Required().String()
	target := cast.Arg("kind", "target kind").Required().String()

	return cast, func(input string) int {
		out, err := castValue(*operand, *target)
		if err != nil {
			return reportError(err, "cast")
		}
		cli.Println(out)
		return exitOK
	}
}

func castValue(s, target string) (string, error) {
	v, err := parseOperand(s)
	if err != nil {
		return "", err
	}
	id, err := types.TypeIDFromString(target)
	if err != nil {
		return "", err
	}
	res, err := v.CastAs(id)
	if err != nil {
		return "", err
	}
	return formatValue(res), nil
}
