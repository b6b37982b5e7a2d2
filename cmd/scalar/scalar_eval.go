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
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/dolthub/scalar/cmd/scalar/cli"
	"github.com/dolthub/scalar/cmd/scalar/util"
	"github.com/dolthub/scalar/store/types"
)

var arithmeticOps = map[string]func(l, r types.Value) (types.Value, error){
	"add": types.Value.Add,
	"sub": types.Value.Subtract,
	"mul": types.Value.Multiply,
	"div": types.Value.Divide,
	"mod": types.Value.Modulo,
	"min": types.Value.Min,
	"max": types.Value.Max,
}

var comparisonOps = map[string]func(l, r types.Value) (types.CmpBool, error){
	"eq": types.Value.CompareEquals,
	"ne": types.Value.CompareNotEquals,
	"lt": types.Value.CompareLessThan,
	"le": types.Value.CompareLessThanEquals,
	"gt": types.Value.CompareGreaterThan,
	"ge": types.Value.CompareGreaterThanEquals,
}

func opNames() []string {
	names := make([]string, 0, len(arithmeticOps)+len(comparisonOps))
	for name := range arithmeticOps {
		names = append(names, name)
	}
	for name := range comparisonOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func scalarEval(app *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	eval := app.Command("eval", "evaluates an arithmetic or comparison operation on two values")
	left := eval.Arg("left", "left operand as kind:literal").Required().String()
	op := eval.Arg("op", "operation").Required().Enum(opNames()...)
	right := eval.Arg("right", "right operand as kind:literal").Required().String()

	return eval, func(input string) int {
		out, err := evalBinary(*left, *op, *right)
		if err != nil {
			return reportError(err, *op)
		}
		cli.Println(out)
		return exitOK
	}
}

func evalBinary(leftStr, op, rightStr string) (string, error) {
	left, err := parseOperand(leftStr)
	if err != nil {
		return "", err
	}
	right, err := parseOperand(rightStr)
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"left":  formatValue(left),
		"op":    op,
		"right": formatValue(right),
	}).Debug("evaluating")

	if fn, ok := comparisonOps[op]; ok {
		res, err := fn(left, right)
		if err != nil {
			return "", err
		}
		return res.String(), nil
	}

	res, err := arithmeticOps[op](left, right)
	if err != nil {
		return "", err
	}
	return formatValue(res), nil
}

func scalarSqrt(app *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	sqrt := app.Command("sqrt", "takes the square root of a value")
	operand := sqrt.Arg("value", "operand as kind:literal").Required().String()

	return sqrt, func(input string) int {
		out, err := evalSqrt(*operand)
		if err != nil {
			return reportError(err, "sqrt")
		}
		cli.Println(out)
		return exitOK
	}
}

func evalSqrt(s string) (string, error) {
	v, err := parseOperand(s)
	if err != nil {
		return "", err
	}
	res, err := v.Sqrt()
	if err != nil {
		return "", err
	}
	return formatValue(res), nil
}
