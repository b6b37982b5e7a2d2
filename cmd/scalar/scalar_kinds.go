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
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/dolthub/scalar/cmd/scalar/cli"
	"github.com/dolthub/scalar/cmd/scalar/util"
	"github.com/dolthub/scalar/store/types"
)

func scalarKinds(app *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	kinds := app.Command("kinds", "lists the value kinds with their sizes, ranges and null sentinels")

	return kinds, func(input string) int {
		if err := writeKinds(cli.CliOut); err != nil {
			return reportError(err, "kinds")
		}
		return exitOK
	}
}

func writeKinds(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tSIZE\tMIN\tMAX\tNULL")

	for _, id := range types.AllTypeIDs {
		sz, err := types.TypeSize(id)
		if err != nil {
			return err
		}
		size := "variable"
		if sz > 0 {
			size = humanize.Bytes(uint64(sz))
		}

		lo, hi := "-", "-"
		if v, err := types.MinValue(id); err == nil {
			lo = quoteEmpty(v.ToString())
		}
		if v, err := types.MaxValue(id); err == nil {
			hi = v.ToString()
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", id, size, lo, hi, nullSentinel(id))
	}
	return tw.Flush()
}

func quoteEmpty(s string) string {
	if s == "" {
		return `""`
	}
	return s
}

func nullSentinel(id types.TypeID) string {
	switch id {
	case types.Boolean:
		return strconv.Itoa(int(types.BooleanNull))
	case types.TinyInt:
		return strconv.Itoa(int(types.TinyIntNull))
	case types.SmallInt:
		return strconv.Itoa(int(types.SmallIntNull))
	case types.Integer:
		return strconv.Itoa(int(types.IntegerNull))
	case types.BigInt:
		return strconv.FormatInt(types.BigIntNull, 10)
	case types.Decimal:
		return strconv.FormatFloat(types.DecimalNull, 'g', -1, 64)
	case types.Timestamp:
		return strconv.FormatUint(types.TimestampNull, 10)
	default:
		return "length " + strconv.FormatUint(uint64(types.VarcharNull), 10)
	}
}
