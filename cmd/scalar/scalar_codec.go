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
	"encoding/hex"
	"fmt"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/dolthub/scalar/cmd/scalar/cli"
	"github.com/dolthub/scalar/cmd/scalar/util"
	"github.com/dolthub/scalar/store/types"
	"github.com/dolthub/scalar/store/val"
)

func scalarEncode(app *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	encode := app.Command("encode", "prints the stored bytes of a value as hex")
	operand := encode.Arg("value", "operand as kind:literal").Required().String()

	return encode, func(input string) int {
		out, err := encodeValue(*operand, hexGroup)
		if err != nil {
			return reportError(err, "encode")
		}
		cli.Println(out)
		return exitOK
	}
}

func encodeValue(s string, group int) (string, error) {
	v, err := parseOperand(s)
	if err != nil {
		return "", err
	}

	buf := make([]byte, v.SerializedSize())
	v.SerializeTo(buf)
	return formatHex(buf, group), nil
}

// formatHex renders |buf| as hex with a space after every |group| bytes.
func formatHex(buf []byte, group int) string {
	if group <= 0 || len(buf) <= group {
		return hex.EncodeToString(buf)
	}

	groups := make([]string, 0, len(buf)/group+1)
	for i := 0; i < len(buf); i += group {
		end := min(i+group, len(buf))
		groups = append(groups, hex.EncodeToString(buf[i:end]))
	}
	return strings.Join(groups, " ")
}

func scalarDecode(app *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	decode := app.Command("decode", "decodes stored bytes given as hex")
	kind := decode.Arg("kind", "kind of the stored value").Required().String()
	data := decode.Arg("hex", "stored bytes as hex, spaces are ignored").Required().Strings()

	return decode, func(input string) int {
		out, err := decodeValue(*kind, strings.Join(*data, ""))
		if err != nil {
			return reportError(err, "decode")
		}
		cli.Println(out)
		return exitOK
	}
}

func decodeValue(kind, hexStr string) (string, error) {
	id, err := types.TypeIDFromString(kind)
	if err != nil {
		return "", err
	}

	buf, err := hex.DecodeString(strings.ReplaceAll(hexStr, " ", ""))
	if err != nil {
		return "", fmt.Errorf("invalid hex: %w", err)
	}

	if err := checkStoredSize(id, buf); err != nil {
		return "", err
	}
	return formatValue(types.DeserializeFrom(buf, id)), nil
}

// checkStoredSize verifies |buf| holds a complete value of kind |id| so that
// deserializing it cannot run past the end.
func checkStoredSize(id types.TypeID, buf []byte) error {
	sz, err := types.TypeSize(id)
	if err != nil {
		return err
	}
	if sz > 0 {
		if len(buf) < sz {
			return fmt.Errorf("%s needs %d bytes, got %d", id, sz, len(buf))
		}
		return nil
	}

	if len(buf) < int(val.LengthSize) {
		return fmt.Errorf("%s needs a %d byte length prefix, got %d bytes", id, val.LengthSize, len(buf))
	}
	l := val.ReadUint32(buf)
	if l != val.NullLength && len(buf) < val.VarlenSize(int(l)) {
		return fmt.Errorf("%s of length %d needs %d bytes, got %d", id, l, val.VarlenSize(int(l)), len(buf))
	}
	return nil
}
