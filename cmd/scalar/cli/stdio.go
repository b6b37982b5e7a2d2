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

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var CliOut io.Writer = color.Output
var CliErr io.Writer = color.Error

// SetIOStreams redirects output, returning a func that restores the previous streams.
func SetIOStreams(out, err io.Writer) (restore func()) {
	prevOut, prevErr := CliOut, CliErr
	CliOut, CliErr = out, err
	return func() {
		CliOut, CliErr = prevOut, prevErr
	}
}

func Println(a ...interface{}) {
	fmt.Fprintln(CliOut, a...)
}

func PrintErrln(a ...interface{}) {
	fmt.Fprintln(CliErr, a...)
}
