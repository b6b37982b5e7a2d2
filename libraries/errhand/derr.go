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
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// VerboseError is an error with a longer form suited to a terminal.
type VerboseError interface {
	error
	Verbose() string
}

// DError is a display error: a short message shown in red, followed in its
// verbose form by detail lines and the underlying cause.
type DError struct {
	DisplayMsg string
	Details    []string
	cause      error
}

type DErrorBuilder struct {
	derr DError
}

func BuildDError(dispFmt string, args ...interface{}) *DErrorBuilder {
	return &DErrorBuilder{DError{DisplayMsg: sprintf(dispFmt, args)}}
}

// BuildIf returns nil when |err| is nil, so a chain of builder calls on the
// result produces a nil VerboseError.
func BuildIf(err error, dispFmt string, args ...interface{}) *DErrorBuilder {
	if err == nil {
		return nil
	}
	return BuildDError(dispFmt, args...).AddCause(err)
}

func (builder *DErrorBuilder) AddDetails(detailsFmt string, args ...interface{}) *DErrorBuilder {
	if builder == nil {
		return nil
	}
	builder.derr.Details = append(builder.derr.Details, sprintf(detailsFmt, args))
	return builder
}

func (builder *DErrorBuilder) AddCause(cause error) *DErrorBuilder {
	if builder == nil {
		return nil
	}
	builder.derr.cause = cause
	return builder
}

func (builder *DErrorBuilder) Build() VerboseError {
	if builder == nil {
		return nil
	}
	derr := builder.derr
	return &derr
}

func (derr *DError) Error() string {
	return color.RedString(derr.DisplayMsg)
}

func (derr *DError) Unwrap() error {
	return derr.cause
}

func (derr *DError) Verbose() string {
	sections := append([]string{derr.Error()}, derr.Details...)

	if derr.cause != nil {
		causeStr := derr.cause.Error()
		if vCause, ok := derr.cause.(VerboseError); ok {
			causeStr = vCause.Verbose()
		}
		sections = append(sections, "cause:", indent(causeStr, "\t\t"))
	}

	return strings.Join(sections, "\n")
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func indent(str, indentStr string) string {
	lines := strings.Split(str, "\n")
	return indentStr + strings.Join(lines, "\n"+indentStr)
}
