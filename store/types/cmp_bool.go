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

// CmpBool is the result of a three-valued comparison.
type CmpBool int8

const (
	CmpFalse CmpBool = iota
	CmpTrue
	CmpNull
)

func (c CmpBool) String() string {
	switch c {
	case CmpFalse:
		return "false"
	case CmpTrue:
		return "true"
	default:
		return "null"
	}
}

func cmpBool(b bool) CmpBool {
	if b {
		return CmpTrue
	}
	return CmpFalse
}

// Not negates a comparison result. CmpNull stays CmpNull.
func (c CmpBool) Not() CmpBool {
	switch c {
	case CmpFalse:
		return CmpTrue
	case CmpTrue:
		return CmpFalse
	default:
		return CmpNull
	}
}
