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

package util

import "gopkg.in/alecthomas/kingpin.v2"

// KingpinHandler runs a parsed command and returns the process exit code.
type KingpinHandler func(input string) (exitCode int)

// KingpinCommand registers a command on the application and returns it
// along with the handler that runs it.
type KingpinCommand func(*kingpin.Application) (*kingpin.CmdClause, KingpinHandler)
