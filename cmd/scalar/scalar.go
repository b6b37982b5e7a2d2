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
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/dolthub/scalar/cmd/scalar/cli"
	"github.com/dolthub/scalar/cmd/scalar/util"
	"github.com/dolthub/scalar/libraries/errhand"
	"github.com/dolthub/scalar/libraries/utils/config"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var kingpinCommands = []util.KingpinCommand{
	scalarEval,
	scalarSqrt,
	scalarCast,
	scalarEncode,
	scalarDecode,
	scalarKinds,
}

// settings applied from the global flags and config file before a handler runs.
var (
	verboseErrors bool
	hexGroup      = 4
)

type globalFlags struct {
	configPath *string
	verbose    *bool
	noColor    *bool
}

func newApp() (*kingpin.Application, globalFlags, map[string]util.KingpinHandler) {
	app := kingpin.New("scalar", "Scalar evaluates, casts and encodes typed scalar values.")
	app.HelpFlag.Short('h')

	flags := globalFlags{
		configPath: app.Flag("config", "path to a yaml config file").String(),
		verbose:    app.Flag("verbose", "show more").Short('v').Bool(),
		noColor:    app.Flag("no-color", "disable colored output").Bool(),
	}

	handlers := map[string]util.KingpinHandler{}
	for _, cmdFunction := range kingpinCommands {
		command, handler := cmdFunction(app)
		handlers[command.FullCommand()] = handler
	}

	return app, flags, handlers
}

func run(args []string) int {
	app, flags, handlers := newApp()

	input, err := app.Parse(args)
	if err != nil {
		cli.PrintErrln(err)
		return exitUsage
	}

	cfg, err := loadConfig(*flags.configPath)
	if err != nil {
		cli.PrintErrln(errhand.BuildDError("error: failed to load config").
			AddDetails("config file: %s", *flags.configPath).
			AddCause(err).Build().Verbose())
		return exitUsage
	}
	applySettings(cfg, *flags.verbose, *flags.noColor)

	handler := handlers[input]
	if handler == nil {
		app.Usage(args)
		return exitUsage
	}

	logrus.WithField("command", input).Debug("running command")
	return handler(input)
}

func loadConfig(path string) (*config.YAMLConfig, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.YamlConfigFromFile(path)
}

func applySettings(cfg *config.YAMLConfig, verbose, noColor bool) {
	logger := logrus.StandardLogger()
	cfg.ConfigureLogger(logger)
	logger.SetOutput(cli.CliErr)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if noColor || !cfg.Color() {
		color.NoColor = true
	}

	verboseErrors = verbose
	hexGroup = cfg.HexGroup()
}

// reportError prints a failed operation and returns the exit code for it.
func reportError(err error, op string) int {
	logrus.WithError(err).WithField("op", op).Debug("operation failed")

	derr := errhand.FromEngineError(err, op)
	if verboseErrors {
		cli.PrintErrln(derr.Verbose())
	} else {
		cli.PrintErrln(derr.Error())
		cli.PrintErrln(err.Error())
	}
	return exitError
}

func main() {
	os.Exit(run(os.Args[1:]))
}
