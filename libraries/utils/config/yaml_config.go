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

// Package config loads the YAML configuration used by the scalar command.
package config

import (
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type LogFormat string

const (
	LogFormat_Text LogFormat = "text"
	LogFormat_JSON LogFormat = "json"
)

// OutputYAMLConfig controls how values are printed.
type OutputYAMLConfig struct {
	Color *bool `yaml:"color,omitempty" default:"true"`
	// HexGroup is the number of bytes printed between spaces by encode. 0 disables grouping.
	HexGroup *int `yaml:"hex_group,omitempty" default:"4"`
}

// YAMLConfig is the configuration read from a yaml file. Fields left out of
// the file take their default values.
type YAMLConfig struct {
	LogLevelStr  *string          `yaml:"log_level,omitempty" default:"info"`
	LogFormatStr *string          `yaml:"log_format,omitempty" default:"text"`
	OutputConfig OutputYAMLConfig `yaml:"output,omitempty"`
}

// NewYamlConfig parses |configFileData|. Unknown keys are an error.
func NewYamlConfig(configFileData []byte) (*YAMLConfig, error) {
	var cfg YAMLConfig
	if err := yaml.UnmarshalStrict(configFileData, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if err := defaults.Set(&cfg); err != nil {
		return nil, err
	}

	loglevel := strings.ToLower(*cfg.LogLevelStr)
	cfg.LogLevelStr = &loglevel
	logformat := strings.ToLower(*cfg.LogFormatStr)
	cfg.LogFormatStr = &logformat

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *YAMLConfig {
	cfg, err := NewYamlConfig(nil)
	if err != nil {
		panic(err)
	}
	return cfg
}

// YamlConfigFromFile reads and parses the config file at |path|.
func YamlConfigFromFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file '%s'", path)
	}

	cfg, err := NewYamlConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config from '%s'", path)
	}
	return cfg, nil
}

func (cfg *YAMLConfig) validate() error {
	if _, err := logrus.ParseLevel(*cfg.LogLevelStr); err != nil {
		return errors.Errorf("invalid log_level '%s'", *cfg.LogLevelStr)
	}

	switch LogFormat(*cfg.LogFormatStr) {
	case LogFormat_Text, LogFormat_JSON:
	default:
		return errors.Errorf("invalid log_format '%s', expected one of: text, json", *cfg.LogFormatStr)
	}

	if *cfg.OutputConfig.HexGroup < 0 {
		return errors.Errorf("invalid hex_group %d, must not be negative", *cfg.OutputConfig.HexGroup)
	}
	return nil
}

func (cfg *YAMLConfig) LogLevel() logrus.Level {
	lvl, _ := logrus.ParseLevel(*cfg.LogLevelStr)
	return lvl
}

func (cfg *YAMLConfig) LogFormat() LogFormat {
	return LogFormat(*cfg.LogFormatStr)
}

func (cfg *YAMLConfig) Color() bool {
	return *cfg.OutputConfig.Color
}

func (cfg *YAMLConfig) HexGroup() int {
	return *cfg.OutputConfig.HexGroup
}

// ConfigureLogger applies the configured level and format to |logger|.
func (cfg *YAMLConfig) ConfigureLogger(logger *logrus.Logger) {
	logger.SetLevel(cfg.LogLevel())
	switch cfg.LogFormat() {
	case LogFormat_JSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
}
