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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel())
	assert.Equal(t, LogFormat_Text, cfg.LogFormat())
	assert.True(t, cfg.Color())
	assert.Equal(t, 4, cfg.HexGroup())
}

func TestNewYamlConfig(t *testing.T) {
	cfg, err := NewYamlConfig([]byte(`
log_level: DEBUG
log_format: json
output:
  color: false
  hex_group: 0
`))
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel())
	assert.Equal(t, LogFormat_JSON, cfg.LogFormat())
	assert.False(t, cfg.Color())
	assert.Equal(t, 0, cfg.HexGroup())
}

func TestPartialYamlConfig(t *testing.T) {
	cfg, err := NewYamlConfig([]byte("output:\n  hex_group: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel())
	assert.True(t, cfg.Color())
	assert.Equal(t, 2, cfg.HexGroup())
}

func TestInvalidYamlConfig(t *testing.T) {
	tests := []string{
		"log_level: loud\n",
		"log_format: xml\n",
		"output:\n  hex_group: -1\n",
		"unknown_key: 1\n",
		"log_level: [\n",
	}

	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			_, err := NewYamlConfig([]byte(test))
			assert.Error(t, err)
		})
	}
}

func TestYamlConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scalar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))

	cfg, err := YamlConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel())

	_, err = YamlConfigFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigureLogger(t *testing.T) {
	cfg, err := NewYamlConfig([]byte("log_level: error\nlog_format: json\n"))
	require.NoError(t, err)

	logger := logrus.New()
	cfg.ConfigureLogger(logger)
	assert.Equal(t, logrus.ErrorLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
