// Copyright 2025 Naren Yellavula
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
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	logger, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
}

func TestSetupLoggerLevel(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	setupLogger(&buf, LogConfig{Level: "warn", Console: false})

	log.Info().Msg("hidden")
	log.Warn().Str("key", "42").Msg("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"message":"shown"`)
	require.Contains(t, buf.String(), `"key":"42"`)
}

func TestSetupLoggerUnknownLevel(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	setupLogger(&buf, LogConfig{Level: "chatty", Console: false})

	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	require.Contains(t, buf.String(), "unknown log level")
}

func TestSetupLoggerConsole(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	setupLogger(&buf, LogConfig{Level: "debug", Console: true})
	log.Debug().Int("keys", 3).Msg("script applied")

	require.Contains(t, buf.String(), "script applied")
	require.Contains(t, buf.String(), "keys=")
	require.NotContains(t, buf.String(), `"message"`)
}
