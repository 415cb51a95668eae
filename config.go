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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type KeysConfig struct {
	Type string `yaml:"type"`
}

type TraversalConfig struct {
	Order string `yaml:"order"`
}

type DisplayConfig struct {
	Progress bool `yaml:"progress"`
	WordWrap int  `yaml:"word_wrap"`
}

type MembershipConfig struct {
	ExpectedKeys      uint    `yaml:"expected_keys"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

type Config struct {
	Keys       KeysConfig       `yaml:"keys"`
	Traversal  TraversalConfig  `yaml:"traversal"`
	Display    DisplayConfig    `yaml:"display"`
	Membership MembershipConfig `yaml:"membership"`
	Log        LogConfig        `yaml:"log"`
}

var defaultConfig = Config{
	Keys: KeysConfig{
		Type: "int",
	},
	Traversal: TraversalConfig{
		Order: "in",
	},
	Display: DisplayConfig{
		Progress: false,
		WordWrap: 72,
	},
	Membership: MembershipConfig{
		ExpectedKeys:      10000,
		FalsePositiveRate: 0.01,
	},
	Log: LogConfig{
		Level:   "info",
		Console: true,
	},
}

// LoadConfig reads the YAML config at path, or ~/.avltree.yaml when path is
// empty. A missing or unreadable file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig

	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return &config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &config, nil
	}

	// fields absent from the file keep their defaults
	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("ignoring malformed config file")
		fallback := defaultConfig
		return &fallback, nil
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeConfigFile(path, &defaultConfig); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Fprintf(w, "🔧 avltree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if created {
		fmt.Fprintf(w, "📍 Config file: %s%s%s %s(newly created)%s\n\n", Info, path, Reset, Warning, Reset)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s%s%s\n\n", Info, path, Reset)
	}

	fmt.Fprintf(w, "🔑 %sKeys:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %stype%s: %s\n\n", Green, Reset, config.Keys.Type)

	fmt.Fprintf(w, "🌲 %sTraversal:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sorder%s: %s\n\n", Green, Reset, config.Traversal.Order)

	fmt.Fprintf(w, "🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sprogress%s: %t\n", Green, Reset, config.Display.Progress)
	fmt.Fprintf(w, "  • %sword_wrap%s: %d\n\n", Green, Reset, config.Display.WordWrap)

	fmt.Fprintf(w, "🔍 %sMembership filter:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sexpected_keys%s: %d\n", Green, Reset, config.Membership.ExpectedKeys)
	fmt.Fprintf(w, "  • %sfalse_positive_rate%s: %g\n\n", Green, Reset, config.Membership.FalsePositiveRate)

	fmt.Fprintf(w, "📜 %sLogging:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %slevel%s: %s\n", Green, Reset, config.Log.Level)
	fmt.Fprintf(w, "  • %sconsole%s: %t\n", Green, Reset, config.Log.Console)

	return nil
}
