// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// defaultConfigFile is where LoadConfig looks when the caller doesn't name a
// config file explicitly.
const defaultConfigFile = ".tptprc.yaml"

// Config holds durable defaults read from a .tptprc.yaml file. Cobra flags
// always take precedence over these when both are given for the same
// invocation.
type Config struct {
	// Dialect is a default dialect name ("fof", "cnf", "tff", "tcf", "thf",
	// "tpi") that is only reported in debug logging; parsing always follows
	// each formula's own leading keyword and never consults it.
	Dialect string `yaml:"dialect"`
	// Color controls whether diagnostics are rendered with ANSI color when
	// the terminal supports it. Defaults to true.
	Color bool `yaml:"color"`
}

// defaultConfig is returned whenever no config file is present; it is not an
// error for the file to be missing.
func defaultConfig() Config {
	return Config{Dialect: "fof", Color: true}
}

// LoadConfig reads a YAML config file at path, or at defaultConfigFile if
// path is empty. A missing file at the default location is not an error;
// a missing file at an explicitly named path is.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""

	if path == "" {
		path = defaultConfigFile
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}

		return Config{}, fmt.Errorf("reading config file %q: %w", path, err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %q: %w", path, err)
	}

	log.WithField("path", path).Debug("loaded config file")

	return cfg, nil
}
