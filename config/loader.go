/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	motivfs "bennypowers.dev/motiv/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "motiv"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/motiv.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem motivfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}

		return cfg, nil
	}

	return nil, nil
}

// ResolveInput locates the raw token file: each candidate is tried in
// order, first existing file wins. Candidates containing glob meta
// characters expand via doublestar; glob matches are tried in sorted
// order for determinism.
func (c *Config) ResolveInput(filesystem motivfs.FileSystem, rootDir string) (string, error) {
	for _, candidate := range c.InputCandidates() {
		if !isGlobPattern(candidate) {
			p := filepath.Join(rootDir, candidate)
			if filesystem.Exists(p) {
				return p, nil
			}
			continue
		}

		matches, err := doublestar.Glob(filesystem, filepath.ToSlash(filepath.Join(rootDir, candidate)))
		if err != nil {
			continue
		}
		sort.Strings(matches)
		for _, match := range matches {
			if filesystem.Exists(match) {
				return match, nil
			}
		}
	}
	return "", fmt.Errorf("no token file found (tried %v)", c.InputCandidates())
}

func isGlobPattern(p string) bool {
	for _, r := range p {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
