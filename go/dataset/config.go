/*
Copyright 2025 The Planfeat Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dataset

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config drives multi-split assembly: one named source list per split
// (train/validation/test or any other partition).
type Config struct {
	Splits []Split `mapstructure:"splits"`
}

// Split is one output table: a name plus the sources assembled into it.
type Split struct {
	Name    string   `mapstructure:"name"`
	Sources []Source `mapstructure:"sources"`
}

// LoadConfig reads an assembly configuration (any format viper understands)
// and validates every source descriptor up front, so malformed descriptors
// are rejected before any processing begins.
func LoadConfig(path string) (*Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := vp.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config %v: %w", path, err)
	}
	if len(cfg.Splits) == 0 {
		return nil, fmt.Errorf("config %v: no splits defined", path)
	}
	for _, sp := range cfg.Splits {
		if sp.Name == "" {
			return nil, fmt.Errorf("config %v: split with no name", path)
		}
		if len(sp.Sources) == 0 {
			return nil, fmt.Errorf("config %v: split %q has no sources", path, sp.Name)
		}
		for _, s := range sp.Sources {
			if err := s.Validate(); err != nil {
				return nil, fmt.Errorf("config %v: %w", path, err)
			}
		}
	}
	return &cfg, nil
}
