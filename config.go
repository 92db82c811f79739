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

	"gopkg.in/yaml.v3"

	"github.com/cybrota/avlset/avl"
)

const configFileName = ".avlset.yaml"

type DemoConfig struct {
	Keys   []int `yaml:"keys"`
	Remove int   `yaml:"remove"`
}

type TreeConfig struct {
	Limit int `yaml:"limit"` // 0 means unlimited
}

type RenderConfig struct {
	ShowHeights bool `yaml:"show_heights"`
}

type KeyFileConfig struct {
	ShowProgress bool `yaml:"show_progress"`
	BloomSize    uint `yaml:"bloom_size"`
	BloomHashes  uint `yaml:"bloom_hashes"`
}

type Config struct {
	Demo   DemoConfig    `yaml:"demo"`
	Tree   TreeConfig    `yaml:"tree"`
	Render RenderConfig  `yaml:"render"`
	Load   KeyFileConfig `yaml:"load"`
}

func defaultConfig() Config {
	return Config{
		Demo: DemoConfig{
			Keys:   []int{10, 20, 30, 40, 50},
			Remove: 30,
		},
		Load: KeyFileConfig{
			ShowProgress: true,
			BloomSize:    1 << 20,
			BloomHashes:  5,
		},
	}
}

// LoadConfig reads ~/.avlset.yaml. A missing or unreadable file yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig()
		return &config, nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom layers the file at path over the defaults. Only a file
// that exists but does not parse is an error; the defaults are returned with it.
func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("failed to parse %s: %v", configPath, err)
	}

	if config.Load.BloomSize == 0 {
		config.Load.BloomSize = defaultConfig().Load.BloomSize
	}
	if config.Load.BloomHashes == 0 {
		config.Load.BloomHashes = defaultConfig().Load.BloomHashes
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

func writeDefaultConfigFile(configPath string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// newTree creates an empty tree honouring the configured key limit
func newTree(config *Config) *avl.Tree[int] {
	return avl.New[int](avl.WithLimit(config.Tree.Limit))
}

func displaySettings(w io.Writer, configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintf(w, "Configuration file not found. Creating default configuration...\n")
		if err := writeDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	limit := "unlimited"
	if config.Tree.Limit > 0 {
		limit = fmt.Sprint(config.Tree.Limit)
	}

	fmt.Fprintf(w, "avlset configuration\n")
	fmt.Fprintf(w, "====================\n\n")
	fmt.Fprintf(w, "Config file: %s\n\n", configPath)

	fmt.Fprintf(w, "%sDemo:%s\n", Green, Reset)
	fmt.Fprintf(w, "  keys:   %v\n", config.Demo.Keys)
	fmt.Fprintf(w, "  remove: %d\n\n", config.Demo.Remove)

	fmt.Fprintf(w, "%sTree:%s\n", Green, Reset)
	fmt.Fprintf(w, "  limit:  %s\n\n", limit)

	fmt.Fprintf(w, "%sRender:%s\n", Green, Reset)
	fmt.Fprintf(w, "  show_heights: %t\n\n", config.Render.ShowHeights)

	fmt.Fprintf(w, "%sLoad:%s\n", Green, Reset)
	fmt.Fprintf(w, "  show_progress: %t\n", config.Load.ShowProgress)
	fmt.Fprintf(w, "  bloom_size:    %d\n", config.Load.BloomSize)
	fmt.Fprintf(w, "  bloom_hashes:  %d\n", config.Load.BloomHashes)

	return nil
}
