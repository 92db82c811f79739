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
	"log"
	"os"

	"github.com/spf13/cobra"
)

// loadSettings returns the user configuration, falling back to defaults
func loadSettings() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func main() {
	InitializeColors()

	banner := fmt.Sprintf("avlset %s%s%s - an AVL-balanced ordered key set", Green, version, Reset)

	var demoKeys []int
	var demoRemove int
	var demoPrint bool

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Build the demo tree, remove a key and report balance",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Demo inserts the configured keys in order, reports whether the tree is balanced, removes one key and reports again"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadSettings()
			keys, remove := config.Demo.Keys, config.Demo.Remove
			if cmd.Flags().Changed("keys") {
				keys = demoKeys
			}
			if cmd.Flags().Changed("remove") {
				remove = demoRemove
			}

			var render *RenderConfig
			if demoPrint {
				render = &config.Render
			}
			if err := runDemo(os.Stdout, newTree(config), keys, remove, render); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}
	cmdDemo.Flags().IntSliceVar(&demoKeys, "keys", nil, "keys to insert, in order")
	cmdDemo.Flags().IntVar(&demoRemove, "remove", 0, "key to remove after building")
	cmdDemo.Flags().BoolVar(&demoPrint, "print", false, "draw the tree before and after removal")

	var buildOpts buildOptions

	var cmdBuild = &cobra.Command{
		Use:   "build FILE",
		Short: "Load keys from a file and report the tree",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Build reads whitespace or comma separated integer keys from FILE (- for stdin)"),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadSettings()
			if err := runBuild(os.Stdout, os.Stderr, args[0], newTree(config), config, buildOpts); err != nil {
				log.Fatalf("Build failed: %v", err)
			}
		},
	}
	cmdBuild.Flags().IntSliceVar(&buildOpts.Remove, "remove", nil, "keys to remove after loading")
	cmdBuild.Flags().BoolVar(&buildOpts.Print, "print", false, "draw the resulting tree")
	cmdBuild.Flags().BoolVar(&buildOpts.Verify, "verify", false, "check every tree invariant after loading")

	var cmdRun = &cobra.Command{
		Use:   "run CMD...",
		Short: "Apply interpreter commands to a fresh tree",
		Long:  fmt.Sprintf("%s\n\n%s", banner, `Each argument is one command, e.g. avlset run "insert 10 20 30" "remove 20" print`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadSettings()
			if err := runScript(os.Stdout, newTree(config), args, config.Render.ShowHeights); err != nil {
				log.Fatalf("Command failed: %v", err)
			}
		},
	}

	var exploreFile string

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Interactive tree session",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Explore opens a terminal UI to insert, remove and inspect keys"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadSettings()
			tree := newTree(config)
			if exploreFile != "" {
				if _, err := loadKeyFile(exploreFile, tree, config.Load, os.Stderr); err != nil {
					log.Fatalf("Error loading keys: %v", err)
				}
			}
			if err := runExplorer(tree, NewRenderCache(), config); err != nil {
				log.Fatalf("Explorer failed: %v", err)
			}
		},
	}
	cmdExplore.Flags().StringVar(&exploreFile, "file", "", "preload keys from a file")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file when missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			configPath, err := getConfigPath()
			if err != nil {
				log.Fatalf("Failed to get config path: %v", err)
			}
			if err := displaySettings(os.Stdout, configPath); err != nil {
				log.Fatalf("Failed to display settings: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlset usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlset version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlset",
		Version: version,
		Long:    banner,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the demo when no subcommand is provided
			config := loadSettings()
			if err := runDemo(os.Stdout, newTree(config), config.Demo.Keys, config.Demo.Remove, nil); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdDemo, cmdBuild, cmdRun, cmdExplore, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
