// Copyright 2025 Lev Pechersky
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

func main() {
	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Interactive shell over a set of named dictionaries",
		Long:  "Repl opens a line-oriented shell for building, querying and merging AVL dictionaries",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			r := newRepl(os.Stdout)
			if err := r.run(os.Stdin); err != nil {
				log.Fatalf("repl failed: %v", err)
			}
		},
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Full-screen dictionary browser",
		Long:  "Explore opens a terminal UI to browse, edit and yank dictionary entries",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runExplore(); err != nil {
				log.Fatalf("explore failed: %v", err)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Run dictionary workloads and report timings",
		Long:  "Bench runs the insert/find/remove/merge workloads described by a YAML scenario file",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := LoadBenchConfig(cmd.Flag("config").Value.String())
			if err != nil {
				log.Printf("Failed to load bench configuration: %v. Using default scenarios.", err)
				config = defaultBenchConfig()
			}
			if err := runBench(os.Stdout, config); err != nil {
				log.Fatalf("bench failed: %v", err)
			}
		},
	}
	cmdBench.Flags().String("config", "", "path to a YAML scenario file (default: built-in scenarios)")

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avl",
		Version: version,
		Long:    "avl - an ordered dictionary workbench built on a height-balanced search tree",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the repl when no subcommand is provided
			r := newRepl(os.Stdout)
			if err := r.run(os.Stdin); err != nil {
				log.Fatalf("repl failed: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdRepl, cmdExplore, cmdBench, cmdVersion)
	rootCmd.Execute()
}
