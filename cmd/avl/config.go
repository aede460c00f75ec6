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
	"os"

	"gopkg.in/yaml.v3"
)

// BenchScenario describes one workload run.
type BenchScenario struct {
	// Name labels the scenario in the report
	Name string `yaml:"name"`
	// Operations is the number of distinct keys driven through each phase
	Operations int `yaml:"operations"`
	// KeySpace is the range random keys are drawn from; must comfortably
	// exceed Operations or key generation cannot find enough fresh keys
	KeySpace int `yaml:"key_space"`
	// Seed makes the generated key stream reproducible
	Seed int64 `yaml:"seed"`
	// Merge adds a phase that merges a second tree of the same size
	Merge bool `yaml:"merge"`
}

// BenchConfig is the YAML scenario file for `avl bench`.
type BenchConfig struct {
	Scenarios []BenchScenario `yaml:"scenarios"`
}

func defaultBenchConfig() *BenchConfig {
	return &BenchConfig{
		Scenarios: []BenchScenario{
			{Name: "small", Operations: 10_000, KeySpace: 1_000_000, Seed: 1},
			{Name: "medium", Operations: 100_000, KeySpace: 10_000_000, Seed: 1},
			{Name: "merge-heavy", Operations: 50_000, KeySpace: 10_000_000, Seed: 1, Merge: true},
		},
	}
}

// LoadBenchConfig reads a scenario file, falling back to the built-in
// scenarios when no path is given.
func LoadBenchConfig(path string) (*BenchConfig, error) {
	if path == "" {
		return defaultBenchConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}

	var config BenchConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("%s defines no scenarios", path)
	}

	for i := range config.Scenarios {
		s := &config.Scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if s.Operations <= 0 {
			s.Operations = 10_000
		}
		if s.KeySpace < s.Operations*2 {
			s.KeySpace = s.Operations * 100
		}
	}

	return &config, nil
}
