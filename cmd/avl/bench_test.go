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

import "testing"

func TestGenerateKeysDistinct(t *testing.T) {
	s := BenchScenario{Name: "t", Operations: 5000, KeySpace: 1_000_000, Seed: 42}
	keys := generateKeys(s)

	if len(keys) != s.Operations {
		t.Fatalf("expected %d keys, got %d", s.Operations, len(keys))
	}
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			t.Fatalf("duplicate key %q leaked past the bloom filter", key)
		}
		seen[key] = true
	}
}

func TestGenerateKeysReproducible(t *testing.T) {
	s := BenchScenario{Name: "t", Operations: 1000, KeySpace: 1_000_000, Seed: 42}
	a := generateKeys(s)
	b := generateKeys(s)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at index %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestGenerateKeysExhaustedKeySpace(t *testing.T) {
	// More operations than the key space can supply: generation stops
	// short instead of spinning forever, and runBench reports it.
	s := BenchScenario{Name: "t", Operations: 1000, KeySpace: 10, Seed: 42}
	keys := generateKeys(s)
	if len(keys) >= s.Operations {
		t.Fatalf("expected fewer than %d keys from a key space of 10", s.Operations)
	}
}
