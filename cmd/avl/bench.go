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
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	avl "github.com/levpechersky/AVL-tree-dictionary"
)

// benchResult is the timing of one phase of one scenario.
type benchResult struct {
	Scenario string
	Phase    string
	Ops      int
	Duration time.Duration
	NsPerOp  float64
}

// generateKeys produces a stream of distinct random keys. A bloom
// filter screens out repeats cheaply; its false positives only cost a
// retry, never a duplicate in the output.
func generateKeys(s BenchScenario) []string {
	rng := rand.New(rand.NewSource(s.Seed))
	filter := bloom.New(uint(s.Operations)*10, 5)

	keys := make([]string, 0, s.Operations)
	attempts := 0
	for len(keys) < s.Operations && attempts < s.Operations*100 {
		attempts++
		key := fmt.Sprintf("key-%012d", rng.Intn(s.KeySpace))
		if filter.TestString(key) {
			continue
		}
		filter.AddString(key)
		keys = append(keys, key)
	}
	return keys
}

// phases returns how many timed phases a scenario runs; used to size
// the progress bar.
func phases(s BenchScenario) int {
	n := 3 // insert, find, remove
	if s.Merge {
		n++
	}
	return n
}

func runBench(w io.Writer, config *BenchConfig) error {
	total := 0
	for _, s := range config.Scenarios {
		total += phases(s)
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("running scenarios..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	var results []benchResult
	for _, s := range config.Scenarios {
		keys := generateKeys(s)
		if len(keys) < s.Operations {
			return fmt.Errorf("scenario %q: key space %d too small for %d distinct keys", s.Name, s.KeySpace, s.Operations)
		}

		record := func(phase string, ops int, d time.Duration) {
			results = append(results, benchResult{
				Scenario: s.Name,
				Phase:    phase,
				Ops:      ops,
				Duration: d,
				NsPerOp:  float64(d.Nanoseconds()) / float64(ops),
			})
			bar.Add(1)
		}

		tree := avl.New[string, string]()

		bar.Describe(fmt.Sprintf("%s: insert", s.Name))
		start := time.Now()
		for _, key := range keys {
			tree.Insert(key, key)
		}
		record("insert", len(keys), time.Since(start))

		bar.Describe(fmt.Sprintf("%s: find", s.Name))
		start = time.Now()
		for _, key := range keys {
			if !tree.Find(key).Valid() {
				return fmt.Errorf("scenario %q: inserted key %q not found", s.Name, key)
			}
		}
		record("find", len(keys), time.Since(start))

		if s.Merge {
			// Merge a second tree built from the odd half of the key
			// stream; every other key collides with the receiver.
			other := avl.New[string, string]()
			for i := 1; i < len(keys); i += 2 {
				other.Insert(keys[i], "other")
			}

			bar.Describe(fmt.Sprintf("%s: merge", s.Name))
			start = time.Now()
			tree.Merge(other)
			record("merge", tree.Size(), time.Since(start))
		}

		bar.Describe(fmt.Sprintf("%s: remove", s.Name))
		start = time.Now()
		for _, key := range keys {
			tree.Remove(key)
		}
		record("remove", len(keys), time.Since(start))
	}
	bar.Finish()

	printReport(w, results)
	return nil
}

func printReport(w io.Writer, results []benchResult) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tPHASE\tOPS\tTOTAL\tNS/OP")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.1f\n", r.Scenario, r.Phase, r.Ops, r.Duration.Round(time.Microsecond), r.NsPerOp)
	}
	tw.Flush()
}
