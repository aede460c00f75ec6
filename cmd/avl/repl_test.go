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
	"io"
	"strings"
	"testing"
)

// runLines feeds a script through eval and returns the collected outputs.
func runLines(t *testing.T, r *repl, lines ...string) []string {
	t.Helper()
	outputs := make([]string, 0, len(lines))
	for _, line := range lines {
		output, quit := r.eval(line)
		outputs = append(outputs, output)
		if quit {
			break
		}
	}
	return outputs
}

func TestReplInsertFindRemove(t *testing.T) {
	r := newRepl(io.Discard)

	out := runLines(t, r,
		`insert banana yellow`,
		`insert apple green`,
		`insert banana brown`,
		`find banana`,
		`remove apple`,
		`find apple`,
		`size`,
	)

	if out[0] != "ok" || out[1] != "ok" {
		t.Errorf("fresh inserts: got %q, %q", out[0], out[1])
	}
	if !strings.Contains(out[2], "already present") {
		t.Errorf("duplicate insert output: %q", out[2])
	}
	if out[3] != "banana = yellow" {
		t.Errorf("find after failed duplicate insert: %q", out[3])
	}
	if !strings.Contains(out[5], "not found") {
		t.Errorf("find of removed key: %q", out[5])
	}
	if out[6] != "1" {
		t.Errorf("size output: %q", out[6])
	}
}

func TestReplListIsSorted(t *testing.T) {
	r := newRepl(io.Discard)
	runLines(t, r,
		`insert cherry 3`,
		`insert apple 1`,
		`insert banana 2`,
	)

	output, _ := r.eval("list")
	expected := "apple = 1\nbanana = 2\ncherry = 3"
	if output != expected {
		t.Errorf("list output:\n%q\nexpected:\n%q", output, expected)
	}
}

func TestReplQuotedKeysAndValues(t *testing.T) {
	r := newRepl(io.Discard)
	out := runLines(t, r,
		`insert "two words" "a longer value"`,
		`find "two words"`,
	)
	if out[0] != "ok" {
		t.Fatalf("quoted insert: %q", out[0])
	}
	if out[1] != "two words = a longer value" {
		t.Errorf("quoted find: %q", out[1])
	}
}

func TestReplNamedTreesAndMerge(t *testing.T) {
	r := newRepl(io.Discard)
	runLines(t, r,
		`insert 2 z`,
		`insert 3 c`,
		`tree other`,
		`insert 1 a`,
		`insert 2 b`,
		`tree main`,
		`merge other`,
	)

	output, _ := r.eval("list")
	expected := "1 = a\n2 = z\n3 = c"
	if output != expected {
		t.Errorf("merged listing:\n%q\nexpected:\n%q", output, expected)
	}

	// The merged-in tree is untouched.
	runLines(t, r, `tree other`)
	output, _ = r.eval("list")
	expected = "1 = a\n2 = b"
	if output != expected {
		t.Errorf("merged-in tree listing:\n%q\nexpected:\n%q", output, expected)
	}
}

func TestReplCloneIsIndependent(t *testing.T) {
	r := newRepl(io.Discard)
	runLines(t, r,
		`insert a 1`,
		`insert b 2`,
		`clone backup`,
		`remove a`,
		`tree backup`,
	)

	output, _ := r.eval("list")
	if output != "a = 1\nb = 2" {
		t.Errorf("clone listing after original mutated: %q", output)
	}
}

func TestReplSetValue(t *testing.T) {
	r := newRepl(io.Discard)
	out := runLines(t, r,
		`insert a 1`,
		`set a 100`,
		`find a`,
		`set missing 1`,
	)
	if out[1] != "ok" {
		t.Errorf("set output: %q", out[1])
	}
	if out[2] != "a = 100" {
		t.Errorf("find after set: %q", out[2])
	}
	if !strings.Contains(out[3], "not found") {
		t.Errorf("set on absent key: %q", out[3])
	}
}

func TestReplClearAndQuit(t *testing.T) {
	r := newRepl(io.Discard)
	runLines(t, r, `insert a 1`, `clear`)

	output, _ := r.eval("list")
	if output != "(empty)" {
		t.Errorf("list after clear: %q", output)
	}

	if _, quit := r.eval("quit"); !quit {
		t.Error("quit did not request exit")
	}
}

func TestReplUnknownCommand(t *testing.T) {
	r := newRepl(io.Discard)
	output, quit := r.eval("frobnicate")
	if quit {
		t.Error("unknown command requested exit")
	}
	if !strings.Contains(output, "unknown command") {
		t.Errorf("unknown command output: %q", output)
	}
}
