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
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-shellwords"

	avl "github.com/levpechersky/AVL-tree-dictionary"
)

// replStyles holds the lipgloss styling for the shell chrome.
type replStyles struct {
	Prompt lipgloss.Style
	Banner lipgloss.Style
}

func newReplStyles() replStyles {
	return replStyles{
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
	}
}

// repl is a line-oriented shell over a set of named dictionaries.
type repl struct {
	out     io.Writer
	trees   map[string]*avl.Tree[string, string]
	current string
	help    *helpPages
	styles  replStyles
}

func newRepl(out io.Writer) *repl {
	return &repl{
		out:     out,
		trees:   map[string]*avl.Tree[string, string]{"main": avl.New[string, string]()},
		current: "main",
		help:    newHelpPages(),
		styles:  newReplStyles(),
	}
}

// tree returns the currently selected dictionary.
func (r *repl) tree() *avl.Tree[string, string] {
	return r.trees[r.current]
}

func (r *repl) run(in io.Reader) error {
	fmt.Fprintln(r.out, r.styles.Banner.Render("avl "+version+" - type 'help' for commands, 'quit' to leave"))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, r.styles.Prompt.Render(r.current+"> "))
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		output, quit := r.eval(scanner.Text())
		if output != "" {
			fmt.Fprintln(r.out, output)
		}
		if quit {
			return nil
		}
	}
}

// eval executes one input line and returns its output plus whether the
// shell should exit. Kept free of terminal styling so it stays
// scriptable and testable.
func (r *repl) eval(line string) (string, bool) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Sprintf("parse error: %v", err), false
	}
	if len(args) == 0 {
		return "", false
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "insert":
		if len(rest) != 2 {
			return "usage: insert <key> <value>", false
		}
		if !r.tree().Insert(rest[0], rest[1]) {
			return fmt.Sprintf("key %q already present (tree unchanged)", rest[0]), false
		}
		return "ok", false

	case "remove":
		if len(rest) != 1 {
			return "usage: remove <key>", false
		}
		r.tree().Remove(rest[0])
		return "ok", false

	case "find":
		if len(rest) != 1 {
			return "usage: find <key>", false
		}
		it := r.tree().Find(rest[0])
		if !it.Valid() {
			return fmt.Sprintf("%q not found", rest[0]), false
		}
		return fmt.Sprintf("%s = %s", it.Key(), it.Value()), false

	case "set":
		if len(rest) != 2 {
			return "usage: set <key> <value>", false
		}
		it := r.tree().Find(rest[0])
		if !it.Valid() {
			return fmt.Sprintf("%q not found", rest[0]), false
		}
		it.SetValue(rest[1])
		return "ok", false

	case "list":
		return r.listing(), false

	case "print":
		var sb strings.Builder
		levels := r.tree().Dump(&sb)
		sb.WriteString(fmt.Sprintf("%d levels, %d entries", levels, r.tree().Size()))
		return sb.String(), false

	case "size":
		return fmt.Sprintf("%d", r.tree().Size()), false

	case "clear":
		r.tree().Clear()
		return "ok", false

	case "tree":
		if len(rest) != 1 {
			return "usage: tree <name>", false
		}
		if _, ok := r.trees[rest[0]]; !ok {
			r.trees[rest[0]] = avl.New[string, string]()
		}
		r.current = rest[0]
		return fmt.Sprintf("switched to %q", r.current), false

	case "trees":
		names := make([]string, 0, len(r.trees))
		for name := range r.trees {
			names = append(names, name)
		}
		sort.Strings(names)
		var sb strings.Builder
		for _, name := range names {
			marker := " "
			if name == r.current {
				marker = "*"
			}
			fmt.Fprintf(&sb, "%s %s (%d entries)\n", marker, name, r.trees[name].Size())
		}
		return strings.TrimRight(sb.String(), "\n"), false

	case "merge":
		if len(rest) != 1 {
			return "usage: merge <name>", false
		}
		other, ok := r.trees[rest[0]]
		if !ok {
			return fmt.Sprintf("no tree named %q", rest[0]), false
		}
		r.tree().Merge(other)
		return fmt.Sprintf("merged %q into %q, %d entries", rest[0], r.current, r.tree().Size()), false

	case "clone":
		if len(rest) != 1 {
			return "usage: clone <name>", false
		}
		if _, exists := r.trees[rest[0]]; exists {
			return fmt.Sprintf("tree %q already exists", rest[0]), false
		}
		r.trees[rest[0]] = r.tree().Clone()
		return fmt.Sprintf("cloned %q to %q", r.current, rest[0]), false

	case "copy":
		if err := clipboard.WriteAll(r.listing()); err != nil {
			return fmt.Sprintf("clipboard: %v", err), false
		}
		return "copied to clipboard", false

	case "help":
		topic := ""
		if len(rest) > 0 {
			topic = rest[0]
		}
		page, err := r.help.Render(topic)
		if err != nil {
			return err.Error(), false
		}
		return page, false

	case "quit", "exit":
		return "", true

	default:
		return fmt.Sprintf("unknown command %q, try 'help'", cmd), false
	}
}

// listing renders the current tree's entries in key order.
func (r *repl) listing() string {
	tree := r.tree()
	if tree.Empty() {
		return "(empty)"
	}
	var sb strings.Builder
	for it := tree.Begin(); it != tree.End(); it = it.Next() {
		fmt.Fprintf(&sb, "%s = %s\n", it.Key(), it.Value())
	}
	return strings.TrimRight(sb.String(), "\n")
}
