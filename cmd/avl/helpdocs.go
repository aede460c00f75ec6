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
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered help pages are kept for 30 minutes
	helpCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	helpCacheCleanup = 5 * time.Minute
)

// helpTopics maps a topic name to its markdown source. The empty topic
// is the overview page.
var helpTopics = map[string]string{
	"": `# avl repl

A shell over named ordered dictionaries.

* ` + "`insert <key> <value>`" + ` - add an entry; fails without touching the tree if the key exists
* ` + "`remove <key>`" + ` - delete an entry; no-op when absent
* ` + "`find <key>`" + ` / ` + "`set <key> <value>`" + ` - look up / overwrite a value
* ` + "`list`" + ` / ` + "`print`" + ` / ` + "`size`" + ` / ` + "`clear`" + ` - inspect or reset the current tree
* ` + "`tree <name>`" + ` / ` + "`trees`" + ` - switch between named trees
* ` + "`merge <name>`" + ` / ` + "`clone <name>`" + ` - combine or copy trees
* ` + "`copy`" + ` - put the in-order listing on the system clipboard
* ` + "`help <topic>`" + ` - topics: ordering, merge
* ` + "`quit`" + ` - leave
`,
	"ordering": `# Ordering

Entries are kept sorted by key in a height-balanced search tree, so
` + "`list`" + ` is always in ascending key order and ` + "`find`" + `,
` + "`insert`" + ` and ` + "`remove`" + ` stay logarithmic no matter the
insertion order.
`,
	"merge": `# Merge

` + "`merge <name>`" + ` folds the named tree into the current one in
linear time: both trees are walked in sorted order simultaneously and a
perfectly balanced tree is rebuilt from the union. When both trees hold
the same key, the **current** tree's value wins. The merged-in tree is
left untouched.
`,
}

// helpPages renders markdown help topics through glamour, caching the
// rendered output since rendering is by far the expensive part.
type helpPages struct {
	cache    *cache.Cache
	renderer *glamour.TermRenderer
}

func newHelpPages() *helpPages {
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	return &helpPages{
		cache:    cache.New(helpCacheExpiration, helpCacheCleanup),
		renderer: renderer,
	}
}

// Render returns the rendered page for a topic, from cache when warm.
func (h *helpPages) Render(topic string) (string, error) {
	if page, ok := h.cache.Get(topic); ok {
		return page.(string), nil
	}

	source, ok := helpTopics[topic]
	if !ok {
		return "", fmt.Errorf("no help topic %q", topic)
	}
	if h.renderer == nil {
		return source, nil
	}
	page, err := h.renderer.Render(source)
	if err != nil {
		// Unrendered markdown is still readable.
		return source, nil
	}
	h.cache.Set(topic, page, helpCacheExpiration)
	return page, nil
}
