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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	avl "github.com/levpechersky/AVL-tree-dictionary"
)

// exploreStyles holds all the styling for the explore UI
type exploreStyles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	StatusOK      lipgloss.Style
	StatusError   lipgloss.Style
	HelpText      lipgloss.Style
}

func newExploreStyles() exploreStyles {
	return exploreStyles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		StatusOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		HelpText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

// entryItem is one dictionary entry in the list
type entryItem struct {
	key, value string
}

func (i entryItem) FilterValue() string { return i.key }
func (i entryItem) Title() string       { return i.key }
func (i entryItem) Description() string { return i.value }

// exploreModel is the Bubble Tea application state
type exploreModel struct {
	tree *avl.Tree[string, string]

	input       textinput.Model
	entriesList list.Model

	inputFocused bool
	status       string
	statusIsErr  bool

	styles exploreStyles

	width  int
	height int
}

func newExploreModel() exploreModel {
	ti := textinput.New()
	ti.Placeholder = "key=value to insert, key to look up..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	entriesList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	entriesList.SetShowTitle(false)
	entriesList.SetShowHelp(false)

	return exploreModel{
		tree:         avl.New[string, string](),
		input:        ti,
		entriesList:  entriesList,
		inputFocused: true,
		status:       "empty dictionary - type key=value and press enter",
		styles:       newExploreStyles(),
	}
}

func (m exploreModel) Init() tea.Cmd {
	return textinput.Blink
}

// refreshEntries rebuilds the list items from the tree's in-order walk
func (m *exploreModel) refreshEntries() {
	items := []list.Item{}
	for it := m.tree.Begin(); it != m.tree.End(); it = it.Next() {
		items = append(items, entryItem{key: it.Key(), value: it.Value()})
	}
	m.entriesList.SetItems(items)
}

func (m *exploreModel) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusIsErr = false
}

func (m *exploreModel) setError(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusIsErr = true
}

// submit handles an input line: "key=value" inserts, a bare key looks up
func (m *exploreModel) submit() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}
	m.input.SetValue("")

	key, value, isPair := strings.Cut(text, "=")
	key = strings.TrimSpace(key)
	if !isPair {
		it := m.tree.Find(key)
		if !it.Valid() {
			m.setError("%q not found", key)
			return
		}
		m.setStatus("%s = %s", it.Key(), it.Value())
		return
	}

	value = strings.TrimSpace(value)
	if m.tree.Insert(key, value) {
		m.setStatus("inserted %q (%d entries)", key, m.tree.Size())
	} else {
		m.setError("%q already present - dictionary unchanged", key)
	}
	m.refreshEntries()
}

// deleteSelected removes the entry under the list cursor
func (m *exploreModel) deleteSelected() {
	item, ok := m.entriesList.SelectedItem().(entryItem)
	if !ok {
		m.setError("nothing selected")
		return
	}
	m.tree.Remove(item.key)
	m.refreshEntries()
	m.setStatus("removed %q (%d entries)", item.key, m.tree.Size())
}

// yankSelected copies the selected entry to the system clipboard
func (m *exploreModel) yankSelected() {
	item, ok := m.entriesList.SelectedItem().(entryItem)
	if !ok {
		m.setError("nothing selected")
		return
	}
	if err := clipboard.WriteAll(fmt.Sprintf("%s = %s", item.key, item.value)); err != nil {
		m.setError("clipboard: %v", err)
		return
	}
	m.setStatus("yanked %q", item.key)
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8
		m.entriesList.SetSize(msg.Width-4, msg.Height-9)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.inputFocused = !m.inputFocused
			if m.inputFocused {
				m.input.Focus()
			} else {
				m.input.Blur()
			}
			return m, nil
		}

		if m.inputFocused {
			if msg.String() == "enter" {
				m.submit()
				return m, nil
			}
		} else {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "d":
				m.deleteSelected()
				return m, nil
			case "y":
				m.yankSelected()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.inputFocused {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.entriesList, cmd = m.entriesList.Update(msg)
	}
	return m, cmd
}

func (m exploreModel) View() string {
	inputBorder := m.styles.BorderBlurred
	listBorder := m.styles.BorderFocused
	if m.inputFocused {
		inputBorder, listBorder = listBorder, inputBorder
	}

	status := m.styles.StatusOK.Render(m.status)
	if m.statusIsErr {
		status = m.styles.StatusError.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("avl explore"),
		inputBorder.Render(m.input.View()),
		listBorder.Render(m.entriesList.View()),
		status,
		m.styles.HelpText.Render("tab: switch focus - enter: insert/find - d: delete - y: yank - ctrl+c: quit"),
	)
}

func runExplore() error {
	p := tea.NewProgram(newExploreModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
