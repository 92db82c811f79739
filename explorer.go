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
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avlset/avl"
)

// Model represents the explorer state
type Model struct {
	ready bool

	input    textinput.Model
	treeView viewport.Model
	helpView viewport.Model

	tree        *avl.Tree[int]
	renderCache *cache.Cache
	revision    uint64 // bumped on every mutating command

	showHelp    bool
	showHeights bool
	status      string
	statusErr   bool

	styles *Styles

	width  int
	height int
}

// Styles holds all the styling for the explorer
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	Stats          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates styles from the palette of the detected terminal mode
func NewStyles(p Palette) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.BorderFocus),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		Title: lipgloss.NewStyle().
			Foreground(p.Accent).
			Padding(0, 1).
			Bold(true),
		Stats: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Muted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(p.Failure).
			Bold(true),
	}
}

// copiedMsg reports the outcome of a clipboard copy
type copiedMsg struct {
	count int
	err   error
}

// InitialModel creates the explorer around an existing tree
func InitialModel(tree *avl.Tree[int], rc *cache.Cache, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	treeView := viewport.New(0, 0)
	helpView := viewport.New(0, 0)

	style := "dark"
	if detectedMode == TerminalModeLight {
		style = "light"
	}
	helpText := commandsMarkdown
	if renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(60),
	); err == nil {
		if rendered, err := renderer.Render(commandsMarkdown); err == nil {
			helpText = rendered
		}
	}
	helpView.SetContent(helpText)

	m := Model{
		input:       ti,
		treeView:    treeView,
		helpView:    helpView,
		tree:        tree,
		renderCache: rc,
		showHeights: config.Render.ShowHeights,
		status:      "type a command and press enter",
		styles:      NewStyles(GetPalette()),
	}
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.updateLayout()
			return m, nil
		case "f2":
			m.showHeights = !m.showHeights
			m.refreshTree()
			return m, nil
		case "ctrl+y":
			return m, copyKeys(m.tree.InOrder())
		case "enter":
			m.execute(m.input.Value())
			m.input.SetValue("")
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.treeView, cmd = m.treeView.Update(msg)
			return m, cmd
		}

	case copiedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("copied %d keys to clipboard", msg.count), false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute parses and applies one command line
func (m *Model) execute(line string) {
	cmd, err := parseCommand(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	status, err := applyCommand(m.tree, cmd, m.showHeights)
	if cmd.Mutates() {
		m.revision++
	}
	m.refreshTree()

	switch {
	case err != nil:
		m.setStatus(err.Error(), true)
	case cmd.Op == OpPrint:
		m.setStatus("tree redrawn", false)
	default:
		m.setStatus(status, false)
	}
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m *Model) refreshTree() {
	m.treeView.SetContent(GetOrRender(m.renderCache, m.tree, m.revision, m.showHeights))
}

func (m *Model) updateLayout() {
	inputHeight := 3
	bodyHeight := m.height - inputHeight - 8 // title, stats, status and footer
	treeWidth := m.width - 2
	if m.showHelp {
		treeWidth = (m.width * 6 / 10) - 1
		m.helpView.Width = m.width - treeWidth - 5
		m.helpView.Height = bodyHeight
	}

	m.treeView.Width = treeWidth - 2
	m.treeView.Height = bodyHeight
	m.input.Width = m.width - 8
}

// View renders the explorer
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	title := m.styles.Title.Render("avlset explorer")
	stats := m.styles.Stats.Render(fmt.Sprintf("keys: %d  height: %d  balanced: %t  revision: %d",
		m.tree.Len(), m.tree.Height(), m.tree.IsBalanced(), m.revision))

	treeBox := m.styles.BorderFocused.
		Width(m.treeView.Width + 2).
		Render(m.treeView.View())

	body := treeBox
	if m.showHelp {
		helpBox := m.styles.BorderBlurred.
			Width(m.helpView.Width + 2).
			Render(m.helpView.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, treeBox, helpBox)
	}

	inputBox := m.styles.BorderBlurred.
		Width(m.width - 4).
		Render(m.input.View())

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}
	status := lipgloss.NewStyle().Padding(0, 1).Render(statusStyle.Render(m.status))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		stats,
		body,
		inputBox,
		status,
		m.renderFooter(),
	)
}

func (m Model) renderFooter() string {
	keys := []string{"enter", "f1", "f2", "ctrl+y", "up/down", "esc"}
	descs := []string{"run command", "toggle help", "toggle heights", "copy keys", "scroll tree", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// joinKeys formats keys as a comma separated list
func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, ",")
}

func copyKeys(keys []int) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(joinKeys(keys))
		return copiedMsg{count: len(keys), err: err}
	}
}

// runExplorer starts the Bubble Tea program
func runExplorer(tree *avl.Tree[int], rc *cache.Cache, config *Config) error {
	model := InitialModel(tree, rc, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
