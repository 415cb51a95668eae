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
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
)

const (
	focusInput = iota
	focusTree
	focusSide
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput textinput.Model
	treeView  viewport.Model
	sideView  viewport.Model

	shell     *Shell
	helpCache *cache.Cache

	focusIndex int
	showHelp   bool
	status     string
	statusErr  bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
	Text           lipgloss.Style
	Muted          lipgloss.Style
}

// NewStyles builds the styles from the detected color scheme
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Title).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Prompt).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(scheme.Text),
		Muted: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
	}
}

// InitialModel creates the initial model
func InitialModel(shell *Shell, hc *cache.Cache, wordWrap int) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30 · delete 20 · order pre · help"
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	treeView := viewport.New(0, 0)
	sideView := viewport.New(0, 0)

	if wordWrap <= 0 {
		wordWrap = defaultConfig.Display.WordWrap
	}
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)

	styles := NewStyles(GetColorScheme())
	ti.PromptStyle = styles.InputPrompt

	m := Model{
		textInput:       ti,
		treeView:        treeView,
		sideView:        sideView,
		shell:           shell,
		helpCache:       hc,
		focusIndex:      focusInput,
		styles:          styles,
		glamourRenderer: glamourRenderer,
	}
	m.refresh()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusIndex = (m.focusIndex + 1) % focusCount
			if m.focusIndex == focusInput {
				m.textInput.Focus()
			} else {
				m.textInput.Blur()
			}
			return m, nil
		case "f1":
			m.showHelp = !m.showHelp
			m.refresh()
			return m, nil
		case "enter":
			if m.focusIndex == focusInput {
				return m.execute()
			}
		}

		switch m.focusIndex {
		case focusInput:
			m.textInput, cmd = m.textInput.Update(msg)
		case focusTree:
			m.treeView, cmd = m.treeView.Update(msg)
		case focusSide:
			m.sideView, cmd = m.sideView.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refresh()
		m.ready = true
	}

	return m, nil
}

// execute runs the input line through the shell and repaints the panes.
func (m Model) execute() (tea.Model, tea.Cmd) {
	line := m.textInput.Value()
	m.textInput.SetValue("")

	result, err := m.shell.Execute(line)
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return m, nil
	}
	if result.Quit {
		return m, tea.Quit
	}

	m.statusErr = false
	m.status = result.Message
	if result.ShowHelp {
		m.showHelp = !m.showHelp
	} else if line != "" {
		m.showHelp = false
	}
	m.refresh()
	return m, nil
}

// refresh repaints both panes from the session.
func (m *Model) refresh() {
	var b strings.Builder
	if m.shell.Session().Render(&b) == 0 {
		m.treeView.SetContent(m.styles.Muted.Render("(empty tree)"))
	} else {
		m.treeView.SetContent(m.styles.Text.Render(strings.TrimSuffix(b.String(), "\n")))
	}

	if m.showHelp {
		m.sideView.SetContent(m.renderShellHelp())
		m.sideView.GotoTop()
		return
	}
	m.sideView.SetContent(m.renderSide())
	m.sideView.GotoBottom()
}

func (m *Model) renderShellHelp() string {
	txt, err := GetOrFillHelp(m.helpCache, "shell", m.sideView.Width, func() (string, error) {
		if m.glamourRenderer == nil {
			return shellHelp, nil
		}
		return m.glamourRenderer.Render(shellHelp)
	})
	if err != nil {
		return shellHelp
	}
	return txt
}

func (m *Model) renderSide() string {
	st := m.shell.Session().Stats()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", m.styles.Title.Render(fmt.Sprintf("%s-order", m.shell.Order())))
	if traversal := m.shell.Traversal(); traversal != "" {
		b.WriteString(lipgloss.NewStyle().Width(max(m.sideView.Width-2, 10)).Render(traversal))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%s\n", m.styles.Muted.Render(fmt.Sprintf(
		"%s keys · %d distinct · %d held · height %d/%d",
		m.shell.Session().KeyType(), st.Len, st.Size, st.Height, st.MaxHeight)))

	fmt.Fprintf(&b, "\n%s\n", m.styles.Title.Render("log"))
	for _, entry := range m.shell.Log() {
		b.WriteString(entry)
		b.WriteString("\n")
	}
	return b.String()
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 1
	paneHeight := m.height - inputHeight - 8
	treeWidth := (m.width / 2) - 1
	sideWidth := m.width - treeWidth - 4

	m.textInput.Width = m.width - 10
	m.treeView.Width = treeWidth - 2
	m.treeView.Height = paneHeight
	m.sideView.Width = sideWidth - 2
	m.sideView.Height = paneHeight
}

func (m Model) border(focus int) lipgloss.Style {
	if m.focusIndex == focus {
		return m.styles.BorderFocused
	}
	return m.styles.BorderBlurred
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputBox := m.border(focusInput).
		Width(m.width - 2).
		Render(m.textInput.View())

	treeBox := m.border(focusTree).
		Width(m.treeView.Width + 2).
		Height(m.treeView.Height + 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("🌲 Tree"),
			m.treeView.View(),
		))

	sideTitle := "📋 Traversal"
	if m.showHelp {
		sideTitle = "📖 Help"
	}
	sideBox := m.border(focusSide).
		Width(m.sideView.Width + 2).
		Height(m.sideView.Height + 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(sideTitle),
			m.sideView.View(),
		))

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render("✗ " + m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		lipgloss.JoinHorizontal(lipgloss.Top, treeBox, sideBox),
		" "+status,
		m.renderFooter(),
	)
}

// renderFooter renders the key bindings line
func (m Model) renderFooter() string {
	keys := []string{"enter", "tab", "f1", "esc"}
	descs := []string{"run command", "switch focus", "toggle help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runShell starts the Bubble Tea application
func runShell(shell *Shell, hc *cache.Cache, wordWrap int) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(shell, hc, wordWrap),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
