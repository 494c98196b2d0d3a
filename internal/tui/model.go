// Package tui implements the interactive version history browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/relmeta/relmeta/internal/metadata"
	"github.com/relmeta/relmeta/internal/output"
	"github.com/relmeta/relmeta/internal/semver"
)

// Model represents the TUI state
type Model struct {
	path        string
	entries     []metadata.Entry
	filteredIdx []int
	latest      string
	content     string
	viewport    viewport.Model
	textinput   textinput.Model
	width       int
	height      int
	ready       bool
	searching   bool
	searchQuery string
}

// New creates a new TUI model over the sorted history entries
func New(path string, entries []metadata.Entry) Model {
	ti := textinput.New()
	ti.Placeholder = "Filter versions..."
	ti.CharLimit = 100
	ti.Width = 40

	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		versions = append(versions, e.Version)
	}
	latest, _ := semver.Latest(versions)

	m := Model{
		path:      path,
		entries:   entries,
		latest:    latest,
		textinput: ti,
	}
	m.updateFilter()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.textinput.Blur()
				m.searchQuery = ""
				m.textinput.SetValue("")
				m.updateFilter()
			case "enter":
				m.searching = false
				m.textinput.Blur()
				m.searchQuery = m.textinput.Value()
				m.updateFilter()
			default:
				m.textinput, cmd = m.textinput.Update(msg)
				cmds = append(cmds, cmd)
			}
		} else {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "/":
				m.searching = true
				m.textinput.Focus()
				return m, textinput.Blink
			case "esc":
				if m.searchQuery != "" {
					m.searchQuery = ""
					m.textinput.SetValue("")
					m.updateFilter()
				}
			case "g", "home":
				m.viewport.GotoTop()
			case "G", "end":
				m.viewport.GotoBottom()
			case "j", "down":
				m.viewport.LineDown(1)
			case "k", "up":
				m.viewport.LineUp(1)
			case "ctrl+d", "pgdown":
				m.viewport.HalfViewDown()
			case "ctrl+u", "pgup":
				m.viewport.HalfViewUp()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.updateViewport()
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := output.Styles.Title.Render("relmeta history") + " " +
		output.Styles.Help.Render(m.path) + "\n" +
		output.Styles.Help.Render(fmt.Sprintf("%d of %d entries", len(m.filteredIdx), len(m.entries))) + "\n"

	footer := "\n"
	if m.searching {
		footer += m.textinput.View()
	} else {
		footer += output.Styles.Help.Render("/: filter  j/k: scroll  g/G: top/bottom  q: quit")
	}

	return header + m.viewport.View() + footer
}

func (m *Model) updateFilter() {
	query := strings.ToLower(m.searchQuery)
	m.filteredIdx = m.filteredIdx[:0]
	for i, entry := range m.entries {
		if query == "" ||
			strings.Contains(strings.ToLower(entry.Version), query) ||
			strings.Contains(strings.ToLower(entry.MinAppVersion), query) {
			m.filteredIdx = append(m.filteredIdx, i)
		}
	}

	var b strings.Builder
	for _, idx := range m.filteredIdx {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.formatEntryLine(m.entries[idx]))
	}
	m.content = b.String()
	m.updateViewport()
}

func (m *Model) formatEntryLine(entry metadata.Entry) string {
	line := output.Styles.Version.Render(fmt.Sprintf("%-16s", entry.Version)) +
		" -> " + output.Styles.MinApp.Render(entry.MinAppVersion)
	if _, ok := semver.ParseCore(entry.Version); !ok {
		line += " " + output.Styles.Malformed.Render("!")
	}
	if entry.Version == m.latest {
		line += " " + output.Styles.Success.Render("(latest)")
	}
	return line
}

func (m *Model) updateViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content)
}
