package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// Recordings browser layout constants
const (
	maxRecordings   = 100 // Max recordings to load
	previewCellSize = 1   // Preview boards use one column per cell
)

// RecordingsKeyMap defines the key bindings for the recordings browser.
type RecordingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Delete, k.Quit}}
}

// DefaultRecordingsKeyMap returns default key bindings.
func DefaultRecordingsKeyMap() RecordingsKeyMap {
	return RecordingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// replayedRecording is a stored recording together with its re-simulated
// final state.
type replayedRecording struct {
	rec   storage.Recording
	frame blockfall.Frame
	err   error
}

// RecordingsModel is the Bubble Tea model for browsing saved games.
type RecordingsModel struct {
	store    *storage.Store
	theme    registry.Theme
	items    []replayedRecording
	table    table.Model
	help     help.Model
	keys     RecordingsKeyMap
	width    int
	height   int
	err      error
	quitting bool
}

// NewRecordingsModel creates a recordings browser and loads the newest games.
func NewRecordingsModel(store *storage.Store, theme registry.Theme, width, height int) RecordingsModel {
	m := RecordingsModel{
		store:  store,
		theme:  theme,
		keys:   DefaultRecordingsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *RecordingsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Date", Width: 12},
		{Title: "Board", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Lines", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-6, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads recordings from the store and replays each one.
func (m *RecordingsModel) load() {
	m.items = nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	recs, err := m.store.Recordings(maxRecordings)
	if err != nil {
		m.err = err
		m.updateTableRows()
		return
	}

	for _, rec := range recs {
		item := replayedRecording{rec: rec}
		g, err := rec.Replay()
		if err != nil {
			item.err = err
		} else {
			item.frame = g.Frame()
		}
		m.items = append(m.items, item)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded recordings.
func (m *RecordingsModel) updateTableRows() {
	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		score, lines := "?", "?"
		if it.err == nil {
			score = fmt.Sprintf("%d", it.frame.Score)
			lines = fmt.Sprintf("%d", it.frame.Lines)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", it.rec.ID),
			it.rec.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%dx%d", it.rec.Cols, it.rec.Rows),
			score,
			lines,
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the recordings model.
func (m RecordingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the recordings browser.
func (m RecordingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// deleteSelected removes the highlighted recording from the store.
func (m *RecordingsModel) deleteSelected() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.items) {
		return
	}
	if err := m.store.DeleteRecording(m.items[i].rec.ID); err != nil {
		m.err = err
		return
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	m.updateTableRows()
	if i >= len(m.items) && i > 0 {
		m.table.SetCursor(i - 1)
	}
}

// View renders the recordings browser.
func (m RecordingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("RECORDINGS"))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.items) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No recordings yet.\nFinished games are saved automatically.")))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			boxStyle.Render(m.table.View()),
			"  ",
			m.preview(),
		))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// preview draws the final board of the highlighted recording.
func (m RecordingsModel) preview() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return ""
	}
	it := m.items[i]
	if it.err != nil {
		return it.err.Error()
	}

	w, h := BoardSize(it.frame.Rows, it.frame.Cols, previewCellSize)
	screen := core.NewScreen(w, h)
	DrawBoard(screen, core.NewRect(0, 0, w, h), it.frame, m.theme, previewCellSize)
	return RenderScreen(screen)
}

// RunRecordings runs the recordings browser until the user quits.
func RunRecordings(store *storage.Store, theme registry.Theme, width, height int) error {
	p := tea.NewProgram(
		NewRecordingsModel(store, theme, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
