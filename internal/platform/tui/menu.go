package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// MenuChoice is what the player picked in the start menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuRecordings
	MenuQuit
)

// menuItem is one row of the start menu. Rows with options cycle through
// them with left/right instead of being selected.
type menuItem struct {
	label   string
	choice  MenuChoice
	options []string
	current int
}

func (it menuItem) value() string {
	if len(it.options) == 0 {
		return ""
	}
	return it.options[it.current]
}

// Indexes of the option rows.
const (
	menuRowTheme = 1
	menuRowSpeed = 2
)

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left", "prev option")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right", "next option")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items    []menuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	selected MenuChoice
}

// NewMenuModel creates a start menu. themeID and speed preselect the option
// rows; unknown values fall back to the first option.
func NewMenuModel(cfg core.RuntimeConfig, themeID string, speed config.SpeedPreset) MenuModel {
	themes := registry.List()
	themeIDs := make([]string, len(themes))
	for i, t := range themes {
		themeIDs[i] = t.ID
	}
	speeds := []string{string(config.SpeedEasy), string(config.SpeedNormal), string(config.SpeedHard)}

	items := []menuItem{
		{label: "Play", choice: MenuPlay},
		{label: "Theme", options: themeIDs, current: indexOf(themeIDs, themeID)},
		{label: "Speed", options: speeds, current: indexOf(speeds, string(speed))},
		{label: "Recordings", choice: MenuRecordings},
		{label: "Quit", choice: MenuQuit},
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
	}
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return 0
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.items = slices.Clone(m.items)
	item := &m.items[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.selected = MenuQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Prev):
		if n := len(item.options); n > 0 {
			item.current = (item.current + n - 1) % n
		}

	case key.Matches(msg, m.keys.Next):
		if n := len(item.options); n > 0 {
			item.current = (item.current + 1) % n
		}

	case key.Matches(msg, m.keys.Select):
		if item.choice != MenuNone {
			m.selected = item.choice
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected == MenuQuit {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B L O C K F A L L"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.label
		if v := item.value(); v != "" {
			line += ":  < " + v + " >"
		}
		if i == m.cursor {
			line = cursorStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice  MenuChoice
	ThemeID string
	Speed   config.SpeedPreset
	Config  core.RuntimeConfig // Updated by resizes
}

// Result returns the menu's current selection.
func (m MenuModel) Result() MenuResult {
	choice := m.selected
	if choice == MenuNone {
		choice = MenuQuit
	}
	return MenuResult{
		Choice:  choice,
		ThemeID: m.items[menuRowTheme].value(),
		Speed:   config.SpeedPreset(m.items[menuRowSpeed].value()),
		Config:  m.config,
	}
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, themeID string, speed config.SpeedPreset) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, themeID, speed),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}
	return m.Result(), nil
}
