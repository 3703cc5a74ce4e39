// Package tui provides the Bubble Tea frontend for blockfall. It handles
// the terminal UI loop, input mapping and drawing; game timing lives in the
// session package.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/session"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// Options configures a game model.
type Options struct {
	Session   session.Config
	Theme     registry.Theme
	CellWidth int
	Store     *storage.Store // Optional; finished games are recorded when set
	Logger    *log.Logger
	Clock     session.Clock // Optional; defaults to the wall clock
}

// eventMsg wraps a session event with the sink it came from, so events of a
// game that was restarted away can be told apart.
type eventMsg struct {
	sink *session.ChannelSink
	evt  session.Event
}

// liveSink tracks the sink of the running game across model copies, so
// Close reaches it from any copy.
type liveSink struct {
	mu   sync.Mutex
	sink *session.ChannelSink
}

func (l *liveSink) set(s *session.ChannelSink) {
	l.mu.Lock()
	l.sink = s
	l.mu.Unlock()
}

func (l *liveSink) close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sink != nil {
		l.sink.Close()
	}
}

// Model is the Bubble Tea model for one player's session.
type Model struct {
	opts   Options
	loop   *session.Loop
	sub    *session.Subscription
	sink   *session.ChannelSink
	live   *liveSink
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model

	frame    blockfall.Frame
	score    int
	status   string // One-line notice under the board
	quitting bool
}

// NewModel creates a model and starts its first game.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	if opts.CellWidth < 1 {
		opts.CellWidth = 2
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Theme.ID == "" {
		opts.Theme, _ = registry.Get(registry.DefaultTheme)
	}

	loopOpts := []session.Option{session.WithLogger(opts.Logger)}
	if opts.Clock != nil {
		loopOpts = append(loopOpts, session.WithClock(opts.Clock))
	}

	m := Model{
		opts:   opts,
		loop:   session.NewLoop(opts.Session, loopOpts...),
		sink:   session.NewChannelSink(64),
		screen: core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.live = &liveSink{sink: m.sink}
	m.sub = m.loop.Start(m.sink, m.sink)
	return m
}

// Init waits for the first game event.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.sink)
}

// waitForEvent returns a command that waits for the next event of sink.
func waitForEvent(sink *session.ChannelSink) tea.Cmd {
	return func() tea.Msg {
		select {
		case evt := <-sink.Events():
			return eventMsg{sink: sink, evt: evt}
		case <-sink.Done():
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case eventMsg:
		if msg.sink != m.sink {
			return m, nil // From a game that was restarted away
		}
		m.handleEvent(msg.evt)
		return m, waitForEvent(m.sink)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case core.ActionRestart:
		return m.restart()
	}

	if cmd := blockfall.CommandFor(action); cmd != blockfall.CommandNone {
		m.sub.Send(cmd)
	}
	return m, nil
}

// restart releases the running game and its sink, then starts a new game.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.sub.Release()
	m.sink.Close()

	m.sink = session.NewChannelSink(64)
	m.live.set(m.sink)
	m.sub = m.loop.Restart(m.sink, m.sink)
	m.score = 0
	m.status = ""
	return m, waitForEvent(m.sink)
}

func (m *Model) handleEvent(evt session.Event) {
	switch e := evt.(type) {
	case session.FrameEvent:
		m.frame = e.Frame
	case session.ScoreEvent:
		m.score = e.Score
	case session.GameOverEvent:
		m.status = m.record(e.Summary)
	}
}

// record saves a finished game and returns a status line.
func (m *Model) record(sum session.Summary) string {
	if m.opts.Store == nil {
		return ""
	}
	id, err := m.opts.Store.SaveRecording(sum.Config, sum.Journal)
	if err != nil {
		m.opts.Logger.Warn("could not save recording", "error", err)
		return "recording not saved"
	}
	return fmt.Sprintf("saved as recording #%d", id)
}

// Close stops the running game. Safe to call more than once and from any
// copy of the model.
func (m Model) Close() {
	m.loop.Stop()
	m.live.close()
}

// draw renders the current state into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	if m.frame.Rows == 0 {
		return // No frame yet
	}
	DrawFrame(m.screen, m.frame, m.opts.Theme, m.opts.CellWidth)
	if m.status != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.status, m.opts.Theme.Text)
	}
}

// boardHeight is the screen height left after the help line.
func boardHeight(termHeight int) int {
	return core.Max(termHeight-1, 0)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed"
		return
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed"
		return
	}

	filename := fmt.Sprintf("blockfall_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.status = "screenshot saved to " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Score returns the last score reported by the running game.
func (m Model) Score() int {
	return m.score
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(opts, cfg)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Close()
	}
	return err
}
