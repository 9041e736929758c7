// Package tui renders a pong match in the terminal and turns key presses into
// paddle intents.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pongforbots/internal/control"
	"github.com/lox/pongforbots/internal/game"
)

const (
	// HoldWindow is how long a key press keeps its intent. Terminals send
	// no key-up, so autorepeat refreshes the hold while a key is down.
	HoldWindow = 120 * time.Millisecond

	frameInterval = time.Second / 30

	minCols = 32
	maxCols = 120
)

// Backend is a match the TUI can drive: a local runner or a client session.
type Backend interface {
	SetIntent(p game.Player, a game.Action)
	SetMode(p game.Player, kind control.Kind)
	Reset()
	View() control.View
}

type frameMsg time.Time

type hold struct {
	action game.Action
	until  time.Time
}

// Options configures a Model.
type Options struct {
	Title  string
	Field  game.Config
	Clock  quartz.Clock
	Logger *log.Logger
}

// Model is the bubbletea model for a match.
type Model struct {
	backend Backend
	opts    Options
	logger  *log.Logger
	keys    keyMap
	help    help.Model

	view    control.View
	holds   [2]hold
	width   int
	height  int
	message string
}

// NewModel returns a model driving backend.
func NewModel(backend Backend, opts Options) *Model {
	if opts.Field.Width == 0 {
		opts.Field = game.DefaultConfig()
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Title == "" {
		opts.Title = "pongforbots"
	}
	return &Model{
		backend: backend,
		opts:    opts,
		logger:  opts.Logger.WithPrefix("tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
		view:    backend.View(),
		width:   80,
		height:  24,
	}
}

func (m *Model) Init() tea.Cmd {
	return nextFrame()
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		m.expireHolds()
		m.view = m.backend.View()
		return m, nextFrame()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.P1Up):
			m.press(game.Player1, game.Up)
		case key.Matches(msg, m.keys.P1Down):
			m.press(game.Player1, game.Down)
		case key.Matches(msg, m.keys.P2Up):
			m.press(game.Player2, game.Up)
		case key.Matches(msg, m.keys.P2Down):
			m.press(game.Player2, game.Down)
		case key.Matches(msg, m.keys.Reset):
			m.backend.Reset()
			m.message = "Match reset"
		case key.Matches(msg, m.keys.Toggle1):
			m.toggle(game.Player1)
		case key.Matches(msg, m.keys.Toggle2):
			m.toggle(game.Player2)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *Model) press(p game.Player, a game.Action) {
	h := &m.holds[p.Index()]
	if h.action != a {
		m.backend.SetIntent(p, a)
	}
	h.action = a
	h.until = m.opts.Clock.Now().Add(HoldWindow)
}

func (m *Model) expireHolds() {
	now := m.opts.Clock.Now()
	for i, p := range game.Players {
		h := &m.holds[i]
		if h.action != game.Stay && now.After(h.until) {
			h.action = game.Stay
			m.backend.SetIntent(p, game.Stay)
		}
	}
}

// nextKind cycles human, bot, ai.
func nextKind(k control.Kind) control.Kind {
	switch k {
	case control.Human:
		return control.Bot
	case control.Bot:
		return control.AI
	default:
		return control.Human
	}
}

func (m *Model) toggle(p game.Player) {
	next := nextKind(m.view.Modes[p.Index()])
	m.backend.SetMode(p, next)
	m.message = fmt.Sprintf("%s -> %s", p, next)
	m.logger.Debug("Mode toggled", "player", p, "mode", next)
}

func (m *Model) fieldSize() (int, int) {
	cols := min(max(m.width-2, minCols), maxCols)
	// terminal cells are roughly twice as tall as they are wide
	rows := int(float64(cols) * m.opts.Field.Height / m.opts.Field.Width / 2)
	if m.height > 8 {
		rows = min(rows, m.height-7)
	}
	return cols, max(rows, 8)
}

func (m *Model) View() string {
	v := m.view
	s := v.Snapshot

	header := HeaderStyle.Render(m.opts.Title) + "  " +
		Player2Style.Render(fmt.Sprintf("P2 [%s] %d", v.Modes[1], s.Score2)) +
		InfoStyle.Render("  :  ") +
		Player1Style.Render(fmt.Sprintf("%d [%s] P1", s.Score1, v.Modes[0]))

	cols, rows := m.fieldSize()
	body := renderGrid(grid(s, m.opts.Field, cols, rows))
	field := FieldStyle.Render(body)

	var lines []string
	lines = append(lines, header, field)
	lines = append(lines, m.status())
	lines = append(lines, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) status() string {
	v := m.view
	switch {
	case !v.Connected && v.Live:
		return WarningStyle.Render("Disconnected, reconnecting... (showing last state)")
	case !v.Connected:
		return WarningStyle.Render("Connecting...")
	case !v.Live:
		return InfoStyle.Render("Waiting for state")
	case v.Snapshot.Done:
		winner := "Player 1"
		if v.Snapshot.Score2 > v.Snapshot.Score1 {
			winner = "Player 2"
		}
		return BannerStyle.Render(strings.ToUpper(winner+" wins!") + "  press r to play again")
	case m.message != "":
		return InfoStyle.Render(m.message)
	default:
		return ""
	}
}

// Run shows the TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, backend Backend, opts Options) error {
	p := tea.NewProgram(NewModel(backend, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
