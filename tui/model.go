package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/render"
)

// Playback speed bounds. Faster halves the interval, slower doubles it.
const (
	DefaultInterval = 60 * time.Millisecond
	MinInterval     = 5 * time.Millisecond
	MaxInterval     = 2 * time.Second
)

// Model is the Bubble Tea model replaying one animation.
type Model struct {
	anim  *render.Animation
	title string
	steps int

	frame    int
	playing  bool
	interval time.Duration
	gen      int

	width int
	keys  KeyMap
	help  help.Model
}

// NewModel returns a model that starts playing a from the first frame.
// title labels the run (usually the method), steps is the search result
// shown in the status bar. A non-positive interval selects DefaultInterval.
func NewModel(a *render.Animation, title string, steps int, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Model{
		anim:     a,
		title:    title,
		steps:    steps,
		playing:  true,
		interval: clampInterval(interval),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Frame returns the index of the frame on screen.
func (m Model) Frame() int { return m.frame }

// Playing reports whether playback is running.
func (m Model) Playing() bool { return m.playing }

// Interval returns the delay between frames.
func (m Model) Interval() time.Duration { return m.interval }

// Init starts the playback timer.
func (m Model) Init() tea.Cmd {
	if !m.playing {
		return nil
	}
	return TickCmd(m.interval, m.gen)
}

// Update routes messages to their handlers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// handleTick moves one frame forward and stops on the last one.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.playing || msg.gen != m.gen {
		return m, nil
	}
	last := m.anim.Len() - 1
	if m.frame < last {
		m.frame++
	}
	if m.frame >= last {
		m.playing = false
		return m, nil
	}
	return m, TickCmd(m.interval, m.gen)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if m.playing {
			m.playing = false
			return m, nil
		}
		if m.frame >= m.anim.Len()-1 {
			m.frame = 0
		}
		return m.resume()

	case key.Matches(msg, m.keys.Next):
		m.playing = false
		m.frame = min(m.frame+1, m.anim.Len()-1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.playing = false
		m.frame = max(m.frame-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.frame = 0
		return m.resume()

	case key.Matches(msg, m.keys.Faster):
		m.interval = clampInterval(m.interval / 2)
		return m.reschedule()

	case key.Matches(msg, m.keys.Slower):
		m.interval = clampInterval(m.interval * 2)
		return m.reschedule()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// resume starts a fresh tick chain; ticks of older chains are ignored.
func (m Model) resume() (tea.Model, tea.Cmd) {
	m.playing = true
	m.gen++
	return m, TickCmd(m.interval, m.gen)
}

func (m Model) reschedule() (tea.Model, tea.Cmd) {
	if !m.playing {
		return m, nil
	}
	return m.resume()
}

// View draws the title, the board, the status bar and the key help.
func (m Model) View() string {
	f := m.anim.Frame(m.frame)
	board := BoardStyle.Render(drawBoard(f))

	sections := []string{
		TitleStyle.Render(m.title),
		board,
		StatusBarStyle.Render(m.status()),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) status() string {
	shown := min(m.frame+1, m.anim.Visits())
	state := "paused"
	if m.playing {
		state = "playing"
	}

	result := "searching"
	if m.frame >= m.anim.Visits() {
		if m.steps > 0 {
			result = FoundStyle.Render(fmt.Sprintf("steps %d", m.steps))
		} else {
			result = NotFoundStyle.Render("no path")
		}
	}

	return fmt.Sprintf("frame %d/%d  visited %d/%d  %s  %s  %s",
		m.frame+1, m.anim.Len(), shown, m.anim.Visits(), result, m.interval, state)
}

// drawBoard colors each glyph of the text rendering by its cell state.
func drawBoard(f render.Frame) string {
	lines := strings.Split(render.Text(f), "\n")
	var b strings.Builder
	for r, line := range lines {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, ch := range []byte(line) {
			st := f.Cells[r*f.Width+c]
			b.WriteString(StyleForState(st).Render(string([]byte{ch, ' '})))
		}
	}
	return b.String()
}

func clampInterval(d time.Duration) time.Duration {
	return min(max(d, MinInterval), MaxInterval)
}

// Run plays m full screen until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
