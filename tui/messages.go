package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances playback by one frame.
type TickMsg struct {
	Time time.Time
	// gen ties a tick to the playback run that scheduled it, so ticks
	// from before a pause or speed change are dropped.
	gen int
}

// TickCmd schedules a TickMsg after d.
func TickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, gen: gen}
	})
}
