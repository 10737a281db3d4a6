// Package tui is a Bubble Tea progress view over a progress.Feed, started
// only when cmd/tspbb is run with --tui. Like the debug server, it is a
// passive, read-only subscriber of the Feed — this model never touches the
// solver directly, it only polls Feed.Snapshot on a ticker.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/coldbrew-labs/tspbb/internal/progress"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)
	styleDim   = lipgloss.NewStyle().Faint(true)
	styleGood  = lipgloss.NewStyle().Bold(true)
)

// tickMsg triggers a re-read of the feed.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the Bubble Tea model driving the live progress view.
type Model struct {
	feed *progress.Feed
	snap progress.Snapshot
	quit bool
}

// NewModel builds a Model reading from feed.
func NewModel(feed *progress.Feed) Model {
	return Model{feed: feed, snap: feed.Snapshot()}
}

// Init starts the polling ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update advances the model on every tick or keypress.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true

			return m, tea.Quit
		}
	case tickMsg:
		m.snap = m.feed.Snapshot()
		if m.snap.Done {
			return m, tea.Quit
		}

		return m, tick()
	}

	return m, nil
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quit {
		return ""
	}

	s := m.snap
	elapsed := time.Since(s.Started).Round(time.Millisecond)

	var best string
	if s.BestFound {
		best = styleGood.Render(fmt.Sprintf("%d", s.BestCost))
	} else {
		best = styleDim.Render("none yet")
	}

	return fmt.Sprintf(
		"%s\n%s\n\n  run:      %s\n  workers:  %d\n  threads:  %d\n  elapsed:  %s\n  nodes:    %d\n  best:     %s\n\n%s\n",
		styleTitle.Render("tspbb — distributed branch-and-bound TSP solver"),
		styleDim.Render("press q to hide (the search keeps running in the background)"),
		s.RunID,
		s.WorldSize,
		s.Threads,
		elapsed,
		s.NodesExplored,
		best,
		styleDim.Render(boolLabel(s.Done)),
	)
}

func boolLabel(done bool) string {
	if done {
		return "status: finished"
	}

	return "status: searching..."
}
