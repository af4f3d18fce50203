// Package dashboard renders the live session dashboard: a poll-driven
// bubbletea program showing one status card per active session.
package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"agentdash/internal/config"
	"agentdash/internal/discover"
	"agentdash/internal/i18n"
	"agentdash/internal/state"
)

// frameInterval is the animation beat. Directory rescans run on the
// configured refresh interval; state inference runs every frame since
// it is bounded by the tail window.
const frameInterval = 500 * time.Millisecond

// card pairs a discovered session with its inferred state for one frame.
type card struct {
	name  string // project name, numbered when a project has several sessions
	state state.AgentState
	model string
	dim   bool
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	cfg  config.Config
	msgs *i18n.Messages
	keys KeyMap

	width  int
	height int
	frame  int

	sessions []discover.Session
	cards    []card
	lastScan time.Time
	err      error
}

// New builds the dashboard model.
func New(cfg config.Config, msgs *i18n.Messages) Model {
	return Model{
		cfg:  cfg,
		msgs: msgs,
		keys: DefaultKeyMap(),
	}
}

// Run starts the dashboard program and blocks until exit.
func Run(cfg config.Config, msgs *i18n.Messages) error {
	p := tea.NewProgram(New(cfg, msgs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

type tickMsg time.Time

type snapshotMsg struct {
	sessions []discover.Session
	cards    []card
	scanned  bool
	at       time.Time
	err      error
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.snapshotCmd(true), tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.snapshotCmd(true)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.frame++
		rescan := time.Time(msg).Sub(m.lastScan) >= m.refreshInterval()
		return m, tea.Batch(m.snapshotCmd(rescan), tick())

	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.cards = msg.cards
		if msg.scanned {
			m.sessions = msg.sessions
			m.lastScan = msg.at
		}
	}

	return m, nil
}

func (m Model) refreshInterval() time.Duration {
	return time.Duration(m.cfg.RefreshSeconds) * time.Second
}

// snapshotCmd rebuilds the card list, optionally rescanning the
// projects directory first. All file I/O happens inside the command so
// the update loop never blocks.
func (m Model) snapshotCmd(rescan bool) tea.Cmd {
	cfg := m.cfg
	msgs := m.msgs
	sessions := m.sessions

	return func() tea.Msg {
		now := time.Now()

		var scanned bool
		if rescan {
			found, err := discover.Sessions(discover.Options{
				Root:            cfg.SessionsDir,
				Now:             now,
				IdleTimeout:     cfg.IdleTimeout(),
				ShowAll:         cfg.ShowAll,
				ActiveThreshold: cfg.ActiveThreshold(),
			})
			if err != nil {
				return snapshotMsg{err: err, at: now}
			}
			sessions = found
			scanned = true
		}

		return snapshotMsg{
			sessions: sessions,
			cards:    buildCards(sessions, now, cfg, msgs),
			scanned:  scanned,
			at:       now,
		}
	}
}

// buildCards infers a fresh state for every displayed session.
func buildCards(sessions []discover.Session, now time.Time, cfg config.Config, msgs *i18n.Messages) []card {
	display := sessions
	if cfg.MaxAgents > 0 && len(display) > cfg.MaxAgents {
		display = display[:cfg.MaxAgents]
	}

	// Sessions of the same project get "#n" suffixes.
	counts := make(map[string]int, len(display))
	for _, s := range display {
		counts[s.ProjectName]++
	}
	indices := make(map[string]int, len(display))

	th := cfg.StateThresholds()
	cards := make([]card, 0, len(display))
	for _, s := range display {
		indices[s.ProjectName]++

		st := state.Infer(s.Path, now, th, msgs)
		age := now.Sub(s.ModTime)

		// Long-untouched sessions without a live writer are shown idle
		// even when their log tail still looks busy.
		if age > cfg.RecentThreshold() && !s.Alive {
			st = state.AgentState{
				Kind:       state.Idle,
				Status:     state.FormatAge(age, msgs),
				Model:      st.Model,
				LastUpdate: st.LastUpdate,
			}
		}

		name := s.ProjectName
		if counts[s.ProjectName] > 1 {
			name = fmt.Sprintf("%s #%d", name, indices[s.ProjectName])
		}

		cards = append(cards, card{
			name:  name,
			state: st,
			model: st.Model,
			dim:   age > cfg.ActiveThreshold() && !s.Alive,
		})
	}
	return cards
}
