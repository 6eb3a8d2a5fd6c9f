package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vandriyan/autosnake/internal/core"
	"github.com/vandriyan/autosnake/internal/game"
	"github.com/vandriyan/autosnake/internal/storage"
)

// Tick rate bounds for the +/- pacing keys.
const (
	minTickRate = 1
	maxTickRate = 60
)

// Model is the Bubble Tea model for watching a simulation session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	tickRate   int
	paused     bool
	quitting   bool
	runSaved   bool // Whether the run has been saved for the current terminal state
}

// NewModel creates a new Bubble Tea model for the given session.
// screenW and screenH are the initial terminal dimensions; the model tracks
// resizes after that.
func NewModel(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, screenW, screenH int) Model {
	return Model{
		session:    session,
		screen:     core.NewScreen(screenW, screenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		tickRate:   cfg.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes one frame: apply viewer actions, then advance the
// session unless it is paused or finished.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if m.inputFrame.Has(core.ActionFaster) && m.tickRate < maxTickRate {
		m.tickRate++
	}
	if m.inputFrame.Has(core.ActionSlower) && m.tickRate > minTickRate {
		m.tickRate--
	}

	// Restart only makes sense once the session has finished.
	if m.inputFrame.Has(core.ActionRestart) && m.session.State().Terminal() {
		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		if fresh, err := game.New(cfg); err == nil {
			m.session = fresh
			m.runSaved = false
			m.paused = false
		}
		m.inputFrame.Clear()
		return m, tickCmd(m.tickRate)
	}

	if !m.paused {
		m.session.Tick()
	}

	// Save the run on termination (once)
	if m.session.State().Terminal() && !m.runSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, the viewer continues regardless
			m.store.SaveRun(storage.RunEntry{
				Planner: m.session.PlannerID(),
				Score:   m.session.Score(),
				Length:  len(m.session.Segments()),
				Ticks:   m.session.Ticks(),
				Outcome: outcomeForState(m.session.State()),
			})
		}
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)

	if m.paused {
		m.screen.DrawTextCentered(0, " PAUSED (p to resume) ", core.ColorBrightYellow)
	}

	return RenderScreen(m.screen)
}

// outcomeForState maps a terminal session state to its stored outcome label.
func outcomeForState(state core.SessionState) string {
	switch state {
	case core.StateDead:
		return "dead"
	case core.StateWon:
		return "won"
	default:
		return "aborted"
	}
}

// Run starts the Bubble Tea program watching the given session.
func Run(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, screenW, screenH int) error {
	model := NewModel(session, store, cfg, screenW, screenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
