package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nuno-faria/tetris/internal/core"
	"github.com/nuno-faria/tetris/internal/storage"
	"github.com/nuno-faria/tetris/internal/tetris"
)

// Model is the Bubble Tea model for interactive play. Keys are published
// into the input register as they arrive; each tick snapshots the register
// and advances the simulation by one frame.
type Model struct {
	game       *tetris.Game
	register   *tetris.Register
	keymap     *KeyMapper
	screen     *core.Screen
	store      *storage.Store
	cfg        tetris.Config
	seed       int64
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game configuration.
// A zero seed selects a time-based one. The store may be nil, in which case
// finished games are not persisted.
func NewModel(cfg tetris.Config, seed int64, store *storage.Store) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return Model{
		game:     tetris.NewGame(cfg, seed, time.Now()),
		register: tetris.NewRegister(),
		keymap:   NewKeyMapper(),
		screen:   core.NewScreen(tetris.ScreenSize(cfg)),
		store:    store,
		cfg:      cfg,
		seed:     seed,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey publishes keyboard input into the register.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, isRestart, isQuit := m.keymap.MapKey(msg)

	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if isRestart {
		if m.game.State().GameOver {
			m.game = tetris.NewGame(m.cfg, time.Now().UnixNano(), time.Now())
			m.register = tetris.NewRegister()
			m.scoreSaved = false
		}
		return m, nil
	}
	if cmd != tetris.CmdNone {
		m.register.Publish(cmd, time.Now())
	}

	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	st := m.game.Step(m.register.Snapshot(), time.Now())

	// Save score on game over (once)
	if st.GameOver && !m.scoreSaved {
		if m.store != nil && st.Score > 0 {
			//nolint:errcheck // Best-effort save, the session continues regardless
			m.store.SaveScore(st.Score, st.Lines, st.Level(m.cfg))
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.cfg.FPS)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg tetris.Config, seed int64, store *storage.Store) error {
	model := NewModel(cfg, seed, store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
