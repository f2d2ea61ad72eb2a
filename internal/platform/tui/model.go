package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/engine"
	"github.com/vovakirdan/cookie-arcade/internal/registry"
	"github.com/vovakirdan/cookie-arcade/internal/sfx"
	"github.com/vovakirdan/cookie-arcade/internal/storage"
)

// Options configures a game model.
type Options struct {
	Store   *storage.Store // Nil disables run history
	Sound   sfx.Player     // Nil means silent
	Logger  *log.Logger
	Session engine.Options
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	session    *engine.Session
	screen     *core.Screen
	keys       *KeyMapper
	sound      sfx.Player
	ticking    bool // A TickMsg is scheduled
	embedded   bool // Inside a menu session: B leaves the game instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game and starts it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	sess := engine.NewSession(game, cfg, opts.Session)
	if opts.Store != nil {
		engine.RecordRuns(sess, opts.Store, opts.Logger)
	}

	sound := opts.Sound
	if sound == nil {
		sound = sfx.Mute{}
	}
	sfx.Attach(sess, sound)
	sess.Start()

	return Model{
		session: sess,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    NewKeyMapper(),
		sound:   sound,
		ticking: true,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Config().TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.keys.MapMouse(msg) == core.ActionRestart {
			return m.restart()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.session.Resize(msg.Width, msg.Height)
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone, core.ActionConfirm:
		return m, nil
	case core.ActionBack:
		if m.embedded && (m.session.Over() || m.session.Paused()) {
			m.backToMenu = true
		}
		return m, nil
	case core.ActionRestart:
		return m.restart()
	}

	m.session.Press(action)
	if cue, ok := sfx.ForAction(action); ok && !m.session.Over() && !m.session.Paused() {
		m.sound.Play(cue)
	}
	return m, nil
}

// restart begins a new run if the current one is over and wakes the tick loop.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.session.Restart() {
		return m, nil
	}
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.session.Config().TickRate)
}

// handleTick steps the session. Ticking stops once the run is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if st := m.session.Tick(); st.Over() {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.session.Config().TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Session exposes the underlying session.
func (m Model) Session() *engine.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with a model for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Click to restart
	)

	_, err := p.Run()
	return err
}
