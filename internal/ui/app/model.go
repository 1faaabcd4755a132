// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"slices"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/euii-ii/NotepadAI/internal/config"
	"github.com/euii-ii/NotepadAI/internal/note"
	"github.com/euii-ii/NotepadAI/internal/ollama"
	"github.com/euii-ii/NotepadAI/internal/suggest"
	"github.com/euii-ii/NotepadAI/internal/ui/components"
	"github.com/euii-ii/NotepadAI/internal/ui/styles"
)

// =============================================================================
// VIEW STATE
// =============================================================================

// View is the screen currently shown.
type View int

const (
	ViewWelcome View = iota
	ViewDashboard
	ViewList
	ViewEditor
)

// String returns the view name used in logs.
func (v View) String() string {
	switch v {
	case ViewWelcome:
		return "welcome"
	case ViewDashboard:
		return "dashboard"
	case ViewList:
		return "list"
	case ViewEditor:
		return "editor"
	default:
		return "unknown"
	}
}

// =============================================================================
// OPTIONS
// =============================================================================

// ModelLister lists installed models. *ollama.Client satisfies it.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ollama.ModelInfo, error)
}

// Options wires the model's collaborators.
type Options struct {
	Config    *config.Config
	Requester suggest.Requester
	Lister    ModelLister
	Logger    *zap.Logger
	Theme     *styles.Theme
	Version   string

	// Notes seeds the store; nil means the sample notes.
	Notes []note.Note
	// Now defaults to time.Now.
	Now func() time.Time
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the root tea.Model.
type Model struct {
	view   View
	store  *note.Store
	cursor int

	editor  *Editor
	welcome components.Welcome
	preview *previewRenderer

	connection components.Connection
	toast      *components.Toast

	keys  KeyMap
	help  help.Model
	theme *styles.Theme

	cfg       *config.Config
	requester suggest.Requester
	lister    ModelLister
	logger    *zap.Logger
	now       func() time.Time
	clipboard func(string) error

	width  int
	height int
}

// New creates the root model showing the welcome screen.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	notes := opts.Notes
	if notes == nil {
		notes = note.Seed(now())
	}

	welcome := components.NewWelcome(theme)
	if opts.Version != "" {
		welcome.SetVersion(opts.Version)
	}
	welcome.SetModelName(cfg.Ollama.Model)

	return Model{
		view:      ViewWelcome,
		store:     note.NewStore(notes...),
		welcome:   welcome,
		preview:   &previewRenderer{theme: theme},
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     theme,
		cfg:       cfg,
		requester: opts.Requester,
		lister:    opts.Lister,
		logger:    logger,
		now:       now,
		clipboard: copyFn,
	}
}

// CurrentView returns the screen being shown.
func (m Model) CurrentView() View { return m.view }

// Store returns the note store.
func (m Model) Store() *note.Store { return m.store }

// Editor returns the active editor session, or nil.
func (m Model) Editor() *Editor { return m.editor }

// Connection returns the last probe result.
func (m Model) Connection() components.Connection { return m.connection }

// Cursor returns the index of the highlighted note.
func (m Model) Cursor() int { return m.cursor }

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("NotePlus")
}

// Update routes messages to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.welcome.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		if m.editor != nil {
			m.editor.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case probeResultMsg:
		m.handleProbe(msg)
		return m, nil

	case clipboardMsg:
		return m, m.handleClipboard(msg)

	case components.ToastExpiredMsg:
		if m.toast != nil && m.toast.ID == msg.ID {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ViewWelcome:
			return m.updateWelcome(msg)
		case ViewDashboard:
			return m.updateDashboard(msg)
		case ViewList:
			return m.updateList(msg)
		case ViewEditor:
			return m.updateEditor(msg)
		}
	}

	// Timers, results and cursor blinks belong to the editor session.
	if m.view == ViewEditor && m.editor != nil {
		return m, m.editor.Update(msg)
	}
	return m, nil
}

// View renders the active screen.
func (m Model) View() string {
	switch m.view {
	case ViewDashboard:
		return m.theme.App.Render(m.viewDashboard())
	case ViewList:
		return m.theme.App.Render(m.viewList())
	case ViewEditor:
		if m.editor != nil {
			return m.theme.App.Render(m.editor.View() + "\n" + m.statusLine(m.help.ShortHelpView(m.keys.EditorHelp())))
		}
	}
	return m.welcome.View()
}

// =============================================================================
// ROUTER
// =============================================================================

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		m.view = ViewDashboard
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.closeEditor()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.closeEditor()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m, m.saveEditor()
	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteEditor()
	}
	if m.editor == nil {
		return m, nil
	}
	return m, m.editor.Update(msg)
}

// openNew starts an editor session on a fresh note.
func (m *Model) openNew() tea.Cmd {
	return m.openEditor(note.NewNote(m.now()), true)
}

// openSelected starts an editor session on the highlighted note.
func (m *Model) openSelected() tea.Cmd {
	notes := m.store.List()
	if m.cursor < 0 || m.cursor >= len(notes) {
		return nil
	}
	m.store.Select(notes[m.cursor].ID)
	n, ok := m.store.Selected()
	if !ok {
		return nil
	}
	return m.openEditor(n, false)
}

func (m *Model) openEditor(n note.Note, isNew bool) tea.Cmd {
	engine := suggest.NewEngine(m.requester, suggest.EngineConfigFrom(m.cfg.Suggest), m.logger)
	m.editor = newEditor(n, isNew, engine, editorDeps{
		keys:   m.keys,
		theme:  m.theme,
		now:    m.now,
		copyFn: m.clipboard,
		logger: m.logger,
	})
	if m.width > 0 {
		m.editor.SetSize(m.width, m.height)
	}
	m.view = ViewEditor
	m.logger.Debug("editor opened",
		zap.String("note", n.ID),
		zap.Bool("new", isNew),
		zap.Uint64("session", engine.Session()))

	return tea.Batch(m.editor.Init(), m.probe())
}

func (m *Model) closeEditor() {
	if m.editor != nil {
		m.editor.Close()
		m.editor = nil
	}
	m.view = ViewDashboard
}

func (m *Model) saveEditor() tea.Cmd {
	if m.editor == nil {
		return nil
	}
	n := note.Prepare(m.editor.Note(), m.now())
	added := m.store.Save(n)
	m.store.Select(n.ID)
	m.logger.Info("note saved", zap.String("note", n.ID), zap.String("title", n.Title), zap.Bool("added", added))

	m.closeEditor()
	m.cursor = m.indexOf(n.ID)
	return m.flash(components.ToastKindSuccess, "Note saved")
}

func (m *Model) deleteEditor() tea.Cmd {
	if m.editor == nil {
		return nil
	}
	id := m.editor.Note().ID
	removed := m.store.Delete(id)
	m.logger.Info("note deleted", zap.String("note", id), zap.Bool("existed", removed))

	m.closeEditor()
	m.clampCursor()
	if !removed {
		return nil
	}
	return m.flash(components.ToastKindStatus, "Note deleted")
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	m.cursor = max(0, min(m.cursor, m.store.Len()-1))
}

func (m *Model) indexOf(id string) int {
	return slices.IndexFunc(m.store.List(), func(n note.Note) bool { return n.ID == id })
}

// =============================================================================
// PROBE, CLIPBOARD, TOASTS
// =============================================================================

// probe checks the inference endpoint once per editor session.
func (m *Model) probe() tea.Cmd {
	if m.lister == nil {
		return nil
	}
	m.connection = components.ConnectionChecking
	lister, timeout := m.lister, m.cfg.Ollama.ProbeTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		models, err := lister.ListModels(ctx)
		return probeResultMsg{models: ollama.ModelNames(models), err: err}
	}
}

func (m *Model) handleProbe(msg probeResultMsg) {
	if msg.err != nil {
		m.connection = components.ConnectionOffline
		m.logger.Warn("inference endpoint unreachable", zap.String("url", m.cfg.Ollama.URL), zap.Error(msg.err))
		return
	}
	m.connection = components.ConnectionOnline
	m.logger.Info("inference endpoint reachable", zap.Strings("models", msg.models))
	if !slices.Contains(msg.models, m.cfg.Ollama.Model) {
		m.logger.Warn("configured model is not installed", zap.String("model", m.cfg.Ollama.Model))
	}
}

func (m *Model) handleClipboard(msg clipboardMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Warn("clipboard copy failed", zap.Error(msg.err))
		return m.flash(components.ToastKindError, "Clipboard unavailable")
	}
	m.logger.Debug("content copied", zap.Int("chars", msg.chars))
	return m.flash(components.ToastKindSuccess, "Copied to clipboard")
}

func (m *Model) flash(kind components.ToastKind, message string) tea.Cmd {
	t, cmd := components.NewToast(kind, message)
	m.toast = &t
	return cmd
}

func (m Model) statusLine(help string) string {
	s := components.StatusLine{
		Model:      m.cfg.Ollama.Model,
		Connection: m.connection,
		Help:       help,
	}
	if m.toast != nil {
		s.Flash = m.toast.View()
	}
	return s.View(m.theme)
}

func (m Model) contentWidth() int {
	if m.width == 0 {
		return 76
	}
	return max(m.width-4, 20)
}
