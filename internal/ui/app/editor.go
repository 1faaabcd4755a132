// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/euii-ii/NotepadAI/internal/note"
	"github.com/euii-ii/NotepadAI/internal/suggest"
	"github.com/euii-ii/NotepadAI/internal/ui/components"
	"github.com/euii-ii/NotepadAI/internal/ui/styles"
)

// ContentPlaceholder is shown in an empty content area.
const ContentPlaceholder = "Type something here ..."

type focusField int

const (
	focusTitle focusField = iota
	focusBody
)

// =============================================================================
// EDITOR
// =============================================================================

// Editor edits one working copy of a note. Nothing reaches the store until
// the router saves Note().
type Editor struct {
	working note.Note
	isNew   bool

	title textinput.Model
	body  textarea.Model
	focus focusField

	engine   *suggest.Engine
	spinner  spinner.Model
	spinning bool
	debug    bool

	keys   KeyMap
	theme  *styles.Theme
	now    func() time.Time
	copyFn func(string) error
	logger *zap.Logger
}

// editorDeps carries the collaborators the router hands to each session.
type editorDeps struct {
	keys   KeyMap
	theme  *styles.Theme
	now    func() time.Time
	copyFn func(string) error
	logger *zap.Logger
}

func newEditor(n note.Note, isNew bool, engine *suggest.Engine, deps editorDeps) *Editor {
	title := textinput.New()
	title.Placeholder = note.DefaultTitle
	title.Prompt = ""
	title.CharLimit = 120
	title.SetValue(n.Title)

	body := textarea.New()
	body.Placeholder = ContentPlaceholder
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.SetValue(n.Content)

	sp := spinner.New()
	sp.Spinner = styles.DotsSpinner.Bubble()
	sp.Style = deps.theme.SuggestionLoading

	return &Editor{
		working: n,
		isNew:   isNew,
		title:   title,
		body:    body,
		focus:   focusBody,
		engine:  engine,
		spinner: sp,
		keys:    deps.keys,
		theme:   deps.theme,
		now:     deps.now,
		copyFn:  deps.copyFn,
		logger:  deps.logger,
	}
}

// Init focuses the content area.
func (e *Editor) Init() tea.Cmd {
	return e.body.Focus()
}

// Note returns the working copy with the current input values.
func (e *Editor) Note() note.Note {
	n := e.working
	n.Title = e.title.Value()
	n.Content = e.body.Value()
	return n
}

// IsNew reports whether the note was created in this session.
func (e *Editor) IsNew() bool { return e.isNew }

// Engine exposes the session's suggestion engine.
func (e *Editor) Engine() *suggest.Engine { return e.engine }

// Close ends the session and abandons outstanding suggestion work.
func (e *Editor) Close() {
	e.engine.Close()
}

// SetSize lays the inputs out for a terminal of the given size.
func (e *Editor) SetSize(width, height int) {
	inner := max(width-8, 20)
	e.title.Width = inner
	e.body.SetWidth(inner)
	e.body.SetHeight(max(height-14, 5))
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles editor keys and routes suggestion messages to the engine.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, e.keys.FocusNext):
			cmds = append(cmds, e.toggleFocus())
		case key.Matches(msg, e.keys.ApplyCorrection):
			cmds = append(cmds, e.applyCorrection())
		case key.Matches(msg, e.keys.AcceptNext):
			cmds = append(cmds, e.applyNextWord())
		case key.Matches(msg, e.keys.SuggestNow):
			cmds = append(cmds, e.engine.SuggestNow(e.body.Value()))
		case key.Matches(msg, e.keys.Copy):
			cmds = append(cmds, e.copyContent())
		case key.Matches(msg, e.keys.Debug):
			e.debug = !e.debug
		default:
			cmds = append(cmds, e.updateInputs(msg))
		}

	case suggest.FireMsg, suggest.ResultMsg:
		cmds = append(cmds, e.engine.Update(msg))

	case spinner.TickMsg:
		if e.loading() {
			var cmd tea.Cmd
			e.spinner, cmd = e.spinner.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			e.spinning = false
		}

	default:
		cmds = append(cmds, e.updateInputs(msg))
	}

	cmds = append(cmds, e.ensureSpinner())
	return tea.Batch(cmds...)
}

// updateInputs forwards msg to the inputs and notifies the engine about
// content edits. Keys go to the focused input only.
func (e *Editor) updateInputs(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)

	var cmds []tea.Cmd
	if !isKey || e.focus == focusTitle {
		var cmd tea.Cmd
		e.title, cmd = e.title.Update(msg)
		cmds = append(cmds, cmd)
	}
	if !isKey || e.focus == focusBody {
		before := e.body.Value()
		var cmd tea.Cmd
		e.body, cmd = e.body.Update(msg)
		cmds = append(cmds, cmd)

		if isKey {
			text := e.body.Value()
			cursor := e.cursorOffset()
			if text != before {
				cmds = append(cmds, e.engine.ContentChanged(text, cursor))
			}
			if keyMsg.Type == tea.KeySpace {
				cmds = append(cmds, e.engine.SpacePressed(text, cursor))
			}
		}
	}
	return tea.Batch(cmds...)
}

func (e *Editor) toggleFocus() tea.Cmd {
	if e.focus == focusBody {
		e.focus = focusTitle
		e.body.Blur()
		return e.title.Focus()
	}
	return e.focusBody()
}

func (e *Editor) focusBody() tea.Cmd {
	e.focus = focusBody
	e.title.Blur()
	return e.body.Focus()
}

// applyCorrection replaces the current word with the correction. The
// content area regains focus with the cursor at the end.
func (e *Editor) applyCorrection() tea.Cmd {
	out, ok := e.engine.ApplyCorrection(e.body.Value())
	if !ok {
		return nil
	}
	e.logger.Debug("correction applied", zap.Int("chars", utf8.RuneCountInString(out)))
	return e.replaceBody(out)
}

// applyNextWord appends the next-word suggestion, like applyCorrection.
func (e *Editor) applyNextWord() tea.Cmd {
	out, ok := e.engine.ApplyNextWord(e.body.Value())
	if !ok {
		return nil
	}
	e.logger.Debug("next word accepted", zap.Int("chars", utf8.RuneCountInString(out)))
	return e.replaceBody(out)
}

// replaceBody swaps the content and leaves the caret after the last rune.
func (e *Editor) replaceBody(content string) tea.Cmd {
	e.body.SetValue(content)
	e.body.CursorEnd()
	return e.focusBody()
}

func (e *Editor) copyContent() tea.Cmd {
	content, copyFn := e.body.Value(), e.copyFn
	return func() tea.Msg {
		return clipboardMsg{chars: utf8.RuneCountInString(content), err: copyFn(content)}
	}
}

func (e *Editor) loading() bool {
	return e.engine.Loading(suggest.Autocorrect) || e.engine.Loading(suggest.NextWord)
}

// ensureSpinner starts the spinner loop when a channel begins loading.
func (e *Editor) ensureSpinner() tea.Cmd {
	if e.spinning || !e.loading() {
		return nil
	}
	e.spinning = true
	return e.spinner.Tick
}

// cursorOffset returns the caret position as a rune offset into Value().
func (e *Editor) cursorOffset() int {
	lines := strings.Split(e.body.Value(), "\n")
	row := min(e.body.Line(), len(lines)-1)

	offset := 0
	for i := 0; i < row; i++ {
		offset += utf8.RuneCountInString(lines[i]) + 1
	}
	info := e.body.LineInfo()
	col := min(info.StartColumn+info.ColumnOffset, utf8.RuneCountInString(lines[row]))
	return offset + col
}

// =============================================================================
// VIEW
// =============================================================================

// SuggestionBar snapshots the engine for rendering.
func (e *Editor) SuggestionBar() components.SuggestionBar {
	return components.SuggestionBar{
		Visible:           e.engine.Visible(),
		CurrentWord:       e.engine.CurrentWord(),
		Correction:        e.engine.Correction(),
		CorrectionLoading: e.engine.Loading(suggest.Autocorrect),
		NextWord:          e.engine.NextWord(),
		NextWordLoading:   e.engine.Loading(suggest.NextWord),
		Spinner:           e.spinner.View(),
	}
}

// View renders the editor body; the router adds the status line.
func (e *Editor) View() string {
	bodyStyle := e.theme.EditorBody
	if e.focus == focusBody {
		bodyStyle = e.theme.EditorFocused
	}

	parts := []string{
		e.theme.Muted.Render("< back (esc)"),
		e.theme.EditorTitle.Render(e.title.View()),
		bodyStyle.Render(e.body.View()),
	}
	if bar := e.SuggestionBar().View(e.theme); bar != "" {
		parts = append(parts, bar)
	}
	if e.debug {
		parts = append(parts, components.DebugPanel(e.theme, e.debugRows()))
	}
	parts = append(parts, e.theme.EditorFooter.Render(note.EditorDate(e.now())))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (e *Editor) debugRows() []components.DebugRow {
	return []components.DebugRow{
		{Label: "session", Value: strconv.FormatUint(e.engine.Session(), 10)},
		{Label: "note date", Value: e.working.ISODate()},
		{Label: "current word", Value: components.Quote(e.engine.CurrentWord())},
		{Label: "cursor", Value: strconv.Itoa(e.cursorOffset())},
		{Label: "autocorrect", Value: e.engine.State(suggest.Autocorrect).String()},
		{Label: "correction", Value: components.Quote(e.engine.Correction())},
		{Label: "next word", Value: e.engine.State(suggest.NextWord).String()},
		{Label: "suggestion", Value: components.Quote(e.engine.NextWord())},
		{Label: "panel", Value: strconv.FormatBool(e.engine.Visible())},
	}
}
