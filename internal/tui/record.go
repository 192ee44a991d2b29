package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/driver-records/internal/form"
	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusName = iota
	focusType
	focusLevel
	focusCount
)

// RecordModel is the create/edit page of a single record.
type RecordModel struct {
	ctx    context.Context
	client form.RecordClient
	logger *logger.Logger

	form *form.RecordForm
	// pending is set while a load or submit command of form is in flight.
	pending bool

	name  textinput.Model
	typ   textinput.Model
	level models.Level
	focus int

	err error
}

// NewRecordModel creates the record page. The form itself is created on every
// [OpenRecord] message.
func NewRecordModel(ctx context.Context, client form.RecordClient, logger *logger.Logger) *RecordModel {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 128

	typ := textinput.New()
	typ.Placeholder = "Type"
	typ.CharLimit = 64

	return &RecordModel{
		ctx:    ctx,
		client: client,
		logger: logger,
		name:   name,
		typ:    typ,
	}
}

// Init implements [tea.Model]. Opening the page without a record id starts a
// new record.
func (m *RecordModel) Init() tea.Cmd {
	return m.open("")
}

// Update implements [tea.Model].
func (m *RecordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenRecord:
		return m, m.open(msg.ID)

	case formLoadedMsg:
		if msg.form != m.form {
			return m, nil
		}
		m.pending = false
		if msg.result.Redirect != "" {
			return m, navigate(pageForRoute(msg.result.Redirect), RecordSaved{Err: msg.result.Err})
		}
		m.err = msg.result.Err
		m.fill(m.form.Fields())
		return m, nil

	case formSubmittedMsg:
		if msg.form != m.form {
			return m, nil
		}
		m.pending = false
		if msg.result.Redirect == "" {
			m.err = msg.result.Err
			return m, nil
		}
		return m, navigate(pageForRoute(msg.result.Redirect), RecordSaved{Err: msg.result.Err})

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *RecordModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(PageList, nil)
	case key.Matches(msg, keys.enter):
		if !m.canSubmit() {
			return m, nil
		}
		return m, m.cmdSubmit()
	case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	}

	if m.focus == focusLevel {
		switch {
		case key.Matches(msg, keys.left):
			m.shiftLevel(-1)
		case key.Matches(msg, keys.right):
			m.shiftLevel(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
		m.change(form.SetName(m.name.Value()))
	case focusType:
		m.typ, cmd = m.typ.Update(msg)
		m.change(form.SetType(m.typ.Value()))
	}
	return m, cmd
}

// View implements [tea.Model].
func (m *RecordModel) View() string {
	title := "NEW RECORD"
	if m.form != nil && m.form.Mode() == form.ModeEdit {
		title = "EDIT RECORD"
	}

	if m.form != nil && m.form.State() == form.StateLoading {
		return renderPage(title, "Loading...", "esc: back")
	}

	var b strings.Builder
	b.WriteString(m.label(focusName, "Name"))
	b.WriteString(m.name.View())
	b.WriteString("\n")
	b.WriteString(m.label(focusType, "Type"))
	b.WriteString(m.typ.View())
	b.WriteString("\n")
	b.WriteString(m.label(focusLevel, "Level"))
	b.WriteString(m.renderLevels())

	if line := renderStatus("", m.err); line != "" {
		b.WriteString("\n\n")
		b.WriteString(line)
	}

	return renderPage(title, b.String(),
		"tab/shift+tab: field │ ←/→: level │ enter: save │ esc: back")
}

func (m *RecordModel) open(id string) tea.Cmd {
	m.form = form.New(m.client, id, m.logger)
	m.pending = true
	m.err = nil
	m.fill(models.Record{})
	m.setFocus(focusName)

	f, ctx := m.form, m.ctx
	return func() tea.Msg {
		return formLoadedMsg{form: f, result: f.Load(ctx)}
	}
}

func (m *RecordModel) cmdSubmit() tea.Cmd {
	m.pending = true
	f, ctx := m.form, m.ctx
	return func() tea.Msg {
		return formSubmittedMsg{form: f, result: f.Submit(ctx)}
	}
}

// canSubmit reports whether no load or submit of the current form is in flight.
func (m *RecordModel) canSubmit() bool {
	if m.pending {
		return false
	}
	switch m.form.State() {
	case form.StateReady, form.StateUninitialized:
		return true
	}
	return false
}

func (m *RecordModel) change(change form.FieldChange) {
	if err := m.form.Update(change); err != nil {
		m.err = err
	}
}

func (m *RecordModel) fill(record models.Record) {
	m.name.SetValue(record.Name)
	m.typ.SetValue(record.Type)
	m.level = record.Level
}

func (m *RecordModel) setFocus(focus int) {
	m.focus = focus
	m.name.Blur()
	m.typ.Blur()
	switch focus {
	case focusName:
		m.name.Focus()
	case focusType:
		m.typ.Focus()
	}
}

// shiftLevel moves through the known levels. An unknown label loaded from the
// server is kept until the user picks another one.
func (m *RecordModel) shiftLevel(delta int) {
	idx := -1
	for i, level := range models.Levels {
		if level == m.level {
			idx = i
			break
		}
	}

	n := len(models.Levels)
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = (idx + delta + n) % n
	}

	m.level = models.Levels[idx]
	m.change(form.SetLevel(m.level))
}

func (m *RecordModel) renderLevels() string {
	parts := make([]string, 0, len(models.Levels)+1)
	if m.level != "" && !m.level.Known() {
		parts = append(parts, selectedStyle.Render("["+m.level.String()+"]"))
	}
	for _, level := range models.Levels {
		if level == m.level {
			parts = append(parts, selectedStyle.Render("["+level.String()+"]"))
			continue
		}
		parts = append(parts, " "+level.String()+" ")
	}
	return strings.Join(parts, " ")
}

func (m *RecordModel) label(focus int, name string) string {
	if m.focus == focus {
		return selectedStyle.Render("> "+name+": ")
	}
	return "  " + name + ": "
}
