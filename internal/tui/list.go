// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/driver-records/internal/service"
	"github.com/MKhiriev/driver-records/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusLifetime = 2 * time.Second

// ListModel is the collection root: it shows every record and starts the
// record form for a new or the selected record.
type ListModel struct {
	ctx     context.Context
	records service.ClientRecordService

	items   []models.Record
	idx     int
	loading bool
	spinner spinner.Model

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	status string
	err    error

	copyToClipboard func(string) error
}

// NewListModel creates the list page backed by records.
func NewListModel(ctx context.Context, records service.ClientRecordService) *ListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ListModel{
		ctx:             ctx,
		records:         records,
		spinner:         s,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Init implements [tea.Model]. It (re)loads the records and the server version.
func (m *ListModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad(), m.cmdServerVersion())
}

// Update implements [tea.Model].
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.items = msg.records
		m.clampIndex()
		return m, nil

	case recordDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "Deleted " + msg.id
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())

	case RecordSaved:
		m.err = msg.Err
		if msg.Err == nil {
			m.status = "Saved"
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(), cmdClearStatus())

	case copiedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Copied " + msg.id
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *ListModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			id := m.pendingDelete
			m.pendingDelete = ""
			if id == "" {
				return m, nil
			}
			return m, m.cmdDelete(id)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
			m.pendingDelete = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		return m, navigate(PageRecord, OpenRecord{})
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.edit):
		if record, ok := m.current(); ok {
			return m, navigate(PageRecord, OpenRecord{ID: record.ID})
		}
	case key.Matches(msg, keys.delete):
		if record, ok := m.current(); ok {
			m.showConfirm = true
			m.pendingDelete = record.ID
			m.confirm = confirmModel{message: valueOrDash(record.Name)}
		}
	case key.Matches(msg, keys.copy):
		if record, ok := m.current(); ok {
			return m, m.cmdCopy(record.ID)
		}
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	}

	return m, nil
}

// View implements [tea.Model].
func (m *ListModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No records\n")
	default:
		b.WriteString(m.renderTable())
	}

	if line := renderStatus(m.status, m.err); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.showConfirm {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
	}

	return renderPage("DRIVER RECORDS", strings.TrimRight(b.String(), "\n"),
		"n: new │ enter/e: edit │ d: delete │ c: copy id │ r: reload │ v: version │ q: quit")
}

func (m *ListModel) renderTable() string {
	nameWidth := lipgloss.Width("Name")
	typeWidth := lipgloss.Width("Type")
	for _, item := range m.items {
		nameWidth = max(nameWidth, lipgloss.Width(fitText(item.Name, 30)))
		typeWidth = max(typeWidth, lipgloss.Width(fitText(item.Type, 20)))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-*s │ %-*s │ %s\n", nameWidth, "Name", typeWidth, "Type", "Level"))
	b.WriteString(strings.Repeat("─", nameWidth+2))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", typeWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 10))
	b.WriteString("\n")

	for i, item := range m.items {
		row := fmt.Sprintf("%-*s │ %-*s │ %s",
			nameWidth, fitText(valueOrDash(item.Name), 30),
			typeWidth, fitText(valueOrDash(item.Type), 20),
			valueOrDash(item.Level.String()))
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m *ListModel) current() (models.Record, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Record{}, false
	}
	return m.items[m.idx], true
}

func (m *ListModel) clampIndex() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *ListModel) cmdLoad() tea.Cmd {
	ctx, records := m.ctx, m.records
	return func() tea.Msg {
		items, err := records.List(ctx)
		return recordsLoadedMsg{records: items, err: err}
	}
}

func (m *ListModel) cmdDelete(id string) tea.Cmd {
	ctx, records := m.ctx, m.records
	return func() tea.Msg {
		_, err := records.Delete(ctx, id)
		return recordDeletedMsg{id: id, err: err}
	}
}

func (m *ListModel) cmdServerVersion() tea.Cmd {
	ctx, records := m.ctx, m.records
	return func() tea.Msg {
		version, err := records.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func (m *ListModel) cmdCopy(id string) tea.Cmd {
	copyFn := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{id: id, err: copyFn(id)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
