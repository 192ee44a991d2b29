package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runeKey(string(r)))
	}
	return m
}

// fakePage counts Init calls and keeps every delivered message.
type fakePage struct {
	name  string
	inits int
	msgs  []tea.Msg
}

func (p *fakePage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *fakePage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.msgs = append(p.msgs, msg)
	return p, nil
}

func (p *fakePage) View() string { return p.name }
