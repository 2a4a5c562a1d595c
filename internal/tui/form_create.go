// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsdr97/GeneTree-Z/internal/validators"
	"github.com/jsdr97/GeneTree-Z/models"
)

const (
	createFieldName = iota
	createFieldRelationship
	createFieldHealth
)

type createFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	err        string
}

func newCreateFormModel() createFormModel {
	name := textinput.New()
	name.Placeholder = "Family member name"
	name.CharLimit = validators.MaxNameLength
	name.Width = 40
	name.Focus()

	relationship := textinput.New()
	relationship.Placeholder = "1-10"
	relationship.CharLimit = 2
	relationship.Width = 10

	health := textinput.New()
	health.Placeholder = "encrypted with FHE"
	health.CharLimit = 10
	health.Width = 20

	return createFormModel{inputs: []textinput.Model{name, relationship, health}}
}

func (m createFormModel) input() models.CreateInput {
	relationship, _ := parseLeadingInt(m.inputs[createFieldRelationship].Value())
	health, _ := parseLeadingInt(m.inputs[createFieldHealth].Value())
	return models.CreateInput{
		Name:         strings.TrimSpace(m.inputs[createFieldName].Value()),
		Relationship: relationship,
		HealthScore:  health,
	}
}

// validate returns a message for the first numeric field that holds no
// number. Range checks are left to the lifecycle service.
func (m createFormModel) validate() string {
	if _, ok := parseLeadingInt(m.inputs[createFieldRelationship].Value()); !ok {
		return "relationship must be a number"
	}
	if _, ok := parseLeadingInt(m.inputs[createFieldHealth].Value()); !ok {
		return "health score must be a number"
	}
	return ""
}

func (m createFormModel) lastField() bool {
	return m.focus == len(m.inputs)-1
}

func (m *createFormModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m createFormModel) update(msg tea.Msg) (createFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m createFormModel) View() string {
	out := "[ NEW FAMILY MEMBER ]\n"
	out += "Name          : [ " + m.inputs[createFieldName].View() + " ]\n"
	out += "Relationship  : [ " + m.inputs[createFieldRelationship].View() + " ]  public\n"
	out += "Health score  : [ " + m.inputs[createFieldHealth].View() + " ]  encrypted\n"
	if m.submitting {
		out += "\nSubmitting...\n"
	}
	if m.err != "" {
		out += "\n" + errorStyle.Render("Error: "+m.err) + "\n"
	}
	return renderPage("CREATE RECORD", strings.TrimRight(out, "\n"), "tab: next field │ shift+tab: prev field │ enter: next / submit │ esc: cancel")
}

// parseLeadingInt reads the leading decimal integer of s. ok is false when s
// does not start with a number.
func parseLeadingInt(s string) (n int64, ok bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	digits := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		if n > (1<<62)/10 {
			break
		}
		n = n*10 + int64(c-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		return -n, true
	}
	return n, true
}
