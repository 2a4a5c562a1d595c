// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type connectFormModel struct {
	token      textinput.Model
	submitting bool
	err        string
}

func newConnectFormModel() connectFormModel {
	token := textinput.New()
	token.Placeholder = "signer session token"
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '•'
	token.Width = 50
	token.Focus()

	return connectFormModel{token: token}
}

func (m connectFormModel) value() string {
	return strings.TrimSpace(m.token.Value())
}

func (m connectFormModel) update(msg tea.Msg) (connectFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.token, cmd = m.token.Update(msg)
	return m, cmd
}

func (m connectFormModel) View() string {
	out := "Paste the session token issued by your wallet bridge.\n\n"
	out += "Token : [ " + m.token.View() + " ]\n"
	if m.submitting {
		out += "\nConnecting...\n"
	}
	if m.err != "" {
		out += "\n" + errorStyle.Render("Error: "+m.err) + "\n"
	}
	return renderPage("CONNECT WALLET", strings.TrimRight(out, "\n"), "enter: connect │ esc: cancel")
}
