// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsdr97/GeneTree-Z/internal/app"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/service"
	"github.com/jsdr97/GeneTree-Z/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenCreate
	screenConnect
	screenInfo
)

// snapshotPollInterval is how often the list re-reads the record store so
// background refreshes show up without user input.
const snapshotPollInterval = 2 * time.Second

type mainLoopDeps struct {
	records   service.ClientRecordService
	lifecycle service.ClientLifecycleService
	session   service.ClientSessionService
	buildInfo models.AppBuildInfo
	opTimeout time.Duration
	logger    *logger.Logger
	now       func() time.Time
	copy      func(string) error
}

type mainLoopModel struct {
	ctx      context.Context
	deps     mainLoopDeps
	statusCh <-chan models.LifecycleStatus

	screen  screen
	records []models.Record
	idx     int
	loading bool
	busy    bool
	note    string
	errMsg  string

	status  models.LifecycleStatus
	spinner spinner.Model

	create  createFormModel
	connect connectFormModel

	// provisional holds values decrypted in this session that the ledger has
	// not confirmed yet. It is never persisted.
	provisional map[models.RecordKey]models.ProvisionalValue

	quitByUser bool
}

func newMainLoopModel(ctx context.Context, deps mainLoopDeps, statusCh <-chan models.LifecycleStatus) mainLoopModel {
	if deps.copy == nil {
		deps.copy = clipboard.WriteAll
	}
	if deps.now == nil {
		deps.now = time.Now
	}
	if deps.opTimeout <= 0 {
		deps.opTimeout = DefaultOperationTimeout
	}
	if deps.logger == nil {
		deps.logger = logger.Nop()
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:         ctx,
		deps:        deps,
		statusCh:    statusCh,
		screen:      screenList,
		records:     deps.records.All(),
		loading:     true,
		spinner:     s,
		create:      newCreateFormModel(),
		connect:     newConnectFormModel(),
		provisional: make(map[models.RecordKey]models.ProvisionalValue),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitStatus(), m.cmdRefresh(), pollSnapshot())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = models.LifecycleStatus(msg)
		return m, m.waitStatus()

	case statusClosedMsg:
		return m, nil

	case snapshotTickMsg:
		if !m.loading {
			selected, ok := m.current()
			m.setRecords(m.deps.records.All())
			if ok {
				m.selectKey(selected.Key)
			}
		}
		return m, pollSnapshot()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.deps.logger.Err(msg.err).Str("func", "mainLoopModel.Update").Msg("refresh failed")
			m.note = ""
			m.errMsg = app.MsgLoadFailed + ": " + humanizeUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		if m.note == app.MsgRefreshing {
			m.note = app.MsgRefreshed
		}
		m.setRecords(msg.records)
		return m, nil

	case createDoneMsg:
		m.busy = false
		m.create.submitting = false
		if msg.err != nil {
			m.deps.logger.Err(msg.err).Str("func", "mainLoopModel.Update").Msg("create failed")
			m.create.err = humanizeUnavailableError(msg.err)
			return m, nil
		}
		m.create = newCreateFormModel()
		m.screen = screenList
		m.setRecords(m.deps.records.All())
		m.selectKey(msg.key)
		return m, nil

	case discloseDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.deps.logger.Err(msg.err).Str("func", "mainLoopModel.Update").Str("key", msg.key.String()).Msg("disclose failed")
			return m, nil
		}
		if p, ok := msg.result.Provisional(); ok {
			m.provisional[p.Key] = p
		}
		m.setRecords(m.deps.records.All())
		m.selectKey(msg.key)
		return m, nil

	case connectDoneMsg:
		m.busy = false
		m.connect.submitting = false
		if msg.err != nil && !errors.Is(msg.err, service.ErrFHEInitFailed) {
			m.connect.err = humanizeUnavailableError(msg.err)
			return m, nil
		}
		m.connect = newConnectFormModel()
		m.screen = screenList
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenCreate:
		return m.updateCreate(keyMsg)
	case screenConnect:
		return m.updateConnect(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenInfo:
		if key.Matches(keyMsg, keys.esc) {
			m.screen = screenList
		}
		return m, nil
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenCreate:
		m.create, cmd = m.create.update(msg)
	case screenConnect:
		m.connect, cmd = m.connect.update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.note = ""

	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); !ok {
			m.note = "No records"
			return m, nil
		}
		m.screen = screenDetail
	case key.Matches(msg, keys.newItem):
		m.create = newCreateFormModel()
		m.screen = screenCreate
	case key.Matches(msg, keys.connect):
		m.connect = newConnectFormModel()
		m.screen = screenConnect
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.note = app.MsgRefreshing
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.info):
		m.screen = screenInfo
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	record, ok := m.current()
	if !ok {
		m.screen = screenList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		delete(m.provisional, record.Key)
		m.note = ""
		m.screen = screenList
	case key.Matches(msg, keys.disclose):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdDisclose(record.Key)
	case key.Matches(msg, keys.copy):
		if err := m.deps.copy(record.Key.String()); err != nil {
			m.note = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.note = "Key copied"
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.cmdRefresh()
	}

	return m, nil
}

func (m mainLoopModel) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.create.submitting {
			return m, nil
		}
		m.create = newCreateFormModel()
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.create.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.create.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		if !m.create.lastField() {
			m.create.moveFocus(1)
			return m, nil
		}
		if m.create.submitting {
			return m, nil
		}
		if reason := m.create.validate(); reason != "" {
			m.create.err = reason
			return m, nil
		}
		m.create.submitting = true
		m.create.err = ""
		m.busy = true
		return m, m.cmdCreate(m.create.input())
	}

	var cmd tea.Cmd
	m.create, cmd = m.create.update(msg)
	return m, cmd
}

func (m mainLoopModel) updateConnect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.connect.submitting {
			return m, nil
		}
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.connect.submitting {
			return m, nil
		}
		if m.connect.value() == "" {
			m.connect.err = "token is required"
			return m, nil
		}
		m.connect.submitting = true
		m.connect.err = ""
		m.busy = true
		return m, m.cmdConnect(m.connect.value())
	}

	var cmd tea.Cmd
	m.connect, cmd = m.connect.update(msg)
	return m, cmd
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenCreate:
		return m.header() + m.create.View()
	case screenConnect:
		return m.header() + m.connect.View()
	case screenInfo:
		return renderBuildInfoWindow(m.deps.buildInfo)
	case screenDetail:
		record, ok := m.current()
		if !ok {
			return renderPage("MEMBER", "Record not found", "esc: back")
		}
		var prov *models.ProvisionalValue
		if p, ok := m.provisional[record.Key]; ok {
			prov = &p
		}
		title, body, hotKeys := viewDetail(record, prov)
		if m.note != "" {
			body += "\n" + m.note
		}
		return m.header() + renderPage(title, strings.TrimRight(body, "\n"), hotKeys)
	}

	out := ""
	if m.loading && len(m.records) == 0 {
		out += "Loading records...\n"
	} else {
		out += renderRecordTable(m.records, m.idx) + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}
	if m.note != "" {
		out += "\n" + m.note + "\n"
	}

	return m.header() + renderPage(
		"FAMILY RECORDS",
		strings.TrimRight(out, "\n"),
		"n: new │ enter: open │ r: refresh │ w: connect │ v: about │ ↑/↓: nav │ q: quit",
	)
}

func (m mainLoopModel) header() string {
	account := "not connected"
	if addr, ok := m.deps.session.Identity(); ok {
		account = addr.Short()
	}

	line := titleStyle.Render("GeneTree-Z") + "  " + helpStyle.Render(account)
	if m.loading || m.busy {
		line += "  " + m.spinner.View()
	}
	line += "\n" + renderDashboard(m.deps.records.Dashboard(m.deps.now())) + "\n"
	if s := renderStatus(m.status, m.spinner.View()); s != "" {
		line += s + "\n"
	}
	return line + "\n"
}

func (m mainLoopModel) current() (models.Record, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.Record{}, false
	}
	return m.records[m.idx], true
}

func (m *mainLoopModel) setRecords(records []models.Record) {
	m.records = records
	for k := range m.provisional {
		// the ledger value supersedes a local one
		if r, ok := m.find(k); !ok || r.IsVerified {
			delete(m.provisional, k)
		}
	}
	if m.idx >= len(m.records) {
		m.idx = len(m.records) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) find(k models.RecordKey) (models.Record, bool) {
	for _, r := range m.records {
		if r.Key == k {
			return r, true
		}
	}
	return models.Record{}, false
}

func (m *mainLoopModel) selectKey(k models.RecordKey) {
	for i, r := range m.records {
		if r.Key == k {
			m.idx = i
			return
		}
	}
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) waitStatus() tea.Cmd {
	ch := m.statusCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return statusClosedMsg{}
		}
		return statusMsg(s)
	}
}

func pollSnapshot() tea.Cmd {
	return tea.Tick(snapshotPollInterval, func(time.Time) tea.Msg {
		return snapshotTickMsg{}
	})
}

func (m mainLoopModel) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.ctx, m.deps.opTimeout)
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	svc := m.deps.records
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		records, err := svc.Refresh(ctx)
		return refreshDoneMsg{records: records, err: err}
	}
}

func (m mainLoopModel) cmdCreate(input models.CreateInput) tea.Cmd {
	svc := m.deps.lifecycle
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		k, err := svc.Create(ctx, input)
		return createDoneMsg{key: k, err: err}
	}
}

func (m mainLoopModel) cmdDisclose(k models.RecordKey) tea.Cmd {
	svc := m.deps.lifecycle
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		res, err := svc.Disclose(ctx, k)
		return discloseDoneMsg{key: k, result: res, err: err}
	}
}

func (m mainLoopModel) cmdConnect(token string) tea.Cmd {
	svc := m.deps.session
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		session, err := svc.Connect(ctx, token)
		return connectDoneMsg{session: session, err: err}
	}
}
