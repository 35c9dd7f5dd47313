package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"daydesk/internal/cli"
	"daydesk/internal/constants"
	"daydesk/internal/models"
	"daydesk/internal/storage"
	"daydesk/internal/tui/components/alarmlist"
	"daydesk/internal/tui/components/notelist"
)

var (
	errTitleRequired = errors.New("title is required")
	errAlarmInPast   = errors.New("alarm time must be in the future")
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.noteList.SetSize(msg.Width-4, msg.Height-6)
		m.alarmList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case BannerMsg:
		m.banner = &msg.Banner
		m.bannerSeq++
		seq := m.bannerSeq
		// a firing alarm may have been advanced or deactivated
		m.refreshAlarms()
		return m, tea.Tick(msg.Banner.Duration, func(time.Time) tea.Msg {
			return bannerExpiredMsg{seq: seq}
		})

	case bannerExpiredMsg:
		if msg.seq == m.bannerSeq {
			m.banner = nil
		}
		return m, nil

	case tickMsg:
		if m.state == StateGame {
			wasActive := m.gameView.Active()
			m.gameView.Tick()
			if wasActive && !m.gameView.Active() {
				m.refreshAlarms()
			}
		}
		return m, tickCmd()
	}

	switch m.state {
	case StateNoteForm:
		return m.updateNoteForm(msg)
	case StateAlarmForm:
		return m.updateAlarmForm(msg)
	case StateConfirmDeleteNote:
		return m.updateConfirmDeleteNote(msg)
	case StateConfirmDeleteAlarm:
		return m.updateConfirmDeleteAlarm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if handled, model, cmd := m.handleGlobalKeys(keyMsg); handled {
			return model, cmd
		}
	}

	return m.updateComponents(msg)
}

func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return true, m, tea.Quit
	}

	// "q" quits only outside text-entry views
	if msg.String() == "q" && (m.state == StateDashboard || m.state == StateSettings) {
		m.quitting = true
		return true, m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		m.state = nextState(m.state)
		return true, m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = prevState(m.state)
		return true, m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, m, nil
	}

	switch m.state {
	case StateDashboard:
		switch {
		case key.Matches(msg, m.keys.Refresh):
			m.dailyQuote = m.quotes.RandomQuote()
			return true, m, nil
		case key.Matches(msg, m.keys.Favorite):
			m.quotes.Favorite(m.dailyQuote)
			return true, m, nil
		}
	case StateSettings:
		return m.handleSettingsKeys(msg)
	}

	return false, m, nil
}

func (m Model) handleSettingsKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	settings := m.store.GetSettings()
	switch msg.String() {
	case "n":
		settings.Notifications = !settings.Notifications
	case "s":
		settings.SoundEnabled = !settings.SoundEnabled
	case "t":
		if settings.Theme == "light" {
			settings.Theme = "dark"
		} else {
			settings.Theme = "light"
		}
	case "f":
		if settings.TimeFormat == "12h" {
			settings.TimeFormat = "24h"
		} else {
			settings.TimeFormat = "12h"
		}
	default:
		return false, m, nil
	}
	m.store.SaveSettings(settings)
	return true, m, nil
}

func nextState(s SessionState) SessionState {
	switch s {
	case StateDashboard:
		return StateNotes
	case StateNotes:
		return StateAlarms
	case StateAlarms:
		return StateGame
	case StateGame:
		return StateSettings
	case StateSettings:
		return StateDashboard
	}
	return s
}

func prevState(s SessionState) SessionState {
	switch s {
	case StateDashboard:
		return StateSettings
	case StateNotes:
		return StateDashboard
	case StateAlarms:
		return StateNotes
	case StateGame:
		return StateAlarms
	case StateSettings:
		return StateGame
	}
	return s
}

func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case notelist.AddNoteMsg:
		m.noteForm = &NoteFormModel{}
		m.editingNote = nil
		m.form = newNoteForm(m.noteForm)
		m.state = StateNoteForm
		return m, m.form.Init()

	case notelist.EditNoteMsg:
		note := msg.Note
		m.noteForm = &NoteFormModel{
			Title:     note.Title,
			Content:   note.Content,
			Important: note.Important,
		}
		m.editingNote = &note
		m.form = newNoteForm(m.noteForm)
		m.state = StateNoteForm
		return m, m.form.Init()

	case notelist.DeleteNoteMsg:
		m.noteToDeleteID = msg.ID
		m.state = StateConfirmDeleteNote
		return m, nil

	case alarmlist.AddAlarmMsg:
		m.alarmForm = &AlarmFormModel{Repeat: "none", Time: time.Now().Add(time.Hour).Format(constants.TimeFormat)}
		m.editingAlarm = nil
		m.form = newAlarmForm(m.alarmForm)
		m.state = StateAlarmForm
		return m, m.form.Init()

	case alarmlist.EditAlarmMsg:
		alarm := msg.Alarm
		m.alarmForm = &AlarmFormModel{
			Title:  alarm.Title,
			Time:   alarm.Datetime.Format(constants.TimeFormat),
			Date:   alarm.Datetime.Format(constants.DateFormat),
			Repeat: string(alarm.Repeat),
			Note:   alarm.Note,
		}
		m.editingAlarm = &alarm
		m.form = newAlarmForm(m.alarmForm)
		m.state = StateAlarmForm
		return m, m.form.Init()

	case alarmlist.DeleteAlarmMsg:
		m.alarmToDeleteID = msg.ID
		m.state = StateConfirmDeleteAlarm
		return m, nil

	case alarmlist.ToggleAlarmMsg:
		if alarm, err := m.store.ToggleAlarm(msg.ID); err == nil {
			m.scheduler.Arm(alarm)
		}
		m.refreshAlarms()
		return m, nil

	case alarmlist.SnoozeAlarmMsg:
		if _, err := m.scheduler.Snooze(msg.ID, 0); err == nil {
			m.refreshAlarms()
		}
		return m, nil
	}

	switch m.state {
	case StateNotes:
		m.noteList, cmd = m.noteList.Update(msg)
	case StateAlarms:
		m.alarmList, cmd = m.alarmList.Update(msg)
	case StateGame:
		m.gameView, cmd = m.gameView.Update(msg)
	}

	return m, cmd
}

func (m Model) updateNoteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateNotes
		m.formError = ""
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.noteForm.Title == "" {
			m.formError = "Title is required"
			m.form = newNoteForm(m.noteForm)
			return m, m.form.Init()
		}

		if m.editingNote != nil {
			_, err := m.store.UpdateNote(m.editingNote.ID, storage.NoteUpdate{
				Title:     &m.noteForm.Title,
				Content:   &m.noteForm.Content,
				Important: &m.noteForm.Important,
			})
			if err != nil {
				m.formError = err.Error()
			}
		} else {
			m.store.AddNote(storage.NoteInput{
				Title:     m.noteForm.Title,
				Content:   m.noteForm.Content,
				Important: m.noteForm.Important,
			})
		}
		m.refreshNotes()
		m.formError = ""
		m.state = StateNotes
	case huh.StateAborted:
		m.state = StateNotes
		m.formError = ""
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateAlarmForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateAlarms
		m.formError = ""
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		alarm, err := m.saveAlarmForm()
		if err != nil {
			m.formError = err.Error()
			m.form = newAlarmForm(m.alarmForm)
			return m, m.form.Init()
		}
		m.scheduler.Arm(alarm)
		m.refreshAlarms()
		m.formError = ""
		m.state = StateAlarms
	case huh.StateAborted:
		m.state = StateAlarms
		m.formError = ""
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) saveAlarmForm() (alarm models.Alarm, err error) {
	if m.alarmForm.Title == "" {
		return alarm, errTitleRequired
	}

	repeat, err := cli.ParseRepeat(m.alarmForm.Repeat)
	if err != nil {
		return alarm, err
	}
	when, err := cli.CombineDateTime(m.alarmForm.Date, m.alarmForm.Time)
	if err != nil {
		return alarm, err
	}
	if repeat == constants.RepeatNone && !when.After(time.Now()) {
		return alarm, errAlarmInPast
	}

	if m.editingAlarm != nil {
		return m.store.UpdateAlarm(m.editingAlarm.ID, storage.AlarmUpdate{
			Title:    &m.alarmForm.Title,
			Datetime: &when,
			Repeat:   &repeat,
			Note:     &m.alarmForm.Note,
		})
	}

	return m.store.AddAlarm(storage.AlarmInput{
		Title:    m.alarmForm.Title,
		Datetime: when,
		Repeat:   repeat,
		Note:     m.alarmForm.Note,
	}), nil
}

func (m Model) updateConfirmDeleteNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y":
			m.store.DeleteNote(m.noteToDeleteID)
			m.refreshNotes()
			fallthrough
		case "n", "esc":
			m.noteToDeleteID = ""
			m.state = StateNotes
		}
	}
	return m, nil
}

func (m Model) updateConfirmDeleteAlarm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y":
			if m.store.DeleteAlarm(m.alarmToDeleteID) {
				m.scheduler.Disarm(m.alarmToDeleteID)
			}
			m.refreshAlarms()
			fallthrough
		case "n", "esc":
			m.alarmToDeleteID = ""
			m.state = StateAlarms
		}
	}
	return m, nil
}
