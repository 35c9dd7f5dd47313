package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"daydesk/internal/models"
	"daydesk/internal/notify"
	"daydesk/internal/quotes"
	"daydesk/internal/scheduler"
	"daydesk/internal/storage"
	"daydesk/internal/tui/components/alarmlist"
	"daydesk/internal/tui/components/gameview"
	"daydesk/internal/tui/components/notelist"
	"daydesk/internal/wishes"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateNotes
	StateAlarms
	StateGame
	StateSettings
	StateNoteForm
	StateAlarmForm
	StateConfirmDeleteNote
	StateConfirmDeleteAlarm
)

type NoteFormModel struct {
	Title     string
	Content   string
	Important bool
}

type AlarmFormModel struct {
	Title  string
	Time   string
	Date   string
	Repeat string
	Note   string
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	store     storage.Provider
	scheduler *scheduler.Scheduler
	quotes    *quotes.Service
	wishes    *wishes.Service

	state SessionState
	keys  KeyMap
	help  help.Model

	noteList  notelist.Model
	alarmList alarmlist.Model
	gameView  gameview.Model

	form         *huh.Form
	noteForm     *NoteFormModel
	alarmForm    *AlarmFormModel
	editingNote  *models.Note
	editingAlarm *models.Alarm
	formError    string

	noteToDeleteID  string
	alarmToDeleteID string

	dailyQuote   models.Quote
	todaysWishes []models.Wish

	banner    *notify.Banner
	bannerSeq int

	width    int
	height   int
	quitting bool
}

func NewModel(store storage.Provider, sched *scheduler.Scheduler, qs *quotes.Service, ws *wishes.Service) Model {
	m := Model{
		store:        store,
		scheduler:    sched,
		quotes:       qs,
		wishes:       ws,
		state:        StateDashboard,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		noteList:     notelist.New(store.GetNotes(), 0, 0),
		alarmList:    alarmlist.New(store.GetAlarms(), 0, 0),
		gameView:     gameview.New(store),
		dailyQuote:   qs.DailyQuote(),
		todaysWishes: ws.TodaysWishes(),
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateDashboard:
		keys = append(keys, m.keys.Refresh, m.keys.Favorite)
	case StateNotes:
		keys = append(keys, m.keys.Add, m.keys.Edit, m.keys.Delete)
	case StateAlarms:
		keys = append(keys, m.keys.Add, m.keys.Toggle, m.keys.Snooze)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateDashboard:
		actions = []key.Binding{m.keys.Refresh, m.keys.Favorite}
	case StateNotes:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete}
	case StateAlarms:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Toggle, m.keys.Snooze}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m *Model) refreshNotes() {
	m.noteList.SetNotes(m.store.GetNotes())
}

func (m *Model) refreshAlarms() {
	m.alarmList.SetAlarms(m.store.GetAlarms())
}

func newNoteForm(fm *NoteFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title),
			huh.NewText().
				Title("Content").
				Value(&fm.Content),
			huh.NewConfirm().
				Title("Important?").
				Value(&fm.Important),
		),
	).WithTheme(huh.ThemeDracula())
}

func newAlarmForm(fm *AlarmFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title),
			huh.NewInput().
				Title("Time (HH:MM)").
				Value(&fm.Time),
			huh.NewInput().
				Title("Date (YYYY-MM-DD, empty for today)").
				Value(&fm.Date),
			huh.NewSelect[string]().
				Title("Repeat").
				Options(
					huh.NewOption("None", "none"),
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Monthly", "monthly"),
				).
				Value(&fm.Repeat),
			huh.NewInput().
				Title("Note").
				Value(&fm.Note),
		),
	).WithTheme(huh.ThemeDracula())
}
