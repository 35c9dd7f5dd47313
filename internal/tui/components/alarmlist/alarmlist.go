package alarmlist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"daydesk/internal/models"
)

type AddAlarmMsg struct{}

type EditAlarmMsg struct {
	Alarm models.Alarm
}

type DeleteAlarmMsg struct {
	ID string
}

type ToggleAlarmMsg struct {
	ID string
}

type SnoozeAlarmMsg struct {
	ID string
}

type Item struct {
	Alarm models.Alarm
}

func (i Item) Title() string {
	title := fmt.Sprintf("⏰ %s at %s", i.Alarm.Title, i.Alarm.Datetime.Format("Jan 2 15:04"))
	if !i.Alarm.Active {
		title = "[INACTIVE] " + title
	} else if i.Alarm.IsOverdue(time.Now()) {
		title = "[OVERDUE] " + title
	}
	return title
}

func (i Item) Description() string {
	desc := i.Alarm.FormatRepeat()
	if i.Alarm.Note != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.Alarm.Note)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Alarm.Title }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding
	Snooze key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle"),
		),
		Snooze: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "snooze"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(alarms []models.Alarm, width, height int) Model {
	l := list.New(toItems(alarms), list.NewDefaultDelegate(), width, height)
	l.Title = "Alarms"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Toggle, keys.Snooze}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func toItems(alarms []models.Alarm) []list.Item {
	items := make([]list.Item, len(alarms))
	for i, a := range alarms {
		items[i] = Item{Alarm: a}
	}
	return items
}

func (m *Model) SetAlarms(alarms []models.Alarm) {
	m.list.SetItems(toItems(alarms))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddAlarmMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditAlarmMsg{Alarm: item.Alarm} }
			}
		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteAlarmMsg{ID: item.Alarm.ID} }
			}
		case key.Matches(msg, m.keys.Toggle):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleAlarmMsg{ID: item.Alarm.ID} }
			}
		case key.Matches(msg, m.keys.Snooze):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return SnoozeAlarmMsg{ID: item.Alarm.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
