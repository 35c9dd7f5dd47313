package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"daydesk/internal/cli"
	"daydesk/internal/models"
	"daydesk/internal/wishes"
)

var tabNames = []string{"Dashboard", "Notes", "Alarms", "Game", "Settings"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.banner != nil {
		b.WriteString(bannerStyle.Render(fmt.Sprintf("🔔 %s — %s", m.banner.Title, m.banner.Body)))
		b.WriteString("\n\n")
	}

	switch m.state {
	case StateDashboard:
		b.WriteString(m.renderDashboard())
	case StateNotes:
		b.WriteString(m.noteList.View())
	case StateAlarms:
		b.WriteString(m.alarmList.View())
	case StateGame:
		b.WriteString(m.gameView.View())
	case StateSettings:
		b.WriteString(m.renderSettings())
	case StateNoteForm, StateAlarmForm:
		if m.formError != "" {
			b.WriteString(dangerStyle.Render(m.formError))
			b.WriteString("\n\n")
		}
		if m.form != nil {
			b.WriteString(m.form.View())
		}
	case StateConfirmDeleteNote:
		return m.renderConfirm("Delete this note?")
	case StateConfirmDeleteAlarm:
		return m.renderConfirm("Delete this alarm?")
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m))

	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	active := int(m.state)
	if active >= len(tabNames) {
		// forms and confirms belong to the view they were opened from
		switch m.state {
		case StateNoteForm, StateConfirmDeleteNote:
			active = int(StateNotes)
		case StateAlarmForm, StateConfirmDeleteAlarm:
			active = int(StateAlarms)
		}
	}

	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == active {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func greeting(hour int) string {
	switch {
	case hour < 6:
		return "Good night"
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	case hour < 21:
		return "Good evening"
	default:
		return "Good night"
	}
}

func (m Model) renderDashboard() string {
	now := time.Now()
	var b strings.Builder

	b.WriteString(greetingStyle.Render(greeting(now.Hour()) + "!"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(now.Format("Monday, January 2, 2006")))
	b.WriteString("\n\n")

	b.WriteString(quoteStyle.Render(fmt.Sprintf("“%s”", m.dailyQuote.Text)))
	b.WriteString("\n")
	b.WriteString(quoteAuthorStyle.Render("— " + m.dailyQuote.Author))
	b.WriteString("\n\n")

	for _, w := range m.todaysWishes {
		b.WriteString(wishStyle.Render(wishes.FormatWish(w)))
		b.WriteString("\n")
	}
	if len(m.todaysWishes) > 0 {
		b.WriteString("\n")
	}

	settings := m.store.GetSettings()
	alarms := m.store.GetAlarms()
	upcoming := upcomingAlarms(alarms, now, 3)
	if len(upcoming) > 0 {
		b.WriteString(headerStyle.Render("Upcoming alarms"))
		b.WriteString("\n")
		for _, a := range upcoming {
			line := fmt.Sprintf("⏰ %s at %s", a.Title, cli.FormatDatetime(a.Datetime, settings))
			if a.Datetime.Before(now) {
				line = overdueStyle.Render(line + " (overdue)")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	notes := m.store.GetNotes()
	important := models.FilterNotes(notes, models.NoteFilterImportant, now)
	b.WriteString(subtleStyle.Render(fmt.Sprintf("%d notes (%d important) • %d alarms", len(notes), len(important), len(alarms))))

	return b.String()
}

func upcomingAlarms(alarms []models.Alarm, now time.Time, limit int) []models.Alarm {
	active := make([]models.Alarm, 0, len(alarms))
	for _, a := range alarms {
		if a.Active {
			active = append(active, a)
		}
	}
	for i := 1; i < len(active); i++ {
		for j := i; j > 0 && active[j].Datetime.Before(active[j-1].Datetime); j-- {
			active[j], active[j-1] = active[j-1], active[j]
		}
	}
	if len(active) > limit {
		active = active[:limit]
	}
	return active
}

func (m Model) renderSettings() string {
	settings := m.store.GetSettings()
	var b strings.Builder

	b.WriteString(headerStyle.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("[n] Notifications  %s\n", onOff(settings.Notifications)))
	b.WriteString(fmt.Sprintf("[s] Sound          %s\n", onOff(settings.SoundEnabled)))
	b.WriteString(fmt.Sprintf("[t] Theme          %s\n", settings.Theme))
	b.WriteString(fmt.Sprintf("[f] Time format    %s\n", settings.TimeFormat))

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m Model) renderConfirm(prompt string) string {
	dialog := lipgloss.JoinVertical(lipgloss.Center,
		dangerStyle.Render(prompt),
		"",
		subtleStyle.Render("y: yes • n: no"),
	)

	width := m.width
	height := m.height
	if width == 0 {
		width = 60
	}
	if height == 0 {
		height = 20
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}
