package models

import (
	"fmt"
	"time"

	"daydesk/internal/utils"
)

// Note is a free-form journal entry.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Important bool      `json:"important"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *Note) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("note title cannot be empty")
	}
	return nil
}

// NoteFilter selects a subset of the note collection.
type NoteFilter string

const (
	NoteFilterAll       NoteFilter = "all"
	NoteFilterToday     NoteFilter = "today"
	NoteFilterImportant NoteFilter = "important"
)

// FilterNotes returns the notes matching the given filter, preserving order.
func FilterNotes(notes []Note, filter NoteFilter, now time.Time) []Note {
	switch filter {
	case NoteFilterToday:
		var out []Note
		for _, n := range notes {
			if utils.SameDay(n.CreatedAt, now) {
				out = append(out, n)
			}
		}
		return out
	case NoteFilterImportant:
		var out []Note
		for _, n := range notes {
			if n.Important {
				out = append(out, n)
			}
		}
		return out
	default:
		return notes
	}
}
