package notes

import (
	"fmt"

	"daydesk/internal/cli"
	"daydesk/internal/storage"
)

type NoteAddCmd struct {
	Title     string `arg:"" help:"Note title."`
	Content   string `arg:"" optional:"" help:"Note content."`
	Important bool   `help:"Mark the note as important."`
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	if c.Title == "" {
		return fmt.Errorf("note title cannot be empty")
	}

	note := ctx.Store.AddNote(storage.NoteInput{
		Title:     c.Title,
		Content:   c.Content,
		Important: c.Important,
	})

	marker := ""
	if note.Important {
		marker = " (important)"
	}
	fmt.Printf("✓ Note added: %s%s\n", note.Title, marker)
	return nil
}
