package notes

import (
	"fmt"

	"daydesk/internal/cli"
	"daydesk/internal/storage"
)

type NoteEditCmd struct {
	ID        string  `arg:"" help:"Note ID."`
	Title     *string `help:"New title."`
	Content   *string `help:"New content."`
	Important *bool   `help:"Set or clear the important flag."`
}

func (c *NoteEditCmd) Run(ctx *cli.Context) error {
	if c.Title == nil && c.Content == nil && c.Important == nil {
		return fmt.Errorf("nothing to update: specify --title, --content, or --important")
	}
	if c.Title != nil && *c.Title == "" {
		return fmt.Errorf("note title cannot be empty")
	}

	note, err := ctx.Store.UpdateNote(c.ID, storage.NoteUpdate{
		Title:     c.Title,
		Content:   c.Content,
		Important: c.Important,
	})
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	fmt.Printf("✓ Note updated: %s\n", note.Title)
	return nil
}
