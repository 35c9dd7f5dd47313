package notes

import (
	"fmt"

	"daydesk/internal/cli"
)

type NoteDeleteCmd struct {
	ID string `arg:"" help:"Note ID."`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	if !ctx.Store.DeleteNote(c.ID) {
		return fmt.Errorf("note not found: %s", c.ID)
	}
	fmt.Println("✓ Note deleted")
	return nil
}
