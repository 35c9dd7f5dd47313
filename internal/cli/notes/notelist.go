package notes

import (
	"fmt"
	"strings"
	"time"

	"daydesk/internal/cli"
	"daydesk/internal/models"
)

type NoteListCmd struct {
	Filter string `help:"Filter notes (all|today|important)." default:"all" enum:"all,today,important"`
	Full   bool   `help:"Show full note content."`
}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	notes := models.FilterNotes(ctx.Store.GetNotes(), models.NoteFilter(c.Filter), time.Now())

	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return nil
	}

	fmt.Printf("%-36s %-30s %-10s %-16s\n", "ID", "Title", "Important", "Created")
	fmt.Println(strings.Repeat("-", 96))

	for _, note := range notes {
		important := ""
		if note.Important {
			important = "Yes"
		}
		fmt.Printf("%-36s %-30s %-10s %-16s\n",
			note.ID, cli.Truncate(note.Title, 28), important,
			note.CreatedAt.Format("2006-01-02 15:04"))
		if c.Full && note.Content != "" {
			fmt.Printf("    %s\n", note.Content)
		}
	}

	return nil
}
