package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"daydesk/internal/cli"
	"daydesk/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	model := tui.NewModel(ctx.Store, ctx.Scheduler, ctx.Quotes, ctx.Wishes)
	p := tea.NewProgram(model, tea.WithAltScreen())
	ctx.Dispatcher.SetBannerSink(tui.NewProgramBanner(p))
	ctx.Scheduler.Reconcile()

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
