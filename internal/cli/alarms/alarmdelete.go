package alarms

import (
	"fmt"

	"daydesk/internal/cli"
)

type AlarmDeleteCmd struct {
	ID string `arg:"" help:"Alarm ID."`
}

func (c *AlarmDeleteCmd) Run(ctx *cli.Context) error {
	if !ctx.Store.DeleteAlarm(c.ID) {
		return fmt.Errorf("alarm not found: %s", c.ID)
	}
	ctx.Scheduler.Disarm(c.ID)
	fmt.Println("✓ Alarm deleted")
	return nil
}
