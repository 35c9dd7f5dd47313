package alarms

import (
	"fmt"
	"time"

	"daydesk/internal/cli"
)

type AlarmSnoozeCmd struct {
	ID  string        `arg:"" help:"Alarm ID."`
	For time.Duration `help:"Snooze duration (e.g. 5m, 1h). Defaults to 10 minutes."`
}

func (c *AlarmSnoozeCmd) Run(ctx *cli.Context) error {
	alarm, err := ctx.Scheduler.Snooze(c.ID, c.For)
	if err != nil {
		return fmt.Errorf("failed to snooze alarm: %w", err)
	}
	fmt.Printf("✓ Alarm snoozed until %s: %s\n", alarm.Datetime.Format("15:04"), alarm.Title)
	return nil
}
