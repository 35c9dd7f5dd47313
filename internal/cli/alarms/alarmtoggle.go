package alarms

import (
	"fmt"

	"daydesk/internal/cli"
)

type AlarmToggleCmd struct {
	ID string `arg:"" help:"Alarm ID."`
}

func (c *AlarmToggleCmd) Run(ctx *cli.Context) error {
	alarm, err := ctx.Store.ToggleAlarm(c.ID)
	if err != nil {
		return fmt.Errorf("failed to toggle alarm: %w", err)
	}
	ctx.Scheduler.Arm(alarm)

	state := "enabled"
	if !alarm.Active {
		state = "disabled"
	}
	fmt.Printf("✓ Alarm %s: %s\n", state, alarm.Title)
	return nil
}
