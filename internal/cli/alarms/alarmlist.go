package alarms

import (
	"fmt"
	"strings"
	"time"

	"daydesk/internal/cli"
)

type AlarmListCmd struct {
	Active bool `help:"Show only active alarms."`
}

func (c *AlarmListCmd) Run(ctx *cli.Context) error {
	alarms := ctx.Store.GetAlarms()
	settings := ctx.Store.GetSettings()

	if len(alarms) == 0 {
		fmt.Println("No alarms configured.")
		return nil
	}

	now := time.Now()
	fmt.Printf("%-36s %-24s %-20s %-9s %-7s\n", "ID", "Title", "When", "Repeat", "Active")
	fmt.Println(strings.Repeat("-", 100))

	shown := 0
	for _, alarm := range alarms {
		if c.Active && !alarm.Active {
			continue
		}
		shown++

		when := cli.FormatDatetime(alarm.Datetime, settings)
		if alarm.Active && alarm.IsOverdue(now) {
			when += " (overdue)"
		}

		activeStr := "Yes"
		if !alarm.Active {
			activeStr = "No"
		}

		fmt.Printf("%-36s %-24s %-20s %-9s %-7s\n",
			alarm.ID, cli.Truncate(alarm.Title, 22), when, alarm.FormatRepeat(), activeStr)
	}

	if shown == 0 {
		fmt.Println("No active alarms.")
	}

	return nil
}
