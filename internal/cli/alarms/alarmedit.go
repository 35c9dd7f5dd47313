package alarms

import (
	"fmt"

	"daydesk/internal/cli"
	"daydesk/internal/storage"
)

type AlarmEditCmd struct {
	ID     string  `arg:"" help:"Alarm ID."`
	Title  *string `help:"New title."`
	Time   *string `help:"New time (HH:MM)."`
	Date   *string `help:"New date (YYYY-MM-DD). Requires --time."`
	Repeat *string `help:"New repeat cadence (none|daily|weekly|monthly)."`
	Note   *string `help:"New note."`
}

func (c *AlarmEditCmd) Run(ctx *cli.Context) error {
	upd := storage.AlarmUpdate{
		Title: c.Title,
		Note:  c.Note,
	}

	if c.Title != nil && *c.Title == "" {
		return fmt.Errorf("alarm title cannot be empty")
	}
	if c.Date != nil && c.Time == nil {
		return fmt.Errorf("--date requires --time")
	}

	if c.Time != nil {
		date := ""
		if c.Date != nil {
			date = *c.Date
		}
		when, err := cli.CombineDateTime(date, *c.Time)
		if err != nil {
			return err
		}
		upd.Datetime = &when
	}

	if c.Repeat != nil {
		repeat, err := cli.ParseRepeat(*c.Repeat)
		if err != nil {
			return err
		}
		upd.Repeat = &repeat
	}

	alarm, err := ctx.Store.UpdateAlarm(c.ID, upd)
	if err != nil {
		return fmt.Errorf("failed to update alarm: %w", err)
	}
	ctx.Scheduler.Arm(alarm)

	fmt.Printf("✓ Alarm updated: %s at %s\n", alarm.Title, alarm.Datetime.Format("2006-01-02 15:04"))
	return nil
}
