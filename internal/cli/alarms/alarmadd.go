package alarms

import (
	"fmt"
	"time"

	"daydesk/internal/cli"
	"daydesk/internal/constants"
	"daydesk/internal/storage"
)

type AlarmAddCmd struct {
	Title  string `arg:"" help:"Alarm title."`
	Time   string `help:"Time for the alarm (HH:MM)." required:""`
	Date   string `help:"Date for the alarm (YYYY-MM-DD). Defaults to today."`
	Repeat string `help:"Repeat cadence (none|daily|weekly|monthly)." default:"none"`
	Note   string `help:"Optional note shown when the alarm fires."`
}

func (c *AlarmAddCmd) Run(ctx *cli.Context) error {
	if c.Title == "" {
		return fmt.Errorf("alarm title cannot be empty")
	}

	repeat, err := cli.ParseRepeat(c.Repeat)
	if err != nil {
		return err
	}

	when, err := cli.CombineDateTime(c.Date, c.Time)
	if err != nil {
		return err
	}

	// A one-time alarm in the past can never fire.
	if repeat == constants.RepeatNone && !when.After(time.Now()) {
		return fmt.Errorf("alarm time %s is in the past", when.Format("2006-01-02 15:04"))
	}

	alarm := ctx.Store.AddAlarm(storage.AlarmInput{
		Title:    c.Title,
		Datetime: when,
		Repeat:   repeat,
		Note:     c.Note,
	})
	ctx.Scheduler.Arm(alarm)

	fmt.Printf("✓ Alarm added: %s at %s", alarm.Title, alarm.Datetime.Format("2006-01-02 15:04"))
	if alarm.IsRepeating() {
		fmt.Printf(" (%s)", alarm.FormatRepeat())
	}
	fmt.Println()

	return nil
}
