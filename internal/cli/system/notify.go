package system

import (
	"fmt"

	"daydesk/internal/cli"
	"daydesk/internal/notify"
)

type NotifyCmd struct {
	Title  string `arg:"" optional:"" help:"Notification title." default:"daydesk"`
	Body   string `help:"Notification body." default:"Test notification"`
	DryRun bool   `help:"Print the notification instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings := ctx.Store.GetSettings()
	if !settings.Notifications {
		fmt.Println("Notifications are disabled in settings.")
		return nil
	}

	if c.DryRun {
		fmt.Printf("[DryRun] %s: %s\n", c.Title, c.Body)
		return nil
	}

	n := notify.NewTrayNotifier()
	if err := n.Show(c.Title, c.Body, "daydesk-test", false, settings.SoundEnabled); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	fmt.Println("✓ Notification sent")
	return nil
}

func trayStatus() string {
	if notify.NewTrayNotifier().Available() {
		return "✓ Tray notifier: OK"
	}
	return "⚠ Tray notifier: UNAVAILABLE (daydesk-tray not running, banners only)"
}
