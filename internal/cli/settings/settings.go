package settings

import (
	"fmt"

	"daydesk/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Notifications *bool   `help:"Enable or disable system notifications."`
	Sound         *bool   `help:"Enable or disable notification sound."`
	Theme         *string `help:"UI theme (light|dark)."`
	Language      *string `help:"Interface language code (e.g. en)."`
	TimeFormat    *string `help:"Clock style (12h|24h)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings := ctx.Store.GetSettings()

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Notifications: %v\n", settings.Notifications)
		fmt.Printf("  Sound:         %v\n", settings.SoundEnabled)
		fmt.Printf("  Theme:         %s\n", settings.Theme)
		fmt.Printf("  Language:      %s\n", settings.Language)
		fmt.Printf("  Time Format:   %s\n", settings.TimeFormat)
		return nil
	}

	updated := false
	if c.Notifications != nil {
		settings.Notifications = *c.Notifications
		updated = true
	}
	if c.Sound != nil {
		settings.SoundEnabled = *c.Sound
		updated = true
	}
	if c.Theme != nil {
		if *c.Theme != "light" && *c.Theme != "dark" {
			return fmt.Errorf("invalid theme: %s (must be light or dark)", *c.Theme)
		}
		settings.Theme = *c.Theme
		updated = true
	}
	if c.Language != nil {
		settings.Language = *c.Language
		updated = true
	}
	if c.TimeFormat != nil {
		if *c.TimeFormat != "12h" && *c.TimeFormat != "24h" {
			return fmt.Errorf("invalid time format: %s (must be 12h or 24h)", *c.TimeFormat)
		}
		settings.TimeFormat = *c.TimeFormat
		updated = true
	}

	if updated {
		ctx.Store.SaveSettings(settings)
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
