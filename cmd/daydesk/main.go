package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"daydesk/internal/cli"
	"daydesk/internal/cli/alarms"
	"daydesk/internal/cli/daily"
	"daydesk/internal/cli/games"
	"daydesk/internal/cli/notes"
	"daydesk/internal/cli/settings"
	"daydesk/internal/cli/system"
	"daydesk/internal/constants"
	"daydesk/internal/errors"
	"daydesk/internal/logger"
	"daydesk/internal/notify"
	"daydesk/internal/quotes"
	"daydesk/internal/scheduler"
	"daydesk/internal/storage"
	"daydesk/internal/storage/sqlite"
	"daydesk/internal/wishes"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data directory, or a SQLite database path ending in .db. Defaults to ~/.config/daydesk/data."`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize daydesk storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Run    system.RunCmd    `cmd:"" help:"Run the alarm scheduler in the foreground."`
	Note   struct {
		Add    notes.NoteAddCmd    `cmd:"" help:"Add a new note."`
		List   notes.NoteListCmd   `cmd:"" help:"List notes."`
		Edit   notes.NoteEditCmd   `cmd:"" help:"Edit an existing note."`
		Delete notes.NoteDeleteCmd `cmd:"" help:"Delete a note."`
	} `cmd:"" help:"Manage quick notes."`
	Alarm struct {
		Add    alarms.AlarmAddCmd    `cmd:"" help:"Add a new alarm."`
		List   alarms.AlarmListCmd   `cmd:"" help:"List alarms."`
		Edit   alarms.AlarmEditCmd   `cmd:"" help:"Edit an existing alarm."`
		Delete alarms.AlarmDeleteCmd `cmd:"" help:"Delete an alarm."`
		Toggle alarms.AlarmToggleCmd `cmd:"" help:"Enable or disable an alarm."`
		Snooze alarms.AlarmSnoozeCmd `cmd:"" help:"Snooze an alarm."`
	} `cmd:"" help:"Manage alarms and reminders."`
	Quote daily.QuoteCmd `cmd:"" help:"Show the quote of the day."`
	Wish  daily.WishCmd  `cmd:"" help:"Show today's calendar wishes."`
	Stats daily.StatsCmd `cmd:"" help:"Show usage statistics."`
	Game  struct {
		Play   games.GamePlayCmd   `cmd:"" help:"Play a word scramble round." default:"1"`
		Scores games.GameScoresCmd `cmd:"" help:"Show high scores."`
	} `cmd:"" help:"Word scramble game."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Export   system.ExportCmd     `cmd:"" help:"Export all data as a JSON bundle."`
	Import   system.ImportCmd     `cmd:"" help:"Import a previously exported bundle."`
	Notify   system.NotifyCmd     `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal dashboard: notes, alarms, daily quotes, calendar wishes, and a word game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	dataPath := CLI.Data
	if dataPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			errors.Fatalf("cannot determine config dir: %v", err)
		}
		dataPath = filepath.Join(configDir, constants.AppName, "data")
	}

	logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(dataPath),
	})

	var store storage.Provider
	if strings.HasSuffix(dataPath, ".db") {
		store = sqlite.NewStore(dataPath)
	} else {
		store = storage.NewJSONStore(afero.NewOsFs(), dataPath)
	}

	dispatcher := notify.NewDispatcher(cli.ConsoleBanner{}, notify.NewTrayNotifier(), store.GetSettings)
	appCtx := &cli.Context{
		Store:      store,
		Scheduler:  scheduler.New(store, dispatcher),
		Dispatcher: dispatcher,
		Quotes:     quotes.NewService(store),
		Wishes:     wishes.NewService(store),
	}

	// Init handles its own loading.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
