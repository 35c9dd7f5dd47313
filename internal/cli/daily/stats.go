package daily

import (
	"fmt"
	"time"

	"daydesk/internal/cli"
	"daydesk/internal/models"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	notes := ctx.Store.GetNotes()
	important := len(models.FilterNotes(notes, models.NoteFilterImportant, now))
	today := len(models.FilterNotes(notes, models.NoteFilterToday, now))
	fmt.Println("Notes")
	fmt.Printf("  Total: %d   Today: %d   Important: %d\n", len(notes), today, important)

	alarmStats := models.ComputeAlarmStats(ctx.Store.GetAlarms(), now)
	fmt.Println("Alarms")
	fmt.Printf("  Total: %d   Active: %d   Upcoming: %d   Overdue: %d   Repeating: %d\n",
		alarmStats.Total, alarmStats.Active, alarmStats.Upcoming, alarmStats.Overdue, alarmStats.Repeating)

	game := ctx.Store.GetGameData()
	fmt.Println("Word game")
	fmt.Printf("  Games played: %d   Today's best: %d   Words today: %d\n",
		game.TotalGamesPlayed, game.TodayScore, len(game.DailyWordsCompleted))
	if len(game.HighScores) > 0 {
		fmt.Printf("  High score: %d (%d words, %s)\n",
			game.HighScores[0].Score, game.HighScores[0].WordsCompleted,
			game.HighScores[0].Date.Format("2006-01-02"))
	}

	wishStats := ctx.Wishes.Stats()
	fmt.Println("Wishes")
	fmt.Printf("  Custom: %d   Today: %d   Next 30 days: %d\n",
		wishStats.CustomWishes, wishStats.TodaysWishes, wishStats.UpcomingEvents)

	return nil
}
