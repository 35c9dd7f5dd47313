package games

import (
	"fmt"
	"strings"

	"daydesk/internal/cli"
)

type GameScoresCmd struct{}

func (c *GameScoresCmd) Run(ctx *cli.Context) error {
	data := ctx.Store.GetGameData()

	if len(data.HighScores) == 0 {
		fmt.Println("No high scores yet. Play a game to get started!")
		return nil
	}

	fmt.Printf("%-5s %-8s %-8s %-12s\n", "Rank", "Score", "Words", "Date")
	fmt.Println(strings.Repeat("-", 36))
	for i, hs := range data.HighScores {
		fmt.Printf("%-5d %-8d %-8d %-12s\n", i+1, hs.Score, hs.WordsCompleted, hs.Date.Format("2006-01-02"))
	}

	fmt.Println()
	fmt.Printf("Games played: %d   Today's best: %d\n", data.TotalGamesPlayed, data.TodayScore)
	return nil
}
