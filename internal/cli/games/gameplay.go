package games

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"daydesk/internal/cli"
	"daydesk/internal/game"
)

type GamePlayCmd struct {
	Difficulty string `help:"Difficulty level (easy|medium|hard)." default:"medium" enum:"easy,medium,hard"`
}

// Run plays one round on stdin. The round clock is wall time: elapsed
// seconds are charged against the session before each guess is applied.
func (c *GamePlayCmd) Run(ctx *cli.Context) error {
	session := game.NewSession(ctx.Store, game.Difficulty(c.Difficulty))
	session.Start()

	fmt.Printf("Word scramble (%s). Unscramble the word before time runs out.\n", c.Difficulty)
	fmt.Println("Commands: !skip, !hint, !quit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	last := time.Now()

	for session.Active {
		fmt.Printf("Word: %s\n", session.Word())
		fmt.Printf("Hint: %s\n", session.Hint())
		fmt.Printf("[%ds left, %d pts] > ", session.TimeLeft, session.Score)

		if !scanner.Scan() {
			session.End()
			break
		}
		input := strings.TrimSpace(scanner.Text())

		// charge the thinking time
		elapsed := int(time.Since(last).Seconds())
		last = time.Now()
		for i := 0; i < elapsed && session.Active; i++ {
			session.Tick()
		}
		if !session.Active {
			fmt.Println("Time's up!")
			break
		}

		switch input {
		case "!quit":
			session.End()
		case "!skip":
			session.Skip()
			fmt.Println("Word skipped (-5s)")
		case "!hint":
			fmt.Printf("Letters: %s (-3s)\n", session.LetterHint())
		case "":
		default:
			result := session.Guess(input)
			if result.Correct {
				fmt.Printf("Correct! +%d points\n", result.Points)
			} else {
				fmt.Printf("Not quite, try again.\n")
			}
		}
		fmt.Println()
	}

	summary := session.Summary()
	fmt.Println("Game over!")
	fmt.Printf("Final score: %d   Words completed: %d\n", summary.Score, summary.WordsCompleted)
	return nil
}
