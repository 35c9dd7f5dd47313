package daily

import (
	"fmt"
	"time"

	"daydesk/internal/cli"
	"daydesk/internal/wishes"
)

type WishCmd struct {
	Upcoming int    `help:"Show wishes for the next N days instead of today."`
	Title    string `help:"Add a custom wish with this title. Requires --message and --on."`
	Message  string `help:"Message for the custom wish."`
	On       string `help:"Recurring date for the custom wish (MM-DD)."`
}

func (c *WishCmd) Run(ctx *cli.Context) error {
	if c.Title != "" || c.Message != "" || c.On != "" {
		return c.addCustom(ctx)
	}

	if c.Upcoming > 0 {
		upcoming := ctx.Wishes.Upcoming(c.Upcoming)
		if len(upcoming) == 0 {
			fmt.Printf("Nothing special in the next %d days.\n", c.Upcoming)
			return nil
		}
		for _, u := range upcoming {
			fmt.Printf("%s (%s):\n", u.Date.Format("2006-01-02"), u.Date.Weekday())
			for _, w := range u.Wishes {
				fmt.Printf("  %s\n", wishes.FormatWish(w))
			}
		}
		return nil
	}

	for _, w := range ctx.Wishes.TodaysWishes() {
		fmt.Println(wishes.FormatWish(w))
	}
	for _, w := range ctx.Wishes.Milestones(time.Now()) {
		fmt.Println(wishes.FormatWish(w))
	}
	return nil
}

func (c *WishCmd) addCustom(ctx *cli.Context) error {
	if c.Title == "" || c.Message == "" || c.On == "" {
		return fmt.Errorf("adding a wish requires --title, --message, and --on")
	}

	wish, err := ctx.Wishes.AddCustomWish(c.Title, c.Message, c.On)
	if err != nil {
		return fmt.Errorf("failed to add wish: %w", err)
	}

	fmt.Printf("✓ Wish added: %s on %s (every year)\n", wish.Title, wish.Date)
	return nil
}
