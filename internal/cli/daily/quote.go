package daily

import (
	"fmt"

	"daydesk/internal/cli"
	"daydesk/internal/models"
	"daydesk/internal/quotes"
)

type QuoteCmd struct {
	Random    bool   `help:"Pick a random quote instead of the quote of the day."`
	Category  string `help:"List quotes by category (success|motivation|wisdom)."`
	Favorite  bool   `help:"Save the shown quote to favorites."`
	Favorites bool   `help:"List favorite quotes."`
}

func (c *QuoteCmd) Run(ctx *cli.Context) error {
	if c.Favorites {
		favs := ctx.Quotes.Favorites()
		if len(favs) == 0 {
			fmt.Println("No favorite quotes yet.")
			return nil
		}
		for _, f := range favs {
			printQuote(f.Quote)
		}
		return nil
	}

	if c.Category != "" {
		matches := quotes.ByCategory(c.Category)
		if len(matches) == 0 {
			fmt.Printf("No quotes in category %q.\n", c.Category)
			return nil
		}
		for _, q := range matches {
			printQuote(q)
		}
		return nil
	}

	var q models.Quote
	if c.Random {
		q = ctx.Quotes.RandomQuote()
	} else {
		q = ctx.Quotes.DailyQuote()
	}
	printQuote(q)

	if c.Favorite {
		ctx.Quotes.Favorite(q)
		fmt.Println("✓ Added to favorites")
	}

	return nil
}

func printQuote(q models.Quote) {
	fmt.Printf("%q\n", q.Text)
	fmt.Printf("    - %s\n", q.Author)
}
