package console

import (
	"context"
	"strings"

	"github.com/osse101/potionshop/internal/domain"
)

func runHelp(_ context.Context, c *Console, _ string) error {
	cmds := c.registry.List()
	maxLen := 0
	for _, cmd := range cmds {
		if len(cmd.Usage) > maxLen {
			maxLen = len(cmd.Usage)
		}
	}
	for _, cmd := range cmds {
		padding := maxLen - len(cmd.Usage) + 2
		c.printf("  %s%*s%s", cmd.Usage, padding, "", cmd.Description)
	}
	c.printf("  %s", CmdQuit)
	return nil
}

func runMarkets(_ context.Context, c *Console, _ string) error {
	for _, market := range c.engine.Markets() {
		c.printf(LabelName, market.Name)
	}
	return nil
}

func runOpen(ctx context.Context, c *Console, arg string) error {
	market := c.resolveMarket(arg)
	if err := c.engine.SelectMarket(ctx, market); err != nil {
		return err
	}
	c.okf(MsgMarketOpened, market)
	return c.renderListings(market)
}

func runBuy(ctx context.Context, c *Console, arg string) error {
	if c.engine.Phase() != domain.PhaseMarketBrowse {
		c.fail(MsgNotBrowsing)
		return nil
	}
	market := c.engine.CurrentMarket()
	item := c.resolveItem(arg)
	if err := c.engine.Buy(ctx, market, item); err != nil {
		return err
	}

	items, err := c.engine.MarketItems(market)
	if err != nil {
		return err
	}
	for _, listing := range items {
		if listing.Name == item {
			c.okf(MsgBought, item, listing.BuyPrice)
			break
		}
	}
	return nil
}

func runCraft(ctx context.Context, c *Console, _ string) error {
	c.engine.EnterCraftingPhase(ctx)
	c.okf(MsgEnteredCrafting)
	return nil
}

func runSelect(ctx context.Context, c *Console, arg string) error {
	item := c.resolveItem(arg)
	if err := c.engine.SelectForCrafting(ctx, item); err != nil {
		return err
	}
	c.okf(MsgSelected, item, len(c.engine.Selection()))
	return nil
}

func runMerge(ctx context.Context, c *Console, _ string) error {
	result, err := c.engine.Merge(ctx)
	if err != nil {
		return err
	}
	if result.Matched {
		c.okf(MsgMergeMatched, result.Output)
	} else {
		c.failf(MsgMergeWasted, strings.Join(result.Consumed, ", "))
	}
	return nil
}

// runSell opens the counter when called bare, and sells one unit otherwise
func runSell(ctx context.Context, c *Console, arg string) error {
	if arg == "" {
		c.engine.EnterSellPhase(ctx)
		c.okf(MsgEnteredSelling)
		return c.renderOffers()
	}

	item := c.resolveItem(arg)
	price, err := c.engine.Sell(ctx, item)
	if err != nil {
		return err
	}
	c.okf(MsgSold, item, price)
	return nil
}

func runMarket(ctx context.Context, c *Console, _ string) error {
	c.engine.EnterMarketPhase(ctx)
	c.okf(MsgEnteredMarket)
	return runMarkets(ctx, c, "")
}

func runEndDay(ctx context.Context, c *Console, _ string) error {
	c.engine.AdvanceDay(ctx)
	if c.journal != nil {
		summary, err := c.journal.Summary(ctx, c.engine.Day()-1)
		if err != nil {
			return err
		}
		c.printf(MsgDaySummary, summary.Day, summary.Bought, summary.Sold, summary.Crafted, summary.Wasted, summary.Spent, summary.Earned, summary.Net())
	}
	c.okf(MsgDayEnded, c.engine.Day())
	return runMarkets(ctx, c, "")
}

func runJournal(ctx context.Context, c *Console, _ string) error {
	if c.journal == nil {
		c.fail(MsgNoJournal)
		return nil
	}
	entries, err := c.journal.Entries(ctx, c.engine.Day())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		c.println(MsgJournalEmpty)
		return nil
	}
	for _, e := range entries {
		c.renderJournalEntry(e)
	}
	return nil
}

func runInv(_ context.Context, c *Console, _ string) error {
	c.renderSelection()
	return nil
}

func runStatus(_ context.Context, c *Console, _ string) error {
	c.renderStatus()
	return nil
}

func runRecipes(_ context.Context, c *Console, _ string) error {
	for _, recipe := range c.engine.Recipes() {
		c.printf(LabelRecipe, recipe.OutputName, strings.Join(recipe.Ingredients, " + "), recipe.SellPrice)
	}
	return nil
}
