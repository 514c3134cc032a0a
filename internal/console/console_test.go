package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/potionshop/internal/catalog"
	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/economy"
	"github.com/osse101/potionshop/internal/event"
	"github.com/osse101/potionshop/internal/eventlog"
	"github.com/osse101/potionshop/internal/naming"
)

func newTestConsole(t *testing.T, coins int) (*Console, *economy.Engine, *bytes.Buffer) {
	t.Helper()
	cat, err := catalog.New(
		[]domain.Market{
			{Name: "Herbalist", Items: []domain.MarketItem{
				{Name: "Moonleaf", BuyPrice: 30, SellPrice: 15},
				{Name: "Silverroot", BuyPrice: 20, SellPrice: 10},
				{Name: "Dewdrop", BuyPrice: 10, SellPrice: 5},
			}},
		},
		[]domain.Recipe{
			{OutputName: "Healing Draught", Ingredients: []string{"Moonleaf", "Silverroot", "Dewdrop"}, SellPrice: 50},
		},
	)
	require.NoError(t, err)

	engine, err := economy.NewEngine(cat, coins, economy.DefaultRules())
	require.NoError(t, err)

	var out bytes.Buffer
	return New(engine, naming.NewResolver(cat), &out), engine, &out
}

func run(c *Console, lines ...string) {
	ctx := context.Background()
	for _, line := range lines {
		c.Execute(ctx, line)
	}
}

func TestConsole_FullDay(t *testing.T) {
	c, engine, out := newTestConsole(t, 100)

	run(c,
		"open herbalist",
		"buy moonleaf",
		"buy SILVERROOT",
		"buy dewdrop",
		"craft",
		"select moonleaf",
		"select silverroot",
		"select dewdrop",
		"merge",
		"sell",
		"sell healing draught",
		"endday",
	)

	assert.Equal(t, 90, engine.Coins())
	assert.Empty(t, engine.Inventory())
	assert.Equal(t, 2, engine.Day())
	assert.Equal(t, domain.PhaseMarketSelect, engine.Phase())

	text := out.String()
	assert.Contains(t, text, "You walk into Herbalist.")
	assert.Contains(t, text, "Bought Moonleaf for 30 coins.")
	assert.Contains(t, text, "The mixture settles into Healing Draught!")
	assert.Contains(t, text, "Healing Draught x1 - 50 coins")
	assert.Contains(t, text, "Sold Healing Draught for 50 coins.")
	assert.Contains(t, text, "Day 2 begins.")
	assert.Contains(t, text, "Coins: 90")
}

func TestConsole_ErrorsAreFeedback(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"unknown command", []string{"dance"}, `Unknown command "dance"`},
		{"missing argument", []string{"open"}, "Usage: open <market>"},
		{"unknown market", []string{"open nowhere"}, `There is no market called "nowhere".`},
		{"buy without market", []string{"buy moonleaf"}, MsgNotBrowsing},
		{"unknown item", []string{"open herbalist", "buy glowcap"}, `That market doesn't sell "glowcap".`},
		{"cannot afford", []string{"open herbalist", "buy moonleaf", "buy moonleaf"}, MsgErrInsufficientFund},
		{"wrong phase", []string{"merge"}, "You can't do that right now (phase: Market)."},
		{"not in inventory", []string{"craft", "select moonleaf"}, "You don't have any moonleaf."},
		{"already selected", []string{"open herbalist", "buy moonleaf", "craft", "select moonleaf", "select MOONLEAF"}, "Moonleaf is already selected."},
		{"merge too small", []string{"open herbalist", "buy dewdrop", "craft", "select dewdrop", "merge"}, "Select at least 2 items before merging."},
		{"sell missing entry", []string{"sell", "sell moonleaf"}, "You don't have any moonleaf."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, out := newTestConsole(t, 50)
			run(c, tt.lines...)
			assert.Contains(t, out.String(), MarkFailure+tt.want)
		})
	}
}

func TestConsole_WastedMerge(t *testing.T) {
	c, engine, out := newTestConsole(t, 100)

	run(c, "open herbalist", "buy moonleaf", "buy dewdrop", "craft", "select moonleaf", "select dewdrop", "merge")

	assert.Contains(t, out.String(), "The mixture fizzles. Moonleaf, Dewdrop lost.")
	assert.Empty(t, engine.Inventory())
}

func TestConsole_Help(t *testing.T) {
	c, _, out := newTestConsole(t, 100)

	run(c, "HELP")

	for _, cmd := range c.registry.List() {
		assert.Contains(t, out.String(), cmd.Usage)
	}
}

func TestConsole_Run(t *testing.T) {
	c, engine, out := newTestConsole(t, 100)

	in := strings.NewReader("open herbalist\nbuy moonleaf\n\nstatus\nquit\nbuy dewdrop\n")
	require.NoError(t, c.Run(context.Background(), in))

	assert.Equal(t, 70, engine.Coins())
	assert.Equal(t, 1, engine.Count("Moonleaf"))
	assert.Equal(t, 0, engine.Count("Dewdrop"), "input after quit is ignored")
	assert.Contains(t, out.String(), MsgWelcome)
	assert.Contains(t, out.String(), "Day 1 | Items (Herbalist) | Coins: 70")
	assert.Contains(t, out.String(), MsgGoodbye)
}

func TestConsole_RunStopsOnCancel(t *testing.T) {
	c, _, _ := newTestConsole(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Run(ctx, strings.NewReader("markets\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSplitCommand(t *testing.T) {
	name, arg := splitCommand("  OPEN   Alchemist's Bazaar ")
	assert.Equal(t, "open", name)
	assert.Equal(t, "Alchemist's Bazaar", arg)

	name, arg = splitCommand("merge")
	assert.Equal(t, "merge", name)
	assert.Empty(t, arg)
}

func TestConsole_Journal(t *testing.T) {
	cat, err := catalog.New(
		[]domain.Market{{Name: "Herbalist", Items: []domain.MarketItem{
			{Name: "Moonleaf", BuyPrice: 30, SellPrice: 15},
			{Name: "Dewdrop", BuyPrice: 10, SellPrice: 5},
		}}},
		[]domain.Recipe{{OutputName: "Dew Tonic", Ingredients: []string{"Moonleaf", "Dewdrop"}, SellPrice: 60}},
	)
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	journal := eventlog.NewService(eventlog.NewMemoryRepository())
	require.NoError(t, journal.Subscribe(bus))

	engine, err := economy.NewEngine(cat, 100, economy.DefaultRules(), economy.WithPublisher(bus))
	require.NoError(t, err)

	var out bytes.Buffer
	c := New(engine, naming.NewResolver(cat), &out, WithJournal(journal))

	run(c, "journal")
	assert.Contains(t, out.String(), MsgJournalEmpty)

	run(c, "open herbalist", "buy moonleaf", "buy dewdrop", "craft", "select moonleaf", "select dewdrop", "merge", "sell", "sell dew tonic", "journal")
	text := out.String()
	assert.Contains(t, text, "  bought Moonleaf at Herbalist for 30 (balance 70)")
	assert.Contains(t, text, "  crafted Dew Tonic from Moonleaf, Dewdrop")
	assert.Contains(t, text, "  sold Dew Tonic for 60 (balance 120)")

	run(c, "endday")
	assert.Contains(t, out.String(), "Day 1: bought 2, sold 1, crafted 1, wasted 0. Spent 40, earned 60, net +20.")
}

func TestConsole_JournalDisabled(t *testing.T) {
	c, _, out := newTestConsole(t, 100)

	run(c, "journal", "endday")

	assert.Contains(t, out.String(), MarkFailure+MsgNoJournal)
	assert.NotContains(t, out.String(), "Day 1: bought")
}
