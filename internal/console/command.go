package console

import (
	"context"
	"sort"
)

// Command is one line command the player can type
type Command struct {
	Name        string
	Usage       string
	Description string
	// NeedsArg commands print their usage when called bare
	NeedsArg bool
	Run      func(ctx context.Context, c *Console, arg string) error
}

// Registry holds the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command, replacing any with the same name
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all commands sorted by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name < cmds[j].Name
	})
	return cmds
}

func defaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Command{Name: CmdHelp, Usage: CmdHelp, Description: "List commands", Run: runHelp})
	r.Register(Command{Name: CmdMarkets, Usage: CmdMarkets, Description: "List markets", Run: runMarkets})
	r.Register(Command{Name: CmdOpen, Usage: "open <market>", Description: "Browse a market", NeedsArg: true, Run: runOpen})
	r.Register(Command{Name: CmdBuy, Usage: "buy <item>", Description: "Buy one item from the open market", NeedsArg: true, Run: runBuy})
	r.Register(Command{Name: CmdCraft, Usage: CmdCraft, Description: "Go to the cauldron", Run: runCraft})
	r.Register(Command{Name: CmdSelect, Usage: "select <item>", Description: "Select an inventory item for merging", NeedsArg: true, Run: runSelect})
	r.Register(Command{Name: CmdMerge, Usage: CmdMerge, Description: "Merge the selected items", Run: runMerge})
	r.Register(Command{Name: CmdSell, Usage: "sell [item]", Description: "Open the counter, or sell one item", Run: runSell})
	r.Register(Command{Name: CmdMarket, Usage: CmdMarket, Description: "Return to the market square", Run: runMarket})
	r.Register(Command{Name: CmdEndDay, Usage: CmdEndDay, Description: "End the day", Run: runEndDay})
	r.Register(Command{Name: CmdInv, Usage: CmdInv, Description: "Show inventory and selection", Run: runInv})
	r.Register(Command{Name: CmdStatus, Usage: CmdStatus, Description: "Show day, phase and coins", Run: runStatus})
	r.Register(Command{Name: CmdRecipes, Usage: CmdRecipes, Description: "List recipes", Run: runRecipes})
	r.Register(Command{Name: CmdJournal, Usage: CmdJournal, Description: "Show today's trades", Run: runJournal})
	return r
}
