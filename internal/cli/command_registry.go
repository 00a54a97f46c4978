package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ExitOption is the menu number that leaves the organizer.
const ExitOption = 6

// Command is one entry of the interactive menu
type Command interface {
	Label() string
	Execute(ctx context.Context) error
}

// CommandRegistry manages the numbered menu commands
type CommandRegistry struct {
	commands map[int]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[int]Command),
	}

	// Register all commands
	registry.Register(1, NewAddCommand(app))
	registry.Register(2, NewRemoveCommand(app))
	registry.Register(3, NewViewCommand(app))
	registry.Register(4, NewCompleteCommand(app))
	registry.Register(5, NewPriorityCommand(app))

	return registry
}

// Register adds a command to the registry under the given menu number
func (r *CommandRegistry) Register(option int, command Command) {
	r.commands[option] = command
}

// Get returns the command registered for option
func (r *CommandRegistry) Get(option int) (Command, bool) {
	command, ok := r.commands[option]
	return command, ok
}

// Options returns the registered menu numbers in ascending order
func (r *CommandRegistry) Options() []int {
	options := make([]int, 0, len(r.commands))
	for option := range r.commands {
		options = append(options, option)
	}
	sort.Ints(options)
	return options
}

// Menu renders the title, one line per command and the exit option.
func (r *CommandRegistry) Menu() string {
	var b strings.Builder
	b.WriteString(menuTitle)
	b.WriteString("\n")
	for _, option := range r.Options() {
		fmt.Fprintf(&b, "%d. %s\n", option, r.commands[option].Label())
	}
	fmt.Fprintf(&b, "%d. Exit\n", ExitOption)
	return b.String()
}
