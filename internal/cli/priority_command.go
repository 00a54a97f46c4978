package cli

import (
	"context"
	"fmt"

	"astro-schedule/internal/api"
)

// PriorityCommand lists the tasks of one priority
type PriorityCommand struct {
	app *App
	api api.API
}

// NewPriorityCommand creates a new priority command handler
func NewPriorityCommand(app *App) *PriorityCommand {
	return &PriorityCommand{app: app, api: app.api}
}

// Label returns the menu text
func (c *PriorityCommand) Label() string {
	return "View Tasks by Priority"
}

// Execute prompts for a priority and prints the matching tasks
func (c *PriorityCommand) Execute(ctx context.Context) error {
	priority, err := c.app.prompt("Enter priority level (High/Medium/Low): ")
	if err != nil {
		return err
	}

	ctx, cancel := c.app.withTimeout(ctx)
	defer cancel()

	tasks, err := c.api.ListTasksByPriority(ctx, priority)
	if err != nil {
		return err
	}
	return c.app.renderer.RenderTasks(tasks, fmt.Sprintf("No tasks with priority %s.", priority))
}
