package cli

import (
	"context"

	"astro-schedule/internal/api"
)

// CompleteCommand marks a task as completed
type CompleteCommand struct {
	app *App
	api api.API
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{app: app, api: app.api}
}

// Label returns the menu text
func (c *CompleteCommand) Label() string {
	return "Mark Task as Completed"
}

// Execute prompts for a description and marks the first matching task
func (c *CompleteCommand) Execute(ctx context.Context) error {
	description, err := c.app.prompt("Enter task description to mark as completed: ")
	if err != nil {
		return err
	}

	ctx, cancel := c.app.withTimeout(ctx)
	defer cancel()

	if err := c.api.MarkTaskCompleted(ctx, description); err != nil {
		return err
	}
	c.app.println("Task marked as completed.")
	return nil
}
