package cli

import (
	"context"

	"astro-schedule/internal/api"
)

// RemoveCommand removes a task by its description
type RemoveCommand struct {
	app *App
	api api.API
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app, api: app.api}
}

// Label returns the menu text
func (c *RemoveCommand) Label() string {
	return "Remove Task"
}

// Execute prompts for a description and removes the first matching task
func (c *RemoveCommand) Execute(ctx context.Context) error {
	description, err := c.app.prompt("Enter task description to remove: ")
	if err != nil {
		return err
	}

	ctx, cancel := c.app.withTimeout(ctx)
	defer cancel()

	if err := c.api.RemoveTask(ctx, description); err != nil {
		return err
	}
	c.app.println("Task removed successfully.")
	return nil
}
