package cli

import (
	"context"

	"astro-schedule/internal/api"
)

// AddCommand asks for a new task and schedules it
type AddCommand struct {
	app *App
	api api.API
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, api: app.api}
}

// Label returns the menu text
func (c *AddCommand) Label() string {
	return "Add Task"
}

// Execute prompts for the task fields and adds the task
func (c *AddCommand) Execute(ctx context.Context) error {
	description, err := c.app.prompt("Enter task description: ")
	if err != nil {
		return err
	}
	start, err := c.app.promptChoice("Enter start time (HH:mm): ")
	if err != nil {
		return err
	}
	end, err := c.app.promptChoice("Enter end time (HH:mm): ")
	if err != nil {
		return err
	}
	priority, err := c.app.prompt("Enter priority (High/Medium/Low): ")
	if err != nil {
		return err
	}

	ctx, cancel := c.app.withTimeout(ctx)
	defer cancel()

	if _, err := c.api.AddTask(ctx, description, start, end, priority); err != nil {
		return err
	}
	c.app.println("Task added successfully. No conflicts.")
	return nil
}
