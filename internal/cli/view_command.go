package cli

import (
	"context"

	"astro-schedule/internal/api"
)

// ViewCommand lists every task of the day
type ViewCommand struct {
	app *App
	api api.API
}

// NewViewCommand creates a new view command handler
func NewViewCommand(app *App) *ViewCommand {
	return &ViewCommand{app: app, api: app.api}
}

// Label returns the menu text
func (c *ViewCommand) Label() string {
	return "View Tasks"
}

// Execute prints all tasks in start order, followed by a summary when configured
func (c *ViewCommand) Execute(ctx context.Context) error {
	ctx, cancel := c.app.withTimeout(ctx)
	defer cancel()

	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return err
	}
	if err := c.app.renderer.RenderTasks(tasks, "No tasks scheduled for the day."); err != nil {
		return err
	}

	if !c.app.renderer.ShowSummary() {
		return nil
	}
	summary, err := c.api.Summary(ctx)
	if err != nil {
		return err
	}
	return c.app.renderer.RenderSummary(summary)
}
