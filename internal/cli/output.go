package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize/english"
	"gopkg.in/yaml.v3"

	"astro-schedule/internal/config"
	"astro-schedule/internal/domain"
	"astro-schedule/internal/schedule"
)

// taskView is the structured form of a task in JSON and YAML listings.
type taskView struct {
	Description string `json:"description" yaml:"description"`
	Start       string `json:"start" yaml:"start"`
	End         string `json:"end" yaml:"end"`
	Priority    string `json:"priority" yaml:"priority"`
	Completed   bool   `json:"completed" yaml:"completed"`
}

// summaryView is the structured form of a schedule summary.
type summaryView struct {
	Total     int    `json:"total" yaml:"total"`
	Completed int    `json:"completed" yaml:"completed"`
	Pending   int    `json:"pending" yaml:"pending"`
	Scheduled string `json:"scheduled" yaml:"scheduled"`
}

// Renderer writes task listings in the configured display format
type Renderer struct {
	out         io.Writer
	format      string
	timeLayout  string
	showSummary bool
}

// NewRenderer creates a renderer that follows cfg's display settings
func NewRenderer(out io.Writer, cfg *config.Config) *Renderer {
	return &Renderer{
		out:         out,
		format:      cfg.Display.Format,
		timeLayout:  cfg.Time.DisplayFormat,
		showSummary: cfg.Display.ShowSummary,
	}
}

// ShowSummary reports whether listings are followed by a summary
func (r *Renderer) ShowSummary() bool {
	return r.showSummary
}

// RenderTasks writes one line per task. In text format an empty list is
// reported with emptyMessage; structured formats write an empty list.
func (r *Renderer) RenderTasks(tasks []domain.Task, emptyMessage string) error {
	switch r.format {
	case config.FormatJSON:
		return r.writeJSON(r.views(tasks))
	case config.FormatYAML:
		return r.writeYAML(r.views(tasks))
	}

	if len(tasks) == 0 {
		_, err := fmt.Fprintln(r.out, emptyMessage)
		return err
	}
	for _, task := range tasks {
		if _, err := fmt.Fprintln(r.out, task.Format(r.timeLayout)); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary writes the schedule summary
func (r *Renderer) RenderSummary(summary schedule.Summary) error {
	view := summaryView{
		Total:     summary.Total,
		Completed: summary.Completed,
		Pending:   summary.Pending(),
		Scheduled: formatDuration(summary.Scheduled),
	}

	switch r.format {
	case config.FormatJSON:
		return r.writeJSON(view)
	case config.FormatYAML:
		return r.writeYAML(view)
	}

	_, err := fmt.Fprintf(r.out, "Summary: %s, %d completed, %d pending, %s scheduled\n",
		english.Plural(view.Total, "task", ""), view.Completed, view.Pending, view.Scheduled)
	return err
}

func (r *Renderer) views(tasks []domain.Task) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, taskView{
			Description: task.Description,
			Start:       task.Start.Format(r.timeLayout),
			End:         task.End.Format(r.timeLayout),
			Priority:    task.Priority,
			Completed:   task.Completed,
		})
	}
	return views
}

func (r *Renderer) writeJSON(v interface{}) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (r *Renderer) writeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// formatDuration renders d as hours and minutes, for example "1h 30m".
func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
