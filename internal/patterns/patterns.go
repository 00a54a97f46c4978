// Package patterns contains small, self-contained demonstrations of classic
// object-oriented design patterns written the Go way. Each demo writes a
// fixed sequence of lines to an io.Writer.
package patterns

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"astro-schedule/internal/errors"
)

// All selects every demo in registration order.
const All = "all"

// Demo is one runnable pattern demonstration.
type Demo struct {
	Name        string
	Description string
	Run         func(w io.Writer) error
}

var demos = []Demo{
	{Name: "command", Description: "remote control switching a light and a fan", Run: RunCommandDemo},
	{Name: "observer", Description: "stock price changes pushed to traders", Run: RunObserverDemo},
	{Name: "factory", Description: "animals created by kind", Run: RunFactoryDemo},
	{Name: "singleton", Description: "one lazily opened database connection", Run: RunSingletonDemo},
	{Name: "adapter", Description: "audio player adapted to advanced formats", Run: RunAdapterDemo},
	{Name: "decorator", Description: "coffee priced with milk and sugar", Run: RunDecoratorDemo},
}

// Demos returns the registered demos in order.
func Demos() []Demo {
	out := make([]Demo, len(demos))
	copy(out, demos)
	return out
}

// Names returns the demo names in order.
func Names() []string {
	names := make([]string, 0, len(demos))
	for _, d := range demos {
		names = append(names, d.Name)
	}
	return names
}

// Run executes the named demo, or every demo when name is All.
// Demos run under "all" are separated by a "== name ==" heading.
func Run(w io.Writer, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == All {
		for i, d := range demos {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s ==\n", d.Name)
			if err := d.Run(w); err != nil {
				return fmt.Errorf("%s demo: %w", d.Name, err)
			}
		}
		return nil
	}

	for _, d := range demos {
		if d.Name == name {
			return d.Run(w)
		}
	}
	return errors.NewNotFoundError("demo", name)
}

// formatAmount prints a float with at least one decimal place: 155 -> "155.0", 6.5 -> "6.5".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
