package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"astro-schedule/internal/api"
	"astro-schedule/internal/config"
)

// menuTitle heads the interactive menu.
const menuTitle = "Astronaut Daily Schedule Organizer"

// App represents the interactive schedule organizer
type App struct {
	api          api.API
	config       *config.Config
	in           *bufio.Reader
	out          io.Writer
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	renderer     *Renderer
}

// NewApp creates a new CLI application instance with dependency injection.
// A nil cfg uses the defaults.
func NewApp(apiInstance api.API, cfg *config.Config, in io.Reader, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		api:          apiInstance,
		config:       cfg,
		in:           bufio.NewReader(in),
		out:          out,
		errorHandler: NewErrorHandler(),
		renderer:     NewRenderer(out, cfg),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run shows the menu and executes the chosen options until the user exits
// or the input ends.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(a.out)
		fmt.Fprint(a.out, a.registry.Menu())
		line, err := a.promptChoice("Choose an option: ")
		if err != nil {
			return a.exitOn(err)
		}

		option, convErr := strconv.Atoi(line)
		if convErr != nil {
			a.println("Invalid option. Try again.")
			continue
		}
		if option == ExitOption {
			a.println("Exiting...")
			return nil
		}

		command, ok := a.registry.Get(option)
		if !ok {
			a.println("Invalid option. Try again.")
			continue
		}

		if err := command.Execute(ctx); err != nil {
			if stderrors.Is(err, io.EOF) {
				return a.exitOn(err)
			}
			a.println(a.errorHandler.Message(err))
		}
	}
}

// exitOn ends the menu loop. Running out of input is a normal exit.
func (a *App) exitOn(err error) error {
	if stderrors.Is(err, io.EOF) {
		fmt.Fprintln(a.out)
		a.println("Exiting...")
		return nil
	}
	return err
}

// prompt writes label and reads one line of input without its line ending.
// A final line without a newline is returned as-is; io.EOF is only
// returned when there is nothing left to read.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && (!stderrors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptChoice is prompt with surrounding whitespace removed.
func (a *App) promptChoice(label string) (string, error) {
	line, err := a.prompt(label)
	return strings.TrimSpace(line), err
}

func (a *App) println(line string) {
	fmt.Fprintln(a.out, line)
}

// withTimeout bounds a single schedule operation by the application timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (a *App) getAppTimeout() time.Duration {
	if a.config != nil && a.config.Application.Timeout > 0 {
		return a.config.Application.Timeout
	}
	return 30 * time.Second
}
