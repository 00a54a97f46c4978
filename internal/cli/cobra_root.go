package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"astro-schedule/internal/api"
	"astro-schedule/internal/config"
	"astro-schedule/internal/logging"
	"astro-schedule/internal/patterns"
	"astro-schedule/internal/schedule"
)

// Version is set at build time with -ldflags "-X astro-schedule/internal/cli.Version=..."
var Version = "dev"

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	in     io.Reader
	out    io.Writer
}

// NewRootCommand creates the root cobra command with global flags.
// The menu reads from in and writes to out.
func NewRootCommand(in io.Reader, out io.Writer) *RootCommand {
	root := &RootCommand{
		in:  in,
		out: out,
	}

	root.cmd = &cobra.Command{
		Use:   "ads",
		Short: "Astronaut daily schedule organizer",
		Long: `Astronaut Daily Schedule (ads) keeps one day's tasks in start order and
refuses any task that overlaps one already scheduled.

Running ads without a subcommand opens the interactive menu. The schedule
lives in memory only and is gone when the program exits.

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults
  Config file: ./ads.toml, ./ads.yaml or <user config dir>/ads/ads.toml (or --config)

  ADS_STORE_BACKEND                      Task store: memory or sqlite (default: memory)
  ADS_STORE_QUERY_TIMEOUT                Store statement timeout (default: 5s)
  ADS_TIME_INPUT_FORMAT                  Go layout for typed times (default: 15:04)
  ADS_TIME_DISPLAY_FORMAT                Go layout for listed times (default: 15:04)
  ADS_VALIDATION_DESCRIPTION_MAX         Max description length, 0 for no limit (default: 0)
  ADS_VALIDATION_REQUIRE_ORDERED         Reject tasks whose end is not after start (default: false)
  ADS_DISPLAY_FORMAT                     Listing format: text, json or yaml (default: text)
  ADS_DISPLAY_SHOW_SUMMARY               Print a summary after View Tasks (default: false)
  ADS_APP_TIMEOUT                        Per-operation timeout (default: 30s)
  ADS_APP_VERBOSE                        Debug logging (default: false)
  ADS_DEBUG                              Debug logging, set to any value

EXAMPLES:
  ads                                    # Open the menu
  ads --store sqlite --summary           # Menu backed by in-memory SQLite, with summaries
  ads demo observer                      # Run one design pattern demo
  ads demo all                           # Run every demo`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runMenu(cmd.Context())
		},
	}
	root.cmd.SetIn(in)
	root.cmd.SetOut(out)

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides the command line arguments, mainly for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration resolved for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (.toml or .yaml)")

	// Store configuration
	flags.String("store", "", "Task store: memory or sqlite (overrides ADS_STORE_BACKEND)")
	flags.Duration("store-timeout", 0, "Store statement timeout (overrides ADS_STORE_QUERY_TIMEOUT)")

	// Time configuration
	flags.String("input-format", "", "Go layout for typed times (overrides ADS_TIME_INPUT_FORMAT)")
	flags.String("time-format", "", "Go layout for listed times (overrides ADS_TIME_DISPLAY_FORMAT)")

	// Validation configuration
	flags.Int("description-max", 0, "Maximum description length, 0 for no limit (overrides ADS_VALIDATION_DESCRIPTION_MAX)")
	flags.Bool("require-ordered", false, "Reject tasks whose end is not after start (overrides ADS_VALIDATION_REQUIRE_ORDERED)")

	// Display configuration
	flags.String("format", "", "Listing format: text, json or yaml (overrides ADS_DISPLAY_FORMAT)")
	flags.Bool("summary", false, "Print a summary after View Tasks (overrides ADS_DISPLAY_SHOW_SUMMARY)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Per-operation timeout (overrides ADS_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug logging (overrides ADS_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive schedule menu",
		Long:  "Open the interactive menu. This is also what ads does without a subcommand.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runMenu(cmd.Context())
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo [" + strings.Join(patterns.Names(), "|") + "|all]",
		Short: "Run a design pattern demonstration",
		Long: `Run one of the bundled design pattern demonstrations, or all of them.

Available demos:
` + demoList(),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: append(patterns.Names(), patterns.All),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := patterns.All
			if len(args) == 1 {
				name = args[0]
			}
			return patterns.Run(cmd.OutOrStdout(), name)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ads %s\n", Version)
			return err
		},
	}

	r.cmd.AddCommand(menuCmd, demoCmd, versionCmd)
}

func demoList() string {
	var b strings.Builder
	for _, d := range patterns.Demos() {
		fmt.Fprintf(&b, "  %-10s %s\n", d.Name, d.Description)
	}
	return b.String()
}

// runMenu builds the schedule for the resolved configuration and runs the menu on it.
func (r *RootCommand) runMenu(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := config.CreateStore(ctx, r.config)
	if err != nil {
		return err
	}
	sched := schedule.New(store, schedule.WithLogger(logging.Default()))
	defer sched.Close()

	logging.Default().Debug("schedule ready", "store", r.config.Store.Backend)

	app := NewApp(api.New(sched, r.config), r.config, r.in, r.out)
	return app.Run(ctx)
}

// loadConfig resolves the configuration from defaults, config file,
// environment and the flags that were set explicitly.
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("store") {
		v, _ := flags.GetString("store")
		overrides.StoreBackend = &v
	}
	if flags.Changed("store-timeout") {
		v, _ := flags.GetDuration("store-timeout")
		overrides.StoreQueryTimeout = &v
	}
	if flags.Changed("input-format") {
		v, _ := flags.GetString("input-format")
		overrides.InputFormat = &v
	}
	if flags.Changed("time-format") {
		v, _ := flags.GetString("time-format")
		overrides.DisplayFormat = &v
	}
	if flags.Changed("description-max") {
		v, _ := flags.GetInt("description-max")
		overrides.DescriptionMaxLength = &v
	}
	if flags.Changed("require-ordered") {
		v, _ := flags.GetBool("require-ordered")
		overrides.RequireOrderedInterval = &v
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		overrides.Format = &v
	}
	if flags.Changed("summary") {
		v, _ := flags.GetBool("summary")
		overrides.ShowSummary = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	loader := config.NewLoader()
	if path, _ := flags.GetString("config"); path != "" {
		loader.WithFile(path)
	}

	cfg, err := loader.LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if source := loader.Source(); source != "" {
		logging.Debugf("loaded config from %s", source)
	}

	logging.SetVerbose(cfg.Application.Verbose)
	r.config = cfg
	return nil
}

// DefaultRootCommand wires the root command to the process's standard streams.
func DefaultRootCommand() *RootCommand {
	return NewRootCommand(os.Stdin, os.Stdout)
}
