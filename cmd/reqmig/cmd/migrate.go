package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/reqmig/reqmig/internal/config"
	"github.com/reqmig/reqmig/internal/logging"
	"github.com/reqmig/reqmig/internal/manager"
	"github.com/reqmig/reqmig/internal/migrate"
	"github.com/reqmig/reqmig/internal/requirements"
	"github.com/reqmig/reqmig/internal/tui"
	"github.com/reqmig/reqmig/internal/tui/styles"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate a requirements file into the target package manager",
	Long: `Migrate the dependencies in a requirements file into the target
package manager's project.

Each dependency line is handed to the manager's add command exactly as it
appears in the file, one at a time and in file order. Blank lines and
comments are skipped. The manager does its own resolution and lockfile
updates; reqmig never interprets version specifiers itself.

Examples:
  reqmig migrate                        # Auto-detect manager, use ./requirements.txt
  reqmig migrate -m uv                  # Force uv
  reqmig migrate -f reqs/prod.txt       # Use a specific requirements file
  reqmig migrate --dry-run              # Show what would run without running it
  reqmig migrate --halt-on-error        # Stop at the first failed add
  reqmig migrate --extra-arg=--group --extra-arg=dev  # Pass args to every add`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	addMigrateFlags(migrateCmd)
	// The bare "reqmig" invocation delegates to runMigrate, so the root
	// command carries the same flags.
	addMigrateFlags(rootCmd)
}

// addMigrateFlags registers the migration flags on a command.
func addMigrateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Path to the requirements file (default: requirements.txt)")
	cmd.Flags().StringP("manager", "m", "", "Package manager to use (uv, poetry, pdm, pipenv, or a custom name)")
	cmd.Flags().Bool("dry-run", false, "List the commands that would run without running them")
	cmd.Flags().Bool("halt-on-error", false, "Stop at the first dependency that fails to add")
	cmd.Flags().StringArray("extra-arg", nil, "Extra argument passed to every add invocation (repeatable)")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("tui", false, "Run with the interactive terminal interface")
}

// runMigrate is the main entry point for the migrate command.
func runMigrate(cmd *cobra.Command, args []string) error {
	filePath, _ := cmd.Flags().GetString("file")
	managerName, _ := cmd.Flags().GetString("manager")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	haltOnError, _ := cmd.Flags().GetBool("halt-on-error")
	extraArgs, _ := cmd.Flags().GetStringArray("extra-arg")
	verbose, _ := cmd.Flags().GetBool("verbose")
	useTUI, _ := cmd.Flags().GetBool("tui")

	// Get the current working directory as project dir
	projectDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	// Load configuration (defaults when no .reqmig/config.yaml exists)
	loader := config.NewLoader()
	cfg, err := loader.LoadOrDefault(projectDir)
	if err != nil {
		return err
	}

	// Flags override config
	if filePath != "" {
		cfg.Requirements.Path = filePath
	}
	if managerName != "" {
		cfg.Manager.Default = managerName
	}
	if haltOnError {
		cfg.Migrate.OnFailure = config.FailureHalt
	}
	cfg.Manager.ExtraArgs = append(cfg.Manager.ExtraArgs, extraArgs...)

	// Initialize logging
	logLevel := logging.LevelInfo
	if verbose {
		logLevel = logging.LevelDebug
	}
	logConfig := &logging.Config{
		Level:       logLevel,
		LogDir:      filepath.Join(projectDir, ".reqmig", "logs"),
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
		Console:     false, // Don't mix console output with progress/TUI
		JSONFormat:  false,
	}
	if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: warn but continue without file logging
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		defer func() { _ = logging.CloseGlobal() }()
		logging.Info("reqmig starting", "version", Version, "verbose", verbose)
	}

	// Read the requirements file up front. A missing file fails the whole
	// run before any manager is invoked.
	reqPath := cfg.Requirements.Path
	if !filepath.IsAbs(reqPath) {
		reqPath = filepath.Join(projectDir, reqPath)
	}
	file, err := requirements.ReadFile(reqPath)
	if err != nil {
		return err
	}

	// Select the package manager
	registry := newRegistry(cfg)
	discovery := manager.NewDiscovery(registry)
	selected, err := discovery.Select(cfg.Manager.Default, projectDir)
	if err != nil {
		return err
	}

	// Set up cancellation context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		cancel()
	}()

	opts := migrate.DefaultOptions()
	opts.OnFailure = cfg.Migrate.OnFailure
	opts.Timeout = cfg.Migrate.Timeout
	opts.DryRun = dryRun
	opts.ExtraArgs = cfg.Manager.ExtraArgs

	if useTUI {
		return runMigrateTUI(ctx, cancel, selected, projectDir, file, opts)
	}
	return runMigratePlain(ctx, cmd, selected, projectDir, file, opts, verbose)
}

// runMigratePlain executes the migration with line-based progress output.
func runMigratePlain(ctx context.Context, cmd *cobra.Command, selected manager.Manager, projectDir string, file *requirements.File, opts *migrate.Options, verbose bool) error {
	out := cmd.OutOrStdout()
	counts := file.Counts()

	fmt.Fprintf(out, "Migrating %s with %s (%d dependencies)\n",
		file.Path, selected.Name(), counts.Spec)

	opts.OnEvent = func(ev migrate.Event) {
		switch ev.Type {
		case migrate.EventDepStarted:
			fmt.Fprintf(out, "Adding %s (%d/%d)\n", ev.Spec, ev.Index, ev.Total)
		case migrate.EventDepAdded:
			fmt.Fprintf(out, "  %s %s\n", styles.SuccessStyle.Render("added"), ev.Spec)
		case migrate.EventDepSkipped:
			fmt.Fprintf(out, "  %s %s (dry run)\n", styles.WarningStyle.Render("skipped"), ev.Spec)
		case migrate.EventDepFailed:
			fmt.Fprintf(out, "  %s %s: %v\n", styles.ErrorStyle.Render("failed"), ev.Spec, ev.Err)
		}
	}
	if verbose {
		opts.LogWriter = out
	}

	migrator := migrate.New(selected, projectDir, opts)
	summary, err := migrator.Run(ctx, file)
	if summary != nil {
		printSummary(cmd, summary)
	}
	// In halt mode Run returns the failure; in continue mode per-line
	// failures are reported in the summary and the run still succeeds.
	return err
}

// runMigrateTUI executes the migration behind the interactive interface.
func runMigrateTUI(ctx context.Context, cancel context.CancelFunc, selected manager.Manager, projectDir string, file *requirements.File, opts *migrate.Options) error {
	counts := file.Counts()

	model := tui.NewModel(selected.Name(), file.Path, counts.Spec, cancel)
	runner := tui.NewRunner(model)

	opts.OnEvent = runner.HandleEvent
	writer := runner.OutputWriter()
	opts.LogWriter = writer

	migrator := migrate.New(selected, projectDir, opts)
	return runner.Run(func() error {
		defer writer.Flush()
		_, err := migrator.Run(ctx, file)
		return err
	})
}

// printSummary writes the final migration summary.
func printSummary(cmd *cobra.Command, summary *migrate.Summary) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "")
	if summary.Skipped > 0 {
		fmt.Fprintf(out, "Dry run: %d of %d dependencies would be added\n",
			summary.Skipped, summary.Total)
		return
	}

	fmt.Fprintf(out, "Done: %d added, %d failed (of %d) in %s\n",
		summary.Added, summary.Failed, summary.Total, summary.Duration.Round(time.Millisecond))

	if summary.Failed > 0 {
		fmt.Fprintln(out, "Failed dependencies:")
		for _, r := range summary.Results {
			if !r.Ok {
				fmt.Fprintf(out, "  %s (exit code %d)\n", r.Spec, r.ExitCode)
			}
		}
	}
}
