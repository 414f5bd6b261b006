package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/penwyp/go-timesheets/internal/analyzer"
	"github.com/penwyp/go-timesheets/internal/config"
	"github.com/penwyp/go-timesheets/internal/core/model"
	"github.com/penwyp/go-timesheets/internal/core/timesheet"
	"github.com/penwyp/go-timesheets/internal/data/scanner"
	"github.com/penwyp/go-timesheets/internal/data/watcher"
	"github.com/penwyp/go-timesheets/internal/presentation/formatter"
	"github.com/penwyp/go-timesheets/internal/util"
	"github.com/spf13/cobra"
)

// watchQuiet is how long the files must stay unchanged before a rerun.
const watchQuiet = 500 * time.Millisecond

var (
	// Date window
	startDate string
	endDate   string

	// Output related
	verbose      bool
	outputFormat string

	// Parsing
	timeFormat string

	watch bool

	clientCmd = &cobra.Command{
		Use:   "client <client> <file>...",
		Short: "Total the hours worked for a client",
		Long: `Reads every sheet of every file in order and totals the rows whose client
column (E) equals <client> exactly and whose start falls inside the date window.

Both --start-date and --end-date are inclusive calendar dates (2006-01-02, or
01/02/2006 month first). A missing or non-regular input file stops the run before any later
file is read. Rows whose times cannot be parsed are skipped and logged.`,
		Args: cobra.MinimumNArgs(2),
		RunE: runClient,
	}
)

func init() {
	rootCmd.AddCommand(clientCmd)

	// Time filtering
	clientCmd.Flags().StringVarP(&startDate, "start-date", "s", timesheet.DefaultStartDate,
		"First day to include")
	clientCmd.Flags().StringVarP(&endDate, "end-date", "e", timesheet.DefaultEndDate,
		"Last day to include")

	// Output configuration
	clientCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Print each sheet title and each matched duration")
	clientCmd.Flags().StringVarP(&outputFormat, "output", "o", model.OutputText,
		"Output format (text, json, csv, table)")

	// Parsing
	clientCmd.Flags().StringVar(&timeFormat, "time-format", timesheet.DefaultTimeLayout,
		"Go time layout for \"<date> <time>\" cell values")

	clientCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Recompute whenever an input file changes")
}

func runClient(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := setupLogging(cmd, cfg); err != nil {
		return err
	}
	defer util.SetLogger(nil)

	output := stringOption(cmd, "output", outputFormat, cfg.Output)
	f, err := formatter.NewFormatter(output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	dateRange, err := timesheet.ParseDateRange(
		stringOption(cmd, "start-date", startDate, cfg.StartDate),
		stringOption(cmd, "end-date", endDate, cfg.EndDate),
	)
	if err != nil {
		return err
	}

	analyzerConfig := &analyzer.Config{
		Client:     args[0],
		Files:      args[1:],
		Range:      dateRange,
		TimeLayout: stringOption(cmd, "time-format", timeFormat, cfg.TimeFormat),
	}

	var opts []analyzer.Option
	if verbose {
		w := verboseWriter(cmd, output)
		opts = append(opts, analyzer.WithVerboseOutput(w, colorFor(w)))
	}
	a := analyzer.New(analyzerConfig, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runAndFormat(ctx, a, f); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchFiles(ctx, cmd, analyzerConfig.Files, a, f)
}

func runAndFormat(ctx context.Context, a *analyzer.Analyzer, f formatter.Formatter) error {
	report, err := a.Run(ctx)
	if err != nil {
		return err
	}
	return f.Format(report)
}

// watchFiles reruns the analysis after every burst of changes until ctx is
// done. Errors from a rerun are reported and the watch goes on, since a file
// may be caught halfway through being saved.
func watchFiles(ctx context.Context, cmd *cobra.Command, files []string, a *analyzer.Analyzer, f formatter.Formatter) error {
	fileScanner := scanner.NewFileScanner(files)
	if err := fileScanner.Scan(); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(fileScanner.AbsPaths())
	if err != nil {
		return fmt.Errorf("failed to start watching: %w", err)
	}
	defer fw.Close()

	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "Watching %d files, press Ctrl+C to stop\n", len(files))
	util.LogInfof("Watching %d files", len(files))

	fw.Run(ctx, watchQuiet, func(events []watcher.FileEvent) {
		util.LogInfof("Recomputing after %d file events", len(events))
		fmt.Fprintln(errOut, util.FormatSectionSeparator(40))
		if err := runAndFormat(ctx, a, f); err != nil {
			if ctx.Err() != nil {
				return
			}
			util.LogWarn("Rerun failed", util.Field{Key: "error", Value: err.Error()})
			fmt.Fprintln(errOut, ErrorMessage(err))
		}
	})
	return nil
}

// stringOption prefers a flag given on the command line over the config value.
func stringOption(cmd *cobra.Command, name, flagValue, configValue string) string {
	if cmd.Flags().Changed(name) || configValue == "" {
		return flagValue
	}
	return configValue
}

// verboseWriter keeps machine-readable outputs on stdout free of verbose lines.
func verboseWriter(cmd *cobra.Command, output string) io.Writer {
	if output == model.OutputText || output == "" {
		return cmd.OutOrStdout()
	}
	return cmd.ErrOrStderr()
}

func colorFor(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return util.ColorEnabled(file)
	}
	return false
}
