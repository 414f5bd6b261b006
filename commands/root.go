package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-timesheets/internal/config"
	"github.com/penwyp/go-timesheets/internal/data/scanner"
	"github.com/penwyp/go-timesheets/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug   bool
	logFile string

	// Config file, optional
	configFile string

	rootCmd = &cobra.Command{
		Use:   "go-timesheets",
		Short: "Timesheet hours aggregation tool",
		Long: `go-timesheets totals the hours recorded in spreadsheet timesheets.

Each sheet is expected to carry a header row followed by one entry per row:
column A holds the date, B the start time, C the end time and E the client.

Examples:
  go-timesheets client Acme week1.xlsx week2.xlsx
  go-timesheets client Acme hours.xlsx -s 2023-03-01 -e 2023-03-31 -v
  go-timesheets client Acme hours.xlsx --output json
  go-timesheets client Acme hours.csv --watch`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", config.DefaultLogFile,
		"Log file path (empty disables file logging)")
}

func Execute() error {
	return rootCmd.Execute()
}

// ErrorMessage renders err for the terminal. Rejected input paths read
// "File does not exist: <path>" or "Not a file: <path>".
func ErrorMessage(err error) string {
	var pathErr *scanner.PathError
	if errors.As(err, &pathErr) {
		switch {
		case errors.Is(pathErr.Err, scanner.ErrFileNotExist):
			return "File does not exist: " + pathErr.Path
		case errors.Is(pathErr.Err, scanner.ErrNotAFile):
			return "Not a file: " + pathErr.Path
		case errors.Is(pathErr.Err, scanner.ErrNotReadable):
			return "File is not readable: " + pathErr.Path
		}
	}
	return "Error: " + err.Error()
}

// setupLogging installs the global logger. Debug mode adds console logging on
// stderr so that stdout stays reserved for results.
func setupLogging(cmd *cobra.Command, cfg *config.Config) error {
	logLevel := "info"
	var console io.Writer
	if debug {
		logLevel = "debug"
		console = cmd.ErrOrStderr()
	}

	path := cfg.LogFile
	if cmd.Flags().Changed("log-file") {
		path = logFile
	}
	if path != "" {
		path = expandPath(path)
		if err := ensureDir(filepath.Dir(path)); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	return util.InitLogger(util.LoggerOptions{
		Level:   logLevel,
		LogFile: path,
		Console: console,
		Format:  util.LogFormat(cfg.LogFormat),
	})
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
