package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/logger"
	"github.com/joshuapare/lnkkit/pkg/lnk"
	"github.com/joshuapare/lnkkit/pkg/types"
)

var (
	// Global flags
	configPath string
	verbose    bool
	quiet      bool
	outFormat  string
	codePage   string

	// settings is the merged configuration for the running command.
	settings = defaultConfig()

	out      io.Writer = os.Stdout
	closeLog           = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "lnkctl",
	Short: "Inspect Windows shell link (.lnk) files",
	Long: `lnkctl decodes Windows Shell Link files and reports their header,
target location, string data and extra data blocks. It never follows the
link or touches the target.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./lnkctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "format", "f", "", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&codePage, "codepage", "", "Code page for ANSI strings (e.g. windows-1252, cp437, shift_jis)")
}

func execute() {
	err := rootCmd.Execute()
	_ = closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the configuration and initialises logging before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logCfg := cfg.Log
	switch {
	case verbose:
		logCfg.Level = "debug"
	case quiet:
		logCfg.Level = "error"
	}
	closeFn, err := logger.Init(logger.Config{Level: logCfg.Level, Format: logCfg.Format, Output: logCfg.Output})
	if err != nil {
		return err
	}
	_ = closeLog()
	closeLog = closeFn

	settings = cfg
	logger.L.Debug("configuration loaded", "file", cfg.source, "codepage", cfg.CodePage,
		"format", cfg.Output.Format, "workers", cfg.Scan.Workers, "max_file_size", cfg.MaxFileSize.String())
	return nil
}

// decodeOptions turns the active settings into decoder options.
func decodeOptions() ([]lnk.Option, error) {
	enc, err := format.ResolveCodePage(settings.CodePage)
	if err != nil {
		return nil, err
	}
	return []lnk.Option{
		lnk.WithLogger(logger.L),
		lnk.WithCodePage(enc),
		lnk.WithLimits(types.Limits{MaxFileSize: int64(settings.MaxFileSize)}),
	}, nil
}

// decodeFile decodes path with the active settings.
func decodeFile(path string) (*lnk.ShellLink, error) {
	opts, err := decodeOptions()
	if err != nil {
		return nil, err
	}
	printVerbose("Decoding: %s\n", path)
	return lnk.DecodeFile(path, opts...)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(out, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(out, format, args...)
	}
}
