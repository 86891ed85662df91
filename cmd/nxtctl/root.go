package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/braxtons12/C2nxt/internal/config"
	"github.com/braxtons12/C2nxt/internal/logger"
	"github.com/braxtons12/C2nxt/std/alloc"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	cfgFile string
	output  string

	// Set up by loadConfig before any subcommand runs.
	cfg          *config.Config
	byteAlloc    alloc.Allocator[byte]
	releaseAlloc = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "nxtctl",
	Short: "Exercise the C2nxt containers from the command line",
	Long: `nxtctl drives the C2nxt strings, vectors and allocators so their
behaviour (small-string storage, growth, searching and splitting) can be
inspected without writing a program.

Settings come from nxtctl.yaml in the working directory (or --config) and
NXTCTL_* environment variables, e.g. NXTCTL_ALLOCATOR_KIND=pages.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return loadConfig(cmd) },
	PersistentPostRun: func(cmd *cobra.Command, args []string) { releaseAlloc() },
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is ./nxtctl.yaml)")
	rootCmd.PersistentFlags().
		StringVarP(&output, "output", "o", config.OutputText, "Output format: text, json or yaml")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads settings, starts logging and builds the string allocator.
func loadConfig(cmd *cobra.Command) error {
	v := viper.New()
	if err := v.BindPFlag("output", cmd.Flags().Lookup("output")); err != nil {
		return err
	}
	if err := config.Setup(v, cfgFile); err != nil {
		return err
	}
	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	logger.Init(loaded.LoggerOptions(verbose))

	a, release, err := loaded.NewAllocator()
	if err != nil {
		return err
	}
	cfg, byteAlloc, releaseAlloc = loaded, a, release
	output = loaded.Output
	logger.Debug("configured", "allocator", loaded.Allocator.Kind, "output", output)
	return nil
}

// Helper functions for output

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printResult writes v in the selected structured format, or calls text for
// plain output.
func printResult(v any, text func(w io.Writer)) error {
	switch output {
	case config.OutputJSON:
		return printJSON(v)
	case config.OutputYAML:
		return printYAML(v)
	case config.OutputText, "":
		if !quiet {
			text(os.Stdout)
		}
		return nil
	}
	return errors.Newf("unknown output format %q", output)
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printYAML outputs data as YAML
func printYAML(v any) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
