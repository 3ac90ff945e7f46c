package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshuapare/enumkit/internal/logger"
)

var (
	// Global flags
	quiet   bool
	jsonOut bool

	// cfg merges flags with ENUMCTL_* environment variables.
	cfg = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "enumctl",
	Short: "Inspect multiton enumerations",
	Long: `enumctl lists and queries enumeration types: the ones compiled into
the binary and the ones declared in a YAML definitions file.

The definitions file is taken from --file or ENUMCTL_FILE.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("file", "f", "", "YAML enumeration definitions")
	flags.BoolP("verbose", "v", false, "Log registry activity to stderr")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	flags.BoolVar(&jsonOut, "json", false, "Output in JSON format")

	cfg.SetEnvPrefix("enumctl")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	for _, name := range []string{"file", "verbose"} {
		if err := cfg.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func configureLogging() {
	if !cfg.GetBool("verbose") {
		return
	}
	logger.Init(logger.Options{
		Enabled: true,
		Output:  os.Stderr,
		Level:   slog.LevelDebug,
	})
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
