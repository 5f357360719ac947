package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cmnlog "github.com/msto63/commons/foundation/core/log"
	"github.com/msto63/commons/pkg/core/config"
	"github.com/msto63/commons/pkg/core/toolbox"
)

var (
	cfgFile string
	verbose bool

	// tb is built before every command from --config
	tb *toolbox.Toolbox
)

var rootCmd = &cobra.Command{
	Use:   "commons",
	Short: "Shared service utilities",
	Long: `commons bundles the codecs, hashing helpers, validators and
exception taxonomy shared by services.

Commands:
  base64    - Base64 conversions with URL-safe variants
  hash      - SHA-256, double SHA-256 and SHA-256+RIPEMD-160 digests
  hashcode  - Hash code of a string, number or boolean
  email     - Email address validation
  codes     - Exception kinds and their HTTP status codes`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports a failure through the toolbox
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if tb != nil {
			tb.Report(err)
		} else {
			printError("command failed", err)
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML (default: $COMMONS_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the configuration and builds the toolbox. Diagnostics always
// go to stderr so command output stays clean.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	cfg.Log.Output = config.OutputStderr

	tb, err = toolbox.New(cfg)
	if err != nil {
		return err
	}

	if verbose {
		tb.Loggers().SetLevel(cmnlog.LevelDebug)
	} else {
		tb.Loggers().SetLevel(cmnlog.LevelError)
	}
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
