package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/usdfmt/internal/config"
	"github.com/rpgo/usdfmt/internal/currency"
	"github.com/rpgo/usdfmt/internal/localization"
	"github.com/rpgo/usdfmt/internal/logging"
)

var version = "dev"

var (
	configFile  string
	phrasesFile string
	verbose     bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "usdfmt",
		Short: "usdfmt - render USD amounts for display",
		Long: `usdfmt renders non-negative USD amounts as display strings, picking
the precision from the magnitude of each value.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&phrasesFile, "phrases", "", "YAML localization phrases file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newFormatCmd())
	root.AddCommand(newBandsCmd())
	return root
}

func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildFormatter loads configuration and phrases from the persistent flags.
func buildFormatter(stderr io.Writer) (*currency.Formatter, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.NewInputParser().LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	phrases, err := cfg.LoadPhrases()
	if err != nil {
		return nil, err
	}
	if phrasesFile != "" {
		override, err := localization.NewLoader().LoadFromFile(phrasesFile)
		if err != nil {
			return nil, err
		}
		phrases = localization.Merge(phrases, override)
	}

	logger := logging.New(stderr, verbose)
	logger.Debugf("loaded %d phrases", len(phrases))
	opts := append(cfg.Options(), currency.WithLogger(logger))
	return currency.NewFormatter(phrases, opts...)
}
