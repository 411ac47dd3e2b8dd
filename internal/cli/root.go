package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fjglira/go-restdocs/internal/config"
	"github.com/fjglira/go-restdocs/internal/domain"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	log     = logrus.New()
)

// rootCmd is the base command for restdocs.
var rootCmd = &cobra.Command{
	Use:   "restdocs",
	Short: "Inspect REST API documentation runs",
	Long: `restdocs tracks documentation runs of RESTful API tests: which test is being
documented and how many steps it has produced so far.

Output locations are driven by a YAML configuration file (restdocs.yaml).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.InfoLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "restdocs.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "resolve output locations but don't create directories")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// configureLogger applies the logging section of cfg. --verbose wins over logging.level.
func configureLogger(cfg *config.Config) error {
	if !verbose && cfg.Logging.Level != "" {
		level, err := logrus.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return domain.NewError("config", "", 0, "invalid logging.level", err)
		}
		log.SetLevel(level)
	}

	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return domain.NewErrorWithSuggestion("config", "", 0,
				"failed to open log file "+cfg.Logging.File,
				"check logging.file in restdocs.yaml",
				err)
		}
		log.SetOutput(f)
	}
	return nil
}
