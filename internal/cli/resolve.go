package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fjglira/go-restdocs/internal/config"
	"github.com/fjglira/go-restdocs/internal/domain"
	"github.com/fjglira/go-restdocs/internal/restdocs"
)

var (
	methodFlag string
	suiteFlag  string
	stepsFlag  int
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the output directories a documentation run would use",
	Long: `Starts a documentation run for the given test method, advances it by --steps
steps and prints the output directory resolved for each step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
		if dryRun {
			cfg.DryRun = true
		}
		if err := configureLogger(cfg); err != nil {
			return err
		}
		if stepsFlag < 1 {
			return fmt.Errorf("--steps must be at least 1 (got %d)", stepsFlag)
		}

		var tc restdocs.StaticTestContext
		if methodFlag != "" {
			tc.Method = &domain.TestMethod{Name: methodFlag, Suite: suiteFlag}
		}

		return runResolve(cmd, cfg, tc, stepsFlag)
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&methodFlag, "method", "m", "", "name of the test method being documented")
	resolveCmd.Flags().StringVar(&suiteFlag, "suite", "", "enclosing test or container of the method")
	resolveCmd.Flags().IntVarP(&stepsFlag, "steps", "n", 1, "number of steps to resolve")
	rootCmd.AddCommand(resolveCmd)
}

// runResolve performs one documentation run and prints each step's directory.
func runResolve(cmd *cobra.Command, cfg *config.Config, tc restdocs.TestExecutionContext, steps int) error {
	m := restdocs.NewManager(cfg, log)
	if _, err := m.BeforeTest(tc); err != nil {
		return err
	}
	defer m.AfterTest()

	for i := 0; i < steps; i++ {
		step, err := m.NextStep()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", step.Number, step.Directory)
	}
	return nil
}
