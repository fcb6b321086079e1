// Package main provides the entry point for the pqcorpus fuzz-seed
// generator.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TFMV/pqcorpus/config"
	"github.com/TFMV/pqcorpus/logger"
	"github.com/TFMV/pqcorpus/pkg/core"
	"github.com/TFMV/pqcorpus/pkg/corpus"
	"github.com/TFMV/pqcorpus/version"
	"github.com/spf13/cobra"
)

// errUsage marks a command-line arity mistake, which exits with code 2.
var errUsage = errors.New("usage: pqcorpus <output-directory>")

type generateOptions struct {
	configPath string
	jsonReport bool
}

func newRootCommand() *cobra.Command {
	options := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "pqcorpus <output-directory>",
		Short: "pqcorpus generates Parquet files for use as fuzzing seeds",
		Long: `pqcorpus deterministically generates small Parquet files whose columns
are tuned to exercise specific physical encodings: dictionary, run-length,
plain, nested lists, and null handling. The output is meant as a seed
corpus for fuzzing Parquet readers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w (got %d arguments)", errUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.ErrOrStderr(), args[0], options)
		},
	}

	rootCmd.Flags().StringVar(&options.configPath, "config", "", "Optional YAML config overriding generation defaults")
	rootCmd.Flags().BoolVar(&options.jsonReport, "json-report", false, "Emit the run summary as JSON")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of pqcorpus",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pqcorpus v%s\n", version.GetVersion())
		},
	})
	rootCmd.AddCommand(newInspectCommand())

	return rootCmd
}

func runGenerate(ctx context.Context, errOut io.Writer, outDir string, options *generateOptions) error {
	cfg := config.Default()
	if options.configPath != "" {
		loaded, err := config.LoadConfig(options.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	scenarios := corpus.DefaultScenarios()
	for i := range scenarios {
		scenarios[i].Seed = cfg.Seed
		scenarios[i].Rows = cfg.Rows
	}
	writerCfg := core.WriterConfig{
		RowGroupSize: cfg.RowGroupSize,
		NoDictionary: cfg.NoDictionary,
	}

	log := logger.GetLogger()
	defer logger.Sync()

	runner := corpus.NewRunner(cfg.Prefix, writerCfg, log)
	rep, err := runner.Run(ctx, outDir, scenarios)
	if err != nil {
		return err
	}

	if options.jsonReport {
		return rep.WriteJSON(errOut)
	}
	return rep.WriteText(errOut)
}

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
