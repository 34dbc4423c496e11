package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"computesales/internal/common"
	"computesales/internal/config"
	"computesales/internal/logging"
	"computesales/internal/pipeline"
	"computesales/internal/report"

	"github.com/spf13/cobra"
)

const usage = "Usage: computesales priceCatalogue.json salesRecord.json"

var errUsage = errors.New("usage")

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and maps the outcome to an exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, pipeline.ErrFatal):
		// Already reported on stdout.
		return 1
	default:
		fmt.Fprintln(stdout, usage)
		return 1
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "computesales priceCatalogue.json salesRecord.json",
		Short: "Compute the total cost of a sales record against a price catalogue",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errUsage
			}
			return nil
		},
		// Both arguments are paths, even when one starts with '-', and
		// -h is just a wrong argument count.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				common.Diagnose(stdout, common.TagFatal, "Invalid configuration: %v", err)
				return fmt.Errorf("%w: %w", pipeline.ErrFatal, err)
			}

			logger, _ := logging.WithRun(logging.New(cfg.LogFormat, cfg.LogLevel, stderr))
			logger.Debug().Strs("args", args).Msg("run started")

			_, err = pipeline.Run(pipeline.Options{
				CatalogPath: args[0],
				SalesPath:   args[1],
				ResultsPath: report.ResultsFile,
				Out:         stdout,
				Logger:      logger,
			})
			if err != nil && !errors.Is(err, pipeline.ErrFatal) {
				// Results could not be printed or written.
				common.Diagnose(stdout, common.TagFatal, "%v", err)
				return fmt.Errorf("%w: %w", pipeline.ErrFatal, err)
			}
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}
