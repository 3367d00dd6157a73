package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mediathek/internal/config"
	"mediathek/internal/placement"
)

func newPlaceAllCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "place-all [dir]",
		Short: "Move every file under a directory into the library",
		Long: "Walk a directory tree and place each file, continuing past\n" +
			"individual failures. Defaults to the configured incoming directory.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.engine()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			inputDir := cfg.Paths.IncomingDir
			if len(args) == 1 {
				inputDir, err = config.ExpandPath(args[0])
				if err != nil {
					return err
				}
			}

			results, err := engine.PlaceAll(cmd.Context(), inputDir)
			if err != nil {
				return err
			}
			if jsonOut {
				return writePlaceAllJSON(cmd, results)
			}
			printPlaceAllResults(cmd, results)
			if failed := countFailures(results); failed > 0 {
				return fmt.Errorf("%d of %d files could not be placed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit per-file results as JSON")
	return cmd
}

func writePlaceAllJSON(cmd *cobra.Command, results []placement.Result) error {
	entries := make([]map[string]any, 0, len(results))
	for _, result := range results {
		entries = append(entries, placeResultJSON(result))
	}
	return writeJSON(cmd, map[string]any{"results": entries})
}

func printPlaceAllResults(cmd *cobra.Command, results []placement.Result) {
	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No files found")
		return
	}

	headers := []string{"Source", "Group", "Kind", "Result"}
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		outcome := result.FinalPath
		if result.Err != nil {
			outcome = "failed: " + result.Err.Error()
		}
		rows = append(rows, []string{result.Source, result.GroupID, result.Kind.String(), outcome})
	}

	if isTerminal(out) {
		fmt.Fprintln(out, renderTable(headers, rows, nil))
		return
	}
	fmt.Fprintln(out, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(out, strings.Join(row, "\t"))
	}
}

func countFailures(results []placement.Result) int {
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}
