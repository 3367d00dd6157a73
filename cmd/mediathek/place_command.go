package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mediathek/internal/config"
	"mediathek/internal/metadata"
	"mediathek/internal/placement"
)

func newPlaceCommand(ctx *commandContext) *cobra.Command {
	var dateFlag string
	var titleFlag string
	var categoriesFlag string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "place <file>",
		Short: "Move a single file into the library",
		Long: "Classify a file, resolve its recording date, title, and category,\n" +
			"and move it to its canonical place in the library. Embedded metadata\n" +
			"is honored when present; the flags below override it.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.engine()
			if err != nil {
				return err
			}
			source, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			fields, err := metadata.Read(source)
			if err != nil {
				fields = metadata.Fields{}
			}
			if value := strings.TrimSpace(dateFlag); value != "" {
				fields.RecordingDate = value
			}
			if value := strings.TrimSpace(titleFlag); value != "" {
				fields.Title = value
			}
			if value := strings.TrimSpace(categoriesFlag); value != "" {
				fields.Categories = value
			}

			result, err := engine.Place(cmd.Context(), source, fields)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, placeResultJSON(result))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Placed %s\n", result.FinalPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Recording date override (any supported date form)")
	cmd.Flags().StringVar(&titleFlag, "title", "", "Title override")
	cmd.Flags().StringVar(&categoriesFlag, "categories", "", "Comma-separated category override")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the placement result as JSON")
	return cmd
}

func placeResultJSON(result placement.Result) map[string]any {
	entry := map[string]any{
		"source":   result.Source,
		"group_id": result.GroupID,
		"kind":     result.Kind.String(),
	}
	if result.FinalPath != "" {
		entry["final_path"] = result.FinalPath
	}
	if result.Err != nil {
		entry["error"] = result.Err.Error()
	}
	return entry
}
