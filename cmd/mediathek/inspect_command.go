package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mediathek/internal/config"
	"mediathek/internal/naming"
	"mediathek/internal/placement"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show where a file would be placed without moving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.engine()
			if err != nil {
				return err
			}
			source, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			report, err := engine.Inspect(cmd.Context(), source)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, inspectReportJSON(report))
			}
			printInspectReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the report as JSON")
	return cmd
}

func inspectReportJSON(report placement.Report) map[string]any {
	entry := map[string]any{
		"source":   report.Source,
		"kind":     report.Kind.String(),
		"group_id": report.GroupID,
		"title":    report.Title,
	}
	if !report.Date.Date.IsZero() {
		entry["date"] = report.Date.ISO()
		entry["date_source"] = string(report.Date.Source)
	}
	if len(report.Segments) > 0 {
		entry["categories"] = report.Segments
	}
	if report.TargetPath != "" {
		entry["target"] = report.TargetPath
	}
	if len(report.GroupDirs) > 1 {
		entry["conflicting_dirs"] = report.GroupDirs
	}
	return entry
}

func printInspectReport(cmd *cobra.Command, report placement.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source:   %s\n", report.Source)
	fmt.Fprintf(out, "Kind:     %s\n", report.Kind)
	fmt.Fprintf(out, "Title:    %s\n", naming.DisplayTitle(report.Title))
	if !report.Date.Date.IsZero() {
		fmt.Fprintf(out, "Date:     %s (%s)\n", report.Date.ISO(), report.Date.Source)
	}
	fmt.Fprintf(out, "Group:    %s\n", report.GroupID)
	if len(report.Segments) > 0 {
		fmt.Fprintf(out, "Category: %s\n", strings.Join(report.Segments, "/"))
	}
	if len(report.GroupDirs) > 1 {
		fmt.Fprintf(out, "Conflict: group found under %s\n", strings.Join(report.GroupDirs, ", "))
		return
	}
	fmt.Fprintf(out, "Target:   %s\n", report.TargetPath)
}
