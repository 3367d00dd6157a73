package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "mediathek",
		Short:         "Organize personal videos and photos into a media library",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newPlaceCommand(ctx))
	rootCmd.AddCommand(newPlaceAllCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
