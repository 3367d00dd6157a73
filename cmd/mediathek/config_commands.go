package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"mediathek/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "show",
		Short:       "Print the effective configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if flag := cmd.Flag("config"); flag != nil {
				path = flag.Value.String()
			}
			cfg, resolvedPath, exists, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# Config path: %s\n", resolvedPath)
			if !exists {
				fmt.Fprintln(out, "# File does not exist; showing defaults")
			}
			rendered, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			fmt.Fprint(out, string(rendered))
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to set the incoming and library directories before running mediathek.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}
