package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/glint-ui/glint/internal/config"
)

func initCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default glint.json",
		Long: `Create a glint.json with default settings in the current
directory. Refuses to overwrite an existing file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")

	return cmd
}

func runInit(name string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if config.Exists(cwd) {
		return fmt.Errorf("%s already exists", config.ConfigFileName)
	}

	if name == "" {
		name = filepath.Base(cwd)
	}

	cfg := config.New()
	cfg.Name = name
	cfg.Server.PageTitle = name

	if err := cfg.SaveTo(filepath.Join(cwd, config.ConfigFileName)); err != nil {
		return err
	}

	success("Created %s", config.ConfigFileName)
	info("Run `glint serve` to start the server")
	return nil
}
