package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reqmig/reqmig/internal/config"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize reqmig in the current project",
	Long: `Initialize reqmig in the current project.

This command creates the .reqmig directory with a default configuration:
  - .reqmig/config.yaml    Default configuration

Use --force to overwrite an existing configuration.

Examples:
  reqmig init               # Initialize in current directory
  reqmig init --manager uv  # Initialize with uv as the default manager
  reqmig init --force       # Overwrite existing configuration`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite existing configuration")
	initCmd.Flags().StringP("manager", "m", "", "Default package manager to record in the config")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	managerName, _ := cmd.Flags().GetString("manager")

	projectDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	configPath := filepath.Join(projectDir, config.DefaultConfigPath)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.DefaultConfigPath)
	}

	cfg := config.NewConfig()
	if managerName != "" {
		cfg.Manager.Default = managerName
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	cmd.Printf("Created %s\n", config.DefaultConfigPath)
	cmd.Println("")
	cmd.Println("reqmig initialized successfully!")
	cmd.Println("Edit .reqmig/config.yaml to configure your settings.")
	cmd.Println("Run 'reqmig migrate' to migrate requirements.txt.")

	return nil
}
