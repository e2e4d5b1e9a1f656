package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reqmig/reqmig/internal/config"
	"github.com/reqmig/reqmig/internal/manager"
	"github.com/reqmig/reqmig/internal/manager/custom"
	"github.com/reqmig/reqmig/internal/manager/pdm"
	"github.com/reqmig/reqmig/internal/manager/pipenv"
	"github.com/reqmig/reqmig/internal/manager/poetry"
	"github.com/reqmig/reqmig/internal/manager/uv"
	"github.com/reqmig/reqmig/internal/project"
)

// managersCmd represents the managers command.
var managersCmd = &cobra.Command{
	Use:   "managers",
	Short: "List supported package managers",
	Long: `List all supported package managers, whether each is installed,
and which one the current project appears to use.`,
	RunE: runManagers,
}

func init() {
	rootCmd.AddCommand(managersCmd)
}

// RegisterDefaultManagers registers all built-in managers with the given
// registry. Useful for testing with a fresh registry.
func RegisterDefaultManagers(r *manager.Registry) {
	r.Register(uv.New())
	r.Register(poetry.New())
	r.Register(pdm.New())
	r.Register(pipenv.New())
}

// newRegistry builds a registry with the built-in managers plus the
// custom manager from config, if one is defined.
func newRegistry(cfg *config.Config) *manager.Registry {
	r := manager.NewRegistry()
	RegisterDefaultManagers(r)
	if cfg != nil && cfg.Custom.Name != "" {
		r.Register(custom.New(cfg.Custom))
	}
	return r
}

// runManagers handles the managers command.
func runManagers(cmd *cobra.Command, args []string) error {
	projectDir, err := os.Getwd()
	if err != nil {
		return err
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadOrDefault(projectDir)
	if err != nil {
		return err
	}

	registry := newRegistry(cfg)
	managers := registry.All()
	available := registry.Available()

	info, err := project.Detect(projectDir)
	if err != nil {
		return err
	}

	cmd.Printf("Supported managers: %d\n", len(managers))
	cmd.Printf("Installed managers: %d\n", len(available))
	if len(info.Markers) > 0 {
		cmd.Printf("Project markers: %s\n", strings.Join(info.Markers, ", "))
	}
	cmd.Println("")

	for _, m := range managers {
		status := "not installed"
		if m.IsAvailable() {
			status = "installed"
		}
		marker := " "
		if m.Name() == info.ManagerHint || m.DetectsProject(projectDir) {
			marker = "*"
		}
		cmd.Printf("%s %s - %s (%s)\n", marker, m.Name(), m.Description(), status)
	}

	cmd.Println("\n* detected in the current project")
	return nil
}
