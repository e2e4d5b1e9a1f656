package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// newTestRoot creates a fresh command hierarchy for testing.
// This is necessary because Cobra commands maintain state between runs.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "reqmig",
		Short: "Migrate requirements.txt dependencies to a modern package manager",
		Long: `Reqmig migrates the dependencies listed in a requirements.txt file
into a modern Python package manager project.`,
	}
	root.Version = "test"
	root.SetVersionTemplate("reqmig {{.Version}}\n")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate a requirements file into the target package manager",
		RunE:  runMigrate,
	}
	addMigrateFlags(migrate)
	root.AddCommand(migrate)

	initC := &cobra.Command{
		Use:   "init",
		Short: "Initialize reqmig in the current project",
		RunE:  runInit,
	}
	initC.Flags().Bool("force", false, "Overwrite existing configuration")
	initC.Flags().StringP("manager", "m", "", "Default package manager to record in the config")
	root.AddCommand(initC)

	managersC := &cobra.Command{
		Use:   "managers",
		Short: "List supported package managers",
		RunE:  runManagers,
	}
	root.AddCommand(managersC)

	versionC := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE:  runVersion,
	}
	root.AddCommand(versionC)

	return root
}

// execute runs the command with args and captures combined output.
func execute(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantOutput string
	}{
		{
			name:       "help flag",
			args:       []string{"--help"},
			wantErr:    false,
			wantOutput: "Available Commands:",
		},
		{
			name:       "version flag",
			args:       []string{"--version"},
			wantErr:    false,
			wantOutput: "reqmig test",
		},
		{
			name:    "unknown command",
			args:    []string{"definitely-not-a-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newTestRoot()
			output, err := execute(t, root, tt.args...)

			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantOutput != "" && !strings.Contains(output, tt.wantOutput) {
				t.Errorf("output %q does not contain %q", output, tt.wantOutput)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	root := newTestRoot()
	output, err := execute(t, root, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(output, "reqmig") {
		t.Errorf("version output %q does not mention reqmig", output)
	}
}

func TestManagersCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, "pdm.lock"), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newTestRoot()
	output, err := execute(t, root, "managers")
	if err != nil {
		t.Fatalf("managers command failed: %v", err)
	}

	if !strings.Contains(output, "Supported managers: 4") {
		t.Errorf("output %q does not list 4 supported managers", output)
	}
	for _, name := range []string{"uv", "poetry", "pdm", "pipenv"} {
		if !strings.Contains(output, name) {
			t.Errorf("output %q does not mention %s", output, name)
		}
	}
	if !strings.Contains(output, "Project markers: pdm.lock") {
		t.Errorf("output %q does not report the pdm.lock marker", output)
	}
	if !strings.Contains(output, "* pdm") {
		t.Errorf("output %q does not flag pdm as detected", output)
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	root := newTestRoot()
	output, err := execute(t, root, "init", "--manager", "uv")
	if err != nil {
		t.Fatalf("init command failed: %v", err)
	}
	if !strings.Contains(output, "Created .reqmig/config.yaml") {
		t.Errorf("output %q does not confirm config creation", output)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".reqmig", "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "default: uv") {
		t.Errorf("config %q does not record uv as default manager", string(data))
	}

	// A second init without --force must refuse.
	if _, err := execute(t, newTestRoot(), "init"); err == nil {
		t.Error("expected error when config already exists")
	}

	// With --force it overwrites.
	if _, err := execute(t, newTestRoot(), "init", "--force"); err != nil {
		t.Errorf("init --force failed: %v", err)
	}
}

func TestMigrateMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	root := newTestRoot()
	_, err := execute(t, root, "migrate")
	if err == nil {
		t.Fatal("expected error for missing requirements file")
	}
	if !strings.Contains(err.Error(), "requirements") {
		t.Errorf("error %q does not mention the requirements file", err.Error())
	}
}

func TestMigrateDryRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	dir := t.TempDir()
	t.Chdir(dir)

	content := "flask==2.0.1\n\n# a comment\nrequests>=2.28\n"
	if err := os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("REQMIG_CUSTOM_NAME", "fake")
	t.Setenv("REQMIG_CUSTOM_COMMAND", "sh -c true")

	root := newTestRoot()
	output, err := execute(t, root, "migrate", "--manager", "fake", "--dry-run")
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	if !strings.Contains(output, "Adding flask==2.0.1 (1/2)") {
		t.Errorf("output %q missing first dependency progress line", output)
	}
	if !strings.Contains(output, "Adding requests>=2.28 (2/2)") {
		t.Errorf("output %q missing second dependency progress line", output)
	}
	if !strings.Contains(output, "Dry run: 2 of 2") {
		t.Errorf("output %q missing dry run summary", output)
	}
}
