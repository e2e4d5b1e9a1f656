// Package project provides Python project manifest detection.
// The markers found in a directory tell reqmig which package manager the
// project already uses, so migration can default to the right one.
package project

import (
	"os"
	"path/filepath"
	"strings"
)

// Info contains information about a detected project.
type Info struct {
	// Path is the absolute path to the project directory.
	Path string `json:"path"`
	// Name is the project name (usually the directory name).
	Name string `json:"name"`
	// Markers are the manifest files found (pyproject.toml, Pipfile, etc.).
	Markers []string `json:"markers,omitempty"`
	// ManagerHint is the package manager the manifests point at, empty
	// when nothing conclusive was found.
	ManagerHint string `json:"manager_hint,omitempty"`
	// HasRequirements indicates a requirements.txt is present.
	HasRequirements bool `json:"has_requirements"`
}

// Marker represents a manifest file that indicates a package manager.
type Marker struct {
	// Name is the file name to look for.
	Name string
	// Manager is the package manager this marker indicates, empty for
	// generic Python markers.
	Manager string
}

// DefaultMarkers are the manifest markers checked during detection,
// in hint-priority order: a lock file is a stronger signal than a
// shared manifest like pyproject.toml.
var DefaultMarkers = []Marker{
	{Name: "uv.lock", Manager: "uv"},
	{Name: "poetry.lock", Manager: "poetry"},
	{Name: "pdm.lock", Manager: "pdm"},
	{Name: "Pipfile", Manager: "pipenv"},
	{Name: "Pipfile.lock", Manager: "pipenv"},
	{Name: "pyproject.toml", Manager: ""},
	{Name: "setup.py", Manager: ""},
	{Name: "requirements.txt", Manager: ""},
}

// Detect inspects a directory and returns project information.
func Detect(dir string) (*Info, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Path:    abs,
		Name:    filepath.Base(abs),
		Markers: []string{},
	}

	for _, marker := range DefaultMarkers {
		path := filepath.Join(abs, marker.Name)
		stat, err := os.Stat(path)
		if err != nil || stat.IsDir() {
			continue
		}

		info.Markers = append(info.Markers, marker.Name)
		if marker.Name == "requirements.txt" {
			info.HasRequirements = true
		}
		if info.ManagerHint == "" && marker.Manager != "" {
			info.ManagerHint = marker.Manager
		}
	}

	// pyproject.toml alone is ambiguous: poetry keeps its config in a
	// [tool.poetry] table, uv in [tool.uv]. Only consulted when no lock
	// file already decided.
	if info.ManagerHint == "" && contains(info.Markers, "pyproject.toml") {
		info.ManagerHint = pyprojectHint(filepath.Join(abs, "pyproject.toml"))
	}

	return info, nil
}

// pyprojectHint scans pyproject.toml for a tool table that identifies
// the package manager. Returns empty when inconclusive.
func pyprojectHint(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	text := string(content)
	switch {
	case strings.Contains(text, "[tool.poetry]"):
		return "poetry"
	case strings.Contains(text, "[tool.pdm]"):
		return "pdm"
	case strings.Contains(text, "[tool.uv]"):
		return "uv"
	default:
		return ""
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
