package custom

import (
	"context"
	"strings"
	"testing"

	"github.com/reqmig/reqmig/internal/config"
	"github.com/reqmig/reqmig/internal/manager"
)

func TestManager_Name(t *testing.T) {
	m := New(config.CustomConfig{Name: "mytool", Command: "mytool add"})
	if m.Name() != "mytool" {
		t.Errorf("Name() = %q, want mytool", m.Name())
	}
}

func TestManager_Description(t *testing.T) {
	m := New(config.CustomConfig{Name: "mytool", Command: "mytool add", Description: "my tool"})
	if m.Description() != "my tool" {
		t.Errorf("Description() = %q, want my tool", m.Description())
	}

	m = New(config.CustomConfig{Name: "mytool", Command: "mytool add"})
	if !strings.Contains(m.Description(), "mytool add") {
		t.Errorf("default Description() should mention the command, got %q", m.Description())
	}
}

func TestManager_IsAvailable(t *testing.T) {
	m := New(config.CustomConfig{Name: "shim", Command: "sh -c true"})
	if !m.IsAvailable() {
		t.Error("IsAvailable() should be true when binary is on PATH")
	}

	m = New(config.CustomConfig{Name: "ghost", Command: "reqmig-test-no-such-binary add"})
	if m.IsAvailable() {
		t.Error("IsAvailable() should be false for missing binary")
	}

	m = New(config.CustomConfig{Name: "empty", Command: ""})
	if m.IsAvailable() {
		t.Error("IsAvailable() should be false for empty command")
	}
}

func TestManager_DetectsProject(t *testing.T) {
	m := New(config.CustomConfig{Name: "mytool", Command: "mytool add"})
	if m.DetectsProject(t.TempDir()) {
		t.Error("custom managers should never auto-detect")
	}
}

func TestManager_Add_AppendsSpec(t *testing.T) {
	m := New(config.CustomConfig{Name: "echoer", Command: "echo add"})

	result, err := m.Add(context.Background(), "flask==2.0.1", manager.AddOptions{})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if strings.TrimSpace(result.Output) != "add flask==2.0.1" {
		t.Errorf("Output = %q, want %q", strings.TrimSpace(result.Output), "add flask==2.0.1")
	}
}

func TestManager_Add_Placeholder(t *testing.T) {
	m := New(config.CustomConfig{Name: "echoer", Command: "echo install {package} --manifest"})

	result, err := m.Add(context.Background(), "requests", manager.AddOptions{})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if strings.TrimSpace(result.Output) != "install requests --manifest" {
		t.Errorf("Output = %q, want placeholder substitution", strings.TrimSpace(result.Output))
	}
}

func TestManager_Add_EmptyCommand(t *testing.T) {
	m := New(config.CustomConfig{Name: "empty", Command: ""})

	if _, err := m.Add(context.Background(), "flask", manager.AddOptions{}); err == nil {
		t.Error("Add() should fail for empty command")
	}
}
