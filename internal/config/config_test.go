package config

import (
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Requirements.Path != DefaultRequirementsPath {
		t.Errorf("expected Requirements.Path %q, got %q", DefaultRequirementsPath, cfg.Requirements.Path)
	}
	if cfg.Migrate.OnFailure != FailureContinue {
		t.Errorf("expected OnFailure %q, got %q", FailureContinue, cfg.Migrate.OnFailure)
	}
	if cfg.Migrate.Timeout != DefaultTimeout {
		t.Errorf("expected Timeout %v, got %v", DefaultTimeout, cfg.Migrate.Timeout)
	}
	if cfg.Manager.Default != "" {
		t.Errorf("expected empty Manager.Default, got %q", cfg.Manager.Default)
	}
	if cfg.Manager.ExtraArgs == nil {
		t.Error("expected ExtraArgs to be initialized, got nil")
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}

	cfg.ApplyDefaults()

	if cfg.Requirements.Path != DefaultRequirementsPath {
		t.Errorf("expected Requirements.Path %q, got %q", DefaultRequirementsPath, cfg.Requirements.Path)
	}
	if cfg.Migrate.OnFailure != FailureContinue {
		t.Errorf("expected OnFailure %q, got %q", FailureContinue, cfg.Migrate.OnFailure)
	}
	if cfg.Migrate.Timeout != DefaultTimeout {
		t.Errorf("expected Timeout %v, got %v", DefaultTimeout, cfg.Migrate.Timeout)
	}
	if cfg.Manager.ExtraArgs == nil {
		t.Error("expected ExtraArgs to be initialized, got nil")
	}
}

func TestConfig_ApplyDefaults_PreservesExistingValues(t *testing.T) {
	cfg := &Config{
		Requirements: RequirementsConfig{Path: "deps/requirements-dev.txt"},
		Migrate: MigrateConfig{
			OnFailure: FailureHalt,
			Timeout:   time.Minute,
		},
	}

	cfg.ApplyDefaults()

	if cfg.Requirements.Path != "deps/requirements-dev.txt" {
		t.Errorf("Requirements.Path was overwritten: %q", cfg.Requirements.Path)
	}
	if cfg.Migrate.OnFailure != FailureHalt {
		t.Errorf("OnFailure was overwritten: %q", cfg.Migrate.OnFailure)
	}
	if cfg.Migrate.Timeout != time.Minute {
		t.Errorf("Timeout was overwritten: %v", cfg.Migrate.Timeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "halt is valid",
			mutate:  func(c *Config) { c.Migrate.OnFailure = FailureHalt },
			wantErr: false,
		},
		{
			name:    "invalid failure mode",
			mutate:  func(c *Config) { c.Migrate.OnFailure = "retry" },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Migrate.Timeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "custom command without name",
			mutate:  func(c *Config) { c.Custom.Command = "mytool add" },
			wantErr: true,
		},
		{
			name: "custom command with name",
			mutate: func(c *Config) {
				c.Custom.Name = "mytool"
				c.Custom.Command = "mytool add"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}

	msg := errs.Error()
	if msg == "" {
		t.Fatal("expected non-empty message")
	}

	single := ValidationErrors{{Field: "a", Message: "bad"}}
	if single.Error() != "a: bad" {
		t.Errorf("single error = %q, want %q", single.Error(), "a: bad")
	}
}
