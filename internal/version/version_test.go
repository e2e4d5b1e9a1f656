package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.2.3", "abc123", "2026-01-01")

	if info.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", info.Version)
	}
	if info.GoVer != runtime.Version() {
		t.Errorf("GoVer = %q, want %q", info.GoVer, runtime.Version())
	}
	if info.OS != runtime.GOOS || info.Arch != runtime.GOARCH {
		t.Errorf("OS/Arch = %s/%s", info.OS, info.Arch)
	}
}

func TestInfo_String(t *testing.T) {
	info := NewInfo("1.2.3", "abc123", "2026-01-01")

	s := info.String()
	if !strings.Contains(s, "reqmig 1.2.3") {
		t.Errorf("String() = %q", s)
	}
	if !strings.Contains(s, "abc123") {
		t.Errorf("String() should contain commit, got %q", s)
	}
}

func TestInfo_FullString(t *testing.T) {
	info := NewInfo("1.2.3", "abc123", "2026-01-01")

	s := info.FullString()
	for _, want := range []string{"reqmig 1.2.3", "Commit:", "Built:", "Go:", "OS/Arch:"} {
		if !strings.Contains(s, want) {
			t.Errorf("FullString() missing %q: %q", want, s)
		}
	}
}
