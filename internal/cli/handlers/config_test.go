package handlers

import (
	"os"
	"strings"
	"testing"

	"github.com/xolan/timesheet/internal/config"
)

func TestShowConfig(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	for _, want := range []string{
		"Configuration:",
		"Settings file:",
		"Using defaults (no settings file)",
		"companies:           (single-company mode)",
		"timezone:            UTC (offset: system)",
		"normalize_durations: true",
	} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected %q in output, got %q", want, stdout.String())
		}
	}
}

func TestShowConfig_MultiCompany(t *testing.T) {
	deps, stdout, _, _ := setupMultiCompanyDeps(t)

	ShowConfig(deps)

	if !strings.Contains(stdout.String(), "companies:           Acme, Beta\n") {
		t.Errorf("expected companies in output, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "abbreviations:       Acme:ac,Beta:b\n") {
		t.Errorf("expected abbreviations in output, got %q", stdout.String())
	}
}

func TestShowConfig_WithFile(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	InitConfig(deps)
	stdout.Reset()

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "File exists") {
		t.Errorf("expected 'File exists' in output, got %q", stdout.String())
	}
}

func TestInitConfig(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	InitConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Created settings file:") {
		t.Errorf("expected 'Created settings file:' in output, got %q", stdout.String())
	}

	data, err := os.ReadFile(deps.Services.Config.GetPath())
	if err != nil {
		t.Fatalf("expected settings file: %v", err)
	}
	if string(data) != config.GenerateSampleSettings() {
		t.Error("expected sample settings content")
	}
}

func TestInitConfig_AlreadyExists(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	InitConfig(deps)
	InitConfig(deps)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Errorf("expected 'already exists' in stderr, got %q", stderr.String())
	}
}

func TestShowCompanyConfig(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	writeCompanyConfig(t, deps, "", acmeConfig+"\n[tag_mappings]\ndev = \"development\"\n")

	ShowCompanyConfig(deps, "")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	for _, want := range []string{
		"Company: Acme Corp\n",
		"Status: File exists\n",
		"Commitments:\n",
		"  Total            40h (max 45h)    hours/week\n",
		"  Development      25h",
		"Projects:\n  Platform         #platform #api -> development\n",
		"Tag mappings:\n  #dev -> #development\n",
	} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected %q in output, got %q", want, stdout.String())
		}
	}
}

func TestShowCompanyConfig_Defaults(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowCompanyConfig(deps, "")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Using defaults (no config file)") {
		t.Errorf("expected defaults status, got %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "Projects:") {
		t.Errorf("expected no projects, got %q", stdout.String())
	}
}

func TestInitCompanyConfig(t *testing.T) {
	deps, stdout, stderr, exitCode := setupMultiCompanyDeps(t)

	InitCompanyConfig(deps, "ac")

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %q)", *exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Created company config:") {
		t.Errorf("expected 'Created company config:' in output, got %q", stdout.String())
	}

	InitCompanyConfig(deps, "Acme")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1 on second init, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Errorf("expected 'already exists' in stderr, got %q", stderr.String())
	}
}
