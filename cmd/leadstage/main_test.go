package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	path := filepath.Join(base, "leadstage.toml")
	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q
api_bind = "127.0.0.1:0"
`, filepath.Join(base, "data"), filepath.Join(base, "logs"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCommand(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append(args, "--config", configPath))
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("output missing target path: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := runCommand(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
	if _, err := runCommand(t, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("init with --overwrite failed: %v", err)
	}
}

func TestConfigValidateCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCommand(t, cfgPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestLeadLifecycleCommands(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCommand(t, cfgPath, "leads", "add", "--name", "cli customer", "--phone", "5558675309")
	if err != nil {
		t.Fatalf("leads add failed: %v", err)
	}
	if !strings.Contains(out, "Cli Customer") {
		t.Fatalf("add output missing normalized name: %q", out)
	}

	out, err = runCommand(t, cfgPath, "leads", "list")
	if err != nil {
		t.Fatalf("leads list failed: %v", err)
	}
	if !strings.Contains(out, "Cli Customer") || !strings.Contains(out, "(555) 867-5309") {
		t.Fatalf("list output missing lead: %q", out)
	}

	out, err = runCommand(t, cfgPath, "leads", "move", "1", "retainer_signed")
	if err != nil {
		t.Fatalf("leads move failed: %v", err)
	}
	if !strings.Contains(out, "Retainer Signed") {
		t.Fatalf("move output missing new status: %q", out)
	}

	out, err = runCommand(t, cfgPath, "leads", "show", "1")
	if err != nil {
		t.Fatalf("leads show failed: %v", err)
	}
	if !strings.Contains(out, "retainer_signed") {
		t.Fatalf("show output missing stage key: %q", out)
	}

	if _, err = runCommand(t, cfgPath, "leads", "remove", "1"); err != nil {
		t.Fatalf("leads remove failed: %v", err)
	}
	if _, err = runCommand(t, cfgPath, "leads", "show", "1"); err == nil {
		t.Fatal("expected show after remove to fail")
	}
}

func TestLeadsMoveRejectsUnknownStage(t *testing.T) {
	cfgPath := writeTestConfig(t)

	if _, err := runCommand(t, cfgPath, "leads", "add", "--name", "Mover"); err != nil {
		t.Fatalf("leads add failed: %v", err)
	}
	if _, err := runCommand(t, cfgPath, "leads", "move", "1", "no_such_stage"); err == nil {
		t.Fatal("expected move to unknown stage to fail")
	}
}

func TestStagesCommands(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCommand(t, cfgPath, "stages", "list")
	if err != nil {
		t.Fatalf("stages list failed: %v", err)
	}
	if !strings.Contains(out, "docs_pending") {
		t.Fatalf("stages list missing seeded stage: %q", out)
	}

	out, err = runCommand(t, cfgPath, "stages", "add", "Cold Storage - Archived")
	if err != nil {
		t.Fatalf("stages add failed: %v", err)
	}
	if !strings.Contains(out, "Cold Storage - Archived") {
		t.Fatalf("stages add output: %q", out)
	}

	out, err = runCommand(t, cfgPath, "stages", "list")
	if err != nil {
		t.Fatalf("stages list failed: %v", err)
	}
	if !strings.Contains(out, "cold_storage") || !strings.Contains(out, "Archived") {
		t.Fatalf("stages list missing new stage: %q", out)
	}
}

func TestBoardCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	if _, err := runCommand(t, cfgPath, "leads", "add", "--name", "Board Lead", "--status", "Needs Follow Up"); err != nil {
		t.Fatalf("leads add failed: %v", err)
	}

	out, err := runCommand(t, cfgPath, "board")
	if err != nil {
		t.Fatalf("board failed: %v", err)
	}
	if !strings.Contains(out, "Needs Follow Up (1)") {
		t.Fatalf("board output missing populated column: %q", out)
	}
	if !strings.Contains(out, "Board Lead") {
		t.Fatalf("board output missing lead: %q", out)
	}
}
