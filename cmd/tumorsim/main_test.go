package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/tumorsim/internal/config"
	"github.com/san-kum/tumorsim/internal/report"
)

// capture runs the command line and returns stdout, stderr and the exit code.
func capture(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	_, stderr, code := capture(t, args...)
	if code != 0 {
		return errors.New(stderr)
	}
	return nil
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	if err := os.WriteFile(base, []byte("initial: 25\ncapacity: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "effective.yaml")
	if err := runCLI(t, "config", out, "--preset", "slow", "--config", base, "--k", "800", "--log-level", "error"); err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	cfg, err := config.Load(out, nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BaselineRate != 0.05 {
		t.Errorf("preset rate lost: %v", cfg.BaselineRate)
	}
	if cfg.Time.End != 300 {
		t.Errorf("preset end time lost: %v", cfg.Time.End)
	}
	if cfg.Initial != 25 {
		t.Errorf("config file initial = %v, want 25", cfg.Initial)
	}
	if cfg.Capacity != 800 {
		t.Errorf("flag should override config file: capacity = %v", cfg.Capacity)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestRunWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	jsonOut := filepath.Join(dir, "out.json")
	csvOut := filepath.Join(dir, "out.csv")

	err := runCLI(t, "run",
		"--out", dir,
		"--time", "10",
		"--rates", "0.1,0.2",
		"--json", jsonOut,
		"--csv", csvOut,
		"--log-level", "error",
	)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, name := range []string{report.BaselineFile + ".png", report.SweepFile + ".png", report.FinalsFile + ".png", "out.json", "out.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRunNoPNG(t *testing.T) {
	dir := t.TempDir()
	if err := runCLI(t, "run", "--out", dir, "--time", "5", "--no-png", "--log-level", "error"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("--no-png still wrote %d files", len(entries))
	}
}

func TestUnknownPreset(t *testing.T) {
	if err := runCLI(t, "run", "--preset", "nope", "--no-png"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestInvalidGrid(t *testing.T) {
	if err := runCLI(t, "run", "--dt", "0", "--no-png", "--log-level", "error"); err == nil {
		t.Error("expected error for zero timestep")
	}
}

func TestBareInvocation(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdout, stderr, code := capture(t)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if stdout != "Answer: 999.9998171038959\n" {
		t.Errorf("stdout = %q", stdout)
	}

	for _, name := range []string{report.BaselineFile, report.SweepFile, report.FinalsFile} {
		if _, err := os.Stat(filepath.Join(dir, name+".png")); err != nil {
			t.Errorf("missing %s.png: %v", name, err)
		}
	}
}

func TestPlotWritesAnswer(t *testing.T) {
	stdout, stderr, code := capture(t, "plot", "--log-level", "error")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if !strings.HasSuffix(stdout, "Answer: 999.9998171038959\n") {
		t.Errorf("plot output does not end with the answer line")
	}
}

func TestOverflowFailsWithLog(t *testing.T) {
	dir := t.TempDir()
	stdout, stderr, code := capture(t, "run", "--out", dir, "--r", "1e200", "--rates", "1e200")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if strings.Contains(stdout, "Answer:") {
		t.Errorf("failed run printed an answer: %q", stdout)
	}
	for _, want := range []string{"tumorsim failed", "unstable"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q: %s", want, stderr)
		}
	}
}

func TestValidateFromConfig(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	if err := os.WriteFile(base, []byte("validate: false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "effective.yaml")
	if err := runCLI(t, "config", out, "--config", base); err != nil {
		t.Fatalf("config command failed: %v", err)
	}
	cfg, err := config.Load(out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Validate {
		t.Error("validate: false from the config file was not kept")
	}

	// With validation off the overflow reaches the plot writer, which
	// still refuses non-finite series.
	_, stderr, code := capture(t, "run", "--config", base, "--out", dir, "--r", "1e200", "--rates", "1e200")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "unstable") {
		t.Errorf("stderr = %s", stderr)
	}
}
