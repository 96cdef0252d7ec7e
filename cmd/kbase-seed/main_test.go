package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestSeed_DryRunSample(t *testing.T) {
	opts := &options{dryRun: true}
	if err := seed(context.Background(), opts, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSeed_DryRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	body := `[{"id":"a-1","title":"A","category":"misc","content":"alpha"},
{"id":"a-1","title":"B","category":"misc","content":"beta"}]`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := seed(context.Background(), &options{file: path, dryRun: true}, zap.NewNop())
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestSeed_MissingFile(t *testing.T) {
	opts := &options{file: filepath.Join(t.TempDir(), "absent.yaml"), dryRun: true}
	if err := seed(context.Background(), opts, zap.NewNop()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRun_Flags(t *testing.T) {
	if err := run([]string{"--version"}); err != nil {
		t.Errorf("--version: %v", err)
	}
	if err := run([]string{"--help"}); err != nil {
		t.Errorf("--help: %v", err)
	}
	if err := run([]string{"extra"}); err == nil {
		t.Error("expected error for positional argument")
	}
	if err := run([]string{"--bogus"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestRun_DryRun(t *testing.T) {
	t.Setenv("ENV", "test")
	if err := run([]string{"--dry-run"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
