package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/brailler/internal/braille"
	"github.com/san-kum/brailler/internal/history"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func openHistory(t *testing.T, dir string) *history.Store {
	t.Helper()
	st, err := history.Open(context.Background(), filepath.Join(dir, "history.db"), nil)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestConvertRecordsHistory(t *testing.T) {
	dir := t.TempDir()

	if err := run(t, "--data", dir, "encode", "Hola", "mundo"); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := run(t, "--data", dir, "decode", "⠨⠓⠕⠇⠁"); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := run(t, "--data", dir, "encode", "--no-save", "privado"); err != nil {
		t.Fatalf("encode --no-save: %v", err)
	}

	stats, err := openHistory(t, dir).Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 2 || stats.TextToBraille != 1 || stats.BrailleToText != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "lines.txt")
	if err := os.WriteFile(in, []byte("uno\ndos\ntres\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run(t, "--data", dir, "batch", in, "--workers", "2"); err != nil {
		t.Fatalf("batch: %v", err)
	}
	entries, err := openHistory(t, dir).List(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("recorded %d entries, want 3", len(entries))
	}

	if err := run(t, "--data", dir, "batch", in, "--direction", "sideways"); err == nil {
		t.Error("unknown direction should fail")
	}
}

func TestCheckAndValidate(t *testing.T) {
	dir := t.TempDir()

	if err := run(t, "--data", dir, "check", "hola"); err != nil {
		t.Errorf("check hola: %v", err)
	}
	err := run(t, "--data", dir, "check", "hola", "😀")
	var ue *braille.UnsupportedError
	if !errors.As(err, &ue) {
		t.Errorf("check emoji: got %v, want UnsupportedError", err)
	}

	if err := run(t, "--data", dir, "validate", "⠨⠓⠕⠇⠁"); err != nil {
		t.Errorf("validate: %v", err)
	}
	if err := run(t, "--data", dir, "validate", "abc"); !errors.Is(err, errInvalidBraille) {
		t.Errorf("validate abc: got %v", err)
	}
}

func TestSignLifecycle(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "aula.svg")

	if err := run(t, "--data", dir, "sign", "create", "Aula", "aula", "3", "--out", out, "--preset", "elevator"); err != nil {
		t.Fatalf("sign create: %v", err)
	}
	svg, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") || !strings.Contains(string(svg), `class="dot"`) {
		t.Error("svg output malformed")
	}

	signs, err := openHistory(t, dir).ListSigns(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(signs) != 1 || signs[0].Downloads != 1 || signs[0].Text != "aula 3" {
		t.Fatalf("signs = %+v", signs)
	}

	if err := run(t, "--data", dir, "sign", "create", "Aula", "aula", "--preset", "billboard"); err == nil {
		t.Error("unknown preset should fail")
	}
	if err := run(t, "--data", dir, "sign", "show", "999"); !errors.Is(err, history.ErrNotFound) {
		t.Errorf("show missing sign: got %v", err)
	}
}

func TestHistoryExport(t *testing.T) {
	dir := t.TempDir()
	if err := run(t, "--data", dir, "encode", "hola"); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "history.csv")
	if err := run(t, "--data", dir, "history", "export", "-f", "csv", "-o", out); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "id,created_at,direction") {
		t.Errorf("csv = %q", data)
	}

	if err := run(t, "--data", dir, "history", "export", "-f", "xml"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestSetupPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "brailler.yaml")
	yaml := "data_dir: " + dir + "\nlang: en\ntheme: light\ncodec:\n  number_runs: true\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	root := newRootCmd()
	if err := root.ParseFlags([]string{"--config", cfgPath, "--theme", "contrast"}); err != nil {
		t.Fatal(err)
	}
	a, err := setup(root)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	if a.theme.Name != "contrast" {
		t.Errorf("flag should override file theme, got %q", a.theme.Name)
	}
	if a.msg.Lang() != "en" {
		t.Errorf("lang = %q, want en from file", a.msg.Lang())
	}
	if a.cfg.DataDir != dir {
		t.Errorf("data dir = %q", a.cfg.DataDir)
	}
	if got := a.codec.Encode("2024"); got != "⠼⠃⠚⠃⠙" {
		t.Errorf("number runs not applied, got %q", got)
	}
	if a.client != nil {
		t.Error("no api url configured, client should be nil")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hola", 10); got != "hola" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("señalización", 5); got != "seña…" {
		t.Errorf("truncate long = %q", got)
	}
}
