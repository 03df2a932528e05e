package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Run.Trace || c.Run.Debug || c.Run.Delay != 0 || c.Run.Seed != 0 {
		t.Errorf("defaults: got %+v", c.Run)
	}
	if c.Display.Playfield || c.Display.Stack {
		t.Errorf("defaults: got %+v", c.Display)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	src := `
[run]
delay = 50
seed = 7
trace = true

[display]
playfield = true
stack = true
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Run.Delay != 50 {
		t.Errorf("delay: got %d, want 50", c.Run.Delay)
	}
	if c.Run.Seed != 7 {
		t.Errorf("seed: got %d, want 7", c.Run.Seed)
	}
	if !c.Run.Trace {
		t.Error("trace: got false, want true")
	}
	if c.Run.Debug {
		t.Error("debug: got true, want false")
	}
	if !c.Display.Playfield || !c.Display.Stack {
		t.Errorf("display: got %+v", c.Display)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("[run\ndelay"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load: got nil error for malformed file")
	}
}
