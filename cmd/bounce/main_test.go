package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/bounce/config"
)

// TestDumpConfigDecodes tests the dumped config is a loadable TOML file
func TestDumpConfigDecodes(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.Gravity = -4
	cfg.Audio.Muted = true

	var buf bytes.Buffer
	if err := dumpConfig(&buf, cfg); err != nil {
		t.Fatalf("dumpConfig failed: %v", err)
	}
	if !strings.Contains(buf.String(), "[physics]") {
		t.Errorf("Expected physics table, got %q", buf.String())
	}

	got := &config.File{}
	if err := config.Decode(buf.Bytes(), got); err != nil {
		t.Fatalf("Expected dump to decode, got %v", err)
	}
	if *got != *cfg {
		t.Errorf("Expected %+v, got %+v", *cfg, *got)
	}
}
