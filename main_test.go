package main

import (
	"testing"
	"time"

	"github.com/atomicstack/scenetui/internal/app"
	"github.com/atomicstack/scenetui/internal/backend"
	"github.com/atomicstack/scenetui/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			FrameInterval: 20 * time.Millisecond,
			QueueSize:     50,
			Mouse:         backend.MouseCell,
			AltScreen:     true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"frameInterval": "20ms",
			"queueSize":     "50",
			"mouse":         "cell",
			"altScreen":     "true",
		},
		Args: []string{"-mouse", "cell"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["frameInterval"] != "20ms" {
		t.Fatalf("expected frame interval 20ms, got %v", flagsValue["frameInterval"])
	}
	if flagsValue["queueSize"] != "50" {
		t.Fatalf("expected queue size 50, got %v", flagsValue["queueSize"])
	}
	if flagsValue["mouse"] != "cell" {
		t.Fatalf("expected mouse cell, got %v", flagsValue["mouse"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
