package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cabin.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":8092" || cfg.City != "武汉" || cfg.STT.Engine != EngineOff {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
listen: ":9000"
city: 北京
stt:
  engine: whisper
  model: /opt/models/ggml-base.bin
tts:
  voice: zh
  rate: 450
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":9000" || cfg.City != "北京" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.STT.Engine != EngineWhisper || cfg.STT.Model != "/opt/models/ggml-base.bin" {
		t.Errorf("stt section not applied: %+v", cfg.STT)
	}
	if cfg.TTS.Rate != 450 {
		t.Errorf("tts rate = %d", cfg.TTS.Rate)
	}
	// Untouched keys keep their defaults.
	if cfg.Socket != "/tmp/cabin.sock" || cfg.STT.Language != "zh" {
		t.Errorf("defaults lost on partial file: %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "city: 北京\n")
	t.Setenv("CABIN_CITY", "上海")
	t.Setenv("CABIN_VENDOR_APP_ID", "demo-app")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.City != "上海" {
		t.Errorf("env override lost, city = %s", cfg.City)
	}
	if cfg.STT.Vendor.AppID != "demo-app" {
		t.Errorf("nested env override lost: %+v", cfg.STT.Vendor)
	}
}

func TestLoadRejectsUnknownEngine(t *testing.T) {
	path := writeConfig(t, "stt:\n  engine: sorcery\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown engine")
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := writeConfig(t, "listen: [\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for broken yaml")
	}
}
