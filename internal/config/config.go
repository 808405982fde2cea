// Package config loads daemon settings from an optional YAML file with
// CABIN_* environment overrides on top.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// STT engine names accepted in Config.STT.Engine.
const (
	EngineWhisper = "whisper"
	EngineVendor  = "vendor"
	EngineOff     = "off"
)

// Vendor holds the cloud speech credentials. Opaque strings, passed through
// to the vendor handshake untouched.
type Vendor struct {
	URL       string `yaml:"url" env:"CABIN_VENDOR_URL"`
	AppID     string `yaml:"app_id" env:"CABIN_VENDOR_APP_ID"`
	APIKey    string `yaml:"api_key" env:"CABIN_VENDOR_API_KEY"`
	APISecret string `yaml:"api_secret" env:"CABIN_VENDOR_API_SECRET"`
	Proxy     string `yaml:"proxy" env:"CABIN_VENDOR_PROXY"` // SOCKS5 addr, optional
}

type STT struct {
	Engine   string `yaml:"engine" env:"CABIN_STT_ENGINE"`
	Model    string `yaml:"model" env:"CABIN_STT_MODEL"`
	Language string `yaml:"language" env:"CABIN_STT_LANGUAGE"`
	Vendor   Vendor `yaml:"vendor"`
}

type TTS struct {
	Voice string `yaml:"voice" env:"CABIN_TTS_VOICE"`
	Rate  int    `yaml:"rate" env:"CABIN_TTS_RATE"`
}

type Config struct {
	Listen string `yaml:"listen" env:"CABIN_LISTEN"`
	Socket string `yaml:"socket" env:"CABIN_SOCKET"`
	City   string `yaml:"city" env:"CABIN_CITY"`
	Earcon string `yaml:"earcon" env:"CABIN_EARCON"`
	STT    STT    `yaml:"stt"`
	TTS    TTS    `yaml:"tts"`
}

func Default() Config {
	return Config{
		Listen: ":8092",
		Socket: "/tmp/cabin.sock",
		City:   "武汉",
		STT: STT{
			Engine:   EngineOff,
			Model:    "models/ggml-small.bin",
			Language: "zh",
		},
		TTS: TTS{
			Voice: "zh",
			Rate:  500,
		},
	}
}

// Load starts from defaults, merges the YAML file when it exists, then
// applies environment overrides. A missing file is not an error; a broken
// one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults + env only
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env overrides: %w", err)
	}

	switch cfg.STT.Engine {
	case EngineWhisper, EngineVendor, EngineOff:
	default:
		return Config{}, fmt.Errorf("unknown stt engine %q", cfg.STT.Engine)
	}

	return cfg, nil
}
