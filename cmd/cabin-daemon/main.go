package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	"cabin/internal/assistant"
	"cabin/internal/audio"
	"cabin/internal/config"
	"cabin/internal/dialog"
	"cabin/internal/ipc"
	"cabin/internal/notify"
	"cabin/internal/tts"
	"cabin/internal/ui"
	"cabin/internal/vehicle"
	"cabin/pkg/audioconv"
	"cabin/pkg/stt"
	"cabin/pkg/wire"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	cfgFile := cli.StringP("config", "c", "cabin.yaml", "Config file path")
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	log.Info("Booting up")

	godotenv.Load(*envFile)

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Error("Failed to load config", "err", err)
		os.Exit(1)
	}

	log.Debug("Loaded config", "listen", cfg.Listen, "engine", cfg.STT.Engine)

	ctrl := vehicle.New(cfg.City)
	dlg := dialog.NewLog()
	speech := tts.New(cfg.TTS.Voice, cfg.TTS.Rate)
	ducker := audio.NewDucker([]string{"cabin", "espeak"}, 20)

	rec, engine := buildSpeech(cfg)
	if engine != nil {
		defer engine.Close()
	}
	if rec != nil {
		defer rec.Close()
	}

	var srv *ui.Server

	a := assistant.New(ctrl, dlg, assistant.Config{
		Recognizer: engine,
		Capture:    capture(rec),
		Speak: func(text string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := ducker.Duck(ctx, 0.3); err != nil {
				log.Warn("Failed to duck audio", "err", err)
			}
			defer func() {
				if err := ducker.Restore(ctx); err != nil {
					log.Warn("Failed to restore audio", "err", err)
				}
			}()
			return speech.Speak(text)
		},
		OnMessage: func(msg dialog.Message) {
			kind := wire.KindAssistant
			if msg.Role == dialog.RoleUser {
				kind = wire.KindUser
			}
			srv.Broadcast(wire.Text(kind, msg.Text))
		},
		OnState: func(st vehicle.State) {
			f, err := wire.State(st)
			if err != nil {
				log.Error("Failed to encode state", "err", err)
				return
			}
			srv.Broadcast(f)
		},
		OnListen: func() {
			if cfg.Earcon == "" {
				return
			}
			if err := notify.Earcon(cfg.Earcon); err != nil {
				log.Warn("Failed to play earcon", "err", err)
			}
		},
	})

	srv = ui.NewServer(func(text string) error {
		_, err := a.HandleText(text)
		return err
	})

	mux := http.NewServeMux()
	mux.Handle("/ws", srv)
	go func() {
		log.Info("Serving chat clients", "listen", cfg.Listen)
		if err := http.ListenAndServe(cfg.Listen, mux); err != nil {
			log.Error("Websocket server died", "err", err)
			os.Exit(1)
		}
	}()

	if err := ipc.StartServer(cfg.Socket, func(msg ipc.ControlMessage) ipc.Response {
		return control(a, engine, msg)
	}); err != nil {
		log.Error("Failed ipc server", "err", err)
		os.Exit(1)
	}

	log.Info("Boot up - successful")

	select {}
}

// buildSpeech wires the configured recognizer. The "off" engine leaves both
// nil: the daemon still serves typed text and quick actions.
func buildSpeech(cfg config.Config) (*audio.Recorder, stt.Recognizer) {
	switch cfg.STT.Engine {
	case config.EngineWhisper:
		engine, err := stt.NewWhisper(cfg.STT.Model, cfg.STT.Language)
		if err != nil {
			log.Error("Failed to load whisper model", "model", cfg.STT.Model, "err", err)
			os.Exit(1)
		}
		return buildRecorder(), engine
	case config.EngineVendor:
		engine, err := stt.NewVendor(stt.VendorConfig{
			URL:       cfg.STT.Vendor.URL,
			AppID:     cfg.STT.Vendor.AppID,
			APIKey:    cfg.STT.Vendor.APIKey,
			APISecret: cfg.STT.Vendor.APISecret,
			Language:  cfg.STT.Language,
			Proxy:     cfg.STT.Vendor.Proxy,
		})
		if err != nil {
			log.Error("Failed to init vendor engine", "err", err)
			os.Exit(1)
		}
		return buildRecorder(), engine
	default:
		log.Info("Speech input disabled, text only")
		return nil, nil
	}
}

func buildRecorder() *audio.Recorder {
	rec := audio.NewRecorder()
	if err := rec.Init(); err != nil {
		log.Error("Failed to init audio", "err", err)
		os.Exit(1)
	}
	return rec
}

func capture(rec *audio.Recorder) assistant.CaptureFunc {
	if rec == nil {
		return nil
	}
	return rec.Record
}

func control(a *assistant.Assistant, engine stt.Recognizer, msg ipc.ControlMessage) ipc.Response {
	log.Debug("Control command", "cmd", msg.Cmd, "arg", msg.Arg)

	switch msg.Cmd {
	case "trigger":
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		if err := a.Trigger(ctx); err != nil {
			return ipc.Fail("%v", err)
		}
		return ipc.Ok("done")

	case "say":
		if msg.Arg == "" {
			return ipc.Fail("say needs text")
		}
		reply, err := a.HandleText(msg.Arg)
		if err != nil {
			return ipc.Fail("%v", err)
		}
		return ipc.Ok("%s", reply.Text)

	case "file":
		return replayFile(a, engine, msg.Arg)

	case "status":
		data, err := json.Marshal(a.Status())
		if err != nil {
			return ipc.Fail("%v", err)
		}
		return ipc.Ok("%s", data)

	case "reset":
		a.Reset()
		return ipc.Ok("reset done")

	default:
		return ipc.Fail("unknown command %q", msg.Cmd)
	}
}

// replayFile pushes a recorded audio file through the same pipeline a live
// utterance takes.
func replayFile(a *assistant.Assistant, engine stt.Recognizer, path string) ipc.Response {
	if engine == nil {
		return ipc.Fail("speech engine is off")
	}
	if path == "" {
		return ipc.Fail("file needs a path")
	}

	pcm, err := audioconv.DecodeFile(path)
	if err != nil {
		return ipc.Fail("decode %s: %v", path, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	res, err := engine.Transcribe(ctx, pcm)
	if err != nil {
		return ipc.Fail("transcribe: %v", err)
	}
	log.Info("Replayed file", "path", path, "text", res.Text)

	reply, err := a.HandleText(res.Text)
	if err != nil {
		return ipc.Fail("%v", err)
	}
	return ipc.Ok("%s", reply.Text)
}
