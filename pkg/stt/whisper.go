package stt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// WhisperEngine transcribes locally through whisper.cpp. The model stays
// loaded for the process lifetime; contexts are cheap per call.
type WhisperEngine struct {
	model    whisper.Model
	language string
	threads  int
}

func NewWhisper(modelPath, language string) (*WhisperEngine, error) {
	if modelPath == "" {
		return nil, errors.New("empty model path")
	}
	if language == "" {
		language = "auto"
	}

	m, err := whisper.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return &WhisperEngine{model: m, language: language}, nil
}

func (w *WhisperEngine) Close() error {
	if w.model == nil {
		return nil
	}
	return w.model.Close()
}

func (w *WhisperEngine) Transcribe(ctx context.Context, pcm16k []float32) (Result, error) {
	if w.model == nil {
		return Result{}, errors.New("nil model")
	}
	if len(pcm16k) == 0 {
		return Result{}, errors.New("no audio samples provided")
	}

	wctx, err := w.model.NewContext()
	if err != nil {
		return Result{}, fmt.Errorf("new context: %w", err)
	}

	if err := wctx.SetLanguage(w.language); err != nil {
		return Result{}, fmt.Errorf("set language: %w", err)
	}

	threads := w.threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	wctx.SetThreads(uint(threads))

	if err := wctx.Process(pcm16k, nil, nil, nil); err != nil {
		return Result{}, fmt.Errorf("process: %w", err)
	}

	var parts []string
	for {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		seg, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("next segment: %w", err)
		}
		parts = append(parts, strings.TrimSpace(seg.Text))
	}

	lang := wctx.DetectedLanguage()
	if lang == "" {
		lang = wctx.Language()
	}

	return Result{
		Text:     strings.Join(parts, ""),
		Language: lang,
	}, nil
}
