// Package stt abstracts speech recognition engines. The assistant only ever
// sees Recognizer; whether text comes from a local whisper.cpp model or the
// cloud vendor is a wiring decision in main.
package stt

import "context"

type Result struct {
	Text     string
	Language string
}

// Recognizer transcribes mono 16 kHz float32 PCM in [-1, 1].
type Recognizer interface {
	Transcribe(ctx context.Context, pcm16k []float32) (Result, error)
	Close() error
}
