// Package assistant drives one utterance at a time through the pipeline:
// capture → transcribe → classify → execute → reply. A small state machine
// gates input so a new utterance is ignored until the current one finishes,
// and downgrades engine failures to a transient fault that clears itself.
package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	log "log/slog"

	"github.com/looplab/fsm"

	"cabin/internal/dialog"
	"cabin/internal/intent"
	"cabin/internal/vehicle"
	"cabin/pkg/stt"
)

const (
	stateIdle      = "idle"
	stateListening = "listening"
	stateThinking  = "thinking"
	stateSpeaking  = "speaking"
	stateFaulted   = "faulted"

	evListen  = "listen"
	evHeard   = "heard"
	evSubmit  = "submit"
	evReply   = "reply"
	evSpoken  = "spoken"
	evFault   = "fault"
	evRecover = "recover"
)

// FaultMessage is spoken into the log when an engine fails mid-utterance.
const FaultMessage = "语音服务开小差了，请稍后再试"

// ErrBusy means an utterance is already in flight; the caller should drop
// the input, not queue it.
var ErrBusy = errors.New("assistant busy")

type CaptureFunc func(ctx context.Context) ([]float32, error)
type SpeakFunc func(text string) error

type Config struct {
	Recognizer stt.Recognizer // nil disables Trigger
	Capture    CaptureFunc    // nil disables Trigger
	Speak      SpeakFunc      // nil means text-only replies

	// Recover is how long the faulted state lasts before the assistant
	// accepts input again.
	Recover time.Duration

	OnMessage func(dialog.Message) // every appended dialog message
	OnState   func(vehicle.State)  // after every executed command
	OnListen  func()               // capture about to start (earcon hook)
}

type Assistant struct {
	sm   *fsm.FSM
	ctrl *vehicle.Controller
	dlg  *dialog.Log
	cfg  Config
}

func New(ctrl *vehicle.Controller, dlg *dialog.Log, cfg Config) *Assistant {
	if cfg.Recover <= 0 {
		cfg.Recover = 3 * time.Second
	}

	a := &Assistant{ctrl: ctrl, dlg: dlg, cfg: cfg}
	a.sm = fsm.NewFSM(
		stateIdle,
		fsm.Events{
			{Name: evListen, Src: []string{stateIdle}, Dst: stateListening},
			{Name: evHeard, Src: []string{stateListening}, Dst: stateThinking},
			{Name: evSubmit, Src: []string{stateIdle}, Dst: stateThinking},
			{Name: evReply, Src: []string{stateThinking}, Dst: stateSpeaking},
			{Name: evSpoken, Src: []string{stateSpeaking}, Dst: stateIdle},
			{Name: evFault, Src: []string{stateListening, stateThinking, stateSpeaking}, Dst: stateFaulted},
			{Name: evRecover, Src: []string{stateFaulted}, Dst: stateIdle},
		},
		fsm.Callbacks{
			"enter_" + stateFaulted: func(context.Context, *fsm.Event) {
				time.AfterFunc(a.cfg.Recover, func() {
					if err := a.sm.Event(context.Background(), evRecover); err == nil {
						log.Info("fault cleared")
					}
				})
			},
		},
	)
	return a
}

// HandleText runs one typed or pre-recognized utterance to completion.
// Returns ErrBusy when another utterance is in flight.
func (a *Assistant) HandleText(text string) (dialog.Message, error) {
	if err := a.sm.Event(context.Background(), evSubmit); err != nil {
		return dialog.Message{}, ErrBusy
	}
	return a.finish(text), nil
}

// Trigger is push-to-talk: capture from the microphone, transcribe, then run
// the text path. Engine failures never surface as errors; they park the
// assistant in the faulted state until it recovers.
func (a *Assistant) Trigger(ctx context.Context) error {
	if a.cfg.Capture == nil || a.cfg.Recognizer == nil {
		return errors.New("speech capture not configured")
	}
	if err := a.sm.Event(ctx, evListen); err != nil {
		return ErrBusy
	}

	if a.cfg.OnListen != nil {
		a.cfg.OnListen()
	}

	pcm, err := a.cfg.Capture(ctx)
	if err != nil {
		a.fault("capture", err)
		return nil
	}
	log.Info("captured", "samples", len(pcm))

	res, err := a.cfg.Recognizer.Transcribe(ctx, pcm)
	if err != nil {
		a.fault("stt", err)
		return nil
	}
	log.Info("transcribed", "text", res.Text, "lang", res.Language)

	if err := a.sm.Event(ctx, evHeard); err != nil {
		return nil
	}
	a.finish(strings.TrimSpace(res.Text))
	return nil
}

// finish runs classify → execute → speak. Caller must have moved the state
// machine into thinking.
func (a *Assistant) finish(text string) dialog.Message {
	user := a.dlg.Append(dialog.RoleUser, text)
	a.emit(user)

	cmd := intent.Parse(text)
	res := a.ctrl.Apply(cmd)
	log.Info("executed", "type", cmd.Type, "category", cmd.Category, "ok", res.OK)

	reply := a.dlg.Append(dialog.RoleAssistant, res.Message)
	a.emit(reply)
	a.emitState()

	if err := a.sm.Event(context.Background(), evReply); err != nil {
		return reply
	}
	if a.cfg.Speak != nil {
		if err := a.cfg.Speak(res.Message); err != nil {
			a.fault("tts", err)
			return reply
		}
	}
	_ = a.sm.Event(context.Background(), evSpoken)
	return reply
}

func (a *Assistant) fault(stage string, err error) {
	log.Error("pipeline fault", "stage", stage, "err", err)
	if e := a.sm.Event(context.Background(), evFault); e != nil {
		return
	}
	a.emit(a.dlg.Append(dialog.RoleAssistant, FaultMessage))
}

// Reset clears the transcript and restores the vehicle defaults.
func (a *Assistant) Reset() {
	a.dlg.Clear()
	a.ctrl.Reset()
	a.emitState()
}

type Status struct {
	State    string        `json:"state"`
	Messages int           `json:"messages"`
	Vehicle  vehicle.State `json:"vehicle"`
}

func (a *Assistant) Status() Status {
	return Status{
		State:    a.sm.Current(),
		Messages: a.dlg.Len(),
		Vehicle:  a.ctrl.State(),
	}
}

func (a *Assistant) emit(msg dialog.Message) {
	if a.cfg.OnMessage != nil {
		a.cfg.OnMessage(msg)
	}
}

func (a *Assistant) emitState() {
	if a.cfg.OnState != nil {
		a.cfg.OnState(a.ctrl.State())
	}
}
