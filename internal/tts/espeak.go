// Package tts speaks replies through espeak-ng. Synthesis is synchronous:
// Speak returns once the phrase has been played out.
package tts

/*
#cgo LDFLAGS: -lespeak-ng
#include <stdlib.h>
#include <espeak-ng/speak_lib.h>

int
cabin_say(const char *text, const char *voice, int rate)
{
	if (!text)
	{ return -1; }

	if (espeak_Initialize(AUDIO_OUTPUT_SYNCH_PLAYBACK, 500, NULL, 0) < 0)
	{ return -2; }

	espeak_SetVoiceByName(voice);
	espeak_SetParameter(espeakRATE, rate, 0);

	espeak_Synth(text, 500, 0, 0, 0, espeakCHARS_AUTO, NULL, NULL);
	espeak_Synchronize();
	espeak_Terminate();

	return 0;
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

type Engine struct {
	Voice string // espeak voice name, "zh" for Mandarin
	Rate  int    // words per minute
}

func New(voice string, rate int) *Engine {
	if voice == "" {
		voice = "zh"
	}
	if rate <= 0 {
		rate = 500
	}
	return &Engine{Voice: voice, Rate: rate}
}

func (e *Engine) Speak(text string) error {
	if text == "" {
		return nil
	}

	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))
	cvoice := C.CString(e.Voice)
	defer C.free(unsafe.Pointer(cvoice))

	rc := C.cabin_say(ctext, cvoice, C.int(e.Rate))
	if rc != 0 {
		return fmt.Errorf("espeak synth failed: %d", int(rc))
	}

	return nil
}
