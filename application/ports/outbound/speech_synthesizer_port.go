package outbound

import (
	"context"

	"github.com/nezuni1812/Vivid/domain"
)

// SynthesizeSpeechRequest carries one sentence to the TTS engine. Speed
// and Pitch are only honored by engines with native modifier support;
// the basic engine ignores them and relies on post-hoc filtering.
type SynthesizeSpeechRequest struct {
	Text    string
	VoiceID string
	Engine  domain.TTSEngine
	Speed   float64
	Pitch   float64
}

// SpeechSynthesizerPort invokes an external TTS engine for a single
// sentence and returns the encoded audio bytes.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) ([]byte, error)
}
