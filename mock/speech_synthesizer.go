package mockengine

import (
	"context"
	"fmt"
	"sync"

	"github.com/nezuni1812/Vivid/application/ports/outbound"
)

// SilenceMP3 is a canned MP3 frame used as the synthesizer output so
// the service can run end to end without a real engine.
var SilenceMP3 = []byte{
	0xFF, 0xFB, 0x90, 0x64, 0x00, 0x0F, 0xF0, 0x00, 0x00, 0x69,
	0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x0D, 0x20, 0x00, 0x00,
	0x01, 0x00, 0x00, 0x01, 0xA4, 0x00, 0x00, 0x00, 0x20, 0x00,
	0x00, 0x34, 0x80, 0x00, 0x00, 0x04,
}

// SpeechSynthesizer is a configurable stand-in for a TTS engine. Texts
// listed in FailOn fail synthesis; everything else returns SilenceMP3.
type SpeechSynthesizer struct {
	mu       sync.Mutex
	calls    int
	requests []outbound.SynthesizeSpeechRequest

	FailOn map[string]bool
	// FailAll makes every synthesis call fail.
	FailAll bool
}

func NewSpeechSynthesizer() *SpeechSynthesizer {
	return &SpeechSynthesizer{
		FailOn: make(map[string]bool),
	}
}

func (s *SpeechSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	s.mu.Lock()
	s.calls++
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.FailAll || s.FailOn[req.Text] {
		return nil, fmt.Errorf("synthesis failed for %q", req.Text)
	}

	return SilenceMP3, nil
}

func (s *SpeechSynthesizer) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *SpeechSynthesizer) Requests() []outbound.SynthesizeSpeechRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]outbound.SynthesizeSpeechRequest, len(s.requests))
	copy(out, s.requests)
	return out
}
