package inbound

import (
	"context"

	"github.com/nezuni1812/Vivid/domain"
)

type RunNarrationParams struct {
	Script   string
	Language string
	Engine   domain.TTSEngine
	Gender   domain.VoiceGender
	Effects  domain.EffectParams
}

// NarrationPipelinePort runs the full script-to-audio pipeline: segment,
// resolve voice, synthesize per sentence, apply effects, assemble the
// timeline. One invocation produces one audio file and its manifest.
type NarrationPipelinePort interface {
	Run(ctx context.Context, params RunNarrationParams) (*domain.SynthesisResult, error)
}
