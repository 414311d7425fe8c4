package services

import (
	"context"

	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/domain"
)

// engineRouter dispatches synthesis requests to the engine variant the
// resolved voice belongs to.
type engineRouter struct {
	basic  outbound.SpeechSynthesizerPort
	neural outbound.SpeechSynthesizerPort
}

func NewEngineRouter(basic, neural outbound.SpeechSynthesizerPort) outbound.SpeechSynthesizerPort {
	return &engineRouter{
		basic:  basic,
		neural: neural,
	}
}

func (r *engineRouter) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	switch req.Engine {
	case domain.NeuralEngine:
		return r.neural.Synthesize(ctx, req)
	case domain.BasicEngine:
		return r.basic.Synthesize(ctx, req)
	default:
		return nil, &domain.UnsupportedEngineError{Engine: req.Engine}
	}
}
