package inbound

import (
	"context"

	"github.com/nezuni1812/Vivid/domain"
)

// ChunkSynthesizerPort is the fan-out synthesis stage. Each incoming
// sentence unit is synthesized independently; units whose synthesis or
// effect processing fails are dropped and never appear on the output
// channel. The output channel carries chunks in completion order, not
// sentence order.
type ChunkSynthesizerPort interface {
	Generate(ctx context.Context, units <-chan domain.SentenceUnit, voice domain.EngineVoice,
		params domain.EffectParams) (<-chan domain.AudioChunk, <-chan error)
}
