package services

import (
	"context"
	"strings"

	"github.com/nezuni1812/Vivid/application/ports/inbound"
	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/channel_utils"
	"github.com/nezuni1812/Vivid/domain"
)

type narrationPipeline struct {
	logger           outbound.LoggerPort
	workerPool       outbound.TaskDispatcher
	segmenter        inbound.SentenceSegmenterPort
	voiceResolver    inbound.VoiceResolverPort
	chunkSynthesizer inbound.ChunkSynthesizerPort
	assembler        inbound.TimelineAssemblerPort
}

func NewNarrationPipeline(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	segmenter inbound.SentenceSegmenterPort, voiceResolver inbound.VoiceResolverPort,
	chunkSynthesizer inbound.ChunkSynthesizerPort, assembler inbound.TimelineAssemblerPort) inbound.NarrationPipelinePort {
	return &narrationPipeline{
		logger:           logger,
		workerPool:       workerPool,
		segmenter:        segmenter,
		voiceResolver:    voiceResolver,
		chunkSynthesizer: chunkSynthesizer,
		assembler:        assembler,
	}
}

// Run executes one full narration: segment, resolve the voice, fan out
// per-sentence synthesis, collect whatever survived and assemble the
// timeline. Individual sentences may drop out; the run only fails when
// nothing survived, or before any work begins (bad params, unsupported
// voice).
func (p *narrationPipeline) Run(ctx context.Context, params inbound.RunNarrationParams) (*domain.SynthesisResult, error) {
	if err := params.Effects.Validate(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Script) == "" {
		return nil, domain.ErrEmptyScript
	}

	voice, err := p.voiceResolver.Resolve(params.Language, params.Engine, params.Gender)
	if err != nil {
		p.logger.Error(err, "Failed to resolve narration voice")
		return nil, err
	}

	units := p.segmenter.Segment(params.Script)

	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	unitCh, feedErrCh := p.feedUnits(newCtx, units)

	chunkCh, synthErrCh := p.chunkSynthesizer.Generate(newCtx, unitCh, voice, params.Effects)

	mergedErrCh, err := channel_utils.MergeChannels(p.workerPool, feedErrCh, synthErrCh)
	if err != nil {
		p.logger.Error(err, "Failed to merge pipeline error channels")
		return nil, err
	}

	chunks, err := p.collectChunks(newCtx, chunkCh, mergedErrCh)
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		p.logger.WarnWithFields("All sentences failed to synthesize", map[string]interface{}{
			"sentences": len(units),
		})
		return nil, domain.ErrSynthesisExhausted
	}

	if len(chunks) < len(units) {
		p.logger.WarnWithFields("Some sentences were dropped from the narration", map[string]interface{}{
			"sentences": len(units),
			"chunks":    len(chunks),
		})
	}

	return p.assembler.Assemble(chunks)
}

func (p *narrationPipeline) feedUnits(ctx context.Context, units []domain.SentenceUnit) (<-chan domain.SentenceUnit, <-chan error) {
	out := make(chan domain.SentenceUnit)
	errCh := make(chan error, 1)

	err := p.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		for _, unit := range units {
			select {
			case out <- unit:
			case <-ctx.Done():
				return
			}
		}
	})
	if err != nil {
		errCh <- err
		close(out)
		close(errCh)
	}

	return out, errCh
}

func (p *narrationPipeline) collectChunks(ctx context.Context, chunkCh <-chan domain.AudioChunk, errCh <-chan error) ([]domain.AudioChunk, error) {
	chunks := make([]domain.AudioChunk, 0)
	for {
		select {
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				p.logger.Error(err, "Error in narration pipeline")
				return nil, err
			}
		case <-ctx.Done():
			p.logger.Info("Narration pipeline context cancelled")
			return nil, ctx.Err()
		case chunk, ok := <-chunkCh:
			if !ok {
				return chunks, nil
			}
			chunks = append(chunks, chunk)
		}
	}
}
