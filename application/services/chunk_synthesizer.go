package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/nezuni1812/Vivid/application/ports/inbound"
	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/domain"
)

type chunkSynthesizer struct {
	logger          outbound.LoggerPort
	synthesizer     outbound.SpeechSynthesizerPort
	effectProcessor outbound.EffectProcessorPort
	codec           outbound.AudioCodecPort
	workerPool      outbound.TaskDispatcher
}

func NewChunkSynthesizer(logger outbound.LoggerPort, synthesizer outbound.SpeechSynthesizerPort,
	effectProcessor outbound.EffectProcessorPort, codec outbound.AudioCodecPort,
	workerPool outbound.TaskDispatcher) inbound.ChunkSynthesizerPort {
	return &chunkSynthesizer{
		logger:          logger,
		synthesizer:     synthesizer,
		effectProcessor: effectProcessor,
		codec:           codec,
		workerPool:      workerPool,
	}
}

// Generate synthesizes each incoming unit on the worker pool. A unit
// whose synthesis, effect processing or duration probe fails is logged
// and dropped; the stage keeps going. Only submit failures reach the
// error channel.
func (s *chunkSynthesizer) Generate(ctx context.Context, units <-chan domain.SentenceUnit,
	voice domain.EngineVoice, params domain.EffectParams) (<-chan domain.AudioChunk, <-chan error) {
	out := make(chan domain.AudioChunk)
	errCh := make(chan error, 5)

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()

		var wg sync.WaitGroup

		for u := range units {
			select {
			case <-newCtx.Done():
				return
			default:
				wg.Add(1)
				unit := u
				err := s.workerPool.Submit(func() {
					defer wg.Done()

					chunk, err := s.synthesizeUnit(newCtx, unit, voice, params)
					if err != nil {
						s.logger.ErrorWithFields(err, "Skipping sentence after synthesis failure", map[string]interface{}{
							"ordinal": unit.Ordinal,
							"text":    unit.Text,
						})
						return
					}

					select {
					case out <- *chunk:
					case <-newCtx.Done():
					}
				})

				if err != nil {
					wg.Done()
					select {
					case errCh <- err:
					case <-newCtx.Done():
					}
					return
				}
			}
		}

		wg.Wait()
	})

	if err != nil {
		errCh <- err
	}

	return out, errCh
}

func (s *chunkSynthesizer) synthesizeUnit(ctx context.Context, unit domain.SentenceUnit,
	voice domain.EngineVoice, params domain.EffectParams) (*domain.AudioChunk, error) {
	req := outbound.SynthesizeSpeechRequest{
		Text:    unit.Text,
		VoiceID: voice.ID,
		Engine:  voice.Engine,
	}
	if voice.NativeModifiers {
		req.Speed = params.Speed
		req.Pitch = params.Pitch
	}

	audio, err := s.synthesizer.Synthesize(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("engine returned an empty audio buffer")
	}

	residual := s.residualEffects(voice, params)
	if !residual.IsIdentity() {
		audio, err = s.effectProcessor.Apply(ctx, audio, residual)
		if err != nil {
			return nil, err
		}
	}

	duration, err := s.codec.Duration(audio)
	if err != nil {
		return nil, err
	}

	s.logger.DebugWithFields("Synthesized chunk", map[string]interface{}{
		"ordinal":  unit.Ordinal,
		"duration": duration,
	})

	return &domain.AudioChunk{
		Ordinal:  unit.Ordinal,
		Text:     unit.Text,
		Data:     audio,
		Duration: duration,
	}, nil
}

// residualEffects strips the modifiers the engine already applied at
// synthesis time so they are not applied twice.
func (s *chunkSynthesizer) residualEffects(voice domain.EngineVoice, params domain.EffectParams) domain.EffectParams {
	if !voice.NativeModifiers {
		return params
	}
	return domain.EffectParams{Speed: 1.0, Pitch: 1.0, VolumeDB: params.VolumeDB}
}
