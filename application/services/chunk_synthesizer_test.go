package services

import (
	"context"
	"sort"
	"testing"

	"github.com/nezuni1812/Vivid/domain"
	"github.com/nezuni1812/Vivid/infrastructure/adapters"
	mockengine "github.com/nezuni1812/Vivid/mock"
	"github.com/panjf2000/ants/v2"
)

func feedUnits(t *testing.T, pool *ants.Pool, units []domain.SentenceUnit) <-chan domain.SentenceUnit {
	t.Helper()
	out := make(chan domain.SentenceUnit)
	err := pool.Submit(func() {
		defer close(out)
		for _, unit := range units {
			out <- unit
		}
	})
	if err != nil {
		t.Fatal("Failed to submit feeder task:", err)
	}
	return out
}

func collectChunks(t *testing.T, chunkCh <-chan domain.AudioChunk, errCh <-chan error) []domain.AudioChunk {
	t.Helper()
	chunks := make([]domain.AudioChunk, 0)
	for {
		select {
		case err, ok := <-errCh:
			if ok {
				t.Fatal("Received an error:", err)
			}
			errCh = nil
		case chunk, ok := <-chunkCh:
			if !ok {
				return chunks
			}
			chunks = append(chunks, chunk)
		}
	}
}

func TestChunkSynthesizer_PartialFailureKeepsOrder(t *testing.T) {
	pool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer pool.Release()

	logger := adapters.NewZerologWrapper()
	synthesizer := mockengine.NewSpeechSynthesizer()
	synthesizer.FailOn["B."] = true
	effectProcessor := mockengine.NewEffectProcessor()

	stage := NewChunkSynthesizer(logger, synthesizer, effectProcessor, mockengine.NewAudioCodec(), pool)

	units := []domain.SentenceUnit{
		{Ordinal: 0, Text: "A."},
		{Ordinal: 1, Text: "B."},
		{Ordinal: 2, Text: "C."},
	}

	voice := domain.EngineVoice{ID: "en", Engine: domain.BasicEngine}

	chunkCh, errCh := stage.Generate(context.Background(), feedUnits(t, pool, units), voice, domain.IdentityEffectParams())
	chunks := collectChunks(t, chunkCh, errCh)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}

	sort.Sort(domain.AudioChunksAscByOrdinal(chunks))
	if chunks[0].Text != "A." || chunks[1].Text != "C." {
		t.Errorf("surviving chunks = [%q, %q], want [A., C.]", chunks[0].Text, chunks[1].Text)
	}
}

func TestChunkSynthesizer_IdentityShortCircuit(t *testing.T) {
	pool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer pool.Release()

	logger := adapters.NewZerologWrapper()
	synthesizer := mockengine.NewSpeechSynthesizer()
	effectProcessor := mockengine.NewEffectProcessor()

	stage := NewChunkSynthesizer(logger, synthesizer, effectProcessor, mockengine.NewAudioCodec(), pool)

	units := []domain.SentenceUnit{
		{Ordinal: 0, Text: "A."},
		{Ordinal: 1, Text: "B."},
	}
	voice := domain.EngineVoice{ID: "en", Engine: domain.BasicEngine}

	chunkCh, errCh := stage.Generate(context.Background(), feedUnits(t, pool, units), voice, domain.IdentityEffectParams())
	chunks := collectChunks(t, chunkCh, errCh)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if effectProcessor.Calls() != 0 {
		t.Errorf("effect processor was invoked %d times with identity params, want 0", effectProcessor.Calls())
	}
}

func TestChunkSynthesizer_AppliesEffectsWhenNonIdentity(t *testing.T) {
	pool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer pool.Release()

	logger := adapters.NewZerologWrapper()
	synthesizer := mockengine.NewSpeechSynthesizer()
	effectProcessor := mockengine.NewEffectProcessor()

	stage := NewChunkSynthesizer(logger, synthesizer, effectProcessor, mockengine.NewAudioCodec(), pool)

	units := []domain.SentenceUnit{
		{Ordinal: 0, Text: "A."},
		{Ordinal: 1, Text: "B."},
	}
	voice := domain.EngineVoice{ID: "en", Engine: domain.BasicEngine}
	params := domain.EffectParams{Speed: 1.2, Pitch: 0.9, VolumeDB: -3.0}

	chunkCh, errCh := stage.Generate(context.Background(), feedUnits(t, pool, units), voice, params)
	chunks := collectChunks(t, chunkCh, errCh)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if effectProcessor.Calls() != 2 {
		t.Errorf("effect processor invoked %d times, want 2", effectProcessor.Calls())
	}
}

func TestChunkSynthesizer_NativeModifiersSkipPostProcessing(t *testing.T) {
	pool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer pool.Release()

	logger := adapters.NewZerologWrapper()
	synthesizer := mockengine.NewSpeechSynthesizer()
	effectProcessor := mockengine.NewEffectProcessor()

	stage := NewChunkSynthesizer(logger, synthesizer, effectProcessor, mockengine.NewAudioCodec(), pool)

	units := []domain.SentenceUnit{{Ordinal: 0, Text: "A."}}
	voice := domain.EngineVoice{ID: "en-US-JennyNeural", Engine: domain.NeuralEngine, NativeModifiers: true}
	params := domain.EffectParams{Speed: 1.5, Pitch: 1.2, VolumeDB: 0.0}

	chunkCh, errCh := stage.Generate(context.Background(), feedUnits(t, pool, units), voice, params)
	chunks := collectChunks(t, chunkCh, errCh)

	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}

	// Speed and pitch went to the engine, so nothing is left for the
	// effect processor to do.
	if effectProcessor.Calls() != 0 {
		t.Errorf("effect processor invoked %d times, want 0", effectProcessor.Calls())
	}

	requests := synthesizer.Requests()
	if len(requests) != 1 {
		t.Fatalf("got %d synthesis requests, want 1", len(requests))
	}
	if requests[0].Speed != 1.5 || requests[0].Pitch != 1.2 {
		t.Errorf("engine request modifiers = (%v, %v), want (1.5, 1.2)", requests[0].Speed, requests[0].Pitch)
	}
}

func TestChunkSynthesizer_ResidualVolumeStillApplied(t *testing.T) {
	pool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer pool.Release()

	logger := adapters.NewZerologWrapper()
	synthesizer := mockengine.NewSpeechSynthesizer()
	effectProcessor := mockengine.NewEffectProcessor()

	stage := NewChunkSynthesizer(logger, synthesizer, effectProcessor, mockengine.NewAudioCodec(), pool)

	units := []domain.SentenceUnit{{Ordinal: 0, Text: "A."}}
	voice := domain.EngineVoice{ID: "en-US-JennyNeural", Engine: domain.NeuralEngine, NativeModifiers: true}
	params := domain.EffectParams{Speed: 1.5, Pitch: 1.0, VolumeDB: 6.0}

	chunkCh, errCh := stage.Generate(context.Background(), feedUnits(t, pool, units), voice, params)
	chunks := collectChunks(t, chunkCh, errCh)

	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if effectProcessor.Calls() != 1 {
		t.Errorf("effect processor invoked %d times, want 1 for the volume residual", effectProcessor.Calls())
	}
}
