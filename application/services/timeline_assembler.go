package services

import (
	"math"
	"sort"

	"github.com/nezuni1812/Vivid/application/ports/inbound"
	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/domain"
)

type timelineAssembler struct {
	logger outbound.LoggerPort
	codec  outbound.AudioCodecPort
}

func NewTimelineAssembler(logger outbound.LoggerPort, codec outbound.AudioCodecPort) inbound.TimelineAssemblerPort {
	return &timelineAssembler{
		logger: logger,
		codec:  codec,
	}
}

// Assemble sorts the chunks back into sentence order, concatenates them
// into one audio file and computes the timing manifest. Chunks that were
// dropped upstream simply leave no entry; the surviving relative order
// is preserved.
func (a *timelineAssembler) Assemble(chunks []domain.AudioChunk) (*domain.SynthesisResult, error) {
	if len(chunks) == 0 {
		return nil, domain.ErrEmptyTimeline
	}

	sort.Sort(domain.AudioChunksAscByOrdinal(chunks))

	fileName, err := a.codec.Concatenate(chunks)
	if err != nil {
		a.logger.Error(err, "Failed to concatenate audio chunks")
		return nil, err
	}

	return &domain.SynthesisResult{
		AudioFileName: fileName,
		Timings:       computeTimings(chunks),
	}, nil
}

// computeTimings accumulates durations at full precision and rounds to
// two decimals only at emission, so rounding never drifts across a long
// manifest.
func computeTimings(chunks []domain.AudioChunk) []domain.TimingEntry {
	timings := make([]domain.TimingEntry, 0, len(chunks))
	cumulativeStart := 0.0

	for _, chunk := range chunks {
		cumulativeEnd := cumulativeStart + chunk.Duration
		timings = append(timings, domain.TimingEntry{
			StartTime: roundSeconds(cumulativeStart),
			EndTime:   roundSeconds(cumulativeEnd),
			Content:   chunk.Text,
		})
		cumulativeStart = cumulativeEnd
	}

	return timings
}

func roundSeconds(seconds float64) float64 {
	return math.Round(seconds*100) / 100
}
