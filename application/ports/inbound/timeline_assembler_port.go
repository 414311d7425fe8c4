package inbound

import "github.com/nezuni1812/Vivid/domain"

// TimelineAssemblerPort restores sentence order, concatenates chunks
// into one audio file and derives the timing manifest.
type TimelineAssemblerPort interface {
	Assemble(chunks []domain.AudioChunk) (*domain.SynthesisResult, error)
}
