package services

import (
	"regexp"
	"strings"

	"github.com/nezuni1812/Vivid/application/ports/inbound"
	"github.com/nezuni1812/Vivid/domain"
)

type sentenceSegmenter struct {
	boundaryRegexp *regexp.Regexp
}

func NewSentenceSegmenter() inbound.SentenceSegmenterPort {
	return &sentenceSegmenter{
		boundaryRegexp: regexp.MustCompile(`[.!?]+\s+`),
	}
}

// Segment splits the script at runs of sentence-terminal punctuation
// followed by whitespace. Every retained piece is trimmed and gets a
// terminal "." appended, whatever its original terminator was. Input
// with no boundary yields a single unit.
func (s *sentenceSegmenter) Segment(script string) []domain.SentenceUnit {
	pieces := s.boundaryRegexp.Split(script, -1)

	units := make([]domain.SentenceUnit, 0, len(pieces))
	for _, piece := range pieces {
		trimmed := strings.TrimSpace(piece)
		if trimmed == "" {
			continue
		}
		units = append(units, domain.SentenceUnit{
			Ordinal: len(units),
			Text:    trimmed + ".",
		})
	}

	return units
}
