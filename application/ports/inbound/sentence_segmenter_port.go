package inbound

import "github.com/nezuni1812/Vivid/domain"

// SentenceSegmenterPort splits raw script text into ordered sentence
// units. Pure; no error conditions.
type SentenceSegmenterPort interface {
	Segment(script string) []domain.SentenceUnit
}
