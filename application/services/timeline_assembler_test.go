package services

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/nezuni1812/Vivid/domain"
	"github.com/nezuni1812/Vivid/infrastructure/adapters"
	mockengine "github.com/nezuni1812/Vivid/mock"
)

func TestTimelineAssembler_Assemble(t *testing.T) {
	logger := adapters.NewZerologWrapper()
	assembler := NewTimelineAssembler(logger, mockengine.NewAudioCodec())

	// Chunks arrive in completion order, not sentence order.
	chunks := []domain.AudioChunk{
		{Ordinal: 2, Text: "Third.", Data: mockengine.SilenceMP3, Duration: 0.5},
		{Ordinal: 0, Text: "First.", Data: mockengine.SilenceMP3, Duration: 1.234},
		{Ordinal: 1, Text: "Second.", Data: mockengine.SilenceMP3, Duration: 2.345},
	}

	result, err := assembler.Assemble(chunks)
	if err != nil {
		t.Fatal("Failed to assemble timeline:", err)
	}
	defer func() {
		if err := os.Remove(result.AudioFileName); err != nil {
			t.Log("failed to remove combined audio:", err)
		}
	}()

	wantContent := []string{"First.", "Second.", "Third."}
	if len(result.Timings) != len(wantContent) {
		t.Fatalf("got %d timing entries, want %d", len(result.Timings), len(wantContent))
	}

	if result.Timings[0].StartTime != 0.0 {
		t.Errorf("first entry starts at %v, want 0.0", result.Timings[0].StartTime)
	}

	for i, entry := range result.Timings {
		if entry.Content != wantContent[i] {
			t.Errorf("entry %d content = %q, want %q", i, entry.Content, wantContent[i])
		}
		if i > 0 && entry.StartTime != result.Timings[i-1].EndTime {
			t.Errorf("entry %d start %v != previous end %v", i, entry.StartTime, result.Timings[i-1].EndTime)
		}
		if entry.EndTime <= entry.StartTime {
			t.Errorf("entry %d is not monotonic: [%v, %v]", i, entry.StartTime, entry.EndTime)
		}
	}

	// 1.234 + 2.345 + 0.5 = 4.079 -> 4.08 at emission.
	if last := result.Timings[len(result.Timings)-1].EndTime; last != 4.08 {
		t.Errorf("final end time = %v, want 4.08", last)
	}
}

func TestTimelineAssembler_RoundingDoesNotDrift(t *testing.T) {
	logger := adapters.NewZerologWrapper()
	assembler := NewTimelineAssembler(logger, mockengine.NewAudioCodec())

	chunks := make([]domain.AudioChunk, 0, 10)
	for i := 0; i < 10; i++ {
		chunks = append(chunks, domain.AudioChunk{
			Ordinal:  i,
			Text:     "x.",
			Data:     mockengine.SilenceMP3,
			Duration: 0.333,
		})
	}

	result, err := assembler.Assemble(chunks)
	if err != nil {
		t.Fatal("Failed to assemble timeline:", err)
	}
	defer func() {
		_ = os.Remove(result.AudioFileName)
	}()

	// Accumulation happens at full precision: entry i starts at
	// round(0.333*i), not at the rounded previous value compounded.
	for i, entry := range result.Timings {
		want := math.Round(0.333*float64(i)*100) / 100
		if entry.StartTime != want {
			t.Errorf("entry %d starts at %v, want %v", i, entry.StartTime, want)
		}
	}

	if last := result.Timings[9].EndTime; last != 3.33 {
		t.Errorf("final end time = %v, want 3.33", last)
	}
}

func TestTimelineAssembler_EmptyInput(t *testing.T) {
	logger := adapters.NewZerologWrapper()
	assembler := NewTimelineAssembler(logger, mockengine.NewAudioCodec())

	_, err := assembler.Assemble(nil)
	if !errors.Is(err, domain.ErrEmptyTimeline) {
		t.Fatalf("expected ErrEmptyTimeline, got %v", err)
	}
}
