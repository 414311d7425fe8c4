package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyScript is returned when the narration script is empty after
// trimming; there is nothing to synthesize.
var ErrEmptyScript = errors.New("script is empty")

// ErrSynthesisExhausted is returned when every sentence of a script
// failed to synthesize and no audio could be produced at all.
var ErrSynthesisExhausted = errors.New("no audio chunks produced: synthesis failed for every sentence")

// ErrEmptyTimeline is returned by the timeline assembler when it is
// given zero chunks.
var ErrEmptyTimeline = errors.New("cannot assemble a timeline from zero chunks")

type UnsupportedLanguageError struct {
	Language string
	Engine   TTSEngine
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("language %q is not supported by engine %q", e.Language, e.Engine)
}

type UnsupportedEngineError struct {
	Engine TTSEngine
}

func (e *UnsupportedEngineError) Error() string {
	return fmt.Sprintf("unrecognized TTS engine %q", e.Engine)
}

// EffectRangeError reports an effect parameter outside its declared
// range. It is raised before any engine or filter invocation.
type EffectRangeError struct {
	Param string
	Value float64
	Min   float64
	Max   float64
}

func NewEffectRangeError(param string, value, min, max float64) *EffectRangeError {
	return &EffectRangeError{Param: param, Value: value, Min: min, Max: max}
}

func (e *EffectRangeError) Error() string {
	return fmt.Sprintf("effect parameter %s=%v outside range [%v, %v]", e.Param, e.Value, e.Min, e.Max)
}

// EffectProcessingError wraps a failure of the external filter process
// for a single chunk. The pipeline treats it like a synthesis failure:
// the sentence is dropped.
type EffectProcessingError struct {
	Cause error
}

func (e *EffectProcessingError) Error() string {
	return fmt.Sprintf("effect processing failed: %v", e.Cause)
}

func (e *EffectProcessingError) Unwrap() error {
	return e.Cause
}
