package mockengine

import (
	"context"
	"fmt"
	"sync"

	"github.com/nezuni1812/Vivid/domain"
)

// EffectProcessor records every Apply call so tests can assert the
// identity short-circuit: with identity parameters the pipeline must
// never reach this processor.
type EffectProcessor struct {
	mu    sync.Mutex
	calls int

	Fail bool
}

func NewEffectProcessor() *EffectProcessor {
	return &EffectProcessor{}
}

func (e *EffectProcessor) Apply(_ context.Context, audio []byte, params domain.EffectParams) ([]byte, error) {
	e.mu.Lock()
	e.calls++
	e.mu.Unlock()

	if err := params.Validate(); err != nil {
		return nil, err
	}
	if e.Fail {
		return nil, &domain.EffectProcessingError{Cause: fmt.Errorf("mock filter failure")}
	}

	return audio, nil
}

func (e *EffectProcessor) Calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}
