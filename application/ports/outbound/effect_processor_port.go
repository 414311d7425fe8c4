package outbound

import (
	"context"

	"github.com/nezuni1812/Vivid/domain"
)

// EffectProcessorPort applies speed, pitch and volume transforms to one
// encoded audio chunk and returns the transformed bytes.
type EffectProcessorPort interface {
	Apply(ctx context.Context, audio []byte, params domain.EffectParams) ([]byte, error)
}
