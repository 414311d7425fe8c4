package outbound

import (
	"context"

	"github.com/nezuni1812/Vivid/domain"
)

type NarrationRecord struct {
	WorkspaceID string
	NarrationID string
	ScriptID    string
	AudioURL    string
	Timings     []domain.TimingEntry
	Status      string
}

// NarrationCachePort persists narration metadata, including the timing
// manifest, for later retrieval by the rendering front end.
type NarrationCachePort interface {
	Save(ctx context.Context, record NarrationRecord) error
}
