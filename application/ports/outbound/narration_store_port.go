package outbound

import "context"

type StoreNarrationRequest struct {
	WorkspaceID   string
	NarrationID   string
	AudioFileName string
}

// NarrationStorePort uploads finished narration audio to object storage
// and deletes superseded objects.
type NarrationStorePort interface {
	Save(ctx context.Context, req StoreNarrationRequest) (string, error)
	Delete(ctx context.Context, audioURL string) error
}
