package mockengine

import (
	"os"

	"github.com/google/uuid"
	"github.com/nezuni1812/Vivid/domain"
)

// AudioCodec reports a fixed duration per chunk and concatenates by
// appending the raw bytes, which is close enough to the real concat
// demuxer for pipeline-level assertions.
type AudioCodec struct {
	// ChunkDuration is the duration reported for every chunk. Defaults
	// to 1.5 seconds when zero.
	ChunkDuration float64
}

func NewAudioCodec() *AudioCodec {
	return &AudioCodec{}
}

func (c *AudioCodec) Duration(_ []byte) (float64, error) {
	if c.ChunkDuration != 0 {
		return c.ChunkDuration, nil
	}
	return 1.5, nil
}

func (c *AudioCodec) Concatenate(chunks []domain.AudioChunk) (string, error) {
	combined := make([]byte, 0)
	for _, chunk := range chunks {
		combined = append(combined, chunk.Data...)
	}

	fileName := os.TempDir() + "/" + uuid.NewString() + ".mp3"
	if err := os.WriteFile(fileName, combined, 0o644); err != nil {
		return "", err
	}

	return fileName, nil
}
