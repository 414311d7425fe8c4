package outbound

import "github.com/nezuni1812/Vivid/domain"

// AudioCodecPort wraps the external codec capability: duration probing
// of encoded audio and concatenation of ordered chunks into one file.
type AudioCodecPort interface {
	// Duration returns the length in seconds of the encoded audio.
	Duration(audio []byte) (float64, error)
	// Concatenate joins the chunks in the given order into a single
	// playable file and returns its name. Callers own the returned file.
	Concatenate(chunks []domain.AudioChunk) (string, error)
}
