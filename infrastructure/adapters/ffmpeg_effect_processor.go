package adapters

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/domain"
)

// BaseSampleRate is the canonical rate the pitch trick resamples back
// to. Raising the declared rate by the pitch factor and resampling back
// is what shifts the perceived pitch; it also stretches the duration,
// and tempo is applied afterwards at the unmodified speed factor.
const BaseSampleRate = 44100

// BuildFilterGraph renders the declarative filter string for the
// external process. The stage order is fixed: pitch first, then tempo,
// then volume. The stages are not commutative.
func BuildFilterGraph(params domain.EffectParams) string {
	pitchFilter := fmt.Sprintf("asetrate=%d*%s,aresample=%d", BaseSampleRate, formatFactor(params.Pitch), BaseSampleRate)
	speedFilter := fmt.Sprintf("atempo=%s", formatFactor(params.Speed))
	volumeFilter := fmt.Sprintf("volume=%sdB", formatFactor(params.VolumeDB))

	return strings.Join([]string{pitchFilter, speedFilter, volumeFilter}, ",")
}

func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

type ffmpegEffectProcessor struct {
	logger outbound.LoggerPort
}

func NewFFmpegEffectProcessor(logger outbound.LoggerPort) outbound.EffectProcessorPort {
	return &ffmpegEffectProcessor{
		logger: logger,
	}
}

// Apply pipes the chunk through ffmpeg with the rendered filter graph.
// Parameter ranges are validated again here even though the pipeline
// validates them up front.
func (f *ffmpegEffectProcessor) Apply(ctx context.Context, audio []byte, params domain.EffectParams) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-f", "mp3", "-i", "pipe:0",
		"-af", BuildFilterGraph(params),
		"-f", "mp3", "pipe:1")

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(audio)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		f.logger.ErrorWithFields(err, "ffmpeg filter invocation failed", map[string]interface{}{
			"stderr": stderr.String(),
		})
		return nil, &domain.EffectProcessingError{Cause: err}
	}

	if stdout.Len() == 0 {
		err := fmt.Errorf("ffmpeg produced no output")
		f.logger.Error(err, "ffmpeg filter invocation produced an empty buffer")
		return nil, &domain.EffectProcessingError{Cause: err}
	}

	return stdout.Bytes(), nil
}
