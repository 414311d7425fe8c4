package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nezuni1812/Vivid/domain"
)

func TestBuildFilterGraph(t *testing.T) {
	tests := []struct {
		name   string
		params domain.EffectParams
		want   string
	}{
		{
			name:   "identity",
			params: domain.IdentityEffectParams(),
			want:   "asetrate=44100*1,aresample=44100,atempo=1,volume=0dB",
		},
		{
			name:   "all three stages",
			params: domain.EffectParams{Speed: 1.5, Pitch: 0.8, VolumeDB: -3.0},
			want:   "asetrate=44100*0.8,aresample=44100,atempo=1.5,volume=-3dB",
		},
		{
			name:   "volume boost",
			params: domain.EffectParams{Speed: 1.0, Pitch: 1.0, VolumeDB: 6.0},
			want:   "asetrate=44100*1,aresample=44100,atempo=1,volume=6dB",
		},
		{
			name:   "fractional factors keep full precision",
			params: domain.EffectParams{Speed: 1.25, Pitch: 1.05, VolumeDB: 2.5},
			want:   "asetrate=44100*1.05,aresample=44100,atempo=1.25,volume=2.5dB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildFilterGraph(tt.params); got != tt.want {
				t.Errorf("BuildFilterGraph(%+v) = %q, want %q", tt.params, got, tt.want)
			}
		})
	}
}

func TestBuildFilterGraph_StageOrder(t *testing.T) {
	graph := BuildFilterGraph(domain.EffectParams{Speed: 1.5, Pitch: 0.8, VolumeDB: -3.0})

	pitchIdx := strings.Index(graph, "asetrate=")
	tempoIdx := strings.Index(graph, "atempo=")
	volumeIdx := strings.Index(graph, "volume=")

	if pitchIdx == -1 || tempoIdx == -1 || volumeIdx == -1 {
		t.Fatalf("filter graph %q is missing a stage", graph)
	}
	if !(pitchIdx < tempoIdx && tempoIdx < volumeIdx) {
		t.Errorf("stages out of order in %q: pitch must precede tempo, tempo must precede volume", graph)
	}
}

func TestFFmpegEffectProcessor_RejectsOutOfRangeParams(t *testing.T) {
	processor := NewFFmpegEffectProcessor(NewZerologWrapper())

	tests := []struct {
		name   string
		params domain.EffectParams
	}{
		{name: "speed too high", params: domain.EffectParams{Speed: 3.0, Pitch: 1.0, VolumeDB: 0.0}},
		{name: "speed too low", params: domain.EffectParams{Speed: 0.1, Pitch: 1.0, VolumeDB: 0.0}},
		{name: "pitch too high", params: domain.EffectParams{Speed: 1.0, Pitch: 2.5, VolumeDB: 0.0}},
		{name: "volume out of range", params: domain.EffectParams{Speed: 1.0, Pitch: 1.0, VolumeDB: 20.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := processor.Apply(context.Background(), []byte("not real audio"), tt.params)
			var rangeErr *domain.EffectRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected EffectRangeError, got %v", err)
			}
		})
	}
}
