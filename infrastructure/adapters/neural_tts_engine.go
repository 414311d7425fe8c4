package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/config"
	"github.com/rs/zerolog/log"
)

type neuralTTSRequest struct {
	Text         string  `json:"text"`
	Voice        string  `json:"voice"`
	Rate         float64 `json:"rate"`
	Pitch        float64 `json:"pitch"`
	OutputFormat string  `json:"output_format"`
}

// neuralTTSEngine talks to the multi-voice neural endpoint. Rate and
// pitch are applied at synthesis time by the engine itself, so the
// effect processor must only add the residual volume gain afterwards.
type neuralTTSEngine struct {
	ContentFetcher
	neuralTTSConfig *config.NeuralTTSConfig
}

func NewNeuralTTSEngine(contentFetcher ContentFetcher, neuralTTSConfig *config.NeuralTTSConfig) outbound.SpeechSynthesizerPort {
	return &neuralTTSEngine{
		ContentFetcher:  contentFetcher,
		neuralTTSConfig: neuralTTSConfig,
	}
}

func (n *neuralTTSEngine) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	httpReq, err := n.getRequest(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("action", "Fetching Audio").Str("text", req.Text).Msg("Failed to construct the HTTP request for neural TTS")
		return nil, err
	}

	return n.FetchContent(httpReq)
}

func (n *neuralTTSEngine) getRequest(ctx context.Context, req outbound.SynthesizeSpeechRequest) (*http.Request, error) {
	rate := req.Speed
	if rate == 0 {
		rate = 1.0
	}
	pitch := req.Pitch
	if pitch == 0 {
		pitch = 1.0
	}

	reqBody := neuralTTSRequest{
		Text:         req.Text,
		Voice:        req.VoiceID,
		Rate:         rate,
		Pitch:        pitch,
		OutputFormat: n.neuralTTSConfig.OutputFormat,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		log.Error().Err(err).Str("action", "Marshalling JSON").Interface("neuralTTSRequest", reqBody).Msg("Failed to marshal the request body for the neural TTS API")
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", n.neuralTTSConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Error().Err(err).Str("action", "Creating HTTP Request").Str("URL", n.neuralTTSConfig.ApiUrl).Msg("Failed to create the HTTP POST request")
		return nil, err
	}

	reqHeaders := map[string]string{
		"Accept":       "audio/mpeg",
		"x-api-key":    n.neuralTTSConfig.ApiKey,
		"Content-Type": "application/json",
	}
	for key, value := range reqHeaders {
		httpReq.Header.Add(key, value)
	}

	return httpReq, nil
}
