package adapters

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/config"
	"github.com/rs/zerolog/log"
)

// basicTTSEngine talks to the simple translate-style TTS endpoint. One
// voice per language, no synthesis-time modifiers: speed and pitch in
// the request are ignored and must be applied by post-hoc filtering.
type basicTTSEngine struct {
	ContentFetcher
	basicTTSConfig *config.BasicTTSConfig
}

func NewBasicTTSEngine(contentFetcher ContentFetcher, basicTTSConfig *config.BasicTTSConfig) outbound.SpeechSynthesizerPort {
	return &basicTTSEngine{
		ContentFetcher: contentFetcher,
		basicTTSConfig: basicTTSConfig,
	}
}

func (b *basicTTSEngine) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	httpReq, err := b.getRequest(ctx, req.Text, req.VoiceID)
	if err != nil {
		log.Error().Err(err).Str("action", "Fetching Audio").Str("text", req.Text).Msg("Failed to construct the HTTP request for basic TTS")
		return nil, err
	}

	return b.FetchContent(httpReq)
}

func (b *basicTTSEngine) getRequest(ctx context.Context, text string, languageCode string) (*http.Request, error) {
	query := url.Values{}
	query.Set("q", text)
	query.Set("tl", languageCode)
	query.Set("client", "tw-ob")

	req, err := http.NewRequestWithContext(ctx, "GET", b.basicTTSConfig.ApiUrl+"?"+query.Encode(), nil)
	if err != nil {
		log.Error().Err(err).Str("action", "Creating HTTP Request").Str("URL", b.basicTTSConfig.ApiUrl).Msg("Failed to create the HTTP GET request")
		return nil, err
	}

	req.Header.Add("Accept", "audio/mpeg")

	return req, nil
}
