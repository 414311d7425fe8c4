package config

import (
	"fmt"
	"os"
)

type NeuralTTSConfig struct {
	ApiUrl       string
	ApiKey       string
	OutputFormat string
}

func GetNeuralTTSConfig() (*NeuralTTSConfig, error) {
	apiUrl := os.Getenv("NEURAL_TTS_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("NEURAL_TTS_API_URL must be set")
	}
	apiKey := os.Getenv("NEURAL_TTS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("NEURAL_TTS_API_KEY must be set")
	}
	outputFormat := os.Getenv("NEURAL_TTS_OUTPUT_FORMAT")
	if outputFormat == "" {
		outputFormat = "audio-24khz-48kbitrate-mono-mp3"
	}

	return &NeuralTTSConfig{
		ApiUrl:       apiUrl,
		ApiKey:       apiKey,
		OutputFormat: outputFormat,
	}, nil
}
