package config

import (
	"fmt"
	"os"
)

type BasicTTSConfig struct {
	ApiUrl string
}

func GetBasicTTSConfig() (*BasicTTSConfig, error) {
	apiUrl := os.Getenv("BASIC_TTS_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("BASIC_TTS_API_URL must be set")
	}

	return &BasicTTSConfig{
		ApiUrl: apiUrl,
	}, nil
}
