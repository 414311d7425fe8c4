package services

import (
	"context"
	"strings"

	"github.com/nezuni1812/Vivid/application/ports/inbound"
	"github.com/nezuni1812/Vivid/application/ports/outbound"
)

type scriptWriter struct {
	logger          outbound.LoggerPort
	scriptGenerator outbound.ScriptGeneratorPort
}

func NewScriptWriter(logger outbound.LoggerPort, scriptGenerator outbound.ScriptGeneratorPort) inbound.ScriptWriterPort {
	return &scriptWriter{
		logger:          logger,
		scriptGenerator: scriptGenerator,
	}
}

// Write collects the streamed completion into the final script text.
func (s *scriptWriter) Write(ctx context.Context, params inbound.WriteScriptParams) (string, error) {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	tokenCh, errCh := s.scriptGenerator.Generate(newCtx, outbound.GenerateScriptRequest{
		Topic:          params.Topic,
		Language:       params.Language,
		WordsPerScript: params.WordsPerScript,
	})

	var builder strings.Builder
	for {
		select {
		case err, ok := <-errCh:
			if ok {
				s.logger.Error(err, "Script generation stream failed")
				return "", err
			}
			errCh = nil
		case <-newCtx.Done():
			return "", newCtx.Err()
		case token, ok := <-tokenCh:
			if !ok {
				return strings.TrimSpace(builder.String()), nil
			}
			builder.WriteString(token)
		}
	}
}
