package outbound

import "context"

type GenerateScriptRequest struct {
	Topic          string
	Language       string
	WordsPerScript int
}

// ScriptGeneratorPort streams LLM-generated script text token by token.
type ScriptGeneratorPort interface {
	Generate(ctx context.Context, req GenerateScriptRequest) (<-chan string, <-chan error)
}
