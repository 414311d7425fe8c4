package inbound

import "context"

type WriteScriptParams struct {
	Topic          string
	Language       string
	WordsPerScript int
}

// ScriptWriterPort produces a full narration script for a topic by
// collecting the streamed LLM completion.
type ScriptWriterPort interface {
	Write(ctx context.Context, params WriteScriptParams) (string, error)
}
