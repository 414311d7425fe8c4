package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/donovanhide/eventsource"
	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/config"
)

const DoneSignal = "[DONE]"
const MaxRetries = 3

type chatGptRequest struct {
	Stream   bool             `json:"stream"`
	Model    string           `json:"model"`
	Messages []chatGptMessage `json:"messages"`
}

type chatGptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatGptChunkBody struct {
	Choices []chatGptResponseChoice `json:"choices"`
}

type chatGptResponseChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

type scriptGenerator struct {
	logger     outbound.LoggerPort
	gptConfig  *config.GptConfig
	workerPool outbound.TaskDispatcher
}

func NewScriptGenerator(gptConfig *config.GptConfig, workerPool outbound.TaskDispatcher, logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	return &scriptGenerator{
		logger:     logger,
		gptConfig:  gptConfig,
		workerPool: workerPool,
	}
}

func (s *scriptGenerator) Generate(ctx context.Context, req outbound.GenerateScriptRequest) (<-chan string, <-chan error) {
	out := make(chan string)
	errCh := make(chan error)

	retryCount := 0

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()
		httpReq, err := s.createRequest(ctx, req)
		if err != nil {
			s.logger.Error(err, "Failed to create HTTP request for script stream")
			errCh <- err
			return
		}

		stream, err := eventsource.SubscribeWithRequest("", httpReq)
		if err != nil {
			s.logger.Error(err, "Failed to subscribe to script stream")
			errCh <- err
			return
		}
		for {
			select {
			case <-newCtx.Done():
				return
			case ev := <-stream.Events:
				if ev.Data() != DoneSignal {
					payload, err := s.extractPayload(ev)
					if err != nil {
						errCh <- err
						cancel()
						return
					}
					out <- payload
				}
				retryCount = 0
			case err := <-stream.Errors:
				if err == io.EOF {
					s.logger.Info("Script stream closed")
					return
				} else if retryCount < MaxRetries {
					s.logger.ErrorWithFields(err, "Error occurred during streaming, retrying", map[string]interface{}{
						"retry_count": retryCount})
					retryCount++
					continue
				}
				s.logger.Error(err, "Error occurred during streaming, max retries reached")
				errCh <- err
				cancel()
				return
			}
		}
	})
	if err != nil {
		s.logger.Error(err, "Failed to submit task to worker pool")
		errCh <- err
	}

	return out, errCh
}

func (s *scriptGenerator) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody chatGptChunkBody
	err := json.Unmarshal([]byte(event.Data()), &chunkBody)
	if err != nil {
		s.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}

	return chunkBody.Choices[0].Delta.Content, nil
}

func (s *scriptGenerator) createRequest(ctx context.Context, req outbound.GenerateScriptRequest) (*http.Request, error) {
	promptMessage := chatGptMessage{
		Role: "system",
		Content: fmt.Sprintf("Write a narration script about the topic: %s.\n"+
			"The script:\n"+
			"- Should be written in %s\n"+
			"- Should be plain prose with complete sentences ending in terminal punctuation\n"+
			"- Should not contain headings, lists, stage directions or speaker labels\n"+
			"- Should be of about %d words.", req.Topic, req.Language, req.WordsPerScript),
	}

	promptReq := chatGptRequest{
		Stream:   true,
		Model:    s.gptConfig.Model,
		Messages: []chatGptMessage{promptMessage},
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		s.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.gptConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		s.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.gptConfig.ApiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}
