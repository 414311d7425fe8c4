package adapters

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/config"
)

type dynamoNarrationItem struct {
	WorkspaceID string `dynamodbav:"workspace_id"`
	NarrationID string `dynamodbav:"narration_id"`
	ScriptID    string `dynamodbav:"script_id"`
	AudioURL    string `dynamodbav:"audio_url"`
	Timings     string `dynamodbav:"timings"`
	Status      string `dynamodbav:"status"`
}

type dynamoNarrationCache struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoNarrationCache(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.NarrationCachePort {
	return &dynamoNarrationCache{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

// Save persists the narration record. The timing manifest is stored as
// a JSON array, never as a language-literal string.
func (c *dynamoNarrationCache) Save(ctx context.Context, record outbound.NarrationRecord) error {
	timingsJSON, err := json.Marshal(record.Timings)
	if err != nil {
		c.logger.Error(err, "Failed to marshal timing manifest")
		return err
	}

	item := dynamoNarrationItem{
		WorkspaceID: record.WorkspaceID,
		NarrationID: record.NarrationID,
		ScriptID:    record.ScriptID,
		AudioURL:    record.AudioURL,
		Timings:     string(timingsJSON),
		Status:      record.Status,
	}

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to marshal narration item", map[string]interface{}{
			"item": item,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.dynamoConfig.TableName),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to save narration item", map[string]interface{}{
			"item": item,
		})
		return err
	}

	return nil
}
