package adapters

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/config"
)

type s3NarrationStore struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3NarrationStore(logger outbound.LoggerPort, s3Svc *s3.S3, s3Config *config.S3Config) outbound.NarrationStorePort {
	return &s3NarrationStore{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

// Save uploads the finished narration file and removes it from local
// disk afterwards. Returns the public object URL.
func (s *s3NarrationStore) Save(ctx context.Context, req outbound.StoreNarrationRequest) (string, error) {
	itemPath := s.getItemPath(req)

	file, err := os.Open(req.AudioFileName)
	if err != nil {
		s.logger.Error(err, "Failed to open narration audio file")
		return "", err
	}

	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			s.logger.Error(err, "Failed to close narration audio file")
			return
		}
		err = os.Remove(file.Name())
		if err != nil {
			s.logger.Error(err, "Failed to remove narration audio file")
			return
		}
	}(file)

	putInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(itemPath),
		Body:        file,
		ContentType: aws.String("audio/mpeg"),
	}

	_, err = s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload narration to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    itemPath,
		})
		return "", err
	}

	audioURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, itemPath)
	s.logger.DebugWithFields("Uploaded narration to S3", map[string]interface{}{
		"audioUrl": audioURL,
	})

	return audioURL, nil
}

// Delete removes a superseded narration object given its public URL.
func (s *s3NarrationStore) Delete(ctx context.Context, audioURL string) error {
	prefix := fmt.Sprintf("https://%s.s3.amazonaws.com/", s.s3Config.BucketName)
	if !strings.HasPrefix(audioURL, prefix) {
		return fmt.Errorf("audio URL %q does not belong to bucket %q", audioURL, s.s3Config.BucketName)
	}
	key := strings.TrimPrefix(audioURL, prefix)

	_, err := s.s3Svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to delete narration from S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    key,
		})
		return err
	}

	return nil
}

func (s *s3NarrationStore) getItemPath(req outbound.StoreNarrationRequest) string {
	return fmt.Sprintf("audios/%s/%s.mp3", req.WorkspaceID, req.NarrationID)
}
