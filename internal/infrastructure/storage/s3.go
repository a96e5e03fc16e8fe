package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coralstream/catalog/internal/domain/video"
)

// S3Storage implements video.MediaStorage on an S3 bucket. Assets live under
// <prefix>/<videoID>/<fileName>.
type S3Storage struct {
	client *s3.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewS3Storage creates an S3 media storage using the default AWS credential chain
func NewS3Storage(bucket, prefix, region string, logger *zap.Logger) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}, nil
}

// StoreAudioVideo uploads a raw audio/video asset and returns a pending descriptor
func (s *S3Storage) StoreAudioVideo(ctx context.Context, videoID uuid.UUID, resource video.Resource) (video.AudioVideoMedia, error) {
	location, err := s.store(ctx, videoID, resource)
	if err != nil {
		return video.AudioVideoMedia{}, err
	}
	return video.NewAudioVideoMedia(resource.Checksum(), resource.Name, location), nil
}

// StoreImage uploads an image asset and returns its descriptor
func (s *S3Storage) StoreImage(ctx context.Context, videoID uuid.UUID, resource video.Resource) (video.ImageMedia, error) {
	location, err := s.store(ctx, videoID, resource)
	if err != nil {
		return video.ImageMedia{}, err
	}
	return video.NewImageMedia(resource.Checksum(), resource.Name, location), nil
}

// ClearResources removes every object stored under the video's prefix
func (s *S3Storage) ClearResources(ctx context.Context, videoID uuid.UUID) error {
	keyPrefix := s.fullKey(videoID.String()) + "/"

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(keyPrefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to list objects: %w", err)
		}
		if len(page.Contents) == 0 {
			continue
		}

		objects := make([]types.ObjectIdentifier, len(page.Contents))
		for i, obj := range page.Contents {
			objects[i] = types.ObjectIdentifier{Key: obj.Key}
		}

		_, err = s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: objects},
		})
		if err != nil {
			return fmt.Errorf("failed to delete objects: %w", err)
		}
	}

	s.logger.Debug("cleared s3 media resources", zap.String("video_id", videoID.String()))
	return nil
}

func (s *S3Storage) store(ctx context.Context, videoID uuid.UUID, resource video.Resource) (string, error) {
	key := path.Join(videoID.String(), resource.Name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.fullKey(key)),
		Body:        bytes.NewReader(resource.Content),
		ContentType: aws.String(resource.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return key, nil
}

func (s *S3Storage) fullKey(key string) string {
	if s.prefix != "" {
		return path.Join(s.prefix, key)
	}
	return key
}
