package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/reqflow-io/reqflow/internal/config"
)

// MinioDraftStore keeps authoring-session snapshots as JSON objects in a
// bucket. Drafts are best effort only; a submitted request is always the
// source of truth.
type MinioDraftStore struct {
	client *minioSDK.Client
	bucket string
}

func NewMinioDraftStore(ctx context.Context) (*MinioDraftStore, error) {
	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check draft bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create draft bucket: %w", err)
		}
	}

	return &MinioDraftStore{client: client, bucket: config.MinioBucket}, nil
}

func draftObjectName(sessionID uuid.UUID) string {
	return "drafts/" + sessionID.String() + ".json"
}

func (s *MinioDraftStore) SaveDraft(ctx context.Context, sessionID uuid.UUID, snapshot []byte) error {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		draftObjectName(sessionID),
		bytes.NewReader(snapshot),
		int64(len(snapshot)),
		minioSDK.PutObjectOptions{ContentType: "application/json"},
	)
	return err
}

func (s *MinioDraftStore) LoadDraft(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, draftObjectName(sessionID), minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}
