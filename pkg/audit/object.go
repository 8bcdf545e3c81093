package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/minio/minio-go/v7"
)

const objectPrefix = "checks/"

// ObjectAPI is the subset of an S3 bucket the object store needs.
type ObjectAPI interface {
	Put(ctx context.Context, key string, body []byte) error
	List(ctx context.Context, prefix string) ([]string, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

// ObjectStore writes each record as a JSON object named after its id.
type ObjectStore struct {
	api ObjectAPI
}

func NewObjectStore(api ObjectAPI) (*ObjectStore, error) {
	if api == nil {
		return nil, ErrInvalidInput
	}
	return &ObjectStore{api: api}, nil
}

func (s *ObjectStore) Insert(ctx context.Context, rec Record) error {
	if strings.TrimSpace(rec.ID) == "" {
		return ErrInvalidInput
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.api.Put(ctx, objectKey(rec.ID), body)
}

// Recent lists every key under the prefix; ids are ULIDs, so the
// lexicographically largest keys are the newest records.
func (s *ObjectStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	keys, err := s.api.List(ctx, objectPrefix)
	if err != nil {
		return nil, err
	}

	slices.Sort(keys)
	slices.Reverse(keys)
	keys = keys[:min(len(keys), ClampLimit(limit))]

	records := make([]Record, 0, len(keys))
	for _, key := range keys {
		body, err := s.api.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", key, err)
		}

		var rec Record
		if err := json.Unmarshal(body, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func objectKey(id string) string {
	return objectPrefix + id + ".json"
}

type minioBucket struct {
	client *minio.Client
	bucket string
}

// MinioBucket adapts a MinIO client and bucket to ObjectAPI.
func MinioBucket(client *minio.Client, bucket string) ObjectAPI {
	return &minioBucket{client: client, bucket: bucket}
}

func (b *minioBucket) Put(ctx context.Context, key string, body []byte) error {
	_, err := b.client.PutObject(ctx, b.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}

func (b *minioBucket) List(ctx context.Context, prefix string) ([]string, error) {
	// Stops the listing goroutine when returning early on an error.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var keys []string
	for obj := range b.client.ListObjects(ctx, b.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func (b *minioBucket) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}
