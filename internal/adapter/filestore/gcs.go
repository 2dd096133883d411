package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
)

// GCSStore writes uploaded documents to one Cloud Storage bucket.
type GCSStore struct {
	Client     *storage.Client
	BucketName string
	log        *zap.Logger
}

func NewGCSStore(ctx context.Context, bucketName string, log *zap.Logger) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return NewGCSStoreWithClient(client, bucketName, log), nil
}

func NewGCSStoreWithClient(client *storage.Client, bucketName string, log *zap.Logger) *GCSStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &GCSStore{Client: client, BucketName: bucketName, log: log}
}

// Put refuses to overwrite an existing object and returns its gs:// path.
// A failed read of r abandons the upload; nothing is committed.
func (g *GCSStore) Put(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	object := g.Client.Bucket(g.BucketName).Object(objectName)
	w := object.If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		cancel()
		return "", fmt.Errorf("gcs write %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", objectName, err)
	}
	g.log.Debug("object stored", zap.String("bucket", g.BucketName), zap.String("object", objectName))
	return fmt.Sprintf("gs://%s/%s", g.BucketName, objectName), nil
}

// Delete removes an object written by Put. A missing object is not an error.
func (g *GCSStore) Delete(ctx context.Context, objectName string) error {
	err := g.Client.Bucket(g.BucketName).Object(objectName).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs delete %s: %w", objectName, err)
	}
	g.log.Debug("object deleted", zap.String("bucket", g.BucketName), zap.String("object", objectName))
	return nil
}

func (g *GCSStore) Close() {
	if g.Client == nil {
		return
	}
	if err := g.Client.Close(); err != nil {
		g.log.Warn("closing gcs client", zap.Error(err))
	}
}
