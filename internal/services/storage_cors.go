package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
)

// BucketUpdater is the part of *storage.BucketHandle used to patch bucket
// metadata
type BucketUpdater interface {
	Update(ctx context.Context, uattrs storage.BucketAttrsToUpdate) (*storage.BucketAttrs, error)
}

// CORSPolicy is the cross-origin policy the product image bucket needs so
// the browser SDK can upload and read objects directly
func CORSPolicy() []storage.CORS {
	return []storage.CORS{
		{
			Origins: []string{"*"},
			Methods: []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			ResponseHeaders: []string{
				"Authorization",
				"Content-Type",
				"Content-Length",
				"User-Agent",
				"x-goog-resumable",
			},
			MaxAge: 3600 * time.Second,
		},
	}
}

// ApplyBucketCORS replaces the bucket CORS configuration with CORSPolicy and
// returns the configuration the provider reports back
func ApplyBucketCORS(ctx context.Context, bucket BucketUpdater) ([]storage.CORS, error) {
	attrs, err := bucket.Update(ctx, storage.BucketAttrsToUpdate{CORS: CORSPolicy()})
	if err != nil {
		return nil, fmt.Errorf("failed to update bucket CORS: %w", err)
	}
	return attrs.CORS, nil
}

// StorageBucket opens a bucket through the Firebase storage client
func StorageBucket(ctx context.Context, app *firebase.App, name string) (*storage.BucketHandle, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	bucket, err := client.Bucket(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", name, err)
	}
	return bucket, nil
}
