package storage

import (
	"context"
	"io"
	"time"
)

// Package storage abstracts the S3-compatible object store used for
// exported attendance reports. Implementations stream content; no local
// disk is used.

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact byte count when known; -1 lets the backend
// buffer/chunk as it supports.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the object storage client the report export writes through.
type Storage interface {
	// Put uploads an object under the given key from the provided reader.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// PresignGet returns a time-limited URL for downloading the object
	// without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
