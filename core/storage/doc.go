// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface. The word service keeps
// its lexical datasets (difficulty list, frequency table, pronunciation
// dictionary, relations, spelling word list) in a bucket so they can be
// replaced without a redeploy. Both AWS S3 and self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider so storage
// interactions can be mocked in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "grimoire")
package storage
