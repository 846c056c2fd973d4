// Package storage provides read access to adventure exports kept in object storage.
//
// It wraps the MinIO Go client, so both AWS S3 and self-hosted MinIO work. A
// notes directory of the form "s3://bucket/prefix" is resolved through this
// package; ParseLocation splits it into bucket and object prefix.
//
// The Client interface exists so storage can be mocked in tests (see
// core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	bucket, prefix, ok := storage.ParseLocation("s3://exports/notes")
//	obj, err := client.GetObject(ctx, bucket, prefix+"/adv_index.json", minio.GetObjectOptions{})
package storage
