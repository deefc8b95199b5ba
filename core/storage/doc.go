// Package storage publishes rendered tables to S3-compatible object storage.
//
// NewClient wraps minio-go; the Client interface keeps only the three calls a
// Publisher needs, which keeps core/storage/mocks small.
//
//	client, err := storage.NewClient(cfg.Storage)
//	key, err := storage.NewPublisher(client, cfg.Storage).Publish(ctx, "naval.html", "text/html", data)
//
// Objects land under Config.Prefix ("tables/" by default) with the base name of the
// output file.
package storage
