// Package blob keeps storefront records as objects in Amazon S3 or any
// S3-compatible service (MinIO, R2). Each record key maps to one object
// under an optional prefix.
//
// Configuration is read from S3_* environment variables through Config:
//
//	cfg := config.MustLoad[blob.Config]()
//	s, err := blob.New(ctx, cfg)
package blob
