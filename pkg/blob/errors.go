package blob

import "errors"

var (
	ErrMissingBucket   = errors.New("blob: bucket and region are required")
	ErrLoadAWSConfig   = errors.New("blob: failed to load AWS config")
	ErrObjectOperation = errors.New("blob: object operation failed")
)
