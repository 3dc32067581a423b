package main

import (
	"os"
)

// BucketClient is the thin authenticated handle to a remote bucket. Both
// providers implement it; the sync core only ever talks through it.
type BucketClient interface {
	ListObjects(bucket string, prefix string) ([]string, error)
	UploadFile(bucket string, key string, file *os.File) error
	DeleteObject(bucket string, key string) error
}
