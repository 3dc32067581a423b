package main

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound aborts a sync before any bucket call is made.
var ErrSourceNotFound = errors.New("source folder not found")

// ObjectError records a single failed bucket operation.
type ObjectError struct {
	Op  string // "upload" or "delete"
	Key string
	Err error
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *ObjectError) Unwrap() error {
	return e.Err
}

// ListError means the bucket listing for reconciliation failed. Upload
// results gathered before the listing are still returned alongside it.
type ListError struct {
	Bucket string
	Err    error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("list bucket %s: %v", e.Bucket, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}
