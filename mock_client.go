package main

import (
	"os"
	"strings"
	"sync"
)

// MockBucketClient records requests and serves a canned listing. Upload
// workers hit it concurrently, so the request slices are lock-guarded.
type MockBucketClient struct {
	UploadRequests []MockRequest
	DeleteRequests []MockRequest
	UploadErrs     map[string]error
	DeleteErrs     map[string]error
	ListErr        error
	ListCalls      int
	remoteKeys     []string
	lock           sync.Mutex
}

type MockRequest struct {
	Bucket string
	Key    string
}

func NewMockClient(remoteKeys []string) *MockBucketClient {
	return &MockBucketClient{
		UploadRequests: make([]MockRequest, 0),
		DeleteRequests: make([]MockRequest, 0),
		UploadErrs:     make(map[string]error),
		DeleteErrs:     make(map[string]error),
		remoteKeys:     remoteKeys,
	}
}

func (s *MockBucketClient) ListObjects(bucket, prefix string) ([]string, error) {
	s.lock.Lock()
	s.ListCalls++
	s.lock.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	keys := make([]string, 0)
	for _, key := range s.remoteKeys {
		if prefix == "" || strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (s *MockBucketClient) UploadFile(bucket, key string, file *os.File) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.UploadRequests = append(s.UploadRequests, MockRequest{Bucket: bucket, Key: key})
	return s.UploadErrs[key]
}

func (s *MockBucketClient) DeleteObject(bucket, key string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.DeleteRequests = append(s.DeleteRequests, MockRequest{Bucket: bucket, Key: key})
	return s.DeleteErrs[key]
}

func (s *MockBucketClient) UploadedKeys() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	keys := make([]string, 0, len(s.UploadRequests))
	for _, req := range s.UploadRequests {
		keys = append(keys, req.Key)
	}
	return keys
}
