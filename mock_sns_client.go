package main

import "github.com/aws/aws-sdk-go-v2/service/sns"

// MockSNSClient records publish requests. Notifications only ever fire from
// the single goroutine that ran the sync, so no lock is needed here.
type MockSNSClient struct {
	PublishRequests []*sns.PublishInput
}

func NewMockSNSClient() *MockSNSClient {
	return &MockSNSClient{
		PublishRequests: make([]*sns.PublishInput, 0),
	}
}

func (c *MockSNSClient) PublishMessage(msg *sns.PublishInput) error {
	c.PublishRequests = append(c.PublishRequests, msg)
	return nil
}
