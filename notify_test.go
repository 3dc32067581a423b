package main

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSNSPublishFailuresOnly(t *testing.T) {
	mockNotifier := &SNSNotifier{
		Client: NewMockSNSClient(),
		Topic:  "mock-topic",
	}
	mockResult := NewSyncResult()
	mockResult.AddUploadResult("fine-file", nil)
	mockResult.AddUploadResult("broken-file", errors.New("connection reset"))
	mockResult.AddDeleteResult("stubborn-file", errors.New("access denied"))
	mockSyncConfig := SyncConfig{
		SourceFolder:      "/folder1",
		DestinationBucket: "not-real-bucket",
	}
	expectedSubject := "Sync Errors: /folder1 -> not-real-bucket"
	expectedMessage := "Action: Upload\nKey: broken-file\nError: connection reset\n\n" +
		"Action: Delete\nKey: stubborn-file\nError: access denied\n\n"

	publishErr := mockNotifier.NotifySyncResults(mockSyncConfig, mockResult)

	assert.Nil(t, publishErr)
	mockClient := mockNotifier.Client.(*MockSNSClient)
	assert.Len(t, mockClient.PublishRequests, 1)
	assert.Equal(t, expectedSubject, *mockClient.PublishRequests[0].Subject)
	assert.Equal(t, expectedMessage, *mockClient.PublishRequests[0].Message)
	assert.Equal(t, "mock-topic", *mockClient.PublishRequests[0].TopicArn)
}

func TestSNSSnapshotNotify(t *testing.T) {
	mockNotifier := &SNSNotifier{
		Client: NewMockSNSClient(),
		Topic:  "mock-topic",
	}
	snapshotFile, tempErr := os.CreateTemp(t.TempDir(), "snapshot-*.tar.gz")
	assert.Nil(t, tempErr)
	defer snapshotFile.Close()
	mockSnapshotConfig := SnapshotConfig{
		SourceFolder:      "/folder1",
		DestinationBucket: "not-real-bucket",
		At:                "03:00",
	}

	publishErr := mockNotifier.NotifySnapshotResults(mockSnapshotConfig, snapshotFile, nil)

	assert.Nil(t, publishErr)
	mockClient := mockNotifier.Client.(*MockSNSClient)
	assert.Len(t, mockClient.PublishRequests, 1)
	assert.Equal(t, "Snapshot succeeded: /folder1", *mockClient.PublishRequests[0].Subject)
	assert.Contains(t, *mockClient.PublishRequests[0].Message, "Snapshot File Size:")
}

func TestSNSSnapshotNotifyClosedFile(t *testing.T) {
	mockNotifier := &SNSNotifier{
		Client: NewMockSNSClient(),
		Topic:  "mock-topic",
	}
	snapshotFile, tempErr := os.CreateTemp(t.TempDir(), "snapshot-*.tar.gz")
	assert.Nil(t, tempErr)
	// Stat fails on a closed descriptor, the message falls back to the name
	assert.Nil(t, snapshotFile.Close())
	mockSnapshotConfig := SnapshotConfig{
		SourceFolder:      "/folder1",
		DestinationBucket: "not-real-bucket",
		At:                "03:00",
	}

	publishErr := mockNotifier.NotifySnapshotResults(mockSnapshotConfig, snapshotFile, nil)

	assert.Nil(t, publishErr)
	mockClient := mockNotifier.Client.(*MockSNSClient)
	assert.Len(t, mockClient.PublishRequests, 1)
	assert.Contains(t, *mockClient.PublishRequests[0].Message, snapshotFile.Name())
	assert.NotContains(t, *mockClient.PublishRequests[0].Message, "Snapshot File Size:")
}

func TestSNSNoPublishOnCleanRun(t *testing.T) {
	mockNotifier := &SNSNotifier{
		Client: NewMockSNSClient(),
		Topic:  "mock-topic",
	}
	mockResult := NewSyncResult()
	mockResult.AddUploadResult("fine-file", nil)
	mockResult.AddDeleteResult("removed-file", nil)
	mockSyncConfig := SyncConfig{
		SourceFolder:      "/folder1",
		DestinationBucket: "not-real-bucket",
	}

	publishErr := mockNotifier.NotifySyncResults(mockSyncConfig, mockResult)

	assert.Nil(t, publishErr)
	mockClient := mockNotifier.Client.(*MockSNSClient)
	assert.Len(t, mockClient.PublishRequests, 0)
}
