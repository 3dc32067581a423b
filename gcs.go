package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type GCSClient struct {
	Client *storage.Client
}

func NewGCSBucketClient(provider ProviderConfig) (BucketClient, error) {
	var bucketClient BucketClient

	opts := make([]option.ClientOption, 0)
	if provider.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(provider.CredentialsFile))
	}
	gcsClient, clientErr := storage.NewClient(context.TODO(), opts...)
	if clientErr != nil {
		return bucketClient, fmt.Errorf("Error creating gcs client: %+v", clientErr)
	}
	bucketClient = &GCSClient{Client: gcsClient}

	return bucketClient, nil
}

func (s *GCSClient) ListObjects(bucket, prefix string) ([]string, error) {
	keys := make([]string, 0)
	var query *storage.Query
	if prefix != "" {
		query = &storage.Query{Prefix: prefix}
	}
	objIter := s.Client.Bucket(bucket).Objects(context.TODO(), query)
	for {
		attrs, err := objIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return keys, fmt.Errorf("Bucket(%q).Objects: %v", bucket, err)
		}
		keys = append(keys, attrs.Name)
	}

	return keys, nil
}

func (s *GCSClient) UploadFile(bucket, key string, file *os.File) error {
	object := s.Client.Bucket(bucket).Object(key)
	objWriter := object.NewWriter(context.TODO())
	objWriter.PredefinedACL = "publicRead"
	if _, uploadErr := io.Copy(objWriter, file); uploadErr != nil {
		return uploadErr
	}
	if closeErr := objWriter.Close(); closeErr != nil {
		return closeErr
	}

	return nil
}

func (s *GCSClient) DeleteObject(bucket, key string) error {
	object := s.Client.Bucket(bucket).Object(key)

	if err := object.Delete(context.TODO()); err != nil {
		return err
	}

	return nil
}
