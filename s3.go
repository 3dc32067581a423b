package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3Client struct {
	Client *s3.Client
}

func NewS3BucketClient(provider ProviderConfig) (BucketClient, error) {
	var bucketClient BucketClient

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithSharedConfigProfile(provider.Profile),
		config.WithRegion(provider.Region))
	if err != nil {
		return bucketClient, fmt.Errorf("Error creating s3 client: %+v", err)
	}
	awsS3Client := s3.NewFromConfig(cfg)
	bucketClient = &S3Client{Client: awsS3Client}

	return bucketClient, nil
}

func (s *S3Client) ListObjects(bucket, prefix string) ([]string, error) {
	keys := make([]string, 0)
	listParams := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	}
	if prefix != "" {
		listParams.Prefix = aws.String(prefix)
	}
	paginator := s3.NewListObjectsV2Paginator(s.Client, listParams, func(o *s3.ListObjectsV2PaginatorOptions) {})
	for paginator.HasMorePages() {
		currentPage, pageErr := paginator.NextPage(context.TODO())
		if pageErr != nil {
			return keys, pageErr
		}
		for _, object := range currentPage.Contents {
			keys = append(keys, *object.Key)
		}
	}

	return keys, nil
}

// UploadFile writes the object with the public-read canned ACL since synced
// buckets serve the site directly.
func (s *S3Client) UploadFile(bucket, key string, file *os.File) error {
	uploader := manager.NewUploader(s.Client)
	_, putErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   file,
		ACL:    types.ObjectCannedACLPublicRead,
	})

	return putErr
}

func (s *S3Client) DeleteObject(bucket, key string) error {
	delReq := &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	_, delErr := s.Client.DeleteObject(context.TODO(), delReq)

	return delErr
}
