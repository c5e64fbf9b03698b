// Package aws provides the service client abstractions used by the handlers.
// This file contains the concrete implementations of the service interfaces.
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// SESClientImpl implements SESClient using the AWS SDK.
type SESClientImpl struct {
	client *ses.Client
}

// NewSESClient creates a new SESClientImpl instance
func NewSESClient(client *ses.Client) *SESClientImpl {
	return &SESClientImpl{client: client}
}

// SendEmail implements the SESClient interface for submitting an email
func (c *SESClientImpl) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return c.client.SendEmail(ctx, params, optFns...)
}

// S3ClientImpl implements S3Client using the AWS SDK.
type S3ClientImpl struct {
	client *s3.Client
}

// NewS3Client creates a new S3ClientImpl instance
func NewS3Client(client *s3.Client) *S3ClientImpl {
	return &S3ClientImpl{client: client}
}

// PutBucketNotificationConfiguration implements the S3Client interface for
// replacing a bucket's notification configuration
func (c *S3ClientImpl) PutBucketNotificationConfiguration(ctx context.Context, params *s3.PutBucketNotificationConfigurationInput, optFns ...func(*s3.Options)) (*s3.PutBucketNotificationConfigurationOutput, error) {
	return c.client.PutBucketNotificationConfiguration(ctx, params, optFns...)
}
