// Package aws provides the service client abstractions used by the handlers.
// Each interface covers exactly the operations a handler needs, so tests can
// substitute mocks without touching the SDK.
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// SESClient defines the interface for the email submission operation used by
// the upload notifier.
type SESClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// S3Client defines the interface for the bucket notification configuration
// operation used by the registrar.
type S3Client interface {
	PutBucketNotificationConfiguration(ctx context.Context, params *s3.PutBucketNotificationConfigurationInput, optFns ...func(*s3.Options)) (*s3.PutBucketNotificationConfigurationOutput, error)
}

// Compile-time interface checks to ensure implementations satisfy interfaces
var (
	_ SESClient = (*SESClientImpl)(nil)
	_ S3Client  = (*S3ClientImpl)(nil)

	// AWS SDK interface checks to ensure SDK clients satisfy interfaces
	_ SESClient = (*ses.Client)(nil)
	_ S3Client  = (*s3.Client)(nil)
)
