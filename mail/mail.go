// Package mail builds the upload notice email and submits it to SES. The
// message layout is fixed; only the bucket name and object key vary per
// invocation.
package mail

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/gurre/s3-upload-notify/aws"
	"github.com/gurre/s3-upload-notify/config"
)

// charset is applied explicitly to the subject and both body parts.
const charset = "UTF-8"

// subject is the fixed subject line for every upload notice.
const subject = "File Uploaded to S3 bucket"

// textBody is the fallback for recipients with non-HTML mail clients.
const textBody = "Amazon SES Test (Go)\r\n" +
	"This email was sent with Amazon SES using the AWS SDK for Go."

// htmlBodyFormat takes the bucket name and the object key, in that order.
const htmlBodyFormat = `<html>
<head></head>
<body>
  <h1>A file was uploaded to Bucket: %s</h1>
  <p>File name %s<p>
  <p>This email was sent with
    <a href='https://aws.amazon.com/ses/'>Amazon SES</a> using the
    <a href='https://aws.amazon.com/sdk-for-go/'>AWS SDK for Go</a>.</p>
</body>
</html>`

// Message is a fully rendered email, ready for submission. It is built fresh
// per invocation and discarded after the send call.
type Message struct {
	Sender    string
	Recipient string
	Subject   string
	HTMLBody  string
	TextBody  string
}

// NewUploadNotice renders the upload notice for one object. The object key is
// interpolated exactly as the event carried it.
func NewUploadNotice(cfg *config.Config, bucket, key string) Message {
	return Message{
		Sender:    cfg.Sender,
		Recipient: cfg.Recipient,
		Subject:   subject,
		HTMLBody:  fmt.Sprintf(htmlBodyFormat, bucket, key),
		TextBody:  textBody,
	}
}

// Sender submits a rendered message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// SESSender implements Sender using the AWS SES SendEmail API.
type SESSender struct {
	client aws.SESClient
}

// NewSESSender creates a new SESSender instance
func NewSESSender(client aws.SESClient) *SESSender {
	return &SESSender{client: client}
}

// Send submits the message with one synchronous SendEmail call. Subject and
// both body parts carry an explicit UTF-8 charset.
func (s *SESSender) Send(ctx context.Context, msg Message) (string, error) {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{msg.Recipient},
		},
		Message: &types.Message{
			Body: &types.Body{
				Html: &types.Content{
					Charset: awssdk.String(charset),
					Data:    awssdk.String(msg.HTMLBody),
				},
				Text: &types.Content{
					Charset: awssdk.String(charset),
					Data:    awssdk.String(msg.TextBody),
				},
			},
			Subject: &types.Content{
				Charset: awssdk.String(charset),
				Data:    awssdk.String(msg.Subject),
			},
		},
		Source: awssdk.String(msg.Sender),
	}

	output, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return awssdk.ToString(output.MessageId), nil
}
