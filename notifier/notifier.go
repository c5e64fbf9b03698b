// Package notifier implements the upload notification handler. It is invoked
// by S3 once per qualifying object-created event and sends a single email
// describing the upload.
package notifier

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gurre/s3-upload-notify/config"
	"github.com/gurre/s3-upload-notify/mail"
	"github.com/gurre/s3-upload-notify/metrics"
)

// Handler processes S3 object-created events. Each invocation is independent;
// the handler holds no state beyond its injected dependencies.
type Handler struct {
	lookup  func(string) string
	sender  mail.Sender
	metrics *metrics.Metrics
	log     *log.Logger
}

// NewHandler creates a new Handler instance. The lookup function resolves
// environment variables, normally os.Getenv.
func NewHandler(lookup func(string) string, sender mail.Sender, m *metrics.Metrics, logger *log.Logger) *Handler {
	return &Handler{
		lookup:  lookup,
		sender:  sender,
		metrics: m,
		log:     logger,
	}
}

// Handle sends one upload notice for the first record of the event.
//
// Missing configuration or a malformed event fails the invocation. A
// rejection from SES does not: the notice is best-effort, so the rejection is
// logged and the invocation completes normally. Nothing retries or
// dead-letters a lost notice.
func (h *Handler) Handle(ctx context.Context, event events.S3Event) error {
	cfg, err := config.FromEnv(h.lookup)
	if err != nil {
		return err
	}

	if len(event.Records) == 0 {
		return fmt.Errorf("event contains no records")
	}
	record := event.Records[0]
	bucket := record.S3.Bucket.Name
	key := record.S3.Object.Key
	if bucket == "" || key == "" {
		return fmt.Errorf("event record is missing bucket name or object key")
	}

	msg := mail.NewUploadNotice(cfg, bucket, key)

	id, err := h.sender.Send(ctx, msg)
	if err != nil {
		h.metrics.RecordSendFailure()
		h.log.Printf("failed to send upload notice: %v", err)
		return nil
	}

	h.metrics.RecordNoticeSent()
	h.log.Printf("Email sent! Message ID: %s", id)
	h.log.Printf("runtime stats: %s", h.metrics.Snapshot())
	return nil
}
