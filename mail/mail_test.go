package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/gurre/s3-upload-notify/config"
)

// mockSESClient implements the aws.SESClient interface for testing
type mockSESClient struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (m *mockSESClient) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.err != nil {
		return nil, m.err
	}
	return &ses.SendEmailOutput{MessageId: awssdk.String("msg-0001")}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Sender:    "noreply@example.com",
		Recipient: "ops@example.com",
		Region:    "us-west-2",
	}
}

func TestUploadNoticeContainsBucketAndKey(t *testing.T) {
	msg := NewUploadNotice(testConfig(), "uploads-prod", "reports/2026/summary.csv")

	if !strings.Contains(msg.HTMLBody, "uploads-prod") {
		t.Error("expected HTML body to contain bucket name")
	}
	if !strings.Contains(msg.HTMLBody, "reports/2026/summary.csv") {
		t.Error("expected HTML body to contain object key")
	}
	if msg.Subject != "File Uploaded to S3 bucket" {
		t.Errorf("unexpected subject: %s", msg.Subject)
	}
}

func TestUploadNoticeInterpolatesOnlyGivenValues(t *testing.T) {
	first := NewUploadNotice(testConfig(), "bucket-a", "key-a")
	second := NewUploadNotice(testConfig(), "bucket-b", "key-b")

	if strings.Contains(second.HTMLBody, "bucket-a") || strings.Contains(second.HTMLBody, "key-a") {
		t.Error("expected second notice to carry only its own bucket and key")
	}
	if first.TextBody != second.TextBody {
		t.Error("expected text body to be fixed across notices")
	}
}

func TestSendBuildsExpectedInput(t *testing.T) {
	mockClient := &mockSESClient{}
	sender := NewSESSender(mockClient)
	msg := NewUploadNotice(testConfig(), "uploads-prod", "photo.jpg")

	id, err := sender.Send(context.Background(), msg)
	if err != nil {
		t.Fatalf("failed to send: %v", err)
	}
	if id != "msg-0001" {
		t.Errorf("expected message id 'msg-0001', got '%s'", id)
	}

	if len(mockClient.inputs) != 1 {
		t.Fatalf("expected 1 SendEmail call, got %d", len(mockClient.inputs))
	}
	input := mockClient.inputs[0]

	if got := awssdk.ToString(input.Source); got != "noreply@example.com" {
		t.Errorf("expected Source 'noreply@example.com', got '%s'", got)
	}
	if len(input.Destination.ToAddresses) != 1 || input.Destination.ToAddresses[0] != "ops@example.com" {
		t.Errorf("expected destination ['ops@example.com'], got %v", input.Destination.ToAddresses)
	}
	if got := awssdk.ToString(input.Message.Subject.Data); got != "File Uploaded to S3 bucket" {
		t.Errorf("unexpected subject data: %s", got)
	}
	if !strings.Contains(awssdk.ToString(input.Message.Body.Html.Data), "uploads-prod") {
		t.Error("expected HTML body data to contain bucket name")
	}
}

func TestSendSetsUTF8Charsets(t *testing.T) {
	mockClient := &mockSESClient{}
	sender := NewSESSender(mockClient)

	if _, err := sender.Send(context.Background(), NewUploadNotice(testConfig(), "b", "k")); err != nil {
		t.Fatalf("failed to send: %v", err)
	}

	input := mockClient.inputs[0]
	for name, content := range map[string]*string{
		"subject":   input.Message.Subject.Charset,
		"html body": input.Message.Body.Html.Charset,
		"text body": input.Message.Body.Text.Charset,
	} {
		if got := awssdk.ToString(content); got != "UTF-8" {
			t.Errorf("expected %s charset UTF-8, got '%s'", name, got)
		}
	}
}

func TestSendWrapsClientError(t *testing.T) {
	mockClient := &mockSESClient{err: errors.New("Email address is not verified")}
	sender := NewSESSender(mockClient)

	_, err := sender.Send(context.Background(), NewUploadNotice(testConfig(), "b", "k"))
	if err == nil {
		t.Fatal("expected error from rejected send")
	}
	if !strings.Contains(err.Error(), "Email address is not verified") {
		t.Errorf("expected wrapped rejection message, got: %v", err)
	}
}
