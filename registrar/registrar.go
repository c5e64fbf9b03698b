// Package registrar implements the CloudFormation custom resource that wires
// a bucket's event notifications to the upload notifier function. Create and
// Update overwrite the bucket's notification configuration; Delete leaves it
// in place.
package registrar

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/cfn"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	json "github.com/goccy/go-json"
	"github.com/gurre/s3-upload-notify/aws"
	"github.com/gurre/s3-upload-notify/metrics"
)

// RuleID identifies the single notification rule this resource manages.
const RuleID = "object-create-permission"

// Properties are the custom resource properties declared in the stack
// template. Both fields are required.
type Properties struct {
	S3BucketName string // Bucket whose notifications are being configured
	FunctionARN  string // Target function for object-created events
}

// ParseProperties extracts the required properties from the raw resource
// properties map of a custom resource event.
func ParseProperties(raw map[string]interface{}) (Properties, error) {
	var props Properties
	var err error
	if props.S3BucketName, err = stringProperty(raw, "S3BucketName"); err != nil {
		return Properties{}, err
	}
	if props.FunctionARN, err = stringProperty(raw, "FunctionARN"); err != nil {
		return Properties{}, err
	}
	return props, nil
}

func stringProperty(raw map[string]interface{}, key string) (string, error) {
	value, ok := raw[key]
	if !ok {
		return "", fmt.Errorf("resource property %s is required", key)
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("resource property %s must be a non-empty string", key)
	}
	return s, nil
}

// Handler applies the bucket notification configuration for the custom
// resource lifecycle.
type Handler struct {
	client  aws.S3Client
	metrics *metrics.Metrics
	log     *log.Logger
}

// NewHandler creates a new Handler instance
func NewHandler(client aws.S3Client, m *metrics.Metrics, logger *log.Logger) *Handler {
	return &Handler{
		client:  client,
		metrics: m,
		log:     logger,
	}
}

// HandleCreateOrUpdate replaces the bucket's notification configuration with
// a single rule routing all object-created events to the given function.
//
// This is an overwrite, not a merge: any notification configuration
// previously present on the bucket is discarded.
func (h *Handler) HandleCreateOrUpdate(ctx context.Context, props Properties) (*s3.PutBucketNotificationConfigurationOutput, error) {
	h.log.Printf("Creating or Updating")

	input := &s3.PutBucketNotificationConfigurationInput{
		Bucket: awssdk.String(props.S3BucketName),
		NotificationConfiguration: &types.NotificationConfiguration{
			LambdaFunctionConfigurations: []types.LambdaFunctionConfiguration{
				{
					Id:                awssdk.String(RuleID),
					LambdaFunctionArn: awssdk.String(props.FunctionARN),
					Events:            []types.Event{types.EventS3ObjectCreated},
				},
			},
		},
	}

	output, err := h.client.PutBucketNotificationConfiguration(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to put notification configuration for bucket %s: %w", props.S3BucketName, err)
	}

	h.metrics.RecordRegistrationApplied()
	if data, err := json.Marshal(output); err == nil {
		h.log.Printf("Created or Updated, %s", data)
	}

	return output, nil
}

// HandleDelete leaves the bucket's notification configuration in place.
// Cleanup is deliberately not attempted; see the package tests, which pin
// this as documented behavior.
func (h *Handler) HandleDelete(ctx context.Context) {
	h.log.Printf("Deleted")
}

// Handle dispatches the custom resource lifecycle phase to the matching
// handler. It has the signature cfn.LambdaWrap expects; the wrap layer owns
// reporting success or failure back to CloudFormation, so errors returned
// here become stack-level failures without any local recovery.
func (h *Handler) Handle(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error) {
	switch event.RequestType {
	case cfn.RequestCreate, cfn.RequestUpdate:
		props, err := ParseProperties(event.ResourceProperties)
		if err != nil {
			return event.PhysicalResourceID, nil, err
		}
		if _, err := h.HandleCreateOrUpdate(ctx, props); err != nil {
			return event.PhysicalResourceID, nil, err
		}
		// The bucket is the managed external object, so its name serves as
		// the physical resource id.
		return props.S3BucketName, nil, nil
	case cfn.RequestDelete:
		h.HandleDelete(ctx)
		return event.PhysicalResourceID, nil, nil
	default:
		return event.PhysicalResourceID, nil, fmt.Errorf("unsupported request type %s", event.RequestType)
	}
}
