// Package main is the entrypoint for the upload notifier function. It wires
// the SES client and starts the Lambda runtime.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/gurre/s3-upload-notify/aws"
	"github.com/gurre/s3-upload-notify/config"
	"github.com/gurre/s3-upload-notify/mail"
	"github.com/gurre/s3-upload-notify/metrics"
	"github.com/gurre/s3-upload-notify/notifier"
)

func buildHandler() (*notifier.Handler, error) {
	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	sender := mail.NewSESSender(aws.NewSESClient(ses.NewFromConfig(awsCfg)))
	return notifier.NewHandler(os.Getenv, sender, metrics.NewMetrics(), log.Default()), nil
}

func main() {
	// The Lambda runtime already timestamps every log line.
	log.SetFlags(0)

	h, err := buildHandler()
	if err != nil {
		log.Fatalf("failed to initialize handler: %v", err)
	}

	lambda.Start(h.Handle)
}
