// Package main is the entrypoint for the notification registrar function.
// The cfn wrap layer owns the custom resource response protocol: it delivers
// the handler's success or failure to the pre-signed callback URL that
// CloudFormation supplies with each event.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gurre/s3-upload-notify/aws"
	"github.com/gurre/s3-upload-notify/metrics"
	"github.com/gurre/s3-upload-notify/registrar"
)

func buildHandler() (*registrar.Handler, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := aws.NewS3Client(s3.NewFromConfig(awsCfg))
	return registrar.NewHandler(client, metrics.NewMetrics(), log.Default()), nil
}

func main() {
	// The Lambda runtime already timestamps every log line.
	log.SetFlags(0)

	h, err := buildHandler()
	if err != nil {
		log.Fatalf("failed to initialize handler: %v", err)
	}

	lambda.Start(cfn.LambdaWrap(h.Handle))
}
