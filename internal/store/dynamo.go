package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoClient builds a DynamoDB client for the configured region. When a
// shared-config profile is set it is used for credentials, otherwise the
// default credential chain applies.
func NewDynamoClient(ctx context.Context, region, profile string) (*dynamodb.Client, error) {
	var cfg aws.Config
	var err error

	if profile != "" {
		cfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(region),
			awsconfig.WithSharedConfigProfile(profile),
		)
	} else {
		cfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg), nil
}
