package utils

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// LoadAWSConfig loads the default credential chain for region. It is shared by
// the S3 store and the Rekognition photo describer.
func LoadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	if region == "" {
		return aws.Config{}, errors.New("AWS_REGION not set")
	}
	return config.LoadDefaultConfig(ctx, config.WithRegion(region))
}
