package clients

import (
	"context"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	envloomConfig "github.com/envloom/envloom/pkg/config"
)

// GetAwsConfig loads the default AWS configuration. If the
// ENVLOOM_LOG_AWS_RETRIES environment variable is truthy we will log
// retries.
func GetAwsConfig(optFns ...func(*awsConfig.LoadOptions) error) (aws.Config, error) {
	if envloomConfig.EnvBool("ENVLOOM_LOG_AWS_RETRIES") {
		optFns = append(optFns, awsConfig.WithClientLogMode(aws.LogRetries))
	}
	return awsConfig.LoadDefaultConfig(context.TODO(), optFns...)
}

// NewS3Client returns an s3 client for a source URL. A region query
// parameter on the source overrides the ambient region.
func NewS3Client(sourceURL *url.URL) (*s3.Client, error) {
	cfg, err := GetAwsConfig()
	if err != nil {
		return nil, err
	}

	region := sourceURL.Query().Get("region")
	if region != "" {
		cfg.Region = region
	}
	return s3.NewFromConfig(cfg), nil
}

// NewSecretsManagerClient returns a secrets manager client with a raised
// retry ceiling, reference lookups are bursty
func NewSecretsManagerClient() (*secretsmanager.Client, error) {
	cfg, err := GetAwsConfig(awsConfig.WithRetryer(func() aws.Retryer {
		return retry.AddWithMaxAttempts(retry.NewStandard(), 10)
	}))
	if err != nil {
		return nil, err
	}
	return secretsmanager.NewFromConfig(cfg), nil
}
