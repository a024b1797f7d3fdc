package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Credentials holds static AWS credentials
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// IsSet reports whether both key halves are present.
func (c Credentials) IsSet() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// Provider returns an aws.CredentialsProvider serving the static keys.
func (c Credentials) Provider() aws.CredentialsProvider {
	return credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken)
}

// LoadDefaultConfig resolves region and credentials the way the AWS CLI does:
// environment variables, the shared config and credentials files (for the
// given profile), and instance or container roles. Empty arguments leave
// the SDK defaults in place.
func LoadDefaultConfig(ctx context.Context, profile, region string) (Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return Config{
		CredentialsProvider: cfg.Credentials,
		Region:              cfg.Region,
	}, nil
}
