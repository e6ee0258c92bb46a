package secretcache

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsManagerAPI is the single AWS Secrets Manager operation the cache
// needs. It is satisfied by *secretsmanager.Client and allows SDK calls to
// be mocked in unit tests.
type SecretsManagerAPI interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// Option configures NewFromConfig. Options are applied in order.
type Option func(*clientOptions)

type clientOptions struct {
	region   string
	endpoint string
	cache    Config
}

// WithRegion sets the AWS region for the Secrets Manager client.
//
// Default: the AWS SDK's region resolution (environment variables, shared
// config files, EC2 metadata).
func WithRegion(region string) Option {
	return func(o *clientOptions) {
		o.region = region
	}
}

// WithEndpoint sets a custom Secrets Manager endpoint. When set, the client
// uses anonymous credentials, which suits LocalStack testing:
//
//	cache, err := secretcache.NewFromConfig(ctx,
//	    secretcache.WithEndpoint("http://localhost:4566"))
func WithEndpoint(endpoint string) Option {
	return func(o *clientOptions) {
		o.endpoint = endpoint
	}
}

// WithCacheConfig sets the caching policy for the constructed cache.
//
// Default: NewConfig().
func WithCacheConfig(cfg Config) Option {
	return func(o *clientOptions) {
		o.cache = cfg
	}
}

// NewFromConfig builds an AWS Secrets Manager client from the default AWS
// configuration and returns a SecretCache in front of it. Use New or
// NewWithConfig instead when the application already owns a client.
//
// Returns an error if the AWS configuration cannot be loaded.
func NewFromConfig(ctx context.Context, opts ...Option) (*SecretCache, error) {
	o := clientOptions{cache: NewConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.endpoint != "" {
		// Custom endpoint, e.g. LocalStack. Anonymous credentials and an
		// explicit resolver instead of the default credential chain.
		region := o.region
		if region == "" {
			region = "us-east-1"
		}
		client := secretsmanager.New(secretsmanager.Options{
			Region:           region,
			Credentials:      aws.AnonymousCredentials{},
			EndpointResolver: secretsmanager.EndpointResolverFromURL(o.endpoint),
		})
		return NewWithConfig(client, o.cache), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if o.region != "" {
		awsCfg.Region = o.region
	}

	return NewWithConfig(secretsmanager.NewFromConfig(awsCfg), o.cache), nil
}
