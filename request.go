package secretcache

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// GetSecretStringRequest is a two-phase request for a secret string: set
// parameters, then execute with Send. Requests are single-use values created
// by SecretCache.GetSecretString and hold no state beyond their parameters.
type GetSecretStringRequest struct {
	cache        *SecretCache
	secretID     string
	forceRefresh bool
}

// ForceRefresh makes Send bypass the freshness check and fetch from
// Secrets Manager regardless of what is cached. The fetched value is still
// written back under the configured TTL.
//
// Use this when a secret is rotated at Secrets Manager before the cached
// entry's TTL elapses.
func (r *GetSecretStringRequest) ForceRefresh() *GetSecretStringRequest {
	r.forceRefresh = true
	return r
}

// Send executes the request.
//
// If the secret is cached and fresh it is returned immediately with no
// remote call. The secret is fetched from AWS Secrets Manager and written
// back to the cache if:
//   - the secret has not been stored in the cache
//   - the cached entry has expired
//   - ForceRefresh was set
//
// On fetch failure the error is returned verbatim and the cache is left
// unchanged; a stale entry, if any, remains in place for a later attempt.
// Cancelling ctx during an in-flight fetch likewise leaves the cache
// unmodified.
func (r *GetSecretStringRequest) Send(ctx context.Context) (string, error) {
	if !r.forceRefresh {
		if value, ok := r.cache.lookup(r.secretID); ok {
			return value, nil
		}
	}

	value, err := r.fetchSecret(ctx)
	if err != nil {
		return "", err
	}

	r.cache.write(r.secretID, value)
	return value, nil
}

// fetchSecret retrieves the secret string from Secrets Manager using the
// configured version stage.
func (r *GetSecretStringRequest) fetchSecret(ctx context.Context) (string, error) {
	out, err := r.cache.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(r.secretID),
		VersionStage: aws.String(r.cache.config.VersionStage),
	})
	if err != nil {
		return "", err
	}

	if out.SecretString == nil {
		return "", fmt.Errorf("secret %q: %w", r.secretID, ErrNoSecretString)
	}
	return *out.SecretString, nil
}
