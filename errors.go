package secretcache

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"
)

// ErrNoSecretString indicates that Secrets Manager returned a value for the
// requested version stage but it carried no string payload (for example a
// binary-only secret). The cache stores secret strings only, so such values
// are rejected without being cached.
var ErrNoSecretString = errors.New("secret value has no string data")

// IsSecretNotFound reports whether err indicates that the requested secret,
// or the requested version stage of it, does not exist at Secrets Manager.
func IsSecretNotFound(err error) bool {
	var rnf *types.ResourceNotFoundException
	return errors.As(err, &rnf)
}

// IsAccessDenied reports whether err indicates the caller lacks permission
// to read the secret. Secrets Manager surfaces this as an unmodeled
// AccessDeniedException, so the check goes through the generic API error.
func IsAccessDenied(err error) bool {
	var ae smithy.APIError
	return errors.As(err, &ae) && ae.ErrorCode() == "AccessDeniedException"
}

// IsInvalidRequest reports whether err indicates the request was rejected as
// invalid, for example a malformed parameter or a secret scheduled for
// deletion.
func IsInvalidRequest(err error) bool {
	var ire *types.InvalidRequestException
	if errors.As(err, &ire) {
		return true
	}
	var ipe *types.InvalidParameterException
	return errors.As(err, &ipe)
}
