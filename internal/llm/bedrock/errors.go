package bedrock

import (
	"errors"

	"github.com/aws/smithy-go"
)

// ClientErrorMessage extracts the service-reported message when err is an
// API-level failure (authentication, invalid model id, throttling, quota).
// Transport and local errors are not client errors.
func ClientErrorMessage(err error) (string, bool) {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorMessage(), true
	}

	return "", false
}
