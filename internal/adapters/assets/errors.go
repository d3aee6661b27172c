package assets

import (
	"errors"
	"fmt"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
)

// translateError maps an S3 SDK error to a domain sentinel. The HTTP status
// decides when the service answered; the API error code is used when it did
// not carry one. Transport failures and open breakers mean unavailable.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	status := 0
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		status = respErr.HTTPStatusCode()
	}

	code := ""
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.ErrorCode()
	}

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)

	case status == http.StatusNotFound, code == "NoSuchKey", code == "NoSuchBucket":
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)

	case status == http.StatusUnauthorized, status == http.StatusForbidden,
		code == "AccessDenied", code == "InvalidAccessKeyId", code == "SignatureDoesNotMatch":
		return fmt.Errorf("%w: %w", domain.ErrForbidden, err)

	case status == http.StatusBadRequest, code == "EntityTooLarge", code == "InvalidArgument":
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)

	case status >= http.StatusInternalServerError, status == 0:
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)

	default:
		return fmt.Errorf("unexpected status %d: %w", status, err)
	}
}
