package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into one of the package's
// sentinel errors, attaching the response body for diagnostics.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, resp.Body())
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Body())
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, resp.Body())
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), resp.Body())
	}
}
