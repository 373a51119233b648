package valve

import (
	"errors"
	"fmt"

	"github.com/heropedia/heropedia/internal/core/domain"
)

// StatusError represents a non-success HTTP response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("valve: unexpected status %d (URL: %s)", e.StatusCode, e.URL)
}

// Is lets StatusError satisfy errors.Is(err, domain.ErrFetchFailed), so
// callers can classify any upstream failure without importing this
// package.
func (e *StatusError) Is(target error) bool {
	return target == domain.ErrFetchFailed
}

// IsStatus checks whether the error is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
