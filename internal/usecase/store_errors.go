package usecase

import (
	"errors"
	"net"

	"task-tracker-backend/internal/apperr"
)

// translateStoreError keeps raw database errors out of API responses.
// Network-level failures become 503s, everything else a generic 500.
func translateStoreError(msg string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperr.Unavailable("Database connection error, please try again later", err)
	}
	return apperr.Internal(msg, err)
}
