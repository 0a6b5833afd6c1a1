package ftpush

import (
	"errors"

	"github.com/meigma/ftpush/internal/ftpconn"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidArgument indicates a blank or missing argument. It is
	// returned before any network activity.
	ErrInvalidArgument = errors.New("ftpush: invalid argument")

	// ErrNotFound indicates the remote file does not exist.
	ErrNotFound = ftpconn.ErrNotFound

	// ErrUnauthorized indicates the server rejected the credentials.
	ErrUnauthorized = ftpconn.ErrUnauthorized
)
