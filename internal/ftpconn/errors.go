package ftpconn

import (
	"errors"
	"fmt"
	"net/textproto"

	"github.com/jlaffaye/ftp"
)

// Sentinel errors for FTP operations. The root package re-exports these.
var (
	// ErrNotFound indicates the remote file does not exist.
	ErrNotFound = errors.New("ftpush: not found")

	// ErrUnauthorized indicates the server rejected the credentials.
	ErrUnauthorized = errors.New("ftpush: unauthorized")
)

// mapError converts driver reply codes to sentinel errors. The server's
// reply text is kept as the wrapped cause; anything unrecognized passes
// through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var reply *textproto.Error
	if errors.As(err, &reply) {
		switch reply.Code {
		case ftp.StatusNotLoggedIn:
			return fmt.Errorf("%w: %v", ErrUnauthorized, err)
		case ftp.StatusFileUnavailable:
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
	}

	return err
}
