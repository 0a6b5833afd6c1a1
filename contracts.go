package ftpush

import (
	"context"

	"github.com/meigma/ftpush/internal/ftpconn"
)

// dialFunc opens and authenticates one control connection. It exists so
// tests can substitute an in-memory transport for the FTP driver.
type dialFunc func(ctx context.Context, cfg ftpconn.Config) (ftpconn.Conn, error)
