// Package ftpconn opens authenticated FTP control connections.
//
// One Conn serves one request. The package translates configuration into
// driver dial options and maps common reply codes to sentinel errors; it
// adds nothing on top of the driver's protocol handling.
package ftpconn

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/jlaffaye/ftp"
)

// Config carries everything needed to open and authenticate one control
// connection. Zero values mean "unset" and are not passed to the driver.
type Config struct {
	Addr     string // host:port
	Username string
	Password string

	// Connection flags, applied at dial time.
	Timeout     time.Duration
	TLSConfig   *tls.Config // explicit FTPS (AUTH TLS) when set
	DisableEPSV bool        // classic PASV instead of extended passive
	KeepAlive   time.Duration
	ASCIIMode   bool // TYPE A instead of the default TYPE I
	DialFunc    func(network, address string) (net.Conn, error)

	Logger *slog.Logger
}

// Conn is a logged-in control connection. Callers must Close it when done;
// Close sends QUIT and releases the underlying transport.
type Conn interface {
	Store(path string, src io.Reader) error
	ModTime(path string) (time.Time, error)
	Delete(path string) error
	Close() error
}

// Dial opens a control connection, authenticates, and selects the transfer
// type. The context bounds the dial; the configured timeout bounds control
// connection I/O after that.
func Dial(ctx context.Context, cfg Config) (Conn, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	logger.Debug("dialing ftp server", "addr", cfg.Addr)
	sc, err := ftp.Dial(cfg.Addr, cfg.dialOptions(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.Addr, mapError(err))
	}

	if err := sc.Login(cfg.Username, cfg.Password); err != nil {
		//nolint:errcheck // the login failure is the error worth reporting
		sc.Quit()
		return nil, fmt.Errorf("login %s: %w", cfg.Username, mapError(err))
	}

	transferType := ftp.TransferTypeBinary
	if cfg.ASCIIMode {
		transferType = ftp.TransferTypeASCII
	}
	if err := sc.Type(transferType); err != nil {
		//nolint:errcheck // already failing, QUIT is best effort
		sc.Quit()
		return nil, fmt.Errorf("set transfer type: %w", mapError(err))
	}

	logger.Debug("ftp session established", "addr", cfg.Addr, "user", cfg.Username)
	return &serverConn{sc: sc}, nil
}

// dialOptions translates the set Config fields into driver dial options.
func (cfg Config) dialOptions(ctx context.Context) []ftp.DialOption {
	opts := []ftp.DialOption{ftp.DialWithContext(ctx)}
	if cfg.Timeout > 0 {
		opts = append(opts, ftp.DialWithTimeout(cfg.Timeout))
	}
	if cfg.TLSConfig != nil {
		opts = append(opts, ftp.DialWithExplicitTLS(cfg.TLSConfig))
	}
	if cfg.DisableEPSV {
		opts = append(opts, ftp.DialWithDisabledEPSV(true))
	}
	if cfg.KeepAlive > 0 {
		opts = append(opts, ftp.DialWithDialer(net.Dialer{
			Timeout:   cfg.Timeout,
			KeepAlive: cfg.KeepAlive,
		}))
	}
	if cfg.DialFunc != nil {
		opts = append(opts, ftp.DialWithDialFunc(cfg.DialFunc))
	}
	return opts
}

// serverConn implements Conn on the driver's connection.
type serverConn struct {
	sc *ftp.ServerConn
}

// Store issues STOR, streaming src as the file's content.
func (c *serverConn) Store(path string, src io.Reader) error {
	return mapError(c.sc.Stor(path, src))
}

// ModTime issues MDTM and returns the file's modification time.
func (c *serverConn) ModTime(path string) (time.Time, error) {
	t, err := c.sc.GetTime(path)
	return t, mapError(err)
}

// Delete issues DELE.
func (c *serverConn) Delete(path string) error {
	return mapError(c.sc.Delete(path))
}

// Close sends QUIT.
func (c *serverConn) Close() error {
	return c.sc.Quit()
}
