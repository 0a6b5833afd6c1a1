package ftpush

import (
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/meigma/ftpush/internal/ftpconn"
)

// ftpScheme is prepended to server addresses that do not already carry it.
const ftpScheme = "ftp://"

// defaultPort is used when the server address does not name one.
const defaultPort = "21"

// Client uploads and deletes files on one FTP server endpoint, fixed at
// construction time. Every operation dials its own connection; concurrent
// calls are not coordinated with each other.
type Client struct {
	server   string
	username string
	password string
	logger   *slog.Logger

	// connection flags, read at request time
	timeout     time.Duration
	tlsConfig   *tls.Config
	disableEPSV bool
	keepAlive   time.Duration
	asciiMode   bool
	proxyDial   func(network, address string) (net.Conn, error)

	dial dialFunc
}

// NewClient creates a client for the given server endpoint and credentials.
// Server, username, and password must be non-blank.
func NewClient(server, username, password string, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(server) == "" {
		return nil, fmt.Errorf("%w: server address is blank", ErrInvalidArgument)
	}
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is blank", ErrInvalidArgument)
	}
	if strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: password is blank", ErrInvalidArgument)
	}

	c := &Client{
		server:   server,
		username: username,
		password: password,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		dial:     ftpconn.Dial,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// destinationURL builds the remote address for fileName. The FTP scheme is
// prepended when the server address does not already carry it, and the file
// name is appended as a path segment.
func destinationURL(server, fileName string) string {
	addr := server
	if !strings.HasPrefix(addr, ftpScheme) {
		addr = ftpScheme + addr
	}
	return strings.TrimSuffix(addr, "/") + "/" + fileName
}

// target resolves the dial address and remote path for fileName.
func (c *Client) target(fileName string) (addr, path string, err error) {
	u, err := url.Parse(destinationURL(c.server, fileName))
	if err != nil {
		return "", "", fmt.Errorf("%w: malformed server address %q", ErrInvalidArgument, c.server)
	}

	addr = u.Host
	if u.Port() == "" {
		addr = net.JoinHostPort(u.Hostname(), defaultPort)
	}
	return addr, strings.TrimPrefix(u.Path, "/"), nil
}

// connConfig assembles the per-request connection configuration from the
// client's credentials and flags.
func (c *Client) connConfig(addr string) ftpconn.Config {
	return ftpconn.Config{
		Addr:        addr,
		Username:    c.username,
		Password:    c.password,
		Timeout:     c.timeout,
		TLSConfig:   c.tlsConfig,
		DisableEPSV: c.disableEPSV,
		KeepAlive:   c.keepAlive,
		ASCIIMode:   c.asciiMode,
		DialFunc:    c.proxyDial,
		Logger:      c.logger,
	}
}
