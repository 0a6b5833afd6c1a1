package ftpush

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"golang.org/x/net/proxy"

	"github.com/meigma/ftpush/internal/progress"
)

// ClientOption configures a Client.
type ClientOption func(*Client) error

// UploadOption configures an upload operation.
type UploadOption func(*uploadConfig)

// DefaultProgressThreshold is the accumulated byte count between progress
// events when no threshold is configured.
const DefaultProgressThreshold = progress.DefaultThreshold

// uploadConfig holds configuration for upload operations.
type uploadConfig struct {
	progress  ProgressCallback
	threshold int64
}

// WithProgress registers a callback invoked with progress events during the
// upload. Without a callback, no progress accounting is done.
func WithProgress(cb ProgressCallback) UploadOption {
	return func(c *uploadConfig) {
		c.progress = cb
	}
}

// WithProgressThreshold sets the accumulated byte count between progress
// events. Values <= 0 fall back to DefaultProgressThreshold.
func WithProgressThreshold(n int64) UploadOption {
	return func(c *uploadConfig) {
		c.threshold = n
	}
}

// WithASCIIMode switches transfers to ASCII mode (TYPE A). Binary mode is
// the default.
func WithASCIIMode(enabled bool) ClientOption {
	return func(c *Client) error {
		c.asciiMode = enabled
		return nil
	}
}

// WithDisabledEPSV makes the client negotiate data connections with classic
// PASV instead of extended passive mode. Some older servers require this.
func WithDisabledEPSV(disabled bool) ClientOption {
	return func(c *Client) error {
		c.disableEPSV = disabled
		return nil
	}
}

// WithExplicitTLS upgrades control connections to TLS (AUTH TLS). The TLS
// handshake itself is handled entirely by the driver.
func WithExplicitTLS(cfg *tls.Config) ClientOption {
	return func(c *Client) error {
		c.tlsConfig = cfg
		return nil
	}
}

// WithKeepAlive enables TCP keep-alive probes on the control connection at
// the given interval.
func WithKeepAlive(interval time.Duration) ClientOption {
	return func(c *Client) error {
		c.keepAlive = interval
		return nil
	}
}

// WithLogger sets a logger for the client. By default, logging is disabled.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithProxy routes connections through the given dial function.
func WithProxy(dial func(network, address string) (net.Conn, error)) ClientOption {
	return func(c *Client) error {
		c.proxyDial = dial
		return nil
	}
}

// WithProxyURL routes connections through the proxy at rawURL
// (e.g. "socks5://localhost:1080").
func WithProxyURL(rawURL string) ClientOption {
	return func(c *Client) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("parse proxy url: %w", err)
		}
		dialer, err := proxy.FromURL(u, proxy.Direct)
		if err != nil {
			return fmt.Errorf("proxy %s: %w", rawURL, err)
		}
		c.proxyDial = dialer.Dial
		return nil
	}
}

// WithTimeout bounds dialing and control connection I/O. Unset means the
// driver's default.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) error {
		c.timeout = timeout
		return nil
	}
}
