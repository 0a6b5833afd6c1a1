package ftpush

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/meigma/ftpush/internal/progress"
)

// UploadString uploads content as the remote file fileName. The content is
// transferred as its UTF-8 bytes, byte-for-byte equivalent to UploadStream
// over the same bytes.
func (c *Client) UploadString(ctx context.Context, content, fileName string, opts ...UploadOption) error {
	if content == "" {
		return fmt.Errorf("%w: content is empty", ErrInvalidArgument)
	}
	return c.UploadStream(ctx, strings.NewReader(content), int64(len(content)), fileName, opts...)
}

// UploadStream uploads size bytes from src as the remote file fileName.
//
// The source must have a known length; src is owned by the caller and is
// never closed by the client. One connection is dialed for the call and
// released before it returns. Transport failures propagate unmodified:
// there is no retry and the caller decides whether to try again.
func (c *Client) UploadStream(ctx context.Context, src io.Reader, size int64, fileName string, opts ...UploadOption) error {
	if src == nil {
		return fmt.Errorf("%w: source stream is nil", ErrInvalidArgument)
	}
	if size < 0 {
		return fmt.Errorf("%w: source length is unknown", ErrInvalidArgument)
	}
	if strings.TrimSpace(fileName) == "" {
		return fmt.Errorf("%w: file name is blank", ErrInvalidArgument)
	}

	cfg := &uploadConfig{threshold: DefaultProgressThreshold}
	for _, opt := range opts {
		opt(cfg)
	}

	addr, path, err := c.target(fileName)
	if err != nil {
		return err
	}

	start := time.Now()
	conn, err := c.dial(ctx, c.connConfig(addr))
	if err != nil {
		return err
	}
	defer conn.Close()

	// Wrap the source for progress tracking if a callback is registered.
	reader := src
	if cfg.progress != nil {
		reader = progress.NewReader(src, size, cfg.threshold, func(ev progress.Event) {
			cfg.progress(ProgressEvent{
				Seq:              ev.Seq,
				BytesTransferred: ev.Bytes,
				DeltaBytes:       ev.Delta,
				TotalBytes:       ev.Total,
				Percent:          ev.Percent,
			})
		})
	}

	if err := conn.Store(path, reader); err != nil {
		return fmt.Errorf("stor %s: %w", path, err)
	}

	c.logger.Info("upload complete",
		"destination", destinationURL(c.server, fileName),
		"size", humanize.IBytes(uint64(size)),
		"elapsed", time.Since(start))
	return nil
}
