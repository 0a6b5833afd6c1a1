package ftpush

import (
	"context"
	"fmt"
	"strings"
)

// DeleteFile deletes the remote file fileName.
//
// An MDTM request is issued first as an existence probe: when the server
// rejects it the file is treated as absent and the call succeeds without
// issuing DELE. A file removed by another actor between the probe and the
// DELE surfaces as a failed delete.
func (c *Client) DeleteFile(ctx context.Context, fileName string) error {
	if strings.TrimSpace(fileName) == "" {
		return fmt.Errorf("%w: file name is blank", ErrInvalidArgument)
	}

	addr, path, err := c.target(fileName)
	if err != nil {
		return err
	}

	conn, err := c.dial(ctx, c.connConfig(addr))
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ModTime(path); err != nil {
		c.logger.Debug("existence probe rejected, treating file as absent",
			"path", path, "error", err)
		return nil
	}

	if err := conn.Delete(path); err != nil {
		return fmt.Errorf("dele %s: %w", path, err)
	}

	c.logger.Info("delete complete", "destination", destinationURL(c.server, fileName))
	return nil
}
