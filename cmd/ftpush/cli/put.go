package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/meigma/ftpush"
)

var putCmd = &cobra.Command{
	Use:   "put <local-file> [remote-name]",
	Short: "Upload a local file to the FTP server",
	Long: `Put uploads a local file to the configured FTP server.

The remote name defaults to the local file's base name.

Examples:
  ftpush put backup.tar --server ftp.example.com --user u --password p
  ftpush put report.csv reports/today.csv`,
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completePutArgs,
	RunE:              runPut,
}

func init() {
	rootCmd.AddCommand(putCmd)
}

func runPut(_ *cobra.Command, args []string) error {
	local := args[0]
	remote := filepath.Base(local)
	if len(args) == 2 {
		remote = args[1]
	}

	f, err := os.Open(local)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	callback, finish := newPutProgress()
	defer finish()

	opts := []ftpush.UploadOption{
		// Small threshold so the bar advances smoothly.
		ftpush.WithProgressThreshold(64 * 1024),
	}
	if callback != nil {
		opts = append(opts, ftpush.WithProgress(callback))
	}

	if err := client.UploadStream(ctx, f, info.Size(), remote, opts...); err != nil {
		return err
	}

	fmt.Printf("Uploaded %s (%s)\n", remote, humanize.IBytes(uint64(info.Size())))
	return nil
}
