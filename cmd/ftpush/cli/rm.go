package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <remote-name>",
	Short: "Delete a file on the FTP server",
	Long: `Rm deletes a file on the configured FTP server.

Deleting a file that does not exist succeeds without issuing DELE.

Examples:
  ftpush rm stale.txt --server ftp.example.com --user u --password p`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeRemoteArgs,
	RunE:              runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	remote := args[0]

	client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	if err := client.DeleteFile(ctx, remote); err != nil {
		return err
	}

	fmt.Printf("Deleted %s\n", remote)
	return nil
}
