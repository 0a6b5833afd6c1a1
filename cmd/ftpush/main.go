// Command ftpush provides a CLI for uploading and deleting files on an FTP server.
package main

import (
	"os"

	"github.com/meigma/ftpush/cmd/ftpush/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
