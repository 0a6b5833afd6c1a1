// Package cli implements the ftpush command-line interface.
package cli

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meigma/ftpush"
	"github.com/meigma/ftpush/cmd/ftpush/cli/config"
)

// Build information set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ftpush",
	Short: "Upload and delete files on an FTP server",
	Long: `Ftpush is a CLI for uploading and deleting files on an FTP server.

Server address and credentials come from flags, FTPUSH_* environment
variables, or the config file (~/.config/ftpush/config.yaml).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("server", "", "FTP server address (host or ftp://host)")
	pf.String("user", "", "FTP username")
	pf.String("password", "", "FTP password")
	pf.Duration("timeout", 0, "Dial and control connection timeout")
	pf.Bool("explicit-tls", false, "Upgrade the connection to TLS (AUTH TLS)")
	pf.Bool("disable-epsv", false, "Use classic PASV instead of extended passive mode")
	pf.Bool("ascii", false, "Use ASCII transfer mode instead of binary")
	pf.String("proxy", "", "Proxy URL for the connection (e.g. socks5://localhost:1080)")
	pf.String("progress", "auto", "Progress display mode (auto, tty, plain)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")

	//nolint:errcheck // the flags are registered above
	viper.BindPFlags(pf)

	cobra.OnInitialize(initConfig)
	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
	}
	return err
}

// initConfig loads the config file and environment. A missing config file
// is fine; a malformed one is reported but does not abort the command.
func initConfig() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// newClient creates an ftpush client from the resolved configuration.
func newClient() (*ftpush.Client, error) {
	var opts []ftpush.ClientOption
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		opts = append(opts, ftpush.WithTimeout(timeout))
	}
	if viper.GetBool("explicit-tls") {
		opts = append(opts, ftpush.WithExplicitTLS(&tls.Config{MinVersion: tls.VersionTLS12}))
	}
	if viper.GetBool("disable-epsv") {
		opts = append(opts, ftpush.WithDisabledEPSV(true))
	}
	if viper.GetBool("ascii") {
		opts = append(opts, ftpush.WithASCIIMode(true))
	}
	if proxyURL := viper.GetString("proxy"); proxyURL != "" {
		opts = append(opts, ftpush.WithProxyURL(proxyURL))
	}
	if verbose {
		opts = append(opts, ftpush.WithLogger(
			slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
		))
	}

	return ftpush.NewClient(
		viper.GetString("server"),
		viper.GetString("user"),
		viper.GetString("password"),
		opts...,
	)
}

// signalContext returns a context that is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// formatError converts ftpush errors to user-friendly messages.
func formatError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ftpush.ErrInvalidArgument):
		return fmt.Sprintf("Error: %v", err)
	case errors.Is(err, ftpush.ErrUnauthorized):
		return "Error: authentication failed (check your credentials)"
	case errors.Is(err, ftpush.ErrNotFound):
		return fmt.Sprintf("Error: not found: %v", err)
	case errors.Is(err, context.Canceled):
		return "Error: operation canceled"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
