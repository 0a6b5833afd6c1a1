package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/meigma/ftpush/cmd/ftpush/cli/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ftpush configuration",
	Long: `View ftpush configuration.

Without arguments, displays the current effective configuration.
Use the path subcommand to view the config file location.`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		configDir, err := config.Dir()
		if err != nil {
			return err
		}
		fmt.Println(filepath.Join(configDir, "config.yaml"))
		return nil
	},
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromViper()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(configSettings(cfg))
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// configSettings renders the effective configuration for display. The
// password is redacted and the timeout shown in duration notation.
func configSettings(cfg config.Config) map[string]any {
	password := ""
	if cfg.Password != "" {
		password = "(redacted)"
	}
	return map[string]any{
		"server":       cfg.Server,
		"user":         cfg.User,
		"password":     password,
		"timeout":      cfg.Timeout.String(),
		"explicit-tls": cfg.ExplicitTLS,
		"disable-epsv": cfg.DisableEPSV,
		"ascii":        cfg.ASCII,
		"proxy":        cfg.Proxy,
		"progress":     cfg.Progress,
	}
}
