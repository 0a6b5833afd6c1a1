package cli

import (
	"github.com/spf13/cobra"
)

// completePutArgs provides completion for the put command arguments:
// - First arg: local file (default filesystem completion)
// - Second arg: remote name (no completion - user must type it)
func completePutArgs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		// First arg is the local file
		return nil, cobra.ShellCompDirectiveDefault
	default:
		// Remote names cannot be completed locally
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeRemoteArgs disables completion for remote file names.
func completeRemoteArgs(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveNoFileComp
}
