package cfg

import (
	"context"

	"ytcli/internal/utils/browser"
	"ytcli/internal/utils/logging"

	"github.com/spf13/cobra"
)

// exportCookies is swapped out in tests.
var exportCookies = browser.ExportCookies

// initCookiesCmd is the entrypoint for cookie commands.
func initCookiesCmd() *cobra.Command {
	cookiesCmd := &cobra.Command{
		Use:   "cookies",
		Short: "Cookie commands",
		Long:  "Export browser cookies into a cookies.txt file for use with --cookies.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageErr("please specify a subcommand. Use --help to see available subcommands")
		},
	}

	cookiesCmd.AddCommand(exportCookiesCmd())
	return cookiesCmd
}

// exportCookiesCmd writes a site's browser cookies in Netscape format.
func exportCookiesCmd() *cobra.Command {
	var browserName, url, out string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export cookies for a site",
		Long:  "Read the cookies your browsers hold for a site and write them to a Netscape cookies.txt file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return usageErr("must enter a URL")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			n, err := exportCookies(ctx, browserName, url, out)
			if err != nil {
				return usageErr("cookie export failed: %w", err)
			}
			logging.I("Use it with: ytcli --cookies %s <url> (%d cookies)", out, n)
			return nil
		},
	}

	exportCmd.Flags().StringVarP(&browserName, "browser", "b", "", "Browser to read cookies from (e.g. firefox, chrome), all when empty")
	exportCmd.Flags().StringVarP(&url, "url", "u", "", "Site URL the cookies belong to")
	exportCmd.Flags().StringVar(&out, "out", "cookies.txt", "File to write")
	return exportCmd
}
