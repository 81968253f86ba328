// Package cfg provides configuration and command-line interface setup for ytcli.
package cfg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ytcli/internal/domain/keys"
	"ytcli/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X ytcli/internal/cfg.Version=...".
var Version = "dev"

// usageErr reports a command line or configuration problem. Anything that
// is not a download outcome exits with ExitUsage.
func usageErr(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// reportedError wraps an outcome already printed by the command.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// newRootCmd builds the ytcli command tree with flags bound to viper.
func newRootCmd() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "ytcli <url>",
		Short: "ytcli downloads videos and audio through yt-dlp.",
		Long: "ytcli turns a few download preferences into a yt-dlp command line, runs it,\n" +
			"and reports whether the download succeeded, partially failed or failed.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErr("expected exactly one URL, got %d", len(args))
			}
			if strings.TrimSpace(args[0]) == "" {
				return usageErr("URL is empty")
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfigFile(viper.GetString(keys.ConfigFile))
		},
		RunE:          runDownload,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	viper.SetEnvPrefix(keys.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // "playlist-start" reads YTCLI_PLAYLIST_START
	viper.AutomaticEnv()

	if err := initProgramFlags(rootCmd); err != nil {
		return nil, err
	}
	if err := initRequestFlags(rootCmd); err != nil {
		return nil, err
	}
	if err := initPlaylistFlags(rootCmd); err != nil {
		return nil, err
	}
	if err := initCookieFlags(rootCmd); err != nil {
		return nil, err
	}

	rootCmd.AddCommand(initHistoryCmd())
	rootCmd.AddCommand(initCookiesCmd())
	rootCmd.AddCommand(initVersionCmd())
	return rootCmd, nil
}

// Execute runs ytcli with args and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	rootCmd, err := newRootCmd()
	if err != nil {
		logging.E("Failed to initialize commands: %v", err)
		return ExitUsage
	}
	rootCmd.SetArgs(args)

	err = rootCmd.ExecuteContext(ctx)
	code := ExitCode(err)

	var re *reportedError
	if err != nil && !errors.As(err, &re) {
		logging.E("%v", err)
		if code == ExitUsage {
			fmt.Fprintln(logging.ErrConsole, "Run 'ytcli --help' for usage.")
		}
	}
	return code
}
