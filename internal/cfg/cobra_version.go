package cfg

import (
	"fmt"
	"runtime"

	"ytcli/internal/domain/consts"
	"ytcli/internal/utils/logging"

	"github.com/spf13/cobra"
)

func initVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(logging.Console, "%s %s (%s %s/%s)\n", consts.ProgramName, Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
