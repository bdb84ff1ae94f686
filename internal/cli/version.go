package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/f2c/internal/ir"
)

// Version is the build version; release builds override it with -ldflags "-X".
var Version = ir.ToolVersion

// VersionInfo is the JSON payload of the version command.
type VersionInfo struct {
	Version   string `json:"version"`
	IRVersion string `json:"ir_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the f2c and IR versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.formatter(cmd)
			info := VersionInfo{Version: Version, IRVersion: ir.Version}
			if formatter.Format == "json" {
				return formatter.Success(info)
			}
			return formatter.Success(fmt.Sprintf("f2c %s (ir %s)", info.Version, info.IRVersion))
		},
	}
}
