// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// Build variables, set with -ldflags "-X github.com/ik5/lipwav/internal/cli.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
	OS        = runtime.GOOS
	Arch      = runtime.GOARCH
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()

			if short, _ := cmd.Flags().GetBool("short"); short {
				fmt.Fprintf(out, "v%s\n", Version)
				return
			}

			fmt.Fprintln(out, "processwav")
			fmt.Fprintln(out, strings.Repeat("-", 40))
			fmt.Fprintf(out, "Version:      v%s\n", Version)
			fmt.Fprintf(out, "Git Commit:   %s\n", GitCommit)
			fmt.Fprintf(out, "Build Time:   %s\n", BuildTime)
			fmt.Fprintf(out, "Go Version:   %s\n", GoVersion)
			fmt.Fprintf(out, "OS/Arch:      %s/%s\n", OS, Arch)
			fmt.Fprintln(out, strings.Repeat("-", 40))
		},
	}

	cmd.Flags().BoolP("short", "s", false, "print just the version number")

	return cmd
}
