package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	rpn "github.com/saiwolf/rpn-go"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s v%s\n", appName, rpn.Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", rpn.GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", rpn.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
