package cmd

import (
	"fmt"
	"io"
	"runtime"

	C "github.com/realm-go/realm/constant"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var nameOnly bool
	commandVersion := &cobra.Command{
		Use:   "version",
		Short: "Show current version of realm",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout(), nameOnly)
		},
	}
	commandVersion.Flags().BoolVarP(&nameOnly, "name", "n", false, "print version name only")
	return commandVersion
}

func printVersion(w io.Writer, nameOnly bool) {
	if nameOnly {
		fmt.Fprintf(w, "Version: %s\n", C.Version)
		return
	}
	versionString := "Realm version " + C.Version + "\n\n"
	versionString += "OS: " + runtime.GOOS + "\n" + "Architecture: " + runtime.GOARCH + "\n" + "Go Version: " + runtime.Version() + "\n" + "Build Time: " + C.BuildTime + "\n"

	fmt.Fprintln(w, versionString)
}
