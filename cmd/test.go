package cmd

import (
	"fmt"

	"github.com/realm-go/realm/cmd/flags"

	"github.com/spf13/cobra"
)

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Test configuration and exit",
		RunE:  cmdTestConfig,
		Args:  cobra.NoArgs,
	}
}

func cmdTestConfig(cmd *cobra.Command, args []string) error {
	flags.TestConfig = true
	setupLog()

	relays, err := parseRelays()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "configuration test is successful, %d relay(s)\n", len(relays))
	return nil
}
