package cmd

import (
	"fmt"
	"os"

	"github.com/realm-go/realm/cmd/flags"
	C "github.com/realm-go/realm/constant"
	"github.com/realm-go/realm/log"

	"github.com/spf13/cobra"
)

var RootCmd = NewRootCmd()

// NewRootCmd builds the command tree with flags reset to their defaults.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   C.Name,
		Short: "A high efficiency relay tool.",
		Long: `Realm relays TCP and UDP traffic. Endpoints come either from one or more
listen specs ([tcp|udp://][host]:port/remote_host:remote_port) or from a JSON
config file with listening_addresses, listening_ports, remote_addresses and
remote_ports lists.`,
		Example: `  realm -L tcp://:8080/127.0.0.1:1080 -L udp://:5353/1.1.1.1:53
  realm -c /etc/realm/config.json -o json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runApp,
	}

	flags.LogLevel = envLogLevel()

	pf := rootCmd.PersistentFlags()
	pf.StringArrayVarP(&flags.Listen, "listen", "L", nil, "listen spec [tcp|udp://][host]:port/remote_host:remote_port, repeatable")
	pf.StringVarP(&flags.ConfigFile, "config", "c", "", "config file (.json, or .yaml/.yml)")
	pf.BoolVar(&flags.DefaultEndpoint, "default-endpoint", false, "relay 0.0.0.0:1080 to 127.0.0.1:8080 when no listen spec or config file is given")
	pf.Var(&flags.LogLevel, "log-level", "log level: debug, info, warning, error or silent")
	pf.StringVar(&flags.LogFile, "log-file", os.Getenv("REALM_LOG_FILE"), "write logs to a rotated file instead of stderr")
	pf.StringVarP(&flags.Output, "output", "o", outputText, "relay list format: text, json or yaml")
	pf.BoolVarP(&flags.Version, "version", "v", false, "show current version of realm")
	pf.BoolVarP(&flags.TestConfig, "test", "t", false, "test configuration and exit")
	rootCmd.MarkFlagsMutuallyExclusive("listen", "config")

	rootCmd.AddCommand(newTestCmd(), newVersionCmd())
	return rootCmd
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envLogLevel() log.LogLevel {
	env := os.Getenv("REALM_LOG_LEVEL")
	if env == "" {
		return log.INFO
	}
	level, err := log.ParseLevel(env)
	if err != nil {
		return log.INFO
	}
	return level
}
