package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/realm-go/realm/cmd/flags"
	C "github.com/realm-go/realm/constant"
	"github.com/realm-go/realm/hub/executor"
	"github.com/realm-go/realm/log"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func runApp(cmd *cobra.Command, args []string) error {
	setupMaxProcs()
	setupLog()

	if flags.Version {
		printVersion(cmd.OutOrStdout(), false)
		return nil
	}

	relays, err := parseRelays()
	if err != nil {
		return err
	}

	if flags.TestConfig {
		fmt.Fprintf(cmd.OutOrStdout(), "configuration test is successful, %d relay(s)\n", len(relays))
		return nil
	}

	return writeRelays(cmd.OutOrStdout(), relays, flags.Output)
}

func setupMaxProcs() {
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, v ...any) {
		log.Debugln(format, v...)
	}))
}

func setupLog() {
	log.SetLevel(flags.LogLevel)
	log.SetOutput(flags.LogFile, 16, 3, 28, false)
}

// source captures the flag values once; parsing never reads flags directly.
func source() executor.Source {
	src := executor.Source{
		ConfigFile: flags.ConfigFile,
		Listen:     append([]string(nil), flags.Listen...),
		Missing:    executor.FailOnMissingSource,
	}
	if flags.DefaultEndpoint {
		src.Missing = executor.UseDefaultEndpoint
	}
	return src
}

func parseRelays() ([]C.RelayConfig, error) {
	relays, err := executor.Parse(source())
	if err != nil {
		return nil, fmt.Errorf("parse config error [%s]: %w", C.ErrorKindOf(err), err)
	}

	log.Infoln("Loaded %d relay(s)", len(relays))
	for _, relay := range relays {
		log.Debugln("[Relay] %s -> %s (%s)", relay.ListenAddr(), relay.RemoteAddr(),
			strings.Join(relay.Protocol.Networks(), "+"))
	}
	return relays, nil
}

func writeRelays(w io.Writer, relays []C.RelayConfig, format string) error {
	switch strings.ToLower(format) {
	case outputJSON:
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(relays)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(relays)
	case outputText, "":
		lines := lo.Map(relays, func(relay C.RelayConfig, _ int) string {
			return relay.ListenSpec()
		})
		_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
		return err
	default:
		return fmt.Errorf("unknown output format %q, use text, json or yaml", format)
	}
}
