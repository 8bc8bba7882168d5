package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/d21d3q/goduid/pkg/goduid"
)

type rootFlags struct {
	json     bool
	logLevel string
}

func newRootCmd(out io.Writer) *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "goduid-decode <DUID_hex_string>",
		Short: "Decode DHCP Unique Identifiers",
		Long: `goduid-decode decodes a DHCP Unique Identifier (DUID-LLT, DUID-EN,
DUID-LL or DUID-UUID) given as hex, with optional colon separators.`,
		Example:       "  goduid-decode 00:01:00:01:2c:3d:4e:5f:aa:bb:cc:dd:ee:ff",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runDecode(cmd.Context(), out, flags, args[0])
		},
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().BoolVar(&flags.json, "json", false, "print the decoded DUID as JSON")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", logrus.InfoLevel.String(), "log level (panic, fatal, error, warn, info, debug, trace)")
	return cmd
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runDecode(ctx context.Context, out io.Writer, flags *rootFlags, hex string) error {
	result, err := goduid.DecodeHexWithOptions(ctx, hex, goduid.DecodeOptions{Logger: logrus.StandardLogger()})
	if err != nil {
		return fmt.Errorf("decode %q: %w", hex, err)
	}
	if flags.json {
		data, err := result.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	_, err = fmt.Fprint(out, result.String())
	return err
}
