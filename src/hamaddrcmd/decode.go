package hamaddrcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.brendoncarroll.net/stdctx/logctx"

	"go.arnce.org/hamaddr/src/hamaddr"
)

func NewDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <addr>...",
		Short: "writes the call sign and address forms for an EUI-48, EUI-64, ham64 address or call sign",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, arg := range args {
				addr, err := resolveAddr(arg)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := writeAddr(out, addr); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func NewPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <eui48>",
		Short: "writes the RFC 4291 EUI-64 for an EUI-48",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eui48, err := hamaddr.ParseEUI48(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), eui48.EUI64())
			return err
		},
	}
}

// resolveAddr accepts hardware addresses written with separators,
// and anything hamaddr.Parse accepts.
// Bare hex is read as a call sign.
func resolveAddr(s string) (hamaddr.HamAddr, error) {
	if strings.ContainsAny(s, ":-") {
		if eui64, err := hamaddr.ParseEUI64(s); err == nil {
			logctx.Infof(ctx, "read %s as EUI-64", s)
			return eui64.HamAddr(), nil
		}
		if eui48, err := hamaddr.ParseEUI48(s); err == nil {
			logctx.Infof(ctx, "read %s as EUI-48", s)
			return eui48.HamAddr(), nil
		}
	}
	return hamaddr.Parse(s)
}
