package hamaddrcmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.brendoncarroll.net/stdctx/logctx"

	"go.arnce.org/hamaddr/src/hamaddr"
)

func NewEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <callsign>...",
		Short: "writes every address form of each call sign",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, arg := range args {
				addr, err := hamaddr.ParseCallsign(arg)
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

func NewEUI48Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eui48 <addr>",
		Short: "writes the EUI-48 for a call sign or ham64 address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := hamaddr.Parse(args[0])
			if err != nil {
				return err
			}
			eui48, err := addr.EUI48()
			if err != nil {
				return errors.Wrapf(err, "converting %s", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), eui48)
			return err
		},
	}
}

func NewEUI64Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eui64 <addr>",
		Short: "writes the EUI-64 for a call sign or ham64 address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := hamaddr.Parse(args[0])
			if err != nil {
				return err
			}
			eui64, err := addr.EUI64()
			if err != nil {
				return errors.Wrapf(err, "converting %s", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), eui64)
			return err
		},
	}
}

// writeAddr writes all the forms of addr, one per line.
func writeAddr(w io.Writer, addr hamaddr.HamAddr) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "callsign\t%s\n", addr.Callsign())
	fmt.Fprintf(tw, "hex\t%s\n", addr.HexString())
	fmt.Fprintf(tw, "ham64\t%s\n", addr.Ham64String())
	if eui48, err := addr.EUI48(); err == nil {
		fmt.Fprintf(tw, "eui48\t%v\n", eui48)
	} else {
		logctx.Infof(ctx, "%v", err)
		fmt.Fprintf(tw, "eui48\t-\n")
	}
	if eui64, err := addr.EUI64(); err == nil {
		fmt.Fprintf(tw, "eui64\t%v\n", eui64)
	} else {
		logctx.Infof(ctx, "%v", err)
		fmt.Fprintf(tw, "eui64\t-\n")
	}
	return tw.Flush()
}
