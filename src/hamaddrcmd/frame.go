package hamaddrcmd

import (
	"encoding/hex"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/gopacket/layers"
	"github.com/spf13/cobra"

	"go.arnce.org/hamaddr/src/hamaddr"
	"go.arnce.org/hamaddr/src/hamframe"
)

func NewFrameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frame <hex>...",
		Short: "writes the call signs in the MAC addresses of an Ethernet frame",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := hamframe.DecodeHex(strings.Join(args, ""))
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, ep := range []struct {
				Name string
				hamframe.Endpoint
			}{{"src", f.Src}, {"dst", f.Dst}} {
				callsign := ep.Callsign
				if !ep.HasCallsign() {
					callsign = "-"
				}
				fmt.Fprintf(tw, "%s\t%v\t%s\n", ep.Name, ep.MAC, callsign)
			}
			fmt.Fprintf(tw, "type\t%v\t\n", f.EtherType)
			if f.VLAN != 0 {
				fmt.Fprintf(tw, "vlan\t%d\t\n", f.VLAN)
			}
			fmt.Fprintf(tw, "payload\t%d\t\n", len(f.Payload))
			return tw.Flush()
		},
	}
}

func NewMkFrameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkframe <src> <dst>",
		Short: "writes an empty IPv6 Ethernet frame between two stations as hex",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := hamaddr.Parse(args[0])
			if err != nil {
				return err
			}
			dst, err := hamaddr.Parse(args[1])
			if err != nil {
				return err
			}
			data, err := hamframe.Build(src, dst, layers.EthernetTypeIPv6, nil)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return err
		},
	}
}
