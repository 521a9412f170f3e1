package hamaddrcmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.arnce.org/hamaddr/src/stations"
)

func NewTableCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "table",
		Short: "writes the addresses of every station in a config file",
	}
	configPath := c.Flags().String("config", "", "--config=path/to/stations.yaml")
	ethers := c.Flags().Bool("ethers", false, "--ethers to write an ethers(5) file")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		if *configPath == "" {
			return errors.New("must provide path to station config")
		}
		config, err := stations.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		rows, err := stations.Build(ctx, *config)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if *ethers {
			return stations.WriteEthers(ctx, out, rows)
		}
		return stations.WriteTable(out, rows)
	}
	return c
}
