package hamaddrcmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

var ctx = newContext(false)

func newContext(verbose bool) context.Context {
	l, err := newLogger(verbose)
	if err != nil {
		l = zap.NewNop()
	}
	return logctx.NewContext(context.Background(), l)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:          "hamaddr",
		Short:        "hamaddr: converts between call signs, ARNCE addresses and EUI-48/EUI-64",
		SilenceUsage: true,
	}
	verbose := c.PersistentFlags().Bool("verbose", false, "--verbose to log conversion details")
	c.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ctx = newContext(*verbose)
		return nil
	}
	c.AddCommand(NewEncodeCmd())
	c.AddCommand(NewDecodeCmd())
	c.AddCommand(NewEUI48Cmd())
	c.AddCommand(NewEUI64Cmd())
	c.AddCommand(NewPromoteCmd())
	c.AddCommand(NewTableCmd())
	c.AddCommand(NewFrameCmd())
	c.AddCommand(NewMkFrameCmd())
	return c
}
