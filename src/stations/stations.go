// Package stations renders address tables for a list of stations.
package stations

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"go.brendoncarroll.net/exp/slices2"
	"go.brendoncarroll.net/stdctx/logctx"
	"golang.org/x/sync/errgroup"

	"go.arnce.org/hamaddr/src/hamaddr"
)

// Row holds every address form of a station.
// EUI48 and EUI64 are nil if the address does not fit.
type Row struct {
	Callsign string
	Name     string
	Addr     hamaddr.HamAddr
	EUI48    *hamaddr.EUI48
	EUI64    *hamaddr.EUI64
}

func NewRow(ctx context.Context, spec StationSpec) Row {
	row := Row{
		Callsign: spec.Callsign.Callsign(),
		Name:     spec.Name,
		Addr:     spec.Callsign,
	}
	if eui48, err := spec.Callsign.EUI48(); err == nil {
		row.EUI48 = &eui48
	} else {
		logctx.Infof(ctx, "station %s: %v", row.Callsign, err)
	}
	if eui64, err := spec.Callsign.EUI64(); err == nil {
		row.EUI64 = &eui64
	} else {
		logctx.Warnf(ctx, "station %s: %v", row.Callsign, err)
	}
	return row
}

// Build converts every station in config, using at most config.GetWorkers() goroutines.
// The rows are in the same order as config.Stations.
func Build(ctx context.Context, config Config) ([]Row, error) {
	rows := make([]Row, len(config.Stations))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(config.GetWorkers())
	for i := range config.Stations {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = NewRow(ctx, config.Stations[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// WriteTable writes rows as aligned columns.
// Missing conversions are written as "-"
func WriteTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CALLSIGN\tHAM64\tEUI-48\tEUI-64\tNAME")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Callsign, r.Addr.Ham64String(), orDash(r.EUI48), orDash(r.EUI64), r.Name)
	}
	return tw.Flush()
}

// WriteEthers writes rows in the ethers(5) format.
// Rows without an EUI48 are skipped.
func WriteEthers(ctx context.Context, w io.Writer, rows []Row) error {
	// Filter may reuse the backing array, so work on a copy.
	rows = slices2.Filter(slices.Clone(rows), func(r Row) bool {
		if r.EUI48 == nil {
			logctx.Warnf(ctx, "skipping %s, it has no EUI-48", r.Callsign)
			return false
		}
		return true
	})
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%v %s\n", *r.EUI48, r.Hostname()); err != nil {
			return err
		}
	}
	return nil
}

// Hostname returns Name if it is set, otherwise a host name derived from the call sign.
func (r Row) Hostname() string {
	if r.Name != "" {
		return r.Name
	}
	name := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-':
			return c
		default:
			return '-'
		}
	}, strings.ToLower(r.Callsign))
	// host names must not begin or end with a hyphen
	name = strings.Trim(name, "-")
	if name == "" {
		return strings.ToLower(r.Addr.Ham64String())
	}
	return name
}

func orDash[T fmt.Stringer](x *T) string {
	if x == nil {
		return "-"
	}
	return (*x).String()
}
