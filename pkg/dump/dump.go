package dump

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/steved/routetable/pkg/config"
	"github.com/steved/routetable/pkg/provider"
	"github.com/steved/routetable/pkg/report"
	"github.com/steved/routetable/pkg/route"
	"github.com/steved/routetable/pkg/snapshot"
)

var systemProvider = provider.System

func providerFor(cfg *config.Config) provider.Provider {
	if cfg.Snapshot != "" {
		return provider.Snapshot(cfg.Snapshot)
	}

	return systemProvider()
}

// Run reads the routing table, classifies every row and writes the report to out.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	log := logr.FromContextOrDiscard(ctx)

	reporter, err := report.New(cfg.Format, out)
	if err != nil {
		return err
	}

	log.V(1).Info("Reading routing table", "snapshot", cfg.Snapshot)

	rows, err := providerFor(cfg).Rows(ctx)
	if err != nil {
		return fmt.Errorf("unable to read routing table: %w", err)
	}

	var options []route.EnumerateOption
	if cfg.SkipMalformed {
		options = append(options, route.WithSkipMalformed())
	}

	routes, err := route.Enumerate(ctx, rows, options...)
	if err != nil {
		return err
	}

	if err := reporter.Report(routes); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}

	return nil
}

// Capture writes the local routing table rows to a snapshot file at path.
func Capture(ctx context.Context, path string) (snapshot.Snapshot, error) {
	log := logr.FromContextOrDiscard(ctx)

	rows, err := systemProvider().Rows(ctx)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("unable to read routing table: %w", err)
	}

	snap := snapshot.New(typedRows(rows))
	if err := snap.WriteFile(path); err != nil {
		return snapshot.Snapshot{}, err
	}

	log.Info("Snapshot written", "path", path, "id", snap.ID, "rows", len(rows))

	return snap, nil
}

// typedRows replaces every row that materializes with the entry's own row, so
// provider specific value representations are not written to snapshots.
// Malformed rows are kept as they are and fail again on replay.
func typedRows(rows []route.Row) []route.Row {
	out := make([]route.Row, len(rows))

	for i, row := range rows {
		entry, err := route.FromRow(row)
		if err != nil {
			out[i] = row
			continue
		}

		out[i] = entry.Row()
	}

	return out
}
