package route

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
)

// Classified is one materialized and classified row, tagged with its
// position in the provider's sequence.
type Classified struct {
	Index    int
	Entry    Entry
	Type     Type
	Protocol Protocol
}

type enumerateOptions struct {
	skipMalformed bool
}

type EnumerateOption func(*enumerateOptions)

// WithSkipMalformed drops malformed rows with a warning instead of failing the run.
func WithSkipMalformed() EnumerateOption {
	return func(o *enumerateOptions) {
		o.skipMalformed = true
	}
}

// Enumerate materializes and classifies rows in the order received.
func Enumerate(ctx context.Context, rows []Row, options ...EnumerateOption) ([]Classified, error) {
	log := logr.FromContextOrDiscard(ctx)

	opts := enumerateOptions{}
	for _, option := range options {
		option(&opts)
	}

	classified := make([]Classified, 0, len(rows))

	for i, row := range rows {
		entry, err := FromRow(row)
		if err != nil {
			if opts.skipMalformed {
				log.Info("Skipping malformed route row", "index", i, "error", err.Error())
				continue
			}

			return nil, fmt.Errorf("unable to read route %d: %w", i, err)
		}

		classified = append(classified, Classified{
			Index:    i,
			Entry:    entry,
			Type:     ClassifyType(entry.TypeCode),
			Protocol: ClassifyProtocol(entry.ProtocolCode),
		})
	}

	log.V(1).Info("Classified routes", "rows", len(rows), "routes", len(classified))

	return classified, nil
}
