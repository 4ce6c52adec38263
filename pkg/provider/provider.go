package provider

import (
	"context"
	"errors"

	"github.com/go-logr/logr"

	"github.com/steved/routetable/pkg/route"
	"github.com/steved/routetable/pkg/snapshot"
)

var ErrUnsupportedPlatform = errors.New("reading the routing table is not supported on this platform")

// Provider returns the raw IPv4 routing table rows in the order the source delivers them.
type Provider interface {
	Rows(context.Context) ([]route.Row, error)
}

type system struct{}

// System reads the routing table of the local host.
func System() Provider {
	return system{}
}

type snapshotFile struct {
	path string
}

// Snapshot replays rows previously captured to a snapshot file.
func Snapshot(path string) Provider {
	return snapshotFile{path: path}
}

func (s snapshotFile) Rows(ctx context.Context) ([]route.Row, error) {
	log := logr.FromContextOrDiscard(ctx)

	snap, err := snapshot.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	if err := snap.Verify(); err != nil {
		log.Info("Snapshot was modified after capture", "path", s.path, "error", err.Error())
	}

	log.V(1).Info("Loaded snapshot", "id", snap.ID, "host", snap.Host, "captured", snap.Captured, "rows", len(snap.Routes))

	return snap.Routes, nil
}
