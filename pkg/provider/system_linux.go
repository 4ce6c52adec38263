//go:build linux

package provider

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/jsimonetti/rtnetlink"
	"golang.org/x/sys/unix"

	"github.com/steved/routetable/pkg/route"
)

var listRoutes = func(ctx context.Context) ([]rtnetlink.RouteMessage, error) {
	log := logr.FromContextOrDiscard(ctx)

	conn, err := rtnetlink.Dial(nil)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize netlink client: %w", err)
	}

	defer func() {
		if err := conn.Close(); err != nil {
			log.Error(err, "unable to close netlink client")
		}
	}()

	msgs, err := conn.Route.List()
	if err != nil {
		return nil, fmt.Errorf("unable to list routes: %w", err)
	}

	return msgs, nil
}

func (system) Rows(ctx context.Context) ([]route.Row, error) {
	log := logr.FromContextOrDiscard(ctx)

	msgs, err := listRoutes(ctx)
	if err != nil {
		return nil, err
	}

	var rows []route.Row

	for _, msg := range msgs {
		if msg.Family != unix.AF_INET || routeTable(msg) != unix.RT_TABLE_MAIN {
			continue
		}

		rows = append(rows, rowsFromMessage(msg)...)
	}

	log.V(1).Info("Read kernel routing table", "messages", len(msgs), "rows", len(rows))

	return rows, nil
}
