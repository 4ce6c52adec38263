//go:build windows

package provider

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/go-logr/logr"

	"github.com/steved/routetable/pkg/route"
)

var runQuery = func(ctx context.Context) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", wmiQuery)

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("unable to query Win32_IP4RouteTable: %w: %s", err, exitErr.Stderr)
		}

		return nil, fmt.Errorf("unable to query Win32_IP4RouteTable: %w", err)
	}

	return output, nil
}

func (system) Rows(ctx context.Context) ([]route.Row, error) {
	log := logr.FromContextOrDiscard(ctx)

	output, err := runQuery(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := decodeWMIRoutes(output)
	if err != nil {
		return nil, err
	}

	log.V(1).Info("Queried WMI routing table", "namespace", wmiNamespace, "rows", len(rows))

	return rows, nil
}
