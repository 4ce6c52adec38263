//go:build !linux && !windows

package provider

import (
	"context"
	"fmt"
	"runtime"

	"github.com/steved/routetable/pkg/route"
)

func (system) Rows(_ context.Context) ([]route.Row, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
}
