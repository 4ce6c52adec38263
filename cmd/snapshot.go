package cmd

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/steved/routetable/pkg/dump"
)

var capture = dump.Capture

func init() {
	var outputPath string

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture the local routing table to a file that can be replayed with --from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			snap, err := capture(logr.NewContext(ctx, log), outputPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Captured %d routes to %s (%s)\n", len(snap.Routes), outputPath, snap.ID)

			return nil
		},
	}

	snapshotCmd.Flags().StringVarP(&outputPath, "output", "o", "routes.yml", "path to write the snapshot to")

	rootCmd.AddCommand(snapshotCmd)
}
