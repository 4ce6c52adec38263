package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steved/routetable/pkg/route"
	"github.com/steved/routetable/pkg/snapshot"
)

func TestRootReplaysSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yml")

	rows := []route.Row{
		route.Entry{Destination: "0.0.0.0", Mask: "0.0.0.0", NextHop: "192.168.1.1", InterfaceIndex: 12, TypeCode: 4, ProtocolCode: 10002, Age: 5, Metric: 25}.Row(),
	}
	require.NoError(t, snapshot.New(rows).WriteFile(path))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--from", path, "--format", "text"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Num entries: 1\n")
	assert.Contains(t, out.String(), "Route[0] Type: 4 - remote route where next hop is not final destination\n")
	assert.Contains(t, out.String(), "Route[0] Proto: 10002 - special Windows auto static route\n")
}

func TestRootInvalidFormat(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--from", "unused.yml", "--format", "xml"})

	assert.Error(t, rootCmd.Execute())
}

func TestSnapshotCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "captured.yml")

	defer func(original func(context.Context, string) (snapshot.Snapshot, error)) { capture = original }(capture)
	capture = func(_ context.Context, output string) (snapshot.Snapshot, error) {
		snap := snapshot.New([]route.Row{
			route.Entry{Destination: "10.0.0.0", Mask: "255.0.0.0", NextHop: "0.0.0.0", InterfaceIndex: 3, TypeCode: 3, ProtocolCode: 2}.Row(),
		})
		snap.ID = "1-2-3-4"

		return snap, snap.WriteFile(output)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"snapshot", "-o", path})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "Captured 1 routes to "+path+" (1-2-3-4)\n", out.String())

	out.Reset()
	rootCmd.SetArgs([]string{"--from", path, "--format", "text"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Route[0] Dest IP: 10.0.0.0\n")
	assert.Contains(t, out.String(), "Route[0] Proto: 2 - local interface\n")
}

func TestDocgenCommand(t *testing.T) {
	tests := []struct {
		name  string
		man   string
		files []string
	}{
		{"markdown", "--man=false", []string{"rt.md", "rt_snapshot.md"}},
		{"man pages", "--man=true", []string{"rt.8", "rt-snapshot.8"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "docs")

			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetArgs([]string{"docgen", "--out", dir, tt.man})
			require.NoError(t, rootCmd.Execute())

			for _, file := range tt.files {
				_, err := os.Stat(filepath.Join(dir, file))
				assert.NoError(t, err, file)
			}

			_, err := os.Stat(filepath.Join(dir, "rt_docgen.md"))
			assert.True(t, os.IsNotExist(err), "hidden docgen command must not be documented")
		})
	}
}
