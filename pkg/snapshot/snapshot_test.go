package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steved/routetable/pkg/route"
)

func testRows() []route.Row {
	return []route.Row{
		route.Entry{Destination: "0.0.0.0", Mask: "0.0.0.0", NextHop: "10.0.0.1", InterfaceIndex: 2, TypeCode: 4, ProtocolCode: 3, Age: 0, Metric: 100}.Row(),
		route.Entry{Destination: "10.0.0.0", Mask: "255.255.255.0", NextHop: "0.0.0.0", InterfaceIndex: 2, TypeCode: 3, ProtocolCode: 2, Age: 0, Metric: 0}.Row(),
	}
}

func fixedSnapshot(t *testing.T, rows []route.Row) Snapshot {
	t.Helper()

	newID = func() string { return "1-2-3-4" }
	now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return New(rows)
}

func TestNew(t *testing.T) {
	s := fixedSnapshot(t, testRows())

	assert.Equal(t, "1-2-3-4", s.ID)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), s.Captured)
	assert.NotEmpty(t, s.Host)
	assert.Equal(t, Fingerprint(testRows()), s.Checksum)
	assert.NoError(t, s.Verify())
}

func TestRoundTrip(t *testing.T) {
	s := fixedSnapshot(t, testRows())

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))

	got, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, s.ID, got.ID)
	assert.True(t, s.Captured.Equal(got.Captured))
	assert.NoError(t, got.Verify())

	classified, err := route.Enumerate(context.Background(), got.Routes)
	require.NoError(t, err)
	require.Len(t, classified, 2)
	assert.Equal(t, route.TypeIndirect, classified[0].Type.Category)
	assert.Equal(t, "255.255.255.0", classified[1].Entry.Mask)
	assert.Equal(t, route.ProtocolLocal, classified[1].Protocol.Category)
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yml")

	s := fixedSnapshot(t, testRows())
	require.NoError(t, s.WriteFile(path))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, got.Routes, 2)
	assert.NoError(t, got.Verify())
}

func TestVerifyEdited(t *testing.T) {
	s := fixedSnapshot(t, testRows())
	s.Routes[1][route.FieldMetric] = 5

	err := s.Verify()
	assert.True(t, errors.Is(err, ErrChecksumMismatch), "got %v", err)
}

func TestFingerprintOrder(t *testing.T) {
	rows := testRows()
	reversed := []route.Row{rows[1], rows[0]}

	assert.NotEqual(t, Fingerprint(rows), Fingerprint(reversed))
	assert.Equal(t, Fingerprint(rows), Fingerprint(testRows()))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestVerifyRetypedValues(t *testing.T) {
	rows := []route.Row{{
		route.FieldDestination:    "0.0.0.0",
		route.FieldMask:           "0.0.0.0",
		route.FieldNextHop:        "192.168.1.1",
		route.FieldInterfaceIndex: json.Number("12"),
		route.FieldType:           json.Number("4"),
		route.FieldProtocol:       json.Number("10002"),
		route.FieldAge:            json.Number("44613"),
		route.FieldMetric:         json.Number("25"),
	}}

	s := fixedSnapshot(t, rows)
	require.NoError(t, s.Verify())

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.ErrorIs(t, got.Verify(), ErrChecksumMismatch)
}

func TestFingerprintDistinguishesStrings(t *testing.T) {
	number := []route.Row{{route.FieldMetric: 12}}
	text := []route.Row{{route.FieldMetric: "12"}}

	assert.NotEqual(t, Fingerprint(number), Fingerprint(text))
	assert.Equal(t, Fingerprint([]route.Row{{route.FieldMetric: int32(12)}}), Fingerprint(number))
}
