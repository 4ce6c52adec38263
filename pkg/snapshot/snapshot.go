package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/steved/routetable/pkg/route"
)

var ErrChecksumMismatch = errors.New("snapshot checksum does not match its routes")

// Snapshot is a captured set of raw routing table rows that can be replayed later.
type Snapshot struct {
	// ID uniquely identifies the capture
	ID string `yaml:"id"`
	// Host is the hostname the rows were captured on
	Host string `yaml:"host"`
	// Captured is the capture time
	Captured time.Time `yaml:"captured"`
	// Checksum fingerprints Routes, see Fingerprint
	Checksum string `yaml:"checksum"`
	// Routes are the raw rows in provider order
	Routes []route.Row `yaml:"routes"`
}

var newID = func() string { return uuid.New().String() }

var now = time.Now

// New captures rows into a snapshot.
func New(rows []route.Row) Snapshot {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	return Snapshot{
		ID:       newID(),
		Host:     host,
		Captured: now().UTC(),
		Checksum: Fingerprint(rows),
		Routes:   rows,
	}
}

// Fingerprint hashes the field values of rows in order. Numbers are hashed by
// their printed form, so int32 and the int decoded from YAML agree, while
// strings are quoted and a number that came back as a string does not match.
func Fingerprint(rows []route.Row) string {
	h := xxhash.New()

	for _, row := range rows {
		for _, field := range route.Fields {
			switch value, ok := row[field]; {
			case !ok:
			case isString(value):
				_, _ = fmt.Fprintf(h, "%q", value)
			default:
				_, _ = fmt.Fprint(h, value)
			}

			_, _ = h.Write([]byte{0})
		}

		_, _ = h.Write([]byte{'\n'})
	}

	return strconv.FormatUint(h.Sum64(), 16)
}

func isString(value any) bool {
	_, ok := value.(string)
	return ok
}

// Verify checks the checksum against the routes.
func (s Snapshot) Verify() error {
	if got := Fingerprint(s.Routes); got != s.Checksum {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, s.Checksum, got)
	}

	return nil
}

func (s Snapshot) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("unable to encode snapshot: %w", err)
	}

	return encoder.Close()
}

func Read(r io.Reader) (Snapshot, error) {
	var s Snapshot

	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("unable to decode snapshot: %w", err)
	}

	return s, nil
}

// WriteFile writes the snapshot to path, replacing any existing file.
func (s Snapshot) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("unable to create snapshot file %q: %w", path, err)
	}

	if err := s.Write(f); err != nil {
		return errors.Join(err, f.Close())
	}

	return f.Close()
}

func ReadFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("unable to open snapshot file %q: %w", path, err)
	}

	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("unable to read snapshot file %q: %w", path, err)
	}

	return s, nil
}
