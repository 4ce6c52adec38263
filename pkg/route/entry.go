package route

import (
	"encoding/json"
	"fmt"
	"math"
)

// Row field names as delivered by providers.
const (
	FieldDestination    = "destination"
	FieldMask           = "mask"
	FieldNextHop        = "next_hop"
	FieldInterfaceIndex = "interface_index"
	FieldType           = "type"
	FieldProtocol       = "protocol"
	FieldAge            = "age"
	FieldMetric         = "metric"
)

// Fields lists every row field in presentation order.
var Fields = []string{
	FieldDestination,
	FieldMask,
	FieldNextHop,
	FieldInterfaceIndex,
	FieldType,
	FieldProtocol,
	FieldAge,
	FieldMetric,
}

// Row is one raw routing table row as returned by a provider.
type Row map[string]any

// Entry is one IPv4 routing table row.
type Entry struct {
	// Destination is the destination network or host address
	Destination string
	// Mask is the subnet mask applied to Destination
	Mask string
	// NextHop is the gateway address
	NextHop string
	// InterfaceIndex identifies the local interface the route leaves through
	InterfaceIndex int32
	// TypeCode is the raw ipRouteType value
	TypeCode uint32
	// ProtocolCode is the raw ipRouteProto value
	ProtocolCode uint32
	// Age is the number of seconds since the route was last updated
	Age int32
	// Metric is the route cost
	Metric int32
}

// MalformedRowError reports a raw row that is missing a field or holds a
// value of the wrong representation for it.
type MalformedRowError struct {
	Field string
	Value any
}

func (e *MalformedRowError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("malformed route row: missing field %q", e.Field)
	}

	return fmt.Sprintf("malformed route row: invalid value %v (%T) for field %q", e.Value, e.Value, e.Field)
}

// FromRow materializes a raw row. It returns a zero Entry whenever err is non-nil.
func FromRow(row Row) (Entry, error) {
	var (
		entry Entry
		err   error
	)

	if entry.Destination, err = stringField(row, FieldDestination); err != nil {
		return Entry{}, err
	}

	if entry.Mask, err = stringField(row, FieldMask); err != nil {
		return Entry{}, err
	}

	if entry.NextHop, err = stringField(row, FieldNextHop); err != nil {
		return Entry{}, err
	}

	if entry.InterfaceIndex, err = int32Field(row, FieldInterfaceIndex); err != nil {
		return Entry{}, err
	}

	if entry.TypeCode, err = uint32Field(row, FieldType); err != nil {
		return Entry{}, err
	}

	if entry.ProtocolCode, err = uint32Field(row, FieldProtocol); err != nil {
		return Entry{}, err
	}

	if entry.Age, err = int32Field(row, FieldAge); err != nil {
		return Entry{}, err
	}

	if entry.Metric, err = int32Field(row, FieldMetric); err != nil {
		return Entry{}, err
	}

	return entry, nil
}

// Row converts the entry back into its raw representation.
func (e Entry) Row() Row {
	return Row{
		FieldDestination:    e.Destination,
		FieldMask:           e.Mask,
		FieldNextHop:        e.NextHop,
		FieldInterfaceIndex: e.InterfaceIndex,
		FieldType:           e.TypeCode,
		FieldProtocol:       e.ProtocolCode,
		FieldAge:            e.Age,
		FieldMetric:         e.Metric,
	}
}

func stringField(row Row, field string) (string, error) {
	value, ok := row[field]
	if !ok || value == nil {
		return "", &MalformedRowError{Field: field}
	}

	s, ok := value.(string)
	if !ok {
		return "", &MalformedRowError{Field: field, Value: value}
	}

	return s, nil
}

func int32Field(row Row, field string) (int32, error) {
	n, err := integerField(row, field, math.MinInt32, math.MaxInt32)
	return int32(n), err
}

func uint32Field(row Row, field string) (uint32, error) {
	n, err := integerField(row, field, 0, math.MaxUint32)
	return uint32(n), err
}

// integerField accepts any integer kind, integral float64 (JSON) and
// json.Number, as long as the value lies within [lo, hi].
func integerField(row Row, field string, lo, hi int64) (int64, error) {
	value, ok := row[field]
	if !ok || value == nil {
		return 0, &MalformedRowError{Field: field}
	}

	invalid := &MalformedRowError{Field: field, Value: value}

	var n int64

	switch v := value.(type) {
	case int:
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, invalid
		}
		n = int64(v)
	case uint8:
		n = int64(v)
	case uint16:
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, invalid
		}
		n = int64(v)
	case float64:
		if v != math.Trunc(v) || v < float64(lo) || v > float64(hi) {
			return 0, invalid
		}
		n = int64(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, invalid
		}
		n = i
	default:
		return 0, invalid
	}

	if n < lo || n > hi {
		return 0, invalid
	}

	return n, nil
}
