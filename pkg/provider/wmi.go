package provider

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/steved/routetable/pkg/route"
)

const wmiNamespace = `ROOT\CIMv2`

// wmiProperties maps Win32_IP4RouteTable properties to row fields.
var wmiProperties = map[string]string{
	"Destination":    route.FieldDestination,
	"Mask":           route.FieldMask,
	"NextHop":        route.FieldNextHop,
	"InterfaceIndex": route.FieldInterfaceIndex,
	"Type":           route.FieldType,
	"Protocol":       route.FieldProtocol,
	"Age":            route.FieldAge,
	"Metric1":        route.FieldMetric,
}

var wmiQuery = fmt.Sprintf(
	"Get-CimInstance -Namespace '%s' -ClassName Win32_IP4RouteTable | Select-Object %s | ConvertTo-Json -Compress",
	wmiNamespace,
	"Destination,Mask,NextHop,InterfaceIndex,Type,Protocol,Age,Metric1",
)

// decodeWMIRoutes reads ConvertTo-Json output, which is a bare object when the
// query returns a single instance and an array otherwise.
func decodeWMIRoutes(output []byte) ([]route.Row, error) {
	output = bytes.TrimSpace(output)
	if len(output) == 0 {
		return nil, nil
	}

	var instances []map[string]any

	decoder := json.NewDecoder(bytes.NewReader(output))
	decoder.UseNumber()

	if output[0] == '{' {
		var instance map[string]any
		if err := decoder.Decode(&instance); err != nil {
			return nil, fmt.Errorf("unable to decode Win32_IP4RouteTable instance: %w", err)
		}

		instances = append(instances, instance)
	} else if err := decoder.Decode(&instances); err != nil {
		return nil, fmt.Errorf("unable to decode Win32_IP4RouteTable instances: %w", err)
	}

	rows := make([]route.Row, 0, len(instances))
	for _, instance := range instances {
		row := route.Row{}
		for property, value := range instance {
			if field, ok := wmiProperties[property]; ok {
				row[field] = wmiValue(value)
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// wmiValue turns integral JSON numbers into int64 so rows keep their
// representation through a snapshot.
func wmiValue(value any) any {
	n, ok := value.(json.Number)
	if !ok {
		return value
	}

	if i, err := n.Int64(); err == nil {
		return i
	}

	return n
}
