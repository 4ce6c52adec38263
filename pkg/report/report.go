package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/liggitt/tabwriter"
	"gopkg.in/yaml.v3"

	"github.com/steved/routetable/pkg/route"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats.
var Formats = []string{"text", "table", "yaml", "json"}

// Reporter renders classified routes.
type Reporter interface {
	Report(routes []route.Classified) error
}

func New(format string, w io.Writer) (Reporter, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return &textReporter{w: w}, nil
	case "table":
		return &tableReporter{w: w}, nil
	case "yaml":
		return &yamlReporter{w: w}, nil
	case "json":
		return &jsonReporter{w: w}, nil
	default:
		return nil, fmt.Errorf("%w %q, expected one of %s", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}

type textReporter struct {
	w io.Writer
}

func (r *textReporter) Report(routes []route.Classified) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Num entries: %d\n", len(routes))

	for _, rt := range routes {
		i := rt.Index
		fmt.Fprintf(&b, "Route[%d] Dest IP: %s\n", i, rt.Entry.Destination)
		fmt.Fprintf(&b, "Route[%d] Subnet Mask: %s\n", i, rt.Entry.Mask)
		fmt.Fprintf(&b, "Route[%d] Next Hop: %s\n", i, rt.Entry.NextHop)
		fmt.Fprintf(&b, "Route[%d] Interface Index: %d\n", i, rt.Entry.InterfaceIndex)
		fmt.Fprintf(&b, "Route[%d] Type: %s\n", i, rt.Type)
		fmt.Fprintf(&b, "Route[%d] Proto: %s\n", i, rt.Protocol)
		fmt.Fprintf(&b, "Route[%d] Age: %d\n", i, rt.Entry.Age)
		fmt.Fprintf(&b, "Route[%d] Metric1: %d\n", i, rt.Entry.Metric)
		b.WriteString("\n\n")
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

type tableReporter struct {
	w io.Writer
}

func (r *tableReporter) Report(routes []route.Classified) error {
	tw := tabwriter.NewWriter(r.w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "INDEX\tDESTINATION\tMASK\tNEXT HOP\tIFINDEX\tTYPE\tPROTOCOL\tAGE\tMETRIC")

	for _, rt := range routes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s(%d)\t%s(%d)\t%d\t%d\n",
			rt.Index,
			rt.Entry.Destination,
			rt.Entry.Mask,
			rt.Entry.NextHop,
			rt.Entry.InterfaceIndex,
			rt.Type.Category, rt.Type.Code,
			rt.Protocol.Category, rt.Protocol.Code,
			rt.Entry.Age,
			rt.Entry.Metric,
		)
	}

	return tw.Flush()
}

// record is the structured form of a classified route.
type record struct {
	Index          int            `json:"index" yaml:"index"`
	Destination    string         `json:"destination" yaml:"destination"`
	Mask           string         `json:"mask" yaml:"mask"`
	NextHop        string         `json:"next_hop" yaml:"next_hop"`
	InterfaceIndex int32          `json:"interface_index" yaml:"interface_index"`
	Type           classification `json:"type" yaml:"type"`
	Protocol       classification `json:"protocol" yaml:"protocol"`
	Age            int32          `json:"age" yaml:"age"`
	Metric         int32          `json:"metric" yaml:"metric"`
}

type classification struct {
	Code        uint32 `json:"code" yaml:"code"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
}

func records(routes []route.Classified) []record {
	out := make([]record, len(routes))

	for i, rt := range routes {
		out[i] = record{
			Index:          rt.Index,
			Destination:    rt.Entry.Destination,
			Mask:           rt.Entry.Mask,
			NextHop:        rt.Entry.NextHop,
			InterfaceIndex: rt.Entry.InterfaceIndex,
			Type: classification{
				Code:        rt.Type.Code,
				Category:    rt.Type.Category.String(),
				Description: rt.Type.Description(),
			},
			Protocol: classification{
				Code:        rt.Protocol.Code,
				Category:    rt.Protocol.Category.String(),
				Description: rt.Protocol.Description(),
			},
			Age:    rt.Entry.Age,
			Metric: rt.Entry.Metric,
		}
	}

	return out
}

type yamlReporter struct {
	w io.Writer
}

func (r *yamlReporter) Report(routes []route.Classified) error {
	encoder := yaml.NewEncoder(r.w)
	encoder.SetIndent(2)

	if err := encoder.Encode(records(routes)); err != nil {
		return fmt.Errorf("unable to encode routes: %w", err)
	}

	return encoder.Close()
}

type jsonReporter struct {
	w io.Writer
}

func (r *jsonReporter) Report(routes []route.Classified) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(records(routes)); err != nil {
		return fmt.Errorf("unable to encode routes: %w", err)
	}

	return nil
}
