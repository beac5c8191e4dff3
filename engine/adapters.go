package engine

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/utlx-lang/utlx/format/csv"
	"github.com/utlx-lang/utlx/format/json"
	"github.com/utlx-lang/utlx/format/jsonschema"
	"github.com/utlx-lang/utlx/format/xml"
	"github.com/utlx-lang/utlx/format/xsd"
	"github.com/utlx-lang/utlx/format/yaml"
	"github.com/utlx-lang/utlx/udm"
)

// parseAdapter dispatches to the format named by a header `input`
// directive, resolving "auto" by
// content-sniffing the leading bytes. It is the logging boundary for
// every format adapter's parse side: adapter packages stay
// logger-free (a logger parameter would break the stable
// two-argument Parse signature every format exposes), and the engine
// logs on their behalf here, where the format name and byte count
// are already in hand.
func parseAdapter(logger *slog.Logger, format string, data []byte, opts map[string]any) (*udm.Value, error) {
	if format == "auto" {
		detected, err := sniff(data)
		if err != nil {
			return nil, err
		}

		logger.Debug("auto-detected input format", "format", detected)

		format = detected
	}

	start := time.Now()

	v, err := dispatchParse(format, data, opts)
	if err != nil {
		if format == "xml" {
			logger.Warn("xml parse failed", "error", err)
		}

		return nil, err
	}

	logger.Debug("parsed input", "format", format, "bytes", len(data), "duration", time.Since(start), "options", opts)

	return v, nil
}

func dispatchParse(format string, data []byte, opts map[string]any) (*udm.Value, error) {
	switch format {
	case "json":
		return json.Parse(data, opts)
	case "xml":
		return xml.Parse(data, opts)
	case "csv":
		return csv.Parse(data, opts)
	case "yaml":
		return yaml.Parse(data, opts)
	case "xsd":
		return xsd.Parse(data, opts)
	case "jsch":
		return jsonschema.Parse(data, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// serializeAdapter dispatches to the format named by a header
// `output` directive. The schema formats (xsd, jsch) are input-only
// and are rejected here.
// See [parseAdapter] for why logging happens at this dispatch
// boundary rather than inside each format package.
func serializeAdapter(logger *slog.Logger, format string, v *udm.Value, opts map[string]any) ([]byte, error) {
	start := time.Now()

	b, err := dispatchSerialize(format, v, opts)
	if err != nil {
		return nil, err
	}

	logger.Debug("serialized output", "format", format, "bytes", len(b), "duration", time.Since(start), "options", opts)

	return b, nil
}

func dispatchSerialize(format string, v *udm.Value, opts map[string]any) ([]byte, error) {
	switch format {
	case "json":
		return json.Serialize(v, json.NewOptions(opts))
	case "xml":
		return xml.Serialize(v, xml.DefaultSerializeOptions())
	case "csv":
		return csv.Serialize(v, csv.NewOptions(opts))
	case "yaml":
		return yaml.Serialize(v, yaml.NewOptions(opts))
	default:
		return nil, fmt.Errorf("%w: %q is not a serializable output format", ErrUnknownFormat, format)
	}
}

// sniff content-detects a format for an "auto" directive: `<` starts
// an XML document, `{`/`[` starts JSON, otherwise the content is
// tried as YAML (a superset of JSON's scalar grammar) and finally as
// CSV, the two formats with no distinguishing leading byte.
func sniff(data []byte) (string, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return "", ErrSniffFailed
	}

	switch trimmed[0] {
	case '<':
		return "xml", nil
	case '{', '[':
		return "json", nil
	}

	if _, err := yaml.Parse(data, nil); err == nil {
		return "yaml", nil
	}

	if _, err := csv.Parse(data, nil); err == nil {
		return "csv", nil
	}

	return "", ErrSniffFailed
}
