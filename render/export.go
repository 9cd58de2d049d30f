package render

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Exporter serializes a frame for one-shot snapshot output.
type Exporter interface {
	// Export encodes the frame into the exporter's format.
	Export(frame Frame) ([]byte, error)

	// Name returns the format name.
	Name() string
}

// GetExporter returns the exporter for a format name.
func GetExporter(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "svg":
		return &SVGExporter{Width: 640, Height: 480}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// JSONExporter emits the frame as JSON, the same encoding the websocket
// host streams to the browser client.
type JSONExporter struct{}

func (e *JSONExporter) Name() string { return "json" }

func (e *JSONExporter) Export(frame Frame) ([]byte, error) {
	return json.MarshalIndent(frame, "", "  ")
}

// SVGExporter emits the frame as a standalone SVG document.
type SVGExporter struct {
	Width  float64
	Height float64
}

func (e *SVGExporter) Name() string { return "svg" }

func (e *SVGExporter) Export(frame Frame) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		e.Width, e.Height, e.Width, e.Height)
	fmt.Fprintf(&b, `  <rect width="100%%" height="100%%" fill="#1a1a1a"/>`+"\n")

	for _, s := range frame.Segments {
		fmt.Fprintf(&b,
			`  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#ffffff" stroke-opacity="0.38" stroke-width="1"/>`+"\n",
			s.From.X, s.From.Y, s.To.X, s.To.Y)
	}
	for _, r := range frame.Rings {
		fmt.Fprintf(&b,
			`  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="#e53935"/>`+"\n",
			r.Center.X, r.Center.Y, r.Radius)
	}

	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}
