// Package export provides functionality to export composed scenes to
// various drawable formats
package export

import (
	"fmt"

	"tether/render"
)

// Format represents an export format
type Format string

const (
	// FormatSVG exports to Scalable Vector Graphics markup (default)
	FormatSVG Format = "svg"
	// FormatPNG exports to a rasterised PNG image
	FormatPNG Format = "png"
	// FormatASCII exports to ASCII/Unicode art
	FormatASCII Format = "ascii"
	// FormatJSON exports the composed drawing as JSON
	FormatJSON Format = "json"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a composed scene to the target format
	Export(d *render.SceneDrawing) ([]byte, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatSVG:
		return NewSVGExporter(), nil
	case FormatPNG:
		return NewPNGExporter(), nil
	case FormatASCII:
		return NewASCIIExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "svg", "":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "ascii", "text", "txt":
		return FormatASCII, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatSVG,
		FormatPNG,
		FormatASCII,
		FormatJSON,
	}
}
