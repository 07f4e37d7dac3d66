package export

import (
	"encoding/json"

	"tether/render"
)

// JSONExporter exports composed scenes as indented JSON
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a composed scene to JSON
func (e *JSONExporter) Export(d *render.SceneDrawing) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
