package fluid

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Codec defines the deserialization contract for token documents.
// Implement this interface to use alternative formats like TOML or HCL.
type Codec interface {
	// Unmarshal deserializes bytes into a value.
	Unmarshal(data []byte, v any) error

	// ContentType returns the MIME type for observability and debugging.
	ContentType() string
}

// JSONCodec implements Codec using encoding/json.
type JSONCodec struct{}

// Unmarshal deserializes JSON bytes into v.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ContentType returns the JSON MIME type.
func (JSONCodec) ContentType() string {
	return "application/json"
}

// YAMLCodec implements Codec using gopkg.in/yaml.v3.
type YAMLCodec struct{}

// Unmarshal deserializes YAML bytes into v.
func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// ContentType returns the YAML MIME type.
func (YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

// AutoCodec detects the format from content: documents starting with '{'
// are JSON, anything else is YAML.
type AutoCodec struct{}

// Unmarshal deserializes JSON or YAML bytes into v.
func (AutoCodec) Unmarshal(data []byte, v any) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return JSONCodec{}.Unmarshal(data, v)
	}
	return YAMLCodec{}.Unmarshal(data, v)
}

// ContentType reports that the format is chosen per document.
func (AutoCodec) ContentType() string {
	return "application/octet-stream"
}

// CodecFor picks a codec from a file name extension, falling back to
// AutoCodec.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONCodec{}
	case ".yaml", ".yml":
		return YAMLCodec{}
	default:
		return AutoCodec{}
	}
}

var (
	_ Codec = JSONCodec{}
	_ Codec = YAMLCodec{}
	_ Codec = AutoCodec{}
)
