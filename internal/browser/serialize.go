package browser

import (
	"bytes"
	"encoding/json"
	"strings"

	"objbrowser/internal/model"

	"gopkg.in/yaml.v3"
)

// Serializer turns one attached component into text for the inspect view.
type Serializer interface {
	Serialize(c model.Component) (string, error)
}

// Viewer opens a nested text view on top of the list.
type Viewer interface {
	OpenText(title, body string)
}

// JSONSerializer prints components as indented JSON.
type JSONSerializer struct {
	Indent string
}

func (s JSONSerializer) Serialize(c model.Component) (string, error) {
	indent := s.Indent
	if indent == "" {
		indent = "    "
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// YAMLSerializer prints components as YAML documents.
type YAMLSerializer struct{}

func (YAMLSerializer) Serialize(c model.Component) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// SerializerFor picks a serializer by output format name.
func SerializerFor(format string) Serializer {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		return YAMLSerializer{}
	default:
		return JSONSerializer{}
	}
}
