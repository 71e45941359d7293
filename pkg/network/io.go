package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cverrors "github.com/matzehuels/chordviz/pkg/errors"
)

// Format identifies a dataset file encoding.
type Format string

// Supported dataset formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Document is the on-disk shape of a dataset.
type Document struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Nodes []Node `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges" toml:"edges"`
	Links []Edge `json:"links,omitempty" yaml:"links,omitempty" toml:"links,omitempty"`
}

// FormatFromPath infers the dataset format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", cverrors.New(cverrors.ErrCodeInvalidFormat, "unsupported dataset extension %q (want .json, .yaml, .yml or .toml)", filepath.Ext(path))
}

// ReadFile reads and validates a dataset file. The format is inferred from
// the extension.
func ReadFile(path string) (*Network, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cverrors.Wrap(cverrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return n, nil
}

// Read decodes and validates a dataset in the given format.
func Read(r io.Reader, format Format) (*Network, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, cverrors.New(cverrors.ErrCodeInvalidInput, "unknown toml keys: %v", undecoded)
		}
	default:
		return nil, cverrors.New(cverrors.ErrCodeInvalidFormat, "unsupported dataset format %q", format)
	}
	return FromDocument(doc)
}

// FromDocument validates a decoded document. Edges and Links are concatenated.
func FromDocument(doc Document) (*Network, error) {
	edges := append(append([]Edge(nil), doc.Edges...), doc.Links...)
	return New(doc.Nodes, edges, WithTitle(doc.Title))
}

// ToDocument converts a network back to its on-disk shape.
func ToDocument(n *Network) Document {
	return Document{Title: n.title, Nodes: n.Nodes(), Edges: n.Edges()}
}

// Marshal encodes the network in the given format.
func Marshal(n *Network, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, n, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes the network to w in the given format.
func Write(w io.Writer, n *Network, format Format) error {
	doc := ToDocument(n)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	default:
		return cverrors.New(cverrors.ErrCodeInvalidFormat, "unsupported dataset format %q", format)
	}
	return nil
}

// WriteFile writes the network to path, inferring the format from the extension.
func WriteFile(n *Network, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, n, format)
}
