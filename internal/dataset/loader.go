// Package dataset loads the static animal dataset: the embedded default or a
// YAML file from disk. Entries keep the order they have in the source.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ytget/animal-facts/internal/model"
)

// DefaultSource names the embedded dataset in errors and logs
const DefaultSource = "embedded:animals.yaml"

//go:embed animals.yaml
var defaultYAML []byte

// yamlEntry mirrors one mapping value in the dataset file
type yamlEntry struct {
	Image string    `yaml:"image"`
	Facts *[]string `yaml:"facts"`
}

// Default returns the dataset bundled with the binary
func Default() (*model.Dataset, error) {
	return Load(bytes.NewReader(defaultYAML), DefaultSource)
}

// LoadPath loads the dataset at path, or the embedded one when path is empty
func LoadPath(path string) (*model.Dataset, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads a dataset from a YAML file
func LoadFile(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Load(f, path)
}

// Load parses a YAML dataset. The top level must be a mapping of animal
// name to {image, facts}. source is only used in error messages.
func Load(r io.Reader, source string) (*model.Dataset, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return model.NewDataset()
		}
		return nil, fmt.Errorf("parse dataset %s: %w", source, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return model.NewDataset()
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse dataset %s: line %d: top level must be a mapping", source, root.Line)
	}

	// Mapping nodes hold key/value pairs in document order
	entries := make([]model.AnimalEntry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		entry, err := decodeEntry(key, value)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", source, err)
		}
		entries = append(entries, entry)
	}

	d, err := model.NewDataset(entries...)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", source, err)
	}
	return d, nil
}

// decodeEntry validates and converts one name/value pair
func decodeEntry(key, value *yaml.Node) (model.AnimalEntry, error) {
	name := key.Value
	if name == "" {
		return model.AnimalEntry{}, fmt.Errorf("line %d: %w: empty name", key.Line, model.ErrInvalidEntry)
	}

	var dto yamlEntry
	if err := value.Decode(&dto); err != nil {
		return model.AnimalEntry{}, fmt.Errorf("line %d: %s: %w", value.Line, name, err)
	}

	if dto.Image == "" {
		return model.AnimalEntry{}, fmt.Errorf("line %d: %w: %s: empty image", value.Line, model.ErrInvalidEntry, name)
	}
	if dto.Facts == nil {
		return model.AnimalEntry{}, fmt.Errorf("line %d: %w: %s: missing facts", value.Line, model.ErrInvalidEntry, name)
	}

	return model.AnimalEntry{
		Name:  name,
		Image: dto.Image,
		Facts: *dto.Facts,
	}, nil
}
