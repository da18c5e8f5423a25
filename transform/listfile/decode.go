package listfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const documentKey = "transforms"

type document struct {
	Transforms []map[string]any `yaml:"transforms" toml:"transforms"`
}

func decodeYAML(data []byte) ([]map[string]any, error) {
	var root yaml.Node

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	var extra yaml.Node
	switch err := decoder.Decode(&extra); {
	case err == nil:
		return nil, fmt.Errorf("%w: more than one yaml document", ErrInvalidDocument)
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if len(root.Content) == 1 && root.Content[0].Kind == yaml.MappingNode {
		// yaml.Node.Decode does not support KnownFields, decode the data again
		strict := yaml.NewDecoder(bytes.NewReader(data))
		strict.KnownFields(true)

		var doc document
		if err := strict.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		return doc.Transforms, nil
	}

	var records []map[string]any
	if err := root.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	return records, nil
}

func decodeTOML(data []byte) ([]map[string]any, error) {
	var doc document

	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}

	for _, key := range meta.Keys() {
		if key[0] != documentKey {
			return nil, fmt.Errorf("%w: unexpected key %q, expected %q", ErrInvalidDocument, key[0], documentKey)
		}
	}

	return doc.Transforms, nil
}
