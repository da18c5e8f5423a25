// Package listfile reads transform lists from YAML, JSON and TOML documents.
//
// A transform list is a sequence of records with exactly one key each, the
// name of the transform, mapped to its parameter:
//
//	- translateX: 10
//	- rotate: 45deg
//	- scale: s
//
// A parameter is either a number, a number with a "deg" suffix that is
// converted to radians, or the name of a variable. Variables are kept as
// expr.Var nodes and resolved when the resulting expressions are evaluated.
//
// TOML documents have no top level arrays, the list is read from the key
// "transforms" instead. YAML and JSON documents accept both forms.
package listfile

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/oliverbestmann/xform/expr"
	"github.com/oliverbestmann/xform/gm"
	"github.com/oliverbestmann/xform/transform"
)

// ErrInvalidRecord is returned for records that are not a single key
// mapped to a number or a string.
var ErrInvalidRecord = errors.New("invalid transform record")

var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrInvalidDocument is returned if a document is neither a list of records
// nor a mapping holding the list in its only key "transforms".
var ErrInvalidDocument = errors.New("invalid transform list")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// FormatOf picks the format by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load reads the transform list stored in the file at path.
func Load(path string) ([]transform.Descriptor[expr.Node], error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transform list: %w", err)
	}

	descriptors, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}

	slog.Debug(
		"Loaded transform list",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("transforms", len(descriptors)),
	)

	return descriptors, nil
}

// Parse decodes a transform list in the given format.
func Parse(data []byte, format Format) ([]transform.Descriptor[expr.Node], error) {
	var records []map[string]any
	var err error

	switch format {
	case FormatYAML, FormatJSON:
		// json is a subset of yaml
		records, err = decodeYAML(data)
	case FormatTOML:
		records, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, err
	}

	descriptors := make([]transform.Descriptor[expr.Node], 0, len(records))

	for idx, record := range records {
		descriptor, err := toDescriptor(record)
		if err != nil {
			return nil, fmt.Errorf("transform %d: %w", idx, err)
		}

		descriptors = append(descriptors, descriptor)
	}

	return descriptors, nil
}

func toDescriptor(record map[string]any) (transform.Descriptor[expr.Node], error) {
	if len(record) != 1 {
		return transform.Descriptor[expr.Node]{}, fmt.Errorf("%w: expected exactly one key, got %d", ErrInvalidRecord, len(record))
	}

	for name, raw := range record {
		if _, err := transform.ParseKind(name); err != nil {
			return transform.Descriptor[expr.Node]{}, err
		}

		value, err := toOperand(raw)
		if err != nil {
			return transform.Descriptor[expr.Node]{}, fmt.Errorf("%s: %w", name, err)
		}

		return transform.Descriptor[expr.Node]{Name: name, Value: value}, nil
	}

	panic("unreachable")
}

func toOperand(raw any) (expr.Node, error) {
	switch value := raw.(type) {
	case int:
		return expr.Const(float64(value)), nil
	case int64:
		return expr.Const(float64(value)), nil
	case uint64:
		return expr.Const(float64(value)), nil
	case float64:
		return expr.Const(value), nil
	case string:
		return ParseOperand(value)
	default:
		return nil, fmt.Errorf("%w: unsupported value %#v", ErrInvalidRecord, raw)
	}
}

// ParseOperand parses a parameter given as a string. Names are tried
// first, so a variable may be called inf or offsetdeg.
func ParseOperand(text string) (expr.Node, error) {
	text = strings.TrimSpace(text)

	if identifierPattern.MatchString(text) {
		return expr.Var(text), nil
	}

	if number, ok := strings.CutSuffix(text, "deg"); ok {
		deg, err := parseFinite(strings.TrimSpace(number))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid angle %q", ErrInvalidRecord, text)
		}

		return expr.Const(float64(gm.DegToRad(deg))), nil
	}

	value, err := parseFinite(text)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid parameter %q", ErrInvalidRecord, text)
	}

	return expr.Const(value), nil
}

func parseFinite(text string) (float64, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}

	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("not a finite number: %q", text)
	}

	return value, nil
}
