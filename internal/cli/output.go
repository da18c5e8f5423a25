package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/oliverbestmann/xform/expr"
	"github.com/oliverbestmann/xform/gm"
	"github.com/oliverbestmann/xform/transform"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// componentsDoc fixes the field order of a decomposition in yaml and toml output.
type componentsDoc struct {
	TranslateX any `yaml:"translateX" toml:"translateX"`
	TranslateY any `yaml:"translateY" toml:"translateY"`
	RotateZ    any `yaml:"rotateZ" toml:"rotateZ"`
	ScaleX     any `yaml:"scaleX" toml:"scaleX"`
	ScaleY     any `yaml:"scaleY" toml:"scaleY"`
	Scale      any `yaml:"scale" toml:"scale"`
	SkewX      any `yaml:"skewX" toml:"skewX"`
}

type matrixDoc struct {
	Matrix gm.Mat3[any] `yaml:"matrix" toml:"matrix"`
}

type decompositionDoc struct {
	Components componentsDoc `yaml:"components" toml:"components"`
}

// value converts a node to the value printed for it. If bindings is nil
// the node is printed as an expression.
func value(n expr.Node, bindings expr.Bindings) any {
	if bindings == nil {
		return n.String()
	}

	v := expr.Eval(n, bindings)
	if v == 0 {
		// print negative zero as zero
		v = 0
	}

	return v
}

func toComponentsDoc(c transform.Components[any]) componentsDoc {
	return componentsDoc{
		TranslateX: c.TranslateX,
		TranslateY: c.TranslateY,
		RotateZ:    c.RotateZ,
		ScaleX:     c.ScaleX,
		ScaleY:     c.ScaleY,
		Scale:      c.Scale,
		SkewX:      c.SkewX,
	}
}

func (d componentsDoc) rows() [][2]any {
	return [][2]any{
		{"translateX", d.TranslateX},
		{"translateY", d.TranslateY},
		{"rotateZ", d.RotateZ},
		{"scaleX", d.ScaleX},
		{"scaleY", d.ScaleY},
		{"scale", d.Scale},
		{"skewX", d.SkewX},
	}
}

func formatValue(v any) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// writeStructured encodes doc as yaml or toml.
func writeStructured(w io.Writer, format string, doc any) error {
	switch format {
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return encoder.Close()

	case formatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}

		return nil

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (c *CLI) writeMatrix(format string, m gm.Mat3[any]) error {
	if format != formatText {
		return writeStructured(c.out, format, matrixDoc{Matrix: m})
	}

	var cells [3][3]string
	var widths [3]int

	for row := range 3 {
		for col := range 3 {
			cells[row][col] = formatValue(m[row][col])
			widths[col] = max(widths[col], len(cells[row][col]))
		}
	}

	var sb strings.Builder
	sb.WriteString(c.styles.title.Render("matrix"))
	sb.WriteString("\n")

	for row := range 3 {
		for col := range 3 {
			sb.WriteString("  ")
			sb.WriteString(c.styles.value.Render(fmt.Sprintf("%*s", widths[col], cells[row][col])))
		}

		sb.WriteString("\n")
	}

	_, err := io.WriteString(c.out, sb.String())
	return err
}

func (c *CLI) writeComponents(format string, doc componentsDoc) error {
	if format != formatText {
		return writeStructured(c.out, format, decompositionDoc{Components: doc})
	}

	var sb strings.Builder
	sb.WriteString(c.styles.title.Render("components"))
	sb.WriteString("\n")

	for _, row := range doc.rows() {
		sb.WriteString("  ")
		sb.WriteString(c.styles.label.Render(fmt.Sprintf("%-10s", row[0])))
		sb.WriteString("  ")
		sb.WriteString(c.styles.value.Render(formatValue(row[1])))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(c.out, sb.String())
	return err
}
