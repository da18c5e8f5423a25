package listfile

import (
	"math"
	"testing"

	"github.com/oliverbestmann/xform/expr"
	"github.com/oliverbestmann/xform/gm"
	"github.com/oliverbestmann/xform/transform"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, descriptors []transform.Descriptor[expr.Node], env expr.Env) []transform.Descriptor[float64] {
	t.Helper()

	var result []transform.Descriptor[float64]
	for _, d := range descriptors {
		result = append(result, transform.Descriptor[float64]{Name: d.Name, Value: expr.Eval(d.Value, env)})
	}

	return result
}

func TestLoad(t *testing.T) {
	expected := []transform.Descriptor[float64]{
		{Name: "translateX", Value: 10},
		{Name: "translateY", Value: -4.5},
		{Name: "rotate", Value: float64(gm.DegToRad(90))},
		{Name: "scale", Value: 3},
		{Name: "skewX", Value: 0.25},
	}

	for _, path := range []string{"testdata/list.yaml", "testdata/list.json", "testdata/list.toml"} {
		t.Run(path, func(t *testing.T) {
			descriptors, err := Load(path)
			require.NoError(t, err)

			require.Equal(t, expected, evaluate(t, descriptors, expr.Bindings{"s": 3}))
			require.Equal(t, []string{"s"}, expr.Vars(descriptors[3].Value))
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("testdata/list.txt")
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load("testdata/missing.yaml")
	require.Error(t, err)
}

func TestParse_Wrapped(t *testing.T) {
	descriptors, err := Parse([]byte("transforms:\n  - scaleX: 2\n  - scaleY: 3\n"), FormatYAML)
	require.NoError(t, err)
	require.Len(t, descriptors, 2)
	require.Equal(t, "scaleY", descriptors[1].Name)
}

func TestParse_Empty(t *testing.T) {
	descriptors, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	require.Empty(t, descriptors)

	descriptors, err = Parse([]byte("[]"), FormatJSON)
	require.NoError(t, err)
	require.Empty(t, descriptors)

	descriptors, err = Parse(nil, FormatTOML)
	require.NoError(t, err)
	require.Empty(t, descriptors)
}

func TestParse_UnknownTransform(t *testing.T) {
	_, err := Parse([]byte("- scale: 2\n- rotateX: 1\n"), FormatYAML)
	require.ErrorIs(t, err, transform.ErrUnknownTransform)
	require.ErrorContains(t, err, "transform 1")

	_, err = Parse([]byte(`transforms = [{ perspective = 100 }]`), FormatTOML)
	require.ErrorIs(t, err, transform.ErrUnknownTransform)
}

func TestParse_InvalidRecords(t *testing.T) {
	cases := map[string]string{
		"two keys":      `[{"scale": 2, "rotate": 1}]`,
		"no key":        `[{}]`,
		"boolean value": `[{"scale": true}]`,
		"null value":    `[{"scale": null}]`,
		"nested value":  `[{"scale": [1, 2]}]`,
		"bad variable":  `[{"scale": "1 + x"}]`,
		"bad angle":     `[{"rotate": "ninety deg"}]`,
		"infinite":      `[{"scale": "+Inf"}]`,
		"infinite deg":  `[{"rotate": "1e400deg"}]`,
	}

	for name, document := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(document), FormatJSON)
			require.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestParse_UnknownTopLevelKey(t *testing.T) {
	cases := []struct {
		name     string
		format   Format
		document string
	}{
		{"yaml misspelled", FormatYAML, "transform:\n  - rotate: 1\n"},
		{"yaml bare record", FormatYAML, "rotate: 1\n"},
		{"yaml extra key", FormatYAML, "transforms:\n  - rotate: 1\nscale: 2\n"},
		{"json misspelled", FormatJSON, `{"transfroms": [{"rotate": 1}]}`},
		{"toml misspelled", FormatTOML, "transform = [{ rotate = 1 }]\n"},
		{"toml extra key", FormatTOML, "scale = 2\ntransforms = [{ rotate = 1 }]\n"},
		{"toml extra table", FormatTOML, "transforms = [{ rotate = 1 }]\n\n[meta]\nname = \"x\"\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.document), tc.format)
			require.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestParse_ArrayOfTables(t *testing.T) {
	descriptors, err := Parse([]byte("[[transforms]]\nrotate = 1\n\n[[transforms]]\nscale = 2\n"), FormatTOML)
	require.NoError(t, err)
	require.Len(t, descriptors, 2)
	require.Equal(t, "scale", descriptors[1].Name)
}

func TestParse_MultipleDocuments(t *testing.T) {
	_, err := Parse([]byte("- rotate: 1\n---\n- scale: 2\n"), FormatYAML)
	require.ErrorIs(t, err, ErrInvalidDocument)

	descriptors, err := Parse([]byte("---\n- rotate: 1\n"), FormatYAML)
	require.NoError(t, err)
	require.Len(t, descriptors, 1)
}

func TestParse_Syntax(t *testing.T) {
	_, err := Parse([]byte("- scale: [1"), FormatYAML)
	require.Error(t, err)

	_, err = Parse([]byte("transforms = [{ scale = }]"), FormatTOML)
	require.Error(t, err)

	_, err = Parse([]byte("- scale: 1"), Format("xml"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseOperand(t *testing.T) {
	n, err := ParseOperand(" 180deg ")
	require.NoError(t, err)
	require.InDelta(t, math.Pi, expr.Eval(n, nil), 1e-12)

	n, err = ParseOperand("-2.5")
	require.NoError(t, err)
	require.Equal(t, -2.5, expr.Eval(n, nil))

	n, err = ParseOperand("progress")
	require.NoError(t, err)
	require.Equal(t, "progress", n.String())
}

func TestParseOperand_NamesBeforeNumbers(t *testing.T) {
	for _, name := range []string{"inf", "nan", "Infinity", "offsetdeg", "deg"} {
		t.Run(name, func(t *testing.T) {
			n, err := ParseOperand(name)
			require.NoError(t, err)
			require.Equal(t, []string{name}, expr.Vars(n))
		})
	}

	_, err := ParseOperand("-Inf")
	require.ErrorIs(t, err, ErrInvalidRecord)
}
