package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oliverbestmann/xform/expr"
	"github.com/oliverbestmann/xform/transform"
	"github.com/oliverbestmann/xform/transform/listfile"
)

var errUnboundVariable = errors.New("unbound variable")

// inputOptions are shared by all commands that read a transform list.
type inputOptions struct {
	binds    []string
	output   string
	symbolic bool
}

func (o *inputOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&o.binds, "bind", "b", nil, "bind a variable, e.g. --bind t=0.5 or --bind angle=90deg")
	cmd.Flags().StringVarP(&o.output, "output", "o", formatText, "output format: text, yaml, toml")
	cmd.Flags().BoolVar(&o.symbolic, "symbolic", false, "print expressions instead of evaluating them")
}

// loadTransforms reads the transform list at path. Unknown transform names fail the complete list.
func (c *CLI) loadTransforms(path string) ([]transform.Transform[expr.Node], error) {
	descriptors, err := listfile.Load(path)
	if err != nil {
		return nil, err
	}

	transforms, err := transform.FromDescriptors(descriptors)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}

	for _, t := range transforms {
		c.Logger.Debug("Transform", "value", t)
	}

	return transforms, nil
}

// parseBindings parses name=value pairs. Values accept the same syntax as
// parameters in a transform list but must be constant.
func parseBindings(binds []string) (expr.Bindings, error) {
	bindings := expr.Bindings{}

	for _, bind := range binds {
		name, text, ok := strings.Cut(bind, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid binding %q, expected name=value", bind)
		}

		node, err := listfile.ParseOperand(text)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", bind, err)
		}

		value, ok := expr.ConstValue(node)
		if !ok {
			return nil, fmt.Errorf("binding %q: value must be a number", bind)
		}

		bindings[strings.TrimSpace(name)] = value
	}

	return bindings, nil
}

// checkBound verifies that every variable referenced by the nodes is bound.
func checkBound(bindings expr.Bindings, nodes ...expr.Node) error {
	for _, node := range nodes {
		for _, name := range expr.Vars(node) {
			if _, ok := bindings[name]; !ok {
				return fmt.Errorf("%w %q, use --bind %s=<value> or --symbolic", errUnboundVariable, name, name)
			}
		}
	}

	return nil
}
