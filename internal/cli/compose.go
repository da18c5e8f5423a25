package cli

import (
	"github.com/spf13/cobra"

	"github.com/oliverbestmann/xform/expr"
	"github.com/oliverbestmann/xform/gm"
	"github.com/oliverbestmann/xform/transform"
)

// composeCommand creates the compose command.
func (c *CLI) composeCommand() *cobra.Command {
	var opts inputOptions

	cmd := &cobra.Command{
		Use:   "compose [list.yaml]",
		Short: "Compose a transform list into an affine matrix",
		Long: `Compose a transform list into a single 3x3 affine matrix.

The list is read from a YAML, JSON or TOML file. Transforms are applied in
list order: earlier transforms are applied to the coordinate system first.
Supported transforms are translateX, translateY, scale, scaleX, scaleY,
skewX, skewY, rotateZ and rotate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompose(args[0], opts)
		},
	}

	opts.register(cmd)

	return cmd
}

func (c *CLI) runCompose(path string, opts inputOptions) error {
	transforms, err := c.loadTransforms(path)
	if err != nil {
		return err
	}

	m := transform.Compose[expr.Node](expr.Algebra{}, transforms)

	var nodes []expr.Node
	for _, row := range m {
		nodes = append(nodes, row[:]...)
	}

	bindings, err := c.resolveBindings(opts, nodes...)
	if err != nil {
		return err
	}

	c.Logger.Debug("Composed transform list", "transforms", len(transforms))

	return c.writeMatrix(opts.output, gm.MapMat3(m, func(n expr.Node) any {
		return value(n, bindings)
	}))
}

// resolveBindings parses the bindings of opts and checks that all variables
// used by nodes are bound. It returns nil bindings in symbolic mode.
func (c *CLI) resolveBindings(opts inputOptions, nodes ...expr.Node) (expr.Bindings, error) {
	if opts.symbolic {
		return nil, nil
	}

	bindings, err := parseBindings(opts.binds)
	if err != nil {
		return nil, err
	}

	if err := checkBound(bindings, nodes...); err != nil {
		return nil, err
	}

	return bindings, nil
}
