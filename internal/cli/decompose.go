package cli

import (
	"github.com/spf13/cobra"

	"github.com/oliverbestmann/xform/expr"
	"github.com/oliverbestmann/xform/transform"
)

// decomposeCommand creates the decompose command.
func (c *CLI) decomposeCommand() *cobra.Command {
	var opts inputOptions

	cmd := &cobra.Command{
		Use:   "decompose [list.yaml]",
		Short: "Compose a transform list and decompose the resulting matrix",
		Long: `Compose a transform list and decompose the resulting matrix into
translateX, translateY, rotateZ, scaleX, scaleY, scale and skewX.

The linear part of the matrix is split into a rotation by rotateZ, a scale by
scaleX and scaleY and a second rotation by skewX. scale equals scaleX if both
scale factors are equal and is 1 otherwise. A skewY in the input list is not
recovered as a separate component.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDecompose(args[0], opts)
		},
	}

	opts.register(cmd)

	return cmd
}

func (c *CLI) runDecompose(path string, opts inputOptions) error {
	components, err := c.decomposeFile(path)
	if err != nil {
		return err
	}

	bindings, err := c.resolveBindings(opts, componentNodes(components)...)
	if err != nil {
		return err
	}

	return c.writeComponents(opts.output, toComponentsDoc(transform.MapComponents(components, func(n expr.Node) any {
		return value(n, bindings)
	})))
}

// decomposeFile builds the expression graph of the decomposition of a transform list.
func (c *CLI) decomposeFile(path string) (transform.Components[expr.Node], error) {
	transforms, err := c.loadTransforms(path)
	if err != nil {
		return transform.Components[expr.Node]{}, err
	}

	var sym expr.Algebra
	m := transform.Compose[expr.Node](sym, transforms)
	components := transform.Decompose[expr.Node](sym, m)

	c.Logger.Debug("Decomposed transform list", "transforms", len(transforms), "variables", expr.Vars(components.Scale))

	return components, nil
}

func componentNodes(c transform.Components[expr.Node]) []expr.Node {
	return []expr.Node{c.TranslateX, c.TranslateY, c.RotateZ, c.ScaleX, c.ScaleY, c.Scale, c.SkewX}
}
