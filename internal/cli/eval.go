package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oliverbestmann/xform/expr"
	"github.com/oliverbestmann/xform/gm"
	"github.com/oliverbestmann/xform/transform"
)

type evalOptions struct {
	inputOptions

	variable string
	from, to float64
	frames   int
}

type frameDoc struct {
	Value      float64       `yaml:"value" toml:"value"`
	Components componentsDoc `yaml:"components" toml:"components"`
}

type framesDoc struct {
	Variable string     `yaml:"variable" toml:"variable"`
	Frames   []frameDoc `yaml:"frames" toml:"frames"`
}

// evalCommand creates the eval command.
func (c *CLI) evalCommand() *cobra.Command {
	var opts evalOptions

	cmd := &cobra.Command{
		Use:   "eval [list.yaml]",
		Short: "Sample the decomposition while sweeping a variable",
		Long: `Sample the decomposition of a transform list while sweeping one variable
from --from to --to in --frames evenly spaced steps.

The expression graph of the decomposition is built once and evaluated for
every frame, the way an animation would drive it. All other variables must
be bound with --bind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEval(args[0], opts)
		},
	}

	opts.register(cmd)

	cmd.Flags().StringVar(&opts.variable, "var", "t", "variable to sweep")
	cmd.Flags().Float64Var(&opts.from, "from", 0, "first value of the variable")
	cmd.Flags().Float64Var(&opts.to, "to", 1, "last value of the variable")
	cmd.Flags().IntVar(&opts.frames, "frames", 5, "number of frames to sample")

	return cmd
}

func (c *CLI) runEval(path string, opts evalOptions) error {
	if opts.frames < 1 {
		return fmt.Errorf("--frames must be at least 1, got %d", opts.frames)
	}

	if opts.symbolic {
		return fmt.Errorf("--symbolic can not be used with eval")
	}

	components, err := c.decomposeFile(path)
	if err != nil {
		return err
	}

	bindings, err := parseBindings(opts.binds)
	if err != nil {
		return err
	}

	// the swept variable is bound per frame
	bindings[opts.variable] = opts.from

	if err := checkBound(bindings, componentNodes(components)...); err != nil {
		return err
	}

	doc := framesDoc{Variable: opts.variable}

	for frame := range opts.frames {
		var f float64
		if opts.frames > 1 {
			f = float64(frame) / float64(opts.frames-1)
		}

		v := gm.Lerp(f, opts.from, opts.to)

		bindings[opts.variable] = v

		doc.Frames = append(doc.Frames, frameDoc{
			Value: v,
			Components: toComponentsDoc(transform.MapComponents(components, func(n expr.Node) any {
				return value(n, bindings)
			})),
		})
	}

	c.Logger.Debug("Evaluated frames", "variable", opts.variable, "frames", len(doc.Frames))

	if opts.output != formatText {
		return writeStructured(c.out, opts.output, doc)
	}

	return c.writeFrames(doc)
}

func (c *CLI) writeFrames(doc framesDoc) error {
	header := []string{doc.Variable}
	for _, row := range (componentsDoc{}).rows() {
		header = append(header, row[0].(string))
	}

	table := [][]string{header}
	for _, frame := range doc.Frames {
		line := []string{formatValue(frame.Value)}
		for _, row := range frame.Components.rows() {
			line = append(line, formatValue(row[1]))
		}

		table = append(table, line)
	}

	widths := make([]int, len(header))
	for _, line := range table {
		for idx, cell := range line {
			widths[idx] = max(widths[idx], len(cell))
		}
	}

	var sb strings.Builder
	for lineIdx, line := range table {
		style := c.styles.value
		if lineIdx == 0 {
			style = c.styles.label
		}

		cells := make([]string, len(line))
		for idx, cell := range line {
			cells[idx] = style.Render(fmt.Sprintf("%*s", widths[idx], cell))
		}

		sb.WriteString(strings.Join(cells, "  "))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(c.out, sb.String())
	return err
}
