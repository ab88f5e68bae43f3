package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gonum.org/v1/gonum/floats"

	"github.com/femkit/femkit/element"
	"github.com/femkit/femkit/quadrature"
)

// showCommand dumps the points and weights of one rule.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <element> <matrix>",
		Short: "Print the integration points and weights of one rule",
		Long:  `Print the integration point coordinates and weights selected for an element type (e.g. TRI6) and matrix type (stiffness, mass or beam).`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			elem, err := element.ParseElemType(strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			matrix, err := quadrature.ParseMatrixType(strings.ToLower(args[1]))
			if err != nil {
				return err
			}

			c.logger.Debug("looking up rule", "element", elem, "matrix", matrix)
			rule, err := quadrature.GetRule(elem, matrix)
			if err != nil {
				return err
			}

			props := elem.Properties()
			fmt.Fprintf(c.out, "%s (%s), %s matrix: %d points, degree %d\n",
				props.Name, props.ShortName, matrix, rule.NPoints(), rule.Degree())

			w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', tabwriter.AlignRight)
			header := []string{"#", "XI", "ETA", "ZETA"}[:rule.Dim()+1]
			fmt.Fprintln(w, strings.Join(header, "\t")+"\tWEIGHT\t")
			for i := 0; i < rule.NPoints(); i++ {
				row := make([]string, 0, rule.Dim()+2)
				row = append(row, fmt.Sprintf("%d", i))
				for _, x := range rule.Point(i) {
					row = append(row, fmt.Sprintf("%.15g", x))
				}
				row = append(row, fmt.Sprintf("%.15g", rule.Weights()[i]))
				fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(c.out, "weight sum: %.15g\n", floats.Sum(rule.Weights()))
			return nil
		},
	}
}
