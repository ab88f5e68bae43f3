package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/femkit/femkit/element"
	"github.com/femkit/femkit/quadrature"
)

// listCommand prints one row per supported (element, matrix) pair.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every supported element/matrix configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ELEMENT\tMATRIX\tPOINTS\tDIM\tDEGREE")
			for _, elem := range element.Types() {
				for _, matrix := range quadrature.MatrixTypes() {
					rule, err := quadrature.GetRule(elem, matrix)
					if errors.Is(err, quadrature.ErrUnsupportedConfiguration) {
						c.logger.Debug("no catalogue entry", "element", elem, "matrix", matrix)
						continue
					}
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
						elem, matrix, rule.NPoints(), rule.Dim(), rule.Degree())
				}
			}
			return w.Flush()
		},
	}
}
