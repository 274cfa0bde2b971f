package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	fio "github.com/matzehuels/fordview/pkg/io"
	"github.com/matzehuels/fordview/pkg/matrix"
)

// matrixCommand creates the matrix command.
func (c *CLI) matrixCommand() *cobra.Command {
	var asJSON, asCSV bool

	cmd := &cobra.Command{
		Use:   "matrix <file>",
		Short: "Print the adjacency weight matrix",
		Long: `Print the adjacency weight matrix. Rows and columns follow node order, the
diagonal is 0 and ∞ marks a missing edge. --csv writes the numeric matrix
with "inf" for missing edges.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			m := matrix.Project(g)

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(fio.NewMatrixDocument(m))
			}
			if asCSV {
				return fio.WriteMatrixCSV(out, m)
			}
			if m.Size() == 0 {
				printInfo(out, "Graph has no nodes")
				return nil
			}
			fmt.Fprintln(out, matrixTable(m).Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the matrix as JSON (null for missing edges)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "print the matrix as CSV (inf for missing edges)")
	cmd.MarkFlagsMutuallyExclusive("json", "csv")
	return cmd
}
