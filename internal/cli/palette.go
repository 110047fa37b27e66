package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/commitgraph/pkg/render/palette"
)

func (c *CLI) paletteCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the branch color palette",
		Long: `Print the colors assigned to branch indexes, in order. Branch k uses
entry k modulo the palette size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := palette.Default
			hex := make([]string, p.Len())
			for i := range hex {
				hex[i] = p.Hex(i)
			}

			if asJSON {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(hex)
			}

			fmt.Fprintln(stdout, StyleTitle.Render("Branch palette"))
			for i, h := range hex {
				fmt.Fprintln(stdout, "  "+swatch(h, fmt.Sprintf("%2d  %s", i, StyleValue.Render(h))))
			}
			printDetail("branch k uses entry k mod %d", p.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as a JSON array")
	return cmd
}
