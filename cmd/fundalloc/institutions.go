package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/institutions"
)

func newInstitutionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "institutions",
		Short: "List supported fund houses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tALIASES\tSHEET\tTAGS")
			for _, id := range institutions.All() {
				p, _ := institutions.Lookup(id)
				tags := make([]string, 0, len(p.Steps))
				for _, t := range p.Tags() {
					tags = append(tags, string(t))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", id, p.Name,
					strings.Join(institutions.Aliases(id), ","), p.Sheet, strings.Join(tags, ", "))
			}
			return w.Flush()
		},
	}
}
