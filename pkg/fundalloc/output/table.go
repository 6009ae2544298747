package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
)

// WriteTable prints a result as two aligned columns.
func WriteTable(w io.Writer, res *models.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", ColumnTag, ColumnValue)
	for _, e := range res.Entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.Tag, e.Value.StringFixed(2))
	}
	return tw.Flush()
}
