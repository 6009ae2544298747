// Package output renders extraction results for the shell: JSON, a plain
// text table and the combined summary workbook.
package output

import (
	"encoding/json"

	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
)

// ToJSON serializes a result.
func ToJSON(res *models.Result, pretty bool) ([]byte, error) {
	return marshal(res, pretty)
}

// BookToJSON serializes a whole batch, including per-file errors.
func BookToJSON(book *models.SummaryBook, pretty bool) ([]byte, error) {
	return marshal(book, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
