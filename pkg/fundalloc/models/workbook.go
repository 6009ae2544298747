package models

// NamedResult pairs a result with the file it came from.
type NamedResult struct {
	// FileName is the uploaded file name (no path).
	FileName string `json:"file_name"`
	// Result is the extraction output, nil when Error is set.
	Result *Result `json:"result,omitempty"`
	// Error is the failure text for files that could not be extracted.
	Error string `json:"error,omitempty"`
}

// SummaryBook is the combined output for a batch of files.
type SummaryBook struct {
	// BookName is the output workbook file name.
	BookName string `json:"book_name"`
	// Files holds one entry per input file, in input order.
	Files []NamedResult `json:"files"`
}

// Succeeded returns the entries that carry a result.
func (b *SummaryBook) Succeeded() []NamedResult {
	var out []NamedResult
	for _, f := range b.Files {
		if f.Result != nil {
			out = append(out, f)
		}
	}
	return out
}

// Failed returns the entries that carry an error.
func (b *SummaryBook) Failed() []NamedResult {
	var out []NamedResult
	for _, f := range b.Files {
		if f.Error != "" {
			out = append(out, f)
		}
	}
	return out
}
