package domain

// AnalyzeResult is the normalized output of a document-analysis run: the raw
// text lines per page, any key-value pairs the analyzer recognized, and any
// tables it reconstructed.
type AnalyzeResult struct {
	Pages         []AnalyzedPage  `json:"pages"`
	KeyValuePairs []KeyValuePair  `json:"key_value_pairs"`
	Tables        []AnalyzedTable `json:"tables"`
}

// AnalyzedPage holds the text lines of a single page.
type AnalyzedPage struct {
	PageNumber int      `json:"page_number"`
	Lines      []string `json:"lines"`
}

// KeyValuePair is a labeled field the analyzer recognized, with its
// confidence score.
type KeyValuePair struct {
	Key        string  `json:"key"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// AnalyzedTable is a table reconstructed from the document.
type AnalyzedTable struct {
	RowCount    int         `json:"row_count"`
	ColumnCount int         `json:"column_count"`
	Cells       []TableCell `json:"cells"`
}

// Text joins every line of every page into a single string, pages and lines
// separated by newlines.
func (r *AnalyzeResult) Text() string {
	var n int
	for _, p := range r.Pages {
		for _, l := range p.Lines {
			n += len(l) + 1
		}
	}
	b := make([]byte, 0, n)
	for _, p := range r.Pages {
		for _, l := range p.Lines {
			b = append(b, l...)
			b = append(b, '\n')
		}
	}
	return string(b)
}
