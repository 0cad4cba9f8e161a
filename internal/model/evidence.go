package model

// EvidenceItem is one raw search result tagged with the source category
// that produced it. Items are immutable once collected: extractors read
// them, nothing rewrites them.
type EvidenceItem struct {
	Title          string `json:"title"`
	Snippet        string `json:"snippet"`
	Link           string `json:"link"`
	SourceCategory string `json:"source_category"`
	SourceWeight   int    `json:"source_weight"`
	Date           string `json:"date,omitempty"`
	Position       int    `json:"position,omitempty"`
	QueryUsed      string `json:"query_used"`
}
