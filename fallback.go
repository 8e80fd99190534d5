package webclip

// HeuristicEnrichment builds a minimal enrichment from the raw text alone:
// a best-effort title, a truncated summary, and empty keyword and emotion
// sets. It is the terminal fallback of the structuring pipeline and cannot
// fail. Timestamp and source URL are left unset for the merge step to fill.
func HeuristicEnrichment(text string) *Enrichment {
	return &Enrichment{
		Title:      ExtractTitle(text),
		Summary:    SummaryExcerpt(text),
		Keywords:   []string{},
		Emotions:   []string{},
		RawExcerpt: Truncate(text, RawExcerptLen),
	}
}
