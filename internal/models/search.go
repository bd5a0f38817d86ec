package models

// SearchResult is one organic web result as returned by the search
// provider. Produced fresh per request, never persisted.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Reference is a search result re-indexed for client display. IDs form a
// dense 1-based sequence with no gaps.
type Reference struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// NewReferences re-indexes results into display references. The input order
// is preserved; ids start at 1.
func NewReferences(results []SearchResult) []Reference {
	refs := make([]Reference, 0, len(results))
	for i, r := range results {
		refs = append(refs, Reference{
			ID:      i + 1,
			Title:   r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
		})
	}
	return refs
}
