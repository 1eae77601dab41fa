package model

// OrganicResult is a single result entry returned by a web search provider.
type OrganicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// WebResult is the response of a web search provider, ordered by relevance.
type WebResult struct {
	OrganicResults []OrganicResult `json:"organic_results"`
}
