package domain

// KeywordTable maps trigger terms to catalog identifiers. A query
// matching any keyword (substring, not tokenised) contributes every
// listed identifier as a candidate.
type KeywordTable struct {
	// Name labels the table for logging, e.g. "verkeer-snelheid".
	Name string `json:"name"`

	// Entries maps a lower-cased keyword to catalog identifiers.
	Entries map[string][]string `json:"entries"`
}

// StatuteTopic is a curated deep link into the statute database,
// keyed by topic keywords.
type StatuteTopic struct {
	Topic    string   `json:"topic"`
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
}
