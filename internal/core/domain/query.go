package domain

import "strings"

// QueryContext carries optional structured hints alongside the free
// text of a question. All fields may be empty.
type QueryContext struct {
	// VehicleType narrows traffic questions, e.g. "auto", "fiets".
	VehicleType string `json:"vehicleType,omitempty"`

	// Situation narrows traffic questions, e.g. "snelweg".
	Situation string `json:"situation,omitempty"`

	// Location is a municipality or place name for local-ordinance
	// questions.
	Location string `json:"location,omitempty"`

	// Year filters case-law results.
	Year int `json:"year,omitempty"`

	// Court filters case-law results, e.g. "Hoge Raad".
	Court string `json:"court,omitempty"`

	// CaseType filters case-law results, e.g. "strafrecht".
	CaseType string `json:"caseType,omitempty"`
}

// SearchQuery is the user's free text plus optional structured
// context. Immutable once issued.
type SearchQuery struct {
	Text    string       `json:"query"`
	Context QueryContext `json:"context,omitempty"`
}

// NewSearchQuery trims the free text and returns the query.
func NewSearchQuery(text string, ctx QueryContext) SearchQuery {
	return SearchQuery{Text: strings.TrimSpace(text), Context: ctx}
}

// IsEmpty reports whether the query carries no usable text.
func (q SearchQuery) IsEmpty() bool {
	return strings.TrimSpace(q.Text) == ""
}

// Lower returns the lower-cased free text, used by the substring
// matchers throughout the pipeline.
func (q SearchQuery) Lower() string {
	return strings.ToLower(q.Text)
}
