package domain

import "time"

// QueryRecord is the final question/answer/sources tuple persisted
// to the query log. The pipeline only ever appends records; it never
// reads them back for its own ranking decisions.
type QueryRecord struct {
	ID         string                `json:"id"`
	Question   string                `json:"question"`
	Answer     string                `json:"answer"`
	Sources    []Reference           `json:"sources"`
	Assessment ReliabilityAssessment `json:"assessment"`

	// Partial marks records saved after a client disconnected
	// mid-stream. The accumulated answer is kept as-is.
	Partial bool `json:"partial"`

	CreatedAt time.Time `json:"createdAt"`
}
