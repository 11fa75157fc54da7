package domain

// Confidence is the coarse reliability label attached to a final
// answer's source set.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// rank orders confidence levels for monotonic comparisons.
func (c Confidence) rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// Downgrade lowers the confidence by one level. Low stays low.
func (c Confidence) Downgrade() Confidence {
	switch c {
	case ConfidenceHigh:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// AtMost caps the confidence at the given ceiling. Within one
// assessment confidence only ever moves downwards, so raising rules
// must go through this instead of assigning directly.
func (c Confidence) AtMost(ceiling Confidence) Confidence {
	if ceiling.rank() < c.rank() {
		return ceiling
	}
	return c
}

// ReliabilityAssessment describes how much trust the final source
// set deserves, with human-readable caveats.
type ReliabilityAssessment struct {
	// Confidence is the coarse label: high, medium or low.
	Confidence Confidence `json:"confidence"`

	// Warnings is the ordered list of caveats, in rule order.
	Warnings []string `json:"warnings"`

	// SourcesUsed lists the origins that actually contributed
	// references to the final answer.
	SourcesUsed []string `json:"sourcesUsed"`
}

// IsReliable reports whether the answer can be presented without a
// prominent disclaimer.
func (a ReliabilityAssessment) IsReliable() bool {
	return a.Confidence != ConfidenceLow && len(a.Warnings) < 3
}
