package services

import (
	"strings"

	"github.com/wethelder/wethelder/internal/core/domain"
)

// Reliability caveats shown to the user. Dutch, like the rest of the
// user-facing surface.
const (
	warnNoSearchCredentials = "Externe verificatie is niet geconfigureerd; de bronnen konden niet online worden gecontroleerd."
	warnUnverifiedArticle   = "De vraag noemt een specifiek wetsartikel dat niet extern geverifieerd kon worden; controleer de tekst op wetten.overheid.nl."
	warnNoExternalResults   = "Er zijn geen externe bronnen gevonden ter bevestiging van dit antwoord."
	warnNoCuratedSources    = "Geen gecureerde bronnen gevonden voor deze vraag."
	warnRecency             = "De vraag betreft recente wijzigingen; raadpleeg de officiële bron voor de actuele stand van zaken."
	warnVolatileTopic       = "Boetebedragen en lokale verordeningen wijzigen regelmatig; verifieer bij de uitgevende instantie."
)

// authoritativeDomains are the recognised official databases: the
// statute database, the case-law database and the local-regulation
// database.
var authoritativeDomains = []string{
	"wetten.overheid.nl",
	"uitspraken.rechtspraak.nl",
	"lokaleregelgeving.overheid.nl",
}

// recencyTerms flag questions about recent changes.
var recencyTerms = []string{"actueel", "nieuw", "recent", "gewijzigd", "per wanneer"}

// volatileTopicTerms flag fine/sanction and local-ordinance topics
// whose answers age quickly.
var volatileTopicTerms = []string{"boete", "bekeuring", "sanctie", "apv", "verordening"}

// AssessmentInput is everything the annotator inspects: what the
// pipeline found and whether external verification ran.
type AssessmentInput struct {
	// Query is the original question.
	Query domain.SearchQuery

	// SearchConfigured reports whether web-search credentials exist.
	SearchConfigured bool

	// ExternalSearchSucceeded reports whether the external call
	// completed without error.
	ExternalSearchSucceeded bool

	// ExternalHits are the normalised external references found.
	ExternalHits []domain.Reference

	// CuratedCount is the number of catalog references found.
	CuratedCount int
}

// assessRule inspects the input and returns a possibly-downgraded
// assessment. Rules never raise confidence above what an earlier
// rule set; the fold keeps the monotonicity property testable.
type assessRule func(in AssessmentInput, a domain.ReliabilityAssessment) domain.ReliabilityAssessment

// Annotator computes the coarse confidence label and caveat list
// that accompany an answer.
type Annotator struct {
	rules []assessRule
}

// NewAnnotator creates the annotator with the standard rule order.
func NewAnnotator() *Annotator {
	return &Annotator{rules: []assessRule{
		ruleSearchCredentials,
		ruleUnverifiedArticleCitation,
		ruleExternalVerification,
		ruleCuratedSources,
		ruleRecency,
		ruleVolatileTopic,
	}}
}

// Assess folds the rules, in order, over an initially-high
// assessment. Multiple rules may fire and each may append warnings;
// confidence only ever moves downwards within one assessment.
func (an *Annotator) Assess(in AssessmentInput) domain.ReliabilityAssessment {
	a := domain.ReliabilityAssessment{
		Confidence: domain.ConfidenceHigh,
		Warnings:   []string{},
	}
	for _, rule := range an.rules {
		a = rule(in, a)
	}
	return a
}

// ruleSearchCredentials floors confidence at low when the external
// search provider is unconfigured.
func ruleSearchCredentials(in AssessmentInput, a domain.ReliabilityAssessment) domain.ReliabilityAssessment {
	if in.SearchConfigured {
		return a
	}
	a.Confidence = a.Confidence.AtMost(domain.ConfidenceLow)
	a.Warnings = append(a.Warnings, warnNoSearchCredentials)
	return a
}

// ruleUnverifiedArticleCitation downgrades one level when the query
// cites a specific article and no external verification occurred.
func ruleUnverifiedArticleCitation(in AssessmentInput, a domain.ReliabilityAssessment) domain.ReliabilityAssessment {
	if in.ExternalSearchSucceeded {
		return a
	}
	if len(domain.ExtractArticleCitations(in.Query.Text)) == 0 {
		return a
	}
	a.Confidence = a.Confidence.Downgrade()
	a.Warnings = append(a.Warnings, warnUnverifiedArticle)
	return a
}

// ruleExternalVerification caps confidence based on what the
// external search produced: an authoritative-domain hit allows high,
// non-authoritative hits allow medium, nothing at all means low.
// An unconfigured provider was already handled by the credentials
// rule and adds no second warning here.
func ruleExternalVerification(in AssessmentInput, a domain.ReliabilityAssessment) domain.ReliabilityAssessment {
	if !in.SearchConfigured {
		return a
	}
	if in.ExternalSearchSucceeded && len(in.ExternalHits) > 0 {
		if hasAuthoritativeHit(in.ExternalHits) {
			a.Confidence = a.Confidence.AtMost(domain.ConfidenceHigh)
			return a
		}
		a.Confidence = a.Confidence.AtMost(domain.ConfidenceMedium)
		return a
	}
	a.Confidence = a.Confidence.AtMost(domain.ConfidenceLow)
	a.Warnings = append(a.Warnings, warnNoExternalResults)
	return a
}

// ruleCuratedSources downgrades one level when the curated catalog
// contributed nothing.
func ruleCuratedSources(in AssessmentInput, a domain.ReliabilityAssessment) domain.ReliabilityAssessment {
	if in.CuratedCount > 0 {
		return a
	}
	a.Confidence = a.Confidence.Downgrade()
	a.Warnings = append(a.Warnings, warnNoCuratedSources)
	return a
}

// ruleRecency adds a caveat for questions about recent changes.
func ruleRecency(in AssessmentInput, a domain.ReliabilityAssessment) domain.ReliabilityAssessment {
	if !containsAny(in.Query.Lower(), recencyTerms) {
		return a
	}
	a.Warnings = append(a.Warnings, warnRecency)
	return a
}

// ruleVolatileTopic adds a caveat for fines, sanctions and local
// ordinances.
func ruleVolatileTopic(in AssessmentInput, a domain.ReliabilityAssessment) domain.ReliabilityAssessment {
	if !containsAny(in.Query.Lower(), volatileTopicTerms) {
		return a
	}
	a.Warnings = append(a.Warnings, warnVolatileTopic)
	return a
}

// hasAuthoritativeHit reports whether any hit links into one of the
// recognised official databases.
func hasAuthoritativeHit(hits []domain.Reference) bool {
	for _, hit := range hits {
		for _, d := range authoritativeDomains {
			if strings.Contains(hit.SourceURL, d) {
				return true
			}
		}
	}
	return false
}

// containsAny reports whether the text contains any of the terms.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
