package services

import (
	"fmt"
	"strings"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
)

// systemPrompt instructs the model to answer in Dutch, grounded in
// the supplied references, and to refuse to invent citations.
const systemPrompt = `Je bent een juridische informatie-assistent voor Nederlands recht.
Beantwoord de vraag in begrijpelijk Nederlands en verwijs waar mogelijk naar de meegeleverde bronnen.
Noem wetsartikelen alleen als ze in de bronnen staan of algemeen bekend zijn; verzin geen vindplaatsen.
Geef geen persoonlijk juridisch advies; verwijs daarvoor naar een advocaat of het Juridisch Loket.`

// buildAnswerMessages assembles the chat transcript for one
// question: the system prompt, the ranked references as grounding
// context, and the user's question.
func buildAnswerMessages(query domain.SearchQuery, ranked []domain.ScoredCandidate) []driven.ChatMessage {
	var b strings.Builder

	if len(ranked) > 0 {
		b.WriteString("Gevonden bronnen:\n")
		for i, c := range ranked {
			ref := c.Reference
			fmt.Fprintf(&b, "%d. [%s] %s", i+1, ref.Identifier, ref.Title)
			if ref.LegalBasis != "" {
				fmt.Fprintf(&b, " (%s)", ref.LegalBasis)
			}
			if ref.MonetaryValue != "" {
				fmt.Fprintf(&b, " – boete: %s", ref.MonetaryValue)
			}
			if ref.Description != "" {
				fmt.Fprintf(&b, "\n   %s", ref.Description)
			}
			if ref.SourceURL != "" {
				fmt.Fprintf(&b, "\n   %s", ref.SourceURL)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if hint := contextHint(query.Context); hint != "" {
		b.WriteString(hint)
		b.WriteString("\n\n")
	}

	b.WriteString("Vraag: ")
	b.WriteString(query.Text)

	return []driven.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// contextHint renders the structured context, when present, as a
// line of situational detail for the model.
func contextHint(ctx domain.QueryContext) string {
	var parts []string
	if ctx.VehicleType != "" {
		parts = append(parts, "voertuig: "+ctx.VehicleType)
	}
	if ctx.Situation != "" {
		parts = append(parts, "situatie: "+ctx.Situation)
	}
	if ctx.Location != "" {
		parts = append(parts, "locatie: "+ctx.Location)
	}
	if len(parts) == 0 {
		return ""
	}
	return "Context: " + strings.Join(parts, ", ")
}
