package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// codePattern recognises code-like tokens in free text: a leading
// letter, 2-3 digits, optional trailing letter. Matches fine codes
// such as "N420" or "V101a".
var codePattern = regexp.MustCompile(`\b([A-Za-z][0-9]{2,3}[A-Za-z]?)\b`)

// ecliPattern recognises European Case Law Identifiers, the natural
// key for Dutch court rulings, e.g. "ECLI:NL:HR:2015:2246".
var ecliPattern = regexp.MustCompile(`ECLI:[A-Z]{2}:[A-Z0-9]+:\d{4}:[A-Z0-9.]+`)

// articleCitationPattern recognises explicit statute-article
// citations: "artikel 96b", "art. 5", or the shorthand "96b Sv".
var articleCitationPattern = regexp.MustCompile(
	`(?i)\b(artikel|art\.?)\s+\d+[a-z]{0,2}\b|\b\d+[a-z]{0,2}\s+(sv|sr|bw|awb|wvw|wed|gw)\b`)

// ExtractCodes returns all code-like tokens in the text, uppercased,
// in order of appearance, without duplicates.
func ExtractCodes(text string) []string {
	matches := codePattern.FindAllString(text, -1)
	seen := make(map[string]bool, len(matches))
	codes := make([]string, 0, len(matches))
	for _, m := range matches {
		code := strings.ToUpper(m)
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	return codes
}

// ExtractECLI returns the first ECLI found in the text, or "".
func ExtractECLI(text string) string {
	return ecliPattern.FindString(text)
}

// ExtractArticleCitations returns the explicit article citations in
// the text, in order of appearance.
func ExtractArticleCitations(text string) []string {
	return articleCitationPattern.FindAllString(text, -1)
}

// SurrogateIdentifier generates a timestamp-based key for web hits
// lacking a natural identifier, so the dedup invariant still holds.
// The position disambiguates hits from the same result batch.
func SurrogateIdentifier(now time.Time, position int) string {
	return "web-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + strconv.Itoa(position)
}
