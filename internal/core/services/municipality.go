package services

import "strings"

// majorMunicipalities is the fixed list of Dutch municipality names
// checked against local-ordinance queries. Lower-cased for substring
// matching.
var majorMunicipalities = []string{
	"amsterdam",
	"rotterdam",
	"den haag",
	"utrecht",
	"eindhoven",
	"groningen",
	"tilburg",
	"almere",
	"breda",
	"nijmegen",
	"apeldoorn",
	"arnhem",
	"haarlem",
	"enschede",
	"amersfoort",
	"zaanstad",
	"haarlemmermeer",
	"zwolle",
	"leiden",
	"maastricht",
	"dordrecht",
	"ede",
	"leeuwarden",
	"alphen aan den rijn",
	"alkmaar",
	"emmen",
	"delft",
	"venlo",
	"deventer",
	"helmond",
}

// nationalTrustedDomains is the broad allow-list used when no
// municipality is detected.
var nationalTrustedDomains = []string{
	"wetten.overheid.nl",
	"uitspraken.rechtspraak.nl",
	"lokaleregelgeving.overheid.nl",
	"overheid.nl",
	"rijksoverheid.nl",
	"boetebase.om.nl",
}

// localTrustedDomains narrows the search for local-ordinance
// questions once a municipality is known.
var localTrustedDomains = []string{
	"lokaleregelgeving.overheid.nl",
	"overheid.nl",
}

// detectMunicipality returns the first municipality named in the
// lower-cased query, or "". Names match on word boundaries; "ede"
// must not fire inside "gereden".
func detectMunicipality(lower string) string {
	padded := " " + strings.Map(stripPunct, lower) + " "
	for _, m := range majorMunicipalities {
		if strings.Contains(padded, " "+m+" ") {
			return m
		}
	}
	return ""
}

// stripPunct replaces punctuation with spaces so boundary matching
// works on "in Ede?" as well.
func stripPunct(r rune) rune {
	switch r {
	case '.', ',', '?', '!', ':', ';', '(', ')', '\'', '"':
		return ' '
	}
	return r
}
