package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractCodes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single fine code",
			text: "wat kost feitcode N420",
			want: []string{"N420"},
		},
		{
			name: "lowercase input uppercased",
			text: "n420 en v101a",
			want: []string{"N420", "V101A"},
		},
		{
			name: "duplicates removed",
			text: "N420 N420",
			want: []string{"N420"},
		},
		{
			name: "plain words ignored",
			text: "mag ik door rood rijden",
			want: []string{},
		},
		{
			name: "four digits too long",
			text: "N4200",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCodes(tt.text))
		})
	}
}

func TestExtractECLI(t *testing.T) {
	text := "zie ECLI:NL:HR:2015:2246 voor het standaardarrest"
	assert.Equal(t, "ECLI:NL:HR:2015:2246", ExtractECLI(text))

	assert.Empty(t, ExtractECLI("geen uitspraak genoemd"))
}

func TestExtractArticleCitations(t *testing.T) {
	assert.NotEmpty(t, ExtractArticleCitations("mag ik op grond van artikel 96b Sv een auto doorzoeken"))
	assert.NotEmpty(t, ExtractArticleCitations("wat zegt art. 5 over gevaarlijk rijgedrag"))
	assert.NotEmpty(t, ExtractArticleCitations("wat betekent 310 Sr"))
	assert.Empty(t, ExtractArticleCitations("mag ik door rood rijden"))
}

func TestSurrogateIdentifier(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	first := SurrogateIdentifier(now, 0)
	second := SurrogateIdentifier(now, 1)

	assert.Equal(t, "web-1700000000000-0", first)
	assert.NotEqual(t, first, second)
}
