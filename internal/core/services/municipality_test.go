package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMunicipality(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain mention",
			text: "mag ik in amsterdam op straat drinken",
			want: "amsterdam",
		},
		{
			name: "trailing punctuation",
			text: "wat zijn de regels in ede?",
			want: "ede",
		},
		{
			name: "multi-word name",
			text: "vuurwerkregels in den haag",
			want: "den haag",
		},
		{
			name: "no boundary match inside a word",
			text: "ik heb te hard gereden",
			want: "",
		},
		{
			name: "no municipality",
			text: "mag ik door rood rijden",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectMunicipality(tt.text))
		})
	}
}
