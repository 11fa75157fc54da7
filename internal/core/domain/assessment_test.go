package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidence_Downgrade(t *testing.T) {
	assert.Equal(t, ConfidenceMedium, ConfidenceHigh.Downgrade())
	assert.Equal(t, ConfidenceLow, ConfidenceMedium.Downgrade())
	assert.Equal(t, ConfidenceLow, ConfidenceLow.Downgrade())
}

func TestConfidence_AtMost(t *testing.T) {
	// A ceiling below the current level lowers it.
	assert.Equal(t, ConfidenceLow, ConfidenceHigh.AtMost(ConfidenceLow))
	assert.Equal(t, ConfidenceMedium, ConfidenceHigh.AtMost(ConfidenceMedium))

	// A ceiling above the current level never raises it.
	assert.Equal(t, ConfidenceLow, ConfidenceLow.AtMost(ConfidenceHigh))
	assert.Equal(t, ConfidenceMedium, ConfidenceMedium.AtMost(ConfidenceHigh))
}

func TestReliabilityAssessment_IsReliable(t *testing.T) {
	assert.True(t, ReliabilityAssessment{Confidence: ConfidenceHigh}.IsReliable())
	assert.True(t, ReliabilityAssessment{
		Confidence: ConfidenceMedium,
		Warnings:   []string{"a", "b"},
	}.IsReliable())

	assert.False(t, ReliabilityAssessment{Confidence: ConfidenceLow}.IsReliable())
	assert.False(t, ReliabilityAssessment{
		Confidence: ConfidenceHigh,
		Warnings:   []string{"a", "b", "c"},
	}.IsReliable())
}
