package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
	"github.com/wethelder/wethelder/internal/core/ports/driving"
)

func newAskFixture(llm *mockLLM, limiter *mockLimiter) (*AskService, *mockQueryLog) {
	search := NewSearchService(fineCatalog(), nil, nil)
	queryLog := &mockQueryLog{}
	var rl driven.RateLimiter
	if limiter != nil {
		rl = limiter
	}
	return NewAskService(search, llm, queryLog, rl), queryLog
}

func askReq(text string) driving.AskRequest {
	return driving.AskRequest{
		Query:     query(text),
		ClientKey: "203.0.113.7",
	}
}

func TestAskService_EmptyQuestion(t *testing.T) {
	svc, _ := newAskFixture(&mockLLM{answer: "antwoord"}, nil)

	_, err := svc.Ask(context.Background(), askReq("   "))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAskService_QuestionTooLong(t *testing.T) {
	svc, _ := newAskFixture(&mockLLM{answer: "antwoord"}, nil)

	_, err := svc.Ask(context.Background(), askReq(strings.Repeat("a", maxQuestionLength+1)))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAskService_QuotaExhausted(t *testing.T) {
	limiter := &mockLimiter{allowed: false}
	svc, queryLog := newAskFixture(&mockLLM{answer: "antwoord"}, limiter)

	_, err := svc.Ask(context.Background(), askReq("mag ik door rood rijden"))

	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Empty(t, queryLog.records)
	assert.Zero(t, limiter.increments)
}

func TestAskService_QuotaAllowedIncrements(t *testing.T) {
	limiter := &mockLimiter{allowed: true, remaining: 3}
	svc, _ := newAskFixture(&mockLLM{answer: "antwoord"}, limiter)

	_, err := svc.Ask(context.Background(), askReq("mag ik door rood rijden"))

	require.NoError(t, err)
	assert.Equal(t, 1, limiter.increments)
}

// A broken limiter backend must not take the service down.
func TestAskService_LimiterFailureFailsOpen(t *testing.T) {
	limiter := &mockLimiter{checkErr: errors.New("backend unreachable")}
	svc, _ := newAskFixture(&mockLLM{answer: "antwoord"}, limiter)

	result, err := svc.Ask(context.Background(), askReq("mag ik door rood rijden"))

	require.NoError(t, err)
	assert.Equal(t, "antwoord", result.Answer)
}

func TestAskService_EmptyClientKeySkipsQuota(t *testing.T) {
	limiter := &mockLimiter{allowed: false}
	svc, _ := newAskFixture(&mockLLM{answer: "antwoord"}, limiter)

	req := driving.AskRequest{Query: query("mag ik door rood rijden")}
	_, err := svc.Ask(context.Background(), req)

	require.NoError(t, err)
}

func TestAskService_NoLLMConfigured(t *testing.T) {
	search := NewSearchService(fineCatalog(), nil, nil)
	svc := NewAskService(search, nil, nil, nil)

	_, err := svc.Ask(context.Background(), askReq("mag ik door rood rijden"))

	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestAskService_PersistsAnswer(t *testing.T) {
	svc, queryLog := newAskFixture(&mockLLM{answer: "Nee, dat mag niet."}, nil)

	_, err := svc.Ask(context.Background(), askReq("wat kost feitcode N420"))

	require.NoError(t, err)
	require.Len(t, queryLog.records, 1)

	record := queryLog.records[0]
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "wat kost feitcode N420", record.Question)
	assert.Equal(t, "Nee, dat mag niet.", record.Answer)
	assert.NotEmpty(t, record.Sources)
	assert.False(t, record.Partial)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestAskService_StreamDeliversChunks(t *testing.T) {
	llm := &mockLLM{chunks: []string{"Nee, ", "dat mag niet."}}
	svc, _ := newAskFixture(llm, nil)

	var received []string
	result, err := svc.AskStream(context.Background(), askReq("mag ik door rood rijden"),
		func(chunk string) error {
			received = append(received, chunk)
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, []string{"Nee, ", "dat mag niet."}, received)
	assert.Equal(t, "Nee, dat mag niet.", result.Answer)
	assert.False(t, result.Partial)
}

// A stream cut short after chunks were delivered still yields the
// partial answer and persists it flagged as partial.
func TestAskService_StreamFailureKeepsPartialAnswer(t *testing.T) {
	llm := &mockLLM{
		chunks:    []string{"Nee, dat"},
		streamErr: errors.New("connection reset"),
	}
	svc, queryLog := newAskFixture(llm, nil)

	result, err := svc.AskStream(context.Background(), askReq("mag ik door rood rijden"),
		func(string) error { return nil })

	require.NoError(t, err)
	assert.True(t, result.Partial)
	assert.Equal(t, "Nee, dat", result.Answer)

	require.Len(t, queryLog.records, 1)
	assert.True(t, queryLog.records[0].Partial)
}

func TestAskService_StreamFailureWithoutOutputFails(t *testing.T) {
	llm := &mockLLM{
		chunks:    []string{},
		streamErr: errors.New("bad request"),
	}
	svc, queryLog := newAskFixture(llm, nil)

	_, err := svc.AskStream(context.Background(), askReq("mag ik door rood rijden"),
		func(string) error { return nil })

	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	assert.Empty(t, queryLog.records)
}
