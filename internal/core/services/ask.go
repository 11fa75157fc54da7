package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
	"github.com/wethelder/wethelder/internal/core/ports/driving"
	"github.com/wethelder/wethelder/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// maxQuestionLength rejects runaway input before it reaches the
// pipeline or the LLM.
const maxQuestionLength = 2000

// answerMaxTokens bounds a single generated answer.
const answerMaxTokens = 1500

// AskService orchestrates one legal question: quota check, reference
// pipeline, prompt construction, LLM completion and best-effort
// persistence. Only a failure of the LLM call itself fails the
// request; everything else degrades into the reliability label.
type AskService struct {
	search   driving.SearchService
	llm      driven.LLMService
	queryLog driven.QueryLogStore
	limiter  driven.RateLimiter
}

// NewAskService creates a new ask service. queryLog and limiter are
// optional (can be nil): without a query log answers are not
// persisted, without a limiter no quota is enforced.
func NewAskService(
	search driving.SearchService,
	llm driven.LLMService,
	queryLog driven.QueryLogStore,
	limiter driven.RateLimiter,
) *AskService {
	return &AskService{
		search:   search,
		llm:      llm,
		queryLog: queryLog,
		limiter:  limiter,
	}
}

// Ask produces a complete answer.
func (s *AskService) Ask(ctx context.Context, req driving.AskRequest) (driving.AskResult, error) {
	return s.ask(ctx, req, nil)
}

// AskStream delivers the answer chunk by chunk through fn. When the
// stream is cut short (client disconnect, mid-stream failure) the
// partial answer accumulated so far is still persisted.
func (s *AskService) AskStream(
	ctx context.Context, req driving.AskRequest, fn driving.AnswerChunkFunc,
) (driving.AskResult, error) {
	return s.ask(ctx, req, fn)
}

func (s *AskService) ask(
	ctx context.Context, req driving.AskRequest, fn driving.AnswerChunkFunc,
) (driving.AskResult, error) {
	logger.Section("Ask")
	logger.Debug("Question: %q", req.Query.Text)

	if err := s.validate(req); err != nil {
		return driving.AskResult{}, err
	}

	if err := s.checkQuota(ctx, req.ClientKey); err != nil {
		return driving.AskResult{}, err
	}

	if s.llm == nil {
		return driving.AskResult{}, domain.ErrLLMUnavailable
	}

	// The pipeline never fails the request: a broken search leg
	// surfaces as lowered confidence on an otherwise valid answer.
	searchResult, err := s.search.Search(ctx, req.Query, driving.SearchOptions{})
	if err != nil {
		logger.Warn("Pipeline failed, answering without references: %v", err)
		searchResult = driving.SearchResult{
			Assessment: domain.ReliabilityAssessment{
				Confidence: domain.ConfidenceLow,
				Warnings:   []string{warnNoExternalResults},
			},
		}
	}

	messages := buildAnswerMessages(req.Query, searchResult.Results)
	opts := driven.ChatOptions{MaxTokens: answerMaxTokens, Temperature: 0.2}

	var (
		answer  string
		partial bool
		llmErr  error
	)
	if fn != nil {
		answer, llmErr = s.llm.Stream(ctx, messages, opts, driven.StreamFunc(fn))
		if llmErr != nil && answer != "" {
			// Save what we have: the stream broke after chunks were
			// already delivered.
			partial = true
			llmErr = nil
		}
	} else {
		answer, llmErr = s.llm.Chat(ctx, messages, opts)
	}

	if llmErr != nil {
		logger.Warn("LLM completion failed: %v", llmErr)
		return driving.AskResult{}, fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, llmErr)
	}

	result := driving.AskResult{
		Answer:  answer,
		Search:  searchResult,
		Partial: partial,
	}

	s.persist(req, result)
	return result, nil
}

// validate rejects malformed questions before they reach the
// pipeline.
func (s *AskService) validate(req driving.AskRequest) error {
	if req.Query.IsEmpty() {
		return fmt.Errorf("empty question: %w", domain.ErrInvalidInput)
	}
	if len(req.Query.Text) > maxQuestionLength {
		return fmt.Errorf("question exceeds %d characters: %w", maxQuestionLength, domain.ErrInvalidInput)
	}
	return nil
}

// checkQuota enforces the anonymous daily quota. A failing limiter
// backend fails open: availability beats strict quota accounting.
func (s *AskService) checkQuota(ctx context.Context, key string) error {
	if s.limiter == nil || key == "" {
		return nil
	}

	allowed, remaining, err := s.limiter.Check(ctx, key)
	if err != nil {
		logger.Warn("Rate limiter check failed, allowing request: %v", err)
		return nil
	}
	if !allowed {
		return domain.ErrRateLimited
	}
	logger.Debug("Quota: %d remaining for %s", remaining, key)

	if err := s.limiter.Increment(ctx, key); err != nil {
		logger.Warn("Rate limiter increment failed: %v", err)
	}
	return nil
}

// persist appends the question/answer/sources tuple to the query
// log. Best effort: a storage failure is logged, never surfaced.
func (s *AskService) persist(req driving.AskRequest, result driving.AskResult) {
	if s.queryLog == nil {
		return
	}

	sources := make([]domain.Reference, 0, len(result.Search.Results))
	for _, c := range result.Search.Results {
		sources = append(sources, c.Reference)
	}

	record := domain.QueryRecord{
		ID:         uuid.NewString(),
		Question:   req.Query.Text,
		Answer:     result.Answer,
		Sources:    sources,
		Assessment: result.Search.Assessment,
		Partial:    result.Partial,
		CreatedAt:  time.Now().UTC(),
	}

	// Persistence runs on a fresh context: the request context may
	// already be cancelled after a client disconnect.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.queryLog.Append(ctx, record); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("Query log append failed: %v", err)
	}
}
