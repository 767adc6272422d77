// Package generator produces one math problem per request, preferring
// a fresh LLM completion and degrading to the static bank when the
// retry budget runs out.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/fallback"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/history"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/llm"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/prompts"
)

const (
	DefaultMaxAttempts = 7
	DefaultRetryDelay  = time.Second

	SourceGenerated = "generated"
	SourceFallback  = "fallback"
)

var (
	errNotJSONObject  = errors.New("completion is not a bare JSON object")
	errMissingFields  = errors.New("completion missing question or answer")
	errBadOptionCount = errors.New("multiple-choice completion must carry exactly 4 options")
	errDuplicate      = errors.New("question duplicates a recently served one")
)

// Result is one resolved problem plus how it was produced.
type Result struct {
	Problem  models.Problem
	Metadata models.ProblemMetadata
}

// Generator owns the retry loop around the provider call.
// MaxAttempts and RetryDelay are exported so tests can shrink them.
type Generator struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	history  *history.QuestionHistory
	bank     *fallback.Bank
	logger   *zap.Logger

	MaxAttempts int
	RetryDelay  time.Duration
}

func New(provider llm.Provider, promptManager prompts.PromptProvider, hist *history.QuestionHistory, bank *fallback.Bank, logger *zap.Logger) *Generator {
	return &Generator{
		provider:    provider,
		prompts:     promptManager,
		history:     hist,
		bank:        bank,
		logger:      logger,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// Generate resolves one problem for a validated grade/topic pair.
//
// The only errors returned are configuration errors (missing API key,
// model or endpoint misconfiguration), which the caller must surface.
// Every other failure path degrades to a fallback problem, so the
// caller otherwise always receives a well-formed problem.
func (g *Generator) Generate(ctx context.Context, grade, topic, requestID string) (*Result, error) {
	for attempt := 1; attempt <= g.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := g.wait(ctx); err != nil {
				g.logger.Warn("Generation cancelled while waiting to retry",
					zap.String("request_id", requestID), zap.Error(err))
				return g.resolveFallback(grade, topic, attempt-1), nil
			}
		}

		problem, meta, err := g.attempt(ctx, grade, topic, requestID)
		if err == nil {
			return &Result{
				Problem: problem,
				Metadata: models.ProblemMetadata{
					ProcessingTime: meta.ProcessingTime,
					Attempts:       attempt,
					Source:         SourceGenerated,
					Provider:       meta.Provider,
					Model:          meta.Model,
				},
			}, nil
		}

		if llm.IsConfigError(err) {
			g.logger.Error("Provider misconfiguration, surfacing to caller",
				zap.String("request_id", requestID), zap.Error(err))
			return nil, err
		}

		g.logger.Warn("Generation attempt failed",
			zap.String("request_id", requestID),
			zap.String("grade", grade),
			zap.String("topic", topic),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}

	return g.resolveFallback(grade, topic, g.MaxAttempts), nil
}

// attempt runs one prompt-call-validate cycle.
func (g *Generator) attempt(ctx context.Context, grade, topic, requestID string) (models.Problem, models.CompletionMetadata, error) {
	variety := prompts.PickVariety()

	prompt, err := g.prompts.BuildProblemPrompt(grade, topic, variety)
	if err != nil {
		return models.Problem{}, models.CompletionMetadata{}, err
	}

	completion, err := g.provider.GenerateCompletion(ctx, prompt, requestID)
	if err != nil {
		return models.Problem{}, models.CompletionMetadata{}, err
	}

	problem, err := parseCompletion(completion.Text, variety)
	if err != nil {
		return models.Problem{}, models.CompletionMetadata{}, err
	}

	// atomic check-and-record; a duplicate leaves history untouched
	if !g.history.Observe(problem.Question) {
		return models.Problem{}, models.CompletionMetadata{}, errDuplicate
	}

	problem.Type = topic
	return problem, completion.Metadata, nil
}

// resolveFallback is the single fallback path used by every failure
// branch: a canned problem for the pair if the bank has one, else a
// synthesized placeholder.
func (g *Generator) resolveFallback(grade, topic string, attempts int) *Result {
	problem := g.bank.Pick(grade, topic)
	g.logger.Info("Serving fallback problem",
		zap.String("grade", grade),
		zap.String("topic", topic),
		zap.Int("attempts", attempts))

	return &Result{
		Problem: problem,
		Metadata: models.ProblemMetadata{
			Attempts: attempts,
			Source:   SourceFallback,
		},
	}
}

func (g *Generator) wait(ctx context.Context) error {
	timer := time.NewTimer(g.RetryDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type completionPayload struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options"`
}

// parseCompletion validates the completion text and extracts a
// problem. The text must be a bare JSON object with non-empty question
// and answer; multiple-choice problems must carry exactly 4 options,
// every other type is served with an empty options list.
func parseCompletion(text string, variety prompts.Variety) (models.Problem, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return models.Problem{}, errNotJSONObject
	}

	var payload completionPayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return models.Problem{}, err
	}

	if strings.TrimSpace(payload.Question) == "" || strings.TrimSpace(payload.Answer) == "" {
		return models.Problem{}, errMissingFields
	}

	options := payload.Options
	if variety.QuestionType == prompts.MultipleChoiceType {
		if len(options) != 4 {
			return models.Problem{}, errBadOptionCount
		}
	} else {
		options = []string{}
	}

	return models.Problem{
		Question: payload.Question,
		Answer:   payload.Answer,
		Options:  options,
	}, nil
}
